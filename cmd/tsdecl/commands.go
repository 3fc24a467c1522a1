package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/reoring/tsdecl/i18n"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tsdecl").
		WithSynopsis("tsdecl [opts] command [opts]").
		WithDescription("tsdecl generates TypeScript declarations from JSON Schema and Go types.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tsdeclMain(cfg, cc, args)
		}).
		WithSubs(
			SchemaCommand(cfg),
			GoCommand(cfg))
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithAliases("s").
		WithSynopsis("schema [-root Name] [-export] [-enums] [-strict] [-yaml] [-crd Kind] [-o file] [-check] [files]").
		WithDescription("generate declarations from JSON Schema, OpenAPI or CRD documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return schema(cfg, cc, args)
		})
}

func GoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Go, "go").
		WithSynopsis("go [-dir d] [-export] [-o file] [-check] Type...").
		WithDescription("generate declarations from Go struct types in a package directory").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return goTypes(cfg, cc, args)
		})
}

func tsdeclMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Lang != "" {
		i18n.SetLanguage(cfg.Lang)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
