package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/reoring/tsdecl/fromgo"
)

func goTypes(cfg *GoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Go.Parse(cc, args)
	if err != nil {
		cfg.Go.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: go requires at least one type name", cli.ErrUsage)
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	prog, err := fromgo.ParseDir(dir, args, fromgo.Options{Export: cfg.Export, NoComments: cfg.NoComments})
	if err != nil {
		return err
	}
	cfg.logger().Debug("parsed package", "dir", dir, "declarations", len(prog.Statements))
	differs, err := emit(cc.Out, cfg.Out, cfg.Check, prog.String())
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
