package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/reoring/tsdecl/jsonschema"
	"github.com/reoring/tsdecl/tsgen"
)

func schema(cfg *SchemaConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Schema.Parse(cc, args)
	if err != nil {
		cfg.Schema.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	log := cfg.logger()
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		data, err := readArg(cc.In, arg)
		if err != nil {
			return err
		}
		text, issues, err := cfg.generate(data)
		for _, is := range issues {
			log.Warn(is.Message, "file", arg, "path", is.Path, "code", is.Code)
		}
		if err != nil {
			return fmt.Errorf("error generating %s: %w", arg, err)
		}
		log.Debug("generated declarations", "file", arg)
		parts = append(parts, text)
	}
	differs, err := emit(cc.Out, cfg.Out, cfg.Check, strings.Join(parts, "\n\n"))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func (cfg *SchemaConfig) options() tsgen.Options {
	opts := tsgen.Options{
		RootName:   cfg.Root,
		Export:     cfg.Export,
		Strict:     cfg.Strict,
		NoComments: cfg.NoComments,
	}
	if cfg.Enums {
		opts.EnumStyle = tsgen.EnumDeclaration
	}
	return opts
}

func (cfg *SchemaConfig) decode(data []byte) (*jsonschema.Schema, error) {
	switch {
	case cfg.CRD == "*":
		return jsonschema.DecodeCRD(data, "")
	case cfg.CRD != "":
		return jsonschema.DecodeCRD(data, cfg.CRD)
	case cfg.YAML:
		return jsonschema.DecodeYAML(data)
	}
	return jsonschema.Decode(data)
}

// generate decodes one input document and prints its declarations.
func (cfg *SchemaConfig) generate(data []byte) (string, tsgen.Issues, error) {
	s, err := cfg.decode(data)
	if err != nil {
		return "", nil, err
	}
	prog, issues, err := tsgen.Generate(s, cfg.options())
	if err != nil {
		return "", issues, err
	}
	return prog.String(), issues, nil
}

func readArg(in io.Reader, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(in)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}
