package main

import (
	"log/slog"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool   `cli:"name=v desc='verbose logging'"`
	Lang    string `cli:"name=lang desc='warning message language: en, ja'"`

	log  *slog.Logger
	Main *cli.Command
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.log == nil {
		cfg.log = newLogger(cfg.Verbose)
	}
	return cfg.log
}

type SchemaConfig struct {
	*MainConfig
	Root       string `cli:"name=root desc='name of the root declaration'"`
	Export     bool   `cli:"name=export desc='export all declarations'"`
	Enums      bool   `cli:"name=enums desc='render string enums as enum declarations'"`
	Strict     bool   `cli:"name=strict desc='fail on warnings'"`
	NoComments bool   `cli:"name=nocomments desc='omit doc comments'"`
	YAML       bool   `cli:"name=yaml desc='read input as yaml'"`
	CRD        string `cli:"name=crd desc='read a CustomResourceDefinition bundle and select this kind (* for the first)'"`
	Out        string `cli:"name=o desc='output file (default stdout)'"`
	Check      bool   `cli:"name=check desc='compare with the -o file instead of writing it'"`

	Schema *cli.Command
}

type GoConfig struct {
	*MainConfig
	Dir        string `cli:"name=dir desc='package directory (default .)'"`
	Export     bool   `cli:"name=export desc='export all declarations'"`
	NoComments bool   `cli:"name=nocomments desc='omit doc comments'"`
	Out        string `cli:"name=o desc='output file (default stdout)'"`
	Check      bool   `cli:"name=check desc='compare with the -o file instead of writing it'"`

	Go *cli.Command
}
