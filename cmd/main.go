package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/koskimas/lspgen/internal/cmd"
	"github.com/koskimas/lspgen/internal/logging"
	"github.com/rs/zerolog"
)

type CLI struct {
	LogLevel string `help:"Log level: debug, info, warn or error." default:"info" enum:"debug,info,warn,error" env:"LSPGEN_LOG_LEVEL"`

	Generate GenerateCmd `cmd:"" help:"Generate Go declarations from an LSP meta-model."`
}

type GenerateCmd struct {
	MetaModel string `arg:"" help:"Path to metaModel.json." type:"path"`
	Config    string `help:"Generator config (.toml, .yaml or .yml)." default:"lspgen.toml" type:"path"`
	Out       string `help:"Output Go file." default:"lsp_types.go" type:"path"`
	Package   string `help:"Package name of the output file." default:"lsp"`
	Bless     bool   `help:"Store the current checksum of every drifted entity in the config."`
}

// Run is called by kong when the generate command is executed.
func (c *GenerateCmd) Run(logger zerolog.Logger) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	return cmd.Run(cmd.Settings{
		WorkingDir: wd,
		MetaModel:  c.MetaModel,
		Config:     c.Config,
		Out:        c.Out,
		Package:    c.Package,
		Bless:      c.Bless,
		Logger:     logger,
		Hints:      os.Stderr,
	})
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("lspgen"),
		kong.Description("LSP meta-model to Go type declaration compiler"),
		kong.UsageOnError(),
	)

	logger, err := logging.New(cli.LogLevel, os.Stderr)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx.Bind(logger)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
