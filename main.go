package main

import (
	"os"

	"github.com/akasprzok/legendsnap/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("legendsnap"),
		kong.Description("Record which chart series are shown in the legend."),
	)

	logger, err := commands.NewLogger(cli.LogLevel, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&commands.Context{
		Timeout: cli.Timeout,
		Logger:  logger,
		Stdout:  os.Stdout,
	})
	ctx.FatalIfErrorf(err)
}
