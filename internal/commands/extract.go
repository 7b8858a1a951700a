package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akasprzok/legendsnap/internal/legend"
	"github.com/akasprzok/legendsnap/internal/sink"
	"github.com/sirupsen/logrus"
)

type ExtractCmd struct {
	File   string `arg:"" name:"file" help:"Host chart object with a series list (JSON or YAML)." type:"existingfile"`
	Format string `name:"format" help:"Input format (json or yaml). Defaults to the file extension."`
	Output string `name:"output" short:"o" help:"Output format." default:"json" enum:"json,yaml,lines"`
	Dump   bool   `name:"dump" help:"Also log every entry to stderr."`
}

func (e *ExtractCmd) Run(ctx *Context) error {
	format, err := e.inputFormat()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(e.File)
	if err != nil {
		return fmt.Errorf("reading chart: %w", err)
	}
	chart, err := legend.Decode(data, format)
	if err != nil {
		return fmt.Errorf("%s: %w", e.File, err)
	}
	snap, err := legend.Snapshot(chart)
	if err != nil {
		return fmt.Errorf("%s: %w", e.File, err)
	}

	ctx.Logger.WithFields(logrus.Fields{
		"file":    e.File,
		"format":  format,
		"series":  len(snap),
		"visible": len(snap.Visible()),
	}).Debug("extracted legend snapshot")
	if e.Dump {
		sink.Dump(sink.NewLogSink(ctx.Logger, logrus.InfoLevel), snap)
	}

	return writeSnapshot(ctx.Stdout, snap, e.Output)
}

func (e *ExtractCmd) inputFormat() (legend.Format, error) {
	if e.Format != "" {
		return legend.ParseFormat(e.Format)
	}
	switch filepath.Ext(e.File) {
	case ".yaml", ".yml":
		return legend.FormatYAML, nil
	default:
		return legend.FormatJSON, nil
	}
}
