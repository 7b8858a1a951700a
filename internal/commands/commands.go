package commands

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Context is handed to every command's Run method.
type Context struct {
	Timeout time.Duration
	Logger  *logrus.Logger
	Stdout  io.Writer
}

// CLI is the kong command tree.
type CLI struct {
	Timeout  time.Duration `help:"Timeout for Prometheus queries." default:"60s"`
	LogLevel string        `name:"log-level" help:"Log level written to stderr." default:"warn" enum:"trace,debug,info,warn,error" env:"LEGENDSNAP_LOG_LEVEL"`

	Extract     ExtractCmd     `cmd:"" help:"Snapshot the legend of a saved host chart object."`
	Snapshot    SnapshotCmd    `cmd:"" help:"Snapshot legend visibility of a range query."`
	Legend      LegendCmd      `cmd:"" help:"Toggle legend entries interactively, then print the snapshot."`
	FormatQuery FormatQueryCmd `cmd:"" help:"Format query."`
}
