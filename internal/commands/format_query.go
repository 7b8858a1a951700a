package commands

import (
	"fmt"

	"github.com/akasprzok/legendsnap/internal/prometheus"
)

type FormatQueryCmd struct {
	Query string `arg:"" name:"query" help:"Query to format." required:"true"`
}

func (f *FormatQueryCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, prometheus.FormatQuery(f.Query))
	return nil
}
