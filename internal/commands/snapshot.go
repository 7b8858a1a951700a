package commands

import (
	"fmt"
	"os"

	"github.com/akasprzok/legendsnap/internal/charts"
	"github.com/akasprzok/legendsnap/internal/legend"
	"github.com/akasprzok/legendsnap/internal/sink"
	"golang.org/x/term"
)

type SnapshotCmd struct {
	Source `embed:""`

	Only   []string `name:"only" help:"Show only these series; everything else is hidden."`
	Hide   []string `name:"hide" help:"Series to hide before taking the snapshot."`
	Output string   `name:"output" short:"o" help:"Output format." default:"json" enum:"json,yaml,lines,graph"`
	Width  int      `name:"width" help:"Chart width for graph output. Defaults to the terminal width."`
}

func (s *SnapshotCmd) Run(ctx *Context) error {
	matrix, warnings, err := s.Load(ctx)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		ctx.Logger.Warn(w)
	}

	chart := charts.NewChart(matrix)
	if len(s.Only) > 0 {
		chart.SetAll(false)
		s.setVisible(ctx, chart, s.Only, true)
	}
	s.setVisible(ctx, chart, s.Hide, false)

	snap, err := legend.Snapshot(chart)
	if err != nil {
		return err
	}

	if s.Output != "graph" {
		return writeSnapshot(ctx.Stdout, snap, s.Output)
	}

	if len(snap) == 0 {
		fmt.Fprintln(ctx.Stdout, "No Data")
		return nil
	}
	if bars := charts.LatestBarchart(chart, s.chartWidth()); bars != "" {
		fmt.Fprintln(ctx.Stdout, bars)
	}
	sink.Dump(sink.NewWriterSink(ctx.Stdout), snap)
	fmt.Fprintln(ctx.Stdout, VisibleStyle.Render(summary(chart)))
	return nil
}

func (s *SnapshotCmd) setVisible(ctx *Context, chart *charts.Chart, names []string, visible bool) {
	for _, name := range names {
		if chart.SetVisibleByName(name, visible) == 0 {
			ctx.Logger.WithField("series", name).Warn("no series with this name")
		}
	}
}

func (s *SnapshotCmd) chartWidth() int {
	if s.Width > 0 {
		return s.Width
	}
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && termWidth > ChartWidthPadding {
		return termWidth - ChartWidthPadding
	}
	return DefaultTerminalWidth - ChartWidthPadding
}
