package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// LegendCmd is the Kong command for the interactive legend.
type LegendCmd struct {
	Source `embed:""`

	Output string `name:"output" short:"o" help:"Output format for the snapshot printed on enter." default:"json" enum:"json,yaml,lines"`
}

// Run starts the interactive legend and prints the snapshot when the user
// confirms with enter.
func (l *LegendCmd) Run(ctx *Context) error {
	if l.Query == "" && l.File == "" {
		return errNoSource
	}

	// The TUI owns the terminal; keep the logger off it.
	quiet := *ctx
	quiet.Logger = discardLogger()

	p := tea.NewProgram(NewLegendModel(l.Source, &quiet), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	lm, ok := finalModel.(LegendModel)
	if !ok || !lm.Confirmed() {
		return nil
	}
	snap, err := lm.Snapshot()
	if err != nil {
		return err
	}
	ctx.Logger.WithField("series", len(snap)).Debug("legend confirmed")
	return writeSnapshot(ctx.Stdout, snap, l.Output)
}
