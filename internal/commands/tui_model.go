package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/akasprzok/legendsnap/internal/charts"
	"github.com/akasprzok/legendsnap/internal/legend"
	"github.com/akasprzok/legendsnap/internal/tables"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"golang.org/x/term"
)

// LegendModel is the Bubble Tea model for the interactive legend.
type LegendModel struct {
	source Source
	ctx    *Context

	state    TUIState
	warnings v1.Warnings
	err      error
	duration time.Duration

	chart *charts.Chart
	// previous is reapplied to the chart when a reload finishes.
	previous legend.VisibilitySnapshot

	// Rendered content
	chartContent  string
	legendEntries []charts.LegendEntry
	legendTable   tables.Filter
	selectedIndex int // -1 means no selection

	// UI state
	width     int
	height    int
	spinner   spinner.Model
	confirmed bool
}

// NewLegendModel creates a legend model that loads from source on Init.
func NewLegendModel(source Source, ctx *Context) LegendModel {
	return LegendModel{
		source:        source,
		ctx:           ctx,
		state:         StateLoading,
		legendTable:   tables.NewFilter(tables.Legend(nil, true, LegendMaxRows)),
		selectedIndex: -1,
		spinner:       newLoadingSpinner(),
	}
}

func (m LegendModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.load(),
	)
}

// Confirmed reports whether the user quit with enter.
func (m LegendModel) Confirmed() bool {
	return m.confirmed
}

// Err returns the last load error.
func (m LegendModel) Err() error {
	return m.err
}

// Snapshot returns the current legend visibility.
func (m LegendModel) Snapshot() (legend.VisibilitySnapshot, error) {
	if m.chart == nil {
		return nil, fmt.Errorf("no chart loaded: %w", legend.ErrInvalidInput)
	}
	return legend.Snapshot(m.chart)
}

func (m LegendModel) load() tea.Cmd {
	source, ctx := m.source, m.ctx
	return func() tea.Msg {
		start := time.Now()
		matrix, warnings, err := source.Load(ctx)
		return loadResultMsg{
			warnings: warnings,
			matrix:   matrix,
			err:      err,
			duration: time.Since(start),
		}
	}
}

func (m LegendModel) getChartWidth() int {
	width := m.width - ChartWidthPadding
	if width <= 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && termWidth > 0 {
			width = termWidth - ChartWidthPadding
		} else {
			width = DefaultTerminalWidth - ChartWidthPadding
		}
	}
	return width
}

// legendPageSize fits the legend below the chart.
func (m LegendModel) legendPageSize() int {
	if m.height <= 0 {
		return LegendMaxRows
	}
	available := m.height - ChromeHeight - ChartBorderLines - charts.ChartHeight(m.getChartWidth()) - LegendBorderLines
	return min(max(available, LegendMinRows), LegendMaxRowsCap)
}

// formatDuration formats a duration with appropriate precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
