package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	SpinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	// VisibleStyle colours the visible-series summary.
	VisibleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func newLoadingSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle
	return s
}

func (m LegendModel) View() string {
	var s strings.Builder

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	switch m.state {
	case StateLoading:
		s.WriteString(m.renderLoadingState())
	case StateError:
		s.WriteString(m.renderErrorState())
	case StateResults:
		s.WriteString(m.renderResultsContent())
	}
	s.WriteString("\n")

	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m LegendModel) renderStatusBar() string {
	text := fmt.Sprintf("  legendsnap | %s", m.source.Describe())
	if m.source.Query != "" {
		text += fmt.Sprintf("   Range: %s   Step: %s", m.source.Range, m.source.Step)
	}
	if m.state == StateResults {
		if m.chart != nil {
			text += "   " + summary(m.chart)
		}
		text += "   " + formatDuration(m.duration)
	}

	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	return statusStyle.Render(text)
}

func (m LegendModel) renderLoadingState() string {
	loadingStyle := lipgloss.NewStyle().Padding(2, 4)
	return loadingStyle.Render(fmt.Sprintf("%s Loading %s", m.spinner.View(), m.source.Describe()))
}

func (m LegendModel) renderErrorState() string {
	errorStyle := lipgloss.NewStyle().Padding(1, 2)
	return errorStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error())
}

func (m LegendModel) renderResultsContent() string {
	var s strings.Builder

	if len(m.warnings) > 0 {
		s.WriteString(WarningStyle.Render("Warnings:\n"))
		for _, w := range m.warnings {
			s.WriteString(WarningStyle.Render("  - " + w + "\n"))
		}
	}

	if len(m.legendEntries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(2, 4)
		s.WriteString(emptyStyle.Render("No Data"))
		return s.String()
	}

	chartStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
	s.WriteString(chartStyle.Render(m.chartContent))
	s.WriteString("\n")

	legendStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("205")).
		Padding(0, 1)
	s.WriteString(legendStyle.Render(m.legendTable.View()))

	return s.String()
}

func (m LegendModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Width(m.width).
		Padding(0, 1)

	var helpText string
	switch {
	case m.legendTable.Active():
		helpText = "  type to filter | enter/esc: done"
	case m.state == StateResults:
		helpText = "  j/k: navigate | h/l: page | space: toggle | a: all | n: none | /: filter | r: reload | enter: done | q: quit"
	case m.state == StateError:
		helpText = "  r: retry | q: quit"
	default:
		helpText = "  q: quit"
	}

	return helpStyle.Render(helpText)
}
