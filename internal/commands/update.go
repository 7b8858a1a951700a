package commands

import (
	"github.com/akasprzok/legendsnap/internal/charts"
	"github.com/akasprzok/legendsnap/internal/legend"
	"github.com/akasprzok/legendsnap/internal/tables"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m LegendModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateResults {
			m = m.render()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case loadResultMsg:
		return m.handleLoadResult(msg)

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m LegendModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.legendTable.Active() {
		return m.handleFilterKey(msg)
	}

	switch m.state {
	case StateLoading:
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	case StateError:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "r":
			return m.reload()
		}
		return m, nil
	case StateResults:
		return m.handleLegendKey(msg)
	}

	return m, nil
}

func (m LegendModel) handleLegendKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	case " ", "space":
		m.chart.Toggle(m.selectedIndex)
		return m.render(), nil
	case "a":
		m.chart.SetAll(true)
		return m.render(), nil
	case "n":
		m.chart.SetAll(false)
		return m.render(), nil
	case "r":
		return m.reload()
	case "/":
		m.legendTable = m.legendTable.Focus()
		return m, nil
	}

	// Legend navigation
	var tableCmd tea.Cmd
	table := m.legendTable.Table
	switch msg.String() {
	case "j":
		table, tableCmd = table.Update(tea.KeyMsg{Type: tea.KeyDown})
	case "k":
		table, tableCmd = table.Update(tea.KeyMsg{Type: tea.KeyUp})
	case "h":
		table, tableCmd = table.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	case "l":
		table, tableCmd = table.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	default:
		table, tableCmd = table.Update(msg)
	}
	m.legendTable.Table = table

	return m.syncSelection(), tableCmd
}

func (m LegendModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.legendTable, cmd = m.legendTable.Update(msg)
	return m.syncSelection(), cmd
}

// syncSelection follows the highlighted legend row and redraws the chart when
// it moved.
func (m LegendModel) syncSelection() LegendModel {
	selected := tables.HighlightedIndex(m.legendTable.Table)
	if selected == m.selectedIndex {
		return m
	}
	m.selectedIndex = selected
	m.chartContent, _ = charts.Render(m.chart, m.getChartWidth(), m.selectedIndex)
	return m
}

func (m LegendModel) reload() (tea.Model, tea.Cmd) {
	if m.chart != nil {
		snap, err := legend.Snapshot(m.chart)
		if err == nil {
			m.previous = snap
		}
	}
	m.state = StateLoading
	m.err = nil
	m.warnings = nil
	return m, tea.Batch(m.spinner.Tick, m.load())
}

func (m LegendModel) handleLoadResult(msg loadResultMsg) (tea.Model, tea.Cmd) {
	m.warnings = msg.warnings
	m.err = msg.err
	m.duration = msg.duration

	if msg.err != nil {
		m.state = StateError
		return m, nil
	}

	m.chart = charts.NewChart(msg.matrix)
	if m.previous != nil {
		m.chart.Apply(m.previous)
	}
	m.state = StateResults
	m.selectedIndex = -1
	if m.chart.Len() > 0 {
		m.selectedIndex = 0
	}
	m = m.render()
	return m, nil
}

// render redraws the chart and rebuilds the legend table, keeping the cursor
// and any active filter.
func (m LegendModel) render() LegendModel {
	cursor := m.legendTable.Table.GetHighlightedRowIndex()

	m.chartContent, m.legendEntries = charts.Render(m.chart, m.getChartWidth(), m.selectedIndex)
	m.legendTable = m.legendTable.WithTable(tables.Legend(m.legendEntries, true, m.legendPageSize()))
	m.legendTable.Table = m.legendTable.Table.WithHighlightedRow(cursor)

	if selected := tables.HighlightedIndex(m.legendTable.Table); selected != m.selectedIndex && selected >= 0 {
		m.selectedIndex = selected
		m.chartContent, _ = charts.Render(m.chart, m.getChartWidth(), m.selectedIndex)
	}
	return m
}
