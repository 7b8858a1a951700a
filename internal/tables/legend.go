package tables

import (
	"github.com/akasprzok/legendsnap/internal/charts"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
)

const (
	columnColor   = "color"
	columnVisible = "visible"
	columnName    = "name"
	columnIndex   = "index"
)

// Legend builds the legend table. The series index is kept in the row data so
// a highlighted row can be mapped back to its series after filtering.
func Legend(entries []charts.LegendEntry, focused bool, pageSize int) teatable.Model {
	rows := make([]teatable.Row, 0, len(entries))
	longestName := 0

	for i, entry := range entries {
		if len(entry.Name) > longestName {
			longestName = len(entry.Name)
		}

		swatch := charts.SeriesStyle(entry.ColorIndex).Render("█")
		marker := "on"
		if !entry.Visible {
			swatch = charts.HiddenStyle().Render("░")
			marker = "off"
		}

		row := teatable.NewRow(teatable.RowData{
			columnColor:   swatch,
			columnVisible: marker,
			columnName:    entry.Name,
			columnIndex:   i,
		})
		if !entry.Visible {
			row = row.WithStyle(charts.HiddenStyle())
		}
		rows = append(rows, row)
	}

	columns := []teatable.Column{
		teatable.NewColumn(columnColor, "", 3),
		teatable.NewColumn(columnVisible, "", 4),
		teatable.NewColumn(columnName, "Series", max(longestName+1, 20)).WithFiltered(true),
	}

	return teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(pageSize).
		Filtered(true).
		Focused(focused)
}

// HighlightedIndex returns the series index of the highlighted row, or -1.
func HighlightedIndex(t teatable.Model) int {
	row := t.HighlightedRow()
	if row.Data == nil {
		return -1
	}
	i, ok := row.Data[columnIndex].(int)
	if !ok {
		return -1
	}
	return i
}

// Filter wraps a legend table with a "/" filter input.
type Filter struct {
	Table     teatable.Model
	textInput textinput.Model
}

func NewFilter(t teatable.Model) Filter {
	ti := textinput.New()
	ti.Placeholder = "filter series"
	return Filter{Table: t, textInput: ti}
}

// Active reports whether the filter input has focus.
func (f Filter) Active() bool {
	return f.textInput.Focused()
}

func (f Filter) Focus() Filter {
	f.textInput.Focus()
	return f
}

// Update feeds a key to the filter input while it has focus.
func (f Filter) Update(msg tea.KeyMsg) (Filter, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "enter", "esc":
		f.textInput.Blur()
	default:
		f.textInput, cmd = f.textInput.Update(msg)
	}
	f.Table = f.Table.WithFilterInput(f.textInput)
	return f, cmd
}

// WithTable swaps the table while keeping the current filter.
func (f Filter) WithTable(t teatable.Model) Filter {
	f.Table = t.WithFilterInput(f.textInput)
	return f
}

func (f Filter) View() string {
	if !f.Active() && f.textInput.Value() == "" {
		return f.Table.View()
	}
	return f.Table.View() + "\n" + f.textInput.View()
}
