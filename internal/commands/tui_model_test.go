package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akasprzok/legendsnap/internal/legend"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/common/model"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"microseconds", 500 * time.Microsecond, "500µs"},
		{"milliseconds", 500 * time.Millisecond, "500ms"},
		{"seconds", 1500 * time.Millisecond, "1.5s"},
		{"boundary - just under ms", 999 * time.Microsecond, "999µs"},
		{"boundary - just under s", 999 * time.Millisecond, "999ms"},
		{"zero", 0, "0µs"},
		{"exactly 1ms", time.Millisecond, "1ms"},
		{"exactly 1s", time.Second, "1.0s"},
		{"large seconds", 10 * time.Second, "10.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func testMatrix() model.Matrix {
	return model.Matrix{
		{
			Metric: model.Metric{"__name__": "sales"},
			Values: []model.SamplePair{{Timestamp: 1000, Value: 1}, {Timestamp: 2000, Value: 2}},
		},
		{
			Metric: model.Metric{"__name__": "costs"},
			Values: []model.SamplePair{{Timestamp: 1000, Value: 3}, {Timestamp: 2000, Value: 1}},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedModel returns a legend model sized for a terminal with testMatrix loaded.
func loadedModel(t *testing.T) LegendModel {
	t.Helper()
	ctx, _, _ := newTestContext(t)
	m := NewLegendModel(Source{Query: "sales"}, ctx)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = update(t, m, loadResultMsg{matrix: testMatrix(), duration: 5 * time.Millisecond})
	return m
}

func update(t *testing.T, m LegendModel, msg tea.Msg) LegendModel {
	t.Helper()
	next, _ := m.Update(msg)
	lm, ok := next.(LegendModel)
	if !ok {
		t.Fatalf("Update() returned %T, want LegendModel", next)
	}
	return lm
}

func snapshotOf(t *testing.T, m LegendModel) legend.VisibilitySnapshot {
	t.Helper()
	snap, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	return snap
}

func TestNewLegendModel(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewLegendModel(Source{Query: "up"}, ctx)

	t.Run("starts loading", func(t *testing.T) {
		if m.state != StateLoading {
			t.Errorf("state = %v, want %v", m.state, StateLoading)
		}
	})

	t.Run("selectedIndex starts at -1", func(t *testing.T) {
		if m.selectedIndex != -1 {
			t.Errorf("selectedIndex = %d, want -1", m.selectedIndex)
		}
	})

	t.Run("no snapshot before a chart is loaded", func(t *testing.T) {
		if _, err := m.Snapshot(); !errors.Is(err, legend.ErrInvalidInput) {
			t.Errorf("Snapshot() error = %v, want %v", err, legend.ErrInvalidInput)
		}
	})

	t.Run("loading view names the source", func(t *testing.T) {
		if !strings.Contains(m.View(), "Loading") {
			t.Error("View() does not show the loading state")
		}
	})
}

func TestLegendModelLoadResult(t *testing.T) {
	m := loadedModel(t)

	if m.state != StateResults {
		t.Fatalf("state = %v, want %v", m.state, StateResults)
	}
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex = %d, want 0", m.selectedIndex)
	}
	if len(m.legendEntries) != 2 {
		t.Errorf("len(legendEntries) = %d, want 2", len(m.legendEntries))
	}

	snap := snapshotOf(t, m)
	if snap["sales"] != "true" || snap["costs"] != "true" {
		t.Errorf("snapshot = %v, want everything visible", snap)
	}
	if !strings.Contains(m.View(), "2/2 series visible") {
		t.Error("View() does not show the visible count")
	}
}

func TestLegendModelKeys(t *testing.T) {
	t.Run("space toggles the selected series", func(t *testing.T) {
		m := loadedModel(t)
		m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

		snap := snapshotOf(t, m)
		if snap["sales"] != "false" || snap["costs"] != "true" {
			t.Errorf("snapshot = %v, want sales hidden", snap)
		}

		m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		if snap := snapshotOf(t, m); snap["sales"] != "true" {
			t.Errorf("snapshot = %v, want sales visible again", snap)
		}
	})

	t.Run("j moves the selection", func(t *testing.T) {
		m := loadedModel(t)
		m = update(t, m, keyRunes("j"))
		if m.selectedIndex != 1 {
			t.Fatalf("selectedIndex = %d, want 1", m.selectedIndex)
		}

		m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		snap := snapshotOf(t, m)
		if snap["sales"] != "true" || snap["costs"] != "false" {
			t.Errorf("snapshot = %v, want costs hidden", snap)
		}
	})

	t.Run("n hides and a shows everything", func(t *testing.T) {
		m := loadedModel(t)
		m = update(t, m, keyRunes("n"))
		if snap := snapshotOf(t, m); len(snap.Hidden()) != 2 {
			t.Errorf("hidden = %v, want both series", snap.Hidden())
		}

		m = update(t, m, keyRunes("a"))
		if snap := snapshotOf(t, m); len(snap.Visible()) != 2 {
			t.Errorf("visible = %v, want both series", snap.Visible())
		}
	})

	t.Run("enter confirms and quits", func(t *testing.T) {
		m := loadedModel(t)
		next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if !next.(LegendModel).Confirmed() {
			t.Error("Confirmed() = false, want true")
		}
		if cmd == nil {
			t.Error("enter returned no command, want tea.Quit")
		}
	})

	t.Run("q quits without confirming", func(t *testing.T) {
		m := loadedModel(t)
		next, cmd := m.Update(keyRunes("q"))
		if next.(LegendModel).Confirmed() {
			t.Error("Confirmed() = true, want false")
		}
		if cmd == nil {
			t.Error("q returned no command, want tea.Quit")
		}
	})

	t.Run("slash focuses the filter", func(t *testing.T) {
		m := loadedModel(t)
		m = update(t, m, keyRunes("/"))
		if !m.legendTable.Active() {
			t.Fatal("filter is not active after /")
		}

		// Keys go to the filter while it is focused.
		m = update(t, m, keyRunes("n"))
		if snap := snapshotOf(t, m); len(snap.Hidden()) != 0 {
			t.Errorf("hidden = %v, want none", snap.Hidden())
		}

		m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.legendTable.Active() {
			t.Error("filter still active after esc")
		}
	})
}

func TestLegendModelReload(t *testing.T) {
	m := loadedModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m = update(t, m, keyRunes("r"))
	if m.state != StateLoading {
		t.Fatalf("state = %v, want %v", m.state, StateLoading)
	}

	m = update(t, m, loadResultMsg{matrix: testMatrix()})
	snap := snapshotOf(t, m)
	if snap["sales"] != "false" || snap["costs"] != "true" {
		t.Errorf("snapshot after reload = %v, want sales still hidden", snap)
	}
}

func TestLegendModelError(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewLegendModel(Source{Query: "up"}, ctx)
	m = update(t, m, loadResultMsg{err: errors.New("connection refused")})

	if m.state != StateError {
		t.Fatalf("state = %v, want %v", m.state, StateError)
	}
	if m.Err() == nil {
		t.Error("Err() = nil, want error")
	}
	if !strings.Contains(m.View(), "connection refused") {
		t.Error("View() does not show the error")
	}

	m = update(t, m, keyRunes("r"))
	if m.state != StateLoading {
		t.Errorf("state after retry = %v, want %v", m.state, StateLoading)
	}
}

func TestLegendModelEmptyMatrix(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewLegendModel(Source{Query: "up"}, ctx)
	m = update(t, m, loadResultMsg{matrix: model.Matrix{}})

	if m.selectedIndex != -1 {
		t.Errorf("selectedIndex = %d, want -1", m.selectedIndex)
	}
	if snap := snapshotOf(t, m); len(snap) != 0 {
		t.Errorf("snapshot = %v, want empty", snap)
	}
	if !strings.Contains(m.View(), "No Data") {
		t.Error("View() does not show No Data")
	}
}
