// Package legend reads the visibility state of the series shown in a chart
// legend.
package legend

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// ErrInvalidInput is returned when the value handed in is not a chart.
var ErrInvalidInput = errors.New("invalid input")

// SeriesLike is a single trace in a chart legend.
type SeriesLike interface {
	Name() string
	Visible() bool
}

// ChartLike exposes the series collection of a chart.
type ChartLike interface {
	Series() []SeriesLike
}

// VisibilitySnapshot maps a series name to "true" or "false".
type VisibilitySnapshot map[string]string

// Snapshot records the visibility of every series in chart.
// Series sharing a name collapse to the one seen last.
func Snapshot(chart ChartLike) (VisibilitySnapshot, error) {
	if isNil(chart) {
		return nil, fmt.Errorf("chart has no series collection: %w", ErrInvalidInput)
	}

	series := chart.Series()
	snap := make(VisibilitySnapshot, len(series))
	for i, s := range series {
		if isNil(s) {
			return nil, fmt.Errorf("series %d is nil: %w", i, ErrInvalidInput)
		}
		snap[s.Name()] = FormatVisible(s.Visible())
	}
	return snap, nil
}

// isNil also reports a nil pointer held in a non-nil interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// FormatVisible returns the canonical string form of a visibility flag.
func FormatVisible(visible bool) string {
	return strconv.FormatBool(visible)
}

// Visible returns the sorted names of visible series.
func (s VisibilitySnapshot) Visible() []string {
	return s.namesWith(FormatVisible(true))
}

// Hidden returns the sorted names of hidden series.
func (s VisibilitySnapshot) Hidden() []string {
	return s.namesWith(FormatVisible(false))
}

func (s VisibilitySnapshot) namesWith(value string) []string {
	names := make([]string, 0, len(s))
	for name, v := range s {
		if v == value {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
