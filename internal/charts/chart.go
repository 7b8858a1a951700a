package charts

import (
	"github.com/akasprzok/legendsnap/internal/legend"
	"github.com/prometheus/common/model"
)

// Series is one stream of a chart together with its legend state.
type Series struct {
	name    string
	visible bool
	values  []model.SamplePair
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) Visible() bool {
	return s.visible
}

func (s *Series) Values() []model.SamplePair {
	return s.values
}

// Chart holds series in the order they were returned by the query.
type Chart struct {
	series []*Series
}

// NewChart builds a chart with every stream of matrix visible.
func NewChart(matrix model.Matrix) *Chart {
	c := &Chart{series: make([]*Series, 0, len(matrix))}
	for _, stream := range matrix {
		if stream == nil {
			continue
		}
		c.series = append(c.series, &Series{
			name:    stream.Metric.String(),
			visible: true,
			values:  stream.Values,
		})
	}
	return c
}

// Series implements legend.ChartLike.
func (c *Chart) Series() []legend.SeriesLike {
	out := make([]legend.SeriesLike, len(c.series))
	for i, s := range c.series {
		out[i] = s
	}
	return out
}

func (c *Chart) Len() int {
	return len(c.series)
}

// At returns the series at index i, or nil when i is out of range.
func (c *Chart) At(i int) *Series {
	if i < 0 || i >= len(c.series) {
		return nil
	}
	return c.series[i]
}

// Toggle flips the visibility of series i and returns the new state.
func (c *Chart) Toggle(i int) bool {
	s := c.At(i)
	if s == nil {
		return false
	}
	s.visible = !s.visible
	return s.visible
}

func (c *Chart) SetVisible(i int, visible bool) {
	if s := c.At(i); s != nil {
		s.visible = visible
	}
}

func (c *Chart) SetAll(visible bool) {
	for _, s := range c.series {
		s.visible = visible
	}
}

// Apply restores visibility from snap by series name. Series missing from
// snap keep their current state.
func (c *Chart) Apply(snap legend.VisibilitySnapshot) {
	for _, s := range c.series {
		v, ok := snap[s.name]
		if !ok {
			continue
		}
		s.visible = v == legend.FormatVisible(true)
	}
}

// SetVisibleByName sets the visibility of every series called name and
// returns how many matched.
func (c *Chart) SetVisibleByName(name string, visible bool) int {
	n := 0
	for _, s := range c.series {
		if s.name == name {
			s.visible = visible
			n++
		}
	}
	return n
}
