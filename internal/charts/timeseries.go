package charts

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/common/model"
)

// LegendEntry describes one row of the legend.
type LegendEntry struct {
	Name       string
	ColorIndex int
	Visible    bool
}

// Legend returns one entry per series in chart order.
func Legend(chart *Chart) []LegendEntry {
	entries := make([]LegendEntry, 0, chart.Len())
	for i, s := range chart.series {
		entries = append(entries, LegendEntry{
			Name:       s.name,
			ColorIndex: i,
			Visible:    s.visible,
		})
	}
	return entries
}

// ChartHeight derives the chart height from its width.
func ChartHeight(width int) int {
	return max(width/ChartHeightRatio, MinChartHeight)
}

// Render draws the visible series of chart as a braille line chart. When
// selectedIndex points at a visible series, the other series are dimmed.
func Render(chart *Chart, width, selectedIndex int) (string, []LegendEntry) {
	entries := Legend(chart)

	selected := chart.At(selectedIndex)
	if selected != nil && !selected.visible {
		selected = nil
	}

	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, s := range chart.series {
		if !s.visible {
			continue
		}
		for _, sample := range s.values {
			if !finite(sample.Value) {
				continue
			}
			minY = math.Min(minY, float64(sample.Value))
			maxY = math.Max(maxY, float64(sample.Value))
		}
	}
	if minY > maxY {
		minY, maxY = 0, 1
	}
	if minY == maxY {
		maxY = minY + 1
	}

	lc := timeserieslinechart.New(width, ChartHeight(width))
	lc.AxisStyle = lipgloss.NewStyle().Foreground(AxisColor)
	lc.LabelStyle = lipgloss.NewStyle().Foreground(LabelColor)
	lc.XLabelFormatter = timeserieslinechart.HourTimeLabelFormatter()
	lc.SetYRange(minY, maxY)     // expected Y values must be set before the view range
	lc.SetViewYRange(minY, maxY)
	lc.SetLineStyle(runes.ThinLineStyle)

	for i, s := range chart.series {
		if !s.visible {
			continue
		}
		style := SeriesStyle(i)
		if selected != nil && s != selected {
			style = lipgloss.NewStyle().Foreground(DimColor)
		}
		lc.SetDataSetStyle(s.name, style)
		for _, sample := range s.values {
			if !finite(sample.Value) {
				continue
			}
			lc.PushDataSet(s.name, timeserieslinechart.TimePoint{
				Time:  sample.Timestamp.Time(),
				Value: float64(sample.Value),
			})
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), entries
}

func finite(v model.SampleValue) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
