package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
)

// LatestBarchart draws the newest sample of each visible series as a
// horizontal bar. It returns an empty string when nothing is visible.
func LatestBarchart(chart *Chart, width int) string {
	barData := make([]barchart.BarData, 0, chart.Len())
	for i, s := range chart.series {
		if !s.visible || len(s.values) == 0 {
			continue
		}
		latest := s.values[len(s.values)-1].Value
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%s)", s.name, latest),
			Values: []barchart.BarValue{
				{Name: s.name, Value: float64(latest), Style: SeriesStyle(i)},
			},
		})
	}
	if len(barData) == 0 {
		return ""
	}

	bc := barchart.New(width, len(barData)*BarRows, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}
