package charts

const (
	// ChartHeightRatio sets the line chart height to width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for the line chart height.
	MinChartHeight = 8

	// BarRows is the number of rows each bar takes in LatestBarchart.
	BarRows = 2
)
