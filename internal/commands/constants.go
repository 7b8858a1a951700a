package commands

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// LegendMaxRows is the legend page size before the terminal height is known.
	LegendMaxRows = 5

	// LegendMinRows is the minimum number of legend rows to show.
	LegendMinRows = 3

	// LegendMaxRowsCap is the maximum legend rows regardless of terminal height.
	LegendMaxRowsCap = 10

	// ChromeHeight is lines consumed by the status bar, help bar and spacing.
	ChromeHeight = 4

	// LegendBorderLines is the legend border, header and margin overhead.
	LegendBorderLines = 6

	// ChartBorderLines is the chart border overhead.
	ChartBorderLines = 2
)
