package analytics

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	ChartKey = "analytics/user_growth.png"

	chartWidth      = 1024
	chartHeight     = 512
	titleFontSize   = 12.0
	xAxisFontSize   = 9.0
	yAxisFontSize   = 10.0
	xAxisRotation   = 45.0
	gridLineWidth   = 1.0
	seriesLineWidth = 2.0
	seriesDotWidth  = 3.0
	padding         = 30
)

// RenderChart draws the daily signups oldest first as a PNG line chart.
func RenderChart(stats *UserStats) ([]byte, error) {
	n := len(stats.DailySignups)
	if n == 0 {
		return nil, fmt.Errorf("analytics: nothing to draw")
	}

	xValues := make([]float64, n)
	yValues := make([]float64, n)
	ticks := make([]chart.Tick, n)
	gridLines := make([]chart.GridLine, n)
	peak := 1.0

	for i := 0; i < n; i++ {
		d := stats.DailySignups[n-1-i]
		xValues[i] = float64(i)
		yValues[i] = float64(d.Signups)
		peak = math.Max(peak, yValues[i])
		ticks[i] = chart.Tick{Value: float64(i), Label: time.Unix(d.DayStart, 0).UTC().Format("02 Jan")}
		gridLines[i] = chart.GridLine{Value: float64(i)}
	}

	graph := &chart.Chart{
		Title:      "User Growth",
		TitleStyle: chart.Style{FontSize: titleFontSize},
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: padding, Left: padding, Right: padding, Bottom: padding},
		},
		XAxis: chart.XAxis{
			Style: chart.Style{
				FontSize:            xAxisFontSize,
				TextRotationDegrees: xAxisRotation,
			},
			// a single day still needs a non-empty range
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			GridMajorStyle: chart.Style{
				StrokeColor: chart.ColorAlternateGray,
				StrokeWidth: gridLineWidth,
			},
			GridLines:    gridLines,
			Ticks:        ticks,
			TickPosition: chart.TickPositionUnderTick,
		},
		YAxis: chart.YAxis{
			Name:  "Signups",
			Style: chart.Style{FontSize: yAxisFontSize},
			Range: &chart.ContinuousRange{Min: 0, Max: math.Ceil(peak * 1.1)},
			GridMajorStyle: chart.Style{
				StrokeColor: chart.ColorAlternateGray,
				StrokeWidth: gridLineWidth,
			},
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Daily signups",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: seriesLineWidth,
					DotColor:    chart.ColorBlue,
					DotWidth:    seriesDotWidth,
				},
			},
		},
	}

	buf := new(bytes.Buffer)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("analytics: render chart: %w", err)
	}
	return buf.Bytes(), nil
}
