package dashboard

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"signal-dashboard/models"
)

// ErrNoChartData is returned when there is nothing to plot.
var ErrNoChartData = errors.New("no chart data")

const (
	imageWidth  = 640
	imageHeight = 400
)

// RenderTopicPNG draws the topic doughnut as a PNG image.
func RenderTopicPNG(w io.Writer, counts *models.ClusterCounts) error {
	if counts == nil || counts.Len() == 0 {
		return ErrNoChartData
	}

	values := make([]chart.Value, 0, counts.Len())
	i := 0
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, chart.Value{
			Label: pair.Key,
			Value: float64(pair.Value),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(SliceColor(i)[1:]),
				StrokeColor: drawing.ColorFromHex(SliceColor(i)[1:]),
				StrokeWidth: 0,
			},
		})
		i++
	}

	donut := chart.DonutChart{
		Width:  imageHeight,
		Height: imageHeight,
		Values: values,
	}
	if err := donut.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render topic chart: %w", err)
	}
	return nil
}

// RenderScatterPNG draws the sentiment/impact scatter as a PNG image.
func RenderScatterPNG(w io.Writer, signals []models.Signal) error {
	if len(signals) == 0 {
		return ErrNoChartData
	}

	xs := make([]float64, 0, len(signals))
	ys := make([]float64, 0, len(signals))
	maxY := 0.0
	for _, s := range signals {
		xs = append(xs, s.SentimentScore)
		ys = append(ys, s.ImpactScore)
		maxY = math.Max(maxY, s.ImpactScore)
	}
	if maxY <= 0 {
		maxY = 1
	}

	ch := chart.Chart{
		Width:  imageWidth,
		Height: imageHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 16, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:  "Sentiment Score",
			Range: &chart.ContinuousRange{Min: -1, Max: 1},
		},
		YAxis: chart.YAxis{
			Name:  "Impact Score",
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Signals",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    drawing.ColorFromHex("38bdf8"),
				},
			},
		},
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	return nil
}
