package dashboard

import (
	"signal-dashboard/models"
)

// Palette colours topic slices, cycled by slice index.
var Palette = []string{"#38bdf8", "#818cf8", "#c084fc", "#f472b6", "#fb7185", "#22c55e"}

const (
	axisColor    = "#94a3b8"
	gridColor    = "rgba(255, 255, 255, 0.05)"
	scatterFill  = "rgba(56, 189, 248, 0.6)"
	scatterLine  = "rgba(56, 189, 248, 1)"
	defaultPoint = "Signal"
)

// ChartConfig is a Chart.js configuration object. It is rebuilt from state
// on every render and handed to the browser as JSON.
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset carries either plain values (doughnut) or points (scatter) in Data.
type Dataset struct {
	Label            string `json:"label,omitempty"`
	Data             any    `json:"data"`
	BackgroundColor  any    `json:"backgroundColor"`
	BorderColor      string `json:"borderColor,omitempty"`
	BorderWidth      int    `json:"borderWidth"`
	HoverOffset      int    `json:"hoverOffset,omitempty"`
	PointRadius      int    `json:"pointRadius,omitempty"`
	PointHoverRadius int    `json:"pointHoverRadius,omitempty"`
}

type ChartOptions struct {
	Responsive          bool           `json:"responsive"`
	MaintainAspectRatio bool           `json:"maintainAspectRatio"`
	Cutout              string         `json:"cutout,omitempty"`
	Scales              *ScatterScales `json:"scales,omitempty"`
	Plugins             Plugins        `json:"plugins"`
}

type Plugins struct {
	Legend Legend `json:"legend"`
}

type Legend struct {
	Display  bool         `json:"display"`
	Position string       `json:"position,omitempty"`
	Labels   *LegendLabel `json:"labels,omitempty"`
}

type LegendLabel struct {
	Color string `json:"color"`
	Font  Font   `json:"font"`
}

type Font struct {
	Family string `json:"family"`
}

type ScatterScales struct {
	X Axis `json:"x"`
	Y Axis `json:"y"`
}

type Axis struct {
	Title       AxisTitle `json:"title"`
	Grid        Color     `json:"grid"`
	Ticks       Color     `json:"ticks"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	BeginAtZero bool      `json:"beginAtZero,omitempty"`
}

type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
	Color   string `json:"color"`
}

type Color struct {
	Color string `json:"color"`
}

// ScatterPoint is one signal placed by sentiment (x) and impact (y).
type ScatterPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Title   string  `json:"title"`
	Tooltip string  `json:"tooltip"`
}

// SliceColor returns the palette colour for slice i.
func SliceColor(i int) string {
	return Palette[i%len(Palette)]
}

// TopicChart builds the doughnut chart with one slice per cluster.
func TopicChart(counts *models.ClusterCounts) ChartConfig {
	labels := []string{}
	values := []int{}
	colors := []string{}
	if counts != nil {
		i := 0
		for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
			labels = append(labels, pair.Key)
			values = append(values, pair.Value)
			colors = append(colors, SliceColor(i))
			i++
		}
	}

	return ChartConfig{
		Type: "doughnut",
		Data: ChartData{
			Labels: labels,
			Datasets: []Dataset{{
				Data:            values,
				BackgroundColor: colors,
				BorderWidth:     0,
				HoverOffset:     4,
			}},
		},
		Options: ChartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
			Cutout:              "70%",
			Plugins: Plugins{
				Legend: Legend{
					Display:  true,
					Position: "right",
					Labels:   &LegendLabel{Color: axisColor, Font: Font{Family: "Inter"}},
				},
			},
		},
	}
}

// ScatterPoints projects every signal onto (sentiment, impact).
func ScatterPoints(signals []models.Signal) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(signals))
	for _, s := range signals {
		title := orDefault(s.Title, defaultPoint)
		points = append(points, ScatterPoint{
			X:       s.SentimentScore,
			Y:       s.ImpactScore,
			Title:   title,
			Tooltip: tooltip(title),
		})
	}
	return points
}

// tooltip cuts the title to TooltipLimit runes and always ends it with an
// ellipsis.
func tooltip(title string) string {
	r := []rune(title)
	if len(r) > TooltipLimit {
		r = r[:TooltipLimit]
	}
	return string(r) + Ellipsis
}

// ScatterChart builds the sentiment/impact scatter plot. The x axis is
// pinned to [-1, 1]; y starts at zero and scales up to fit.
func ScatterChart(signals []models.Signal) ChartConfig {
	minX, maxX := -1.0, 1.0
	return ChartConfig{
		Type: "scatter",
		Data: ChartData{
			Datasets: []Dataset{{
				Label:            "Signals",
				Data:             ScatterPoints(signals),
				BackgroundColor:  scatterFill,
				BorderColor:      scatterLine,
				BorderWidth:      1,
				PointRadius:      4,
				PointHoverRadius: 6,
			}},
		},
		Options: ChartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
			Scales: &ScatterScales{
				X: Axis{
					Title: AxisTitle{Display: true, Text: "Sentiment Score", Color: axisColor},
					Grid:  Color{Color: gridColor},
					Ticks: Color{Color: axisColor},
					Min:   &minX,
					Max:   &maxX,
				},
				Y: Axis{
					Title:       AxisTitle{Display: true, Text: "Impact Score", Color: axisColor},
					Grid:        Color{Color: gridColor},
					Ticks:       Color{Color: axisColor},
					BeginAtZero: true,
				},
			},
			Plugins: Plugins{Legend: Legend{Display: false}},
		},
	}
}
