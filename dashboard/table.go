package dashboard

import (
	"html/template"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"signal-dashboard/models"
)

const (
	DashboardRowLimit = 50
	RawRowLimit       = 100

	TitleLimit   = 60
	TooltipLimit = 30
	Ellipsis     = "..."
)

const (
	ImpactLow    = "impact-low"
	ImpactMedium = "impact-medium"
	ImpactHigh   = "impact-high"

	SentimentPositive = "sentiment-pos"
	SentimentNegative = "sentiment-neg"
	SentimentNeutral  = "sentiment-neu"
)

// Display fallbacks for empty fields.
const (
	NoTitle       = "No Title"
	UnknownSource = "Unknown"
	Uncategorized = "Uncategorized"
	RawNoCluster  = "-"
)

// SignalRow is one line of the dashboard signal table.
type SignalRow struct {
	ImpactClass string
	ImpactScore string
	Source      string
	Title       string
	FullTitle   string
	Sentiment   SentimentBar
	Cluster     string
}

// RawRow is one line of the raw data table.
type RawRow struct {
	Source         string
	Title          string
	ImpactScore    string
	SentimentScore string
	Cluster        string
}

// SentimentBar positions a fill inside a centred track. Width and Left are
// percentages of the track.
type SentimentBar struct {
	Width float64
	Left  float64
	Class string
}

// NewSentimentBar sizes the bar by |score|, capped at 100%. Negative scores
// grow left of the centre line, everything else grows right.
func NewSentimentBar(score float64) SentimentBar {
	if math.IsNaN(score) {
		score = 0
	}
	width := math.Min(100, math.Abs(score)*100)

	bar := SentimentBar{Width: width, Left: 50, Class: SentimentNeutral}
	if score < 0 {
		bar.Left = 50 - width/2
	}
	switch {
	case score > 0.1:
		bar.Class = SentimentPositive
	case score < -0.1:
		bar.Class = SentimentNegative
	}
	return bar
}

// Style returns the inline CSS for the fill element.
func (b SentimentBar) Style() template.CSS {
	return template.CSS("width: " + percent(b.Width) + "; left: " + percent(b.Left) + ";") //nolint:gosec // numeric values only
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// ImpactClass picks the badge class for an impact level, case-insensitively.
func ImpactClass(level string) string {
	switch strings.ToLower(level) {
	case "high":
		return ImpactHigh
	case "medium":
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// Truncate cuts s to limit characters and appends an ellipsis when
// anything was cut.
func Truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + Ellipsis
}

// SignalRows builds the dashboard table, at most DashboardRowLimit rows.
func SignalRows(signals []models.Signal) []SignalRow {
	signals = capped(signals, DashboardRowLimit)
	rows := make([]SignalRow, 0, len(signals))
	for _, s := range signals {
		title := NoTitle
		if s.Title != "" {
			title = Truncate(s.Title, TitleLimit)
		}
		rows = append(rows, SignalRow{
			ImpactClass: ImpactClass(s.ImpactLevel),
			ImpactScore: fixed(s.ImpactScore, 1),
			Source:      orDefault(s.Source, UnknownSource),
			Title:       title,
			FullTitle:   s.Title,
			Sentiment:   NewSentimentBar(s.SentimentScore),
			Cluster:     orDefault(s.TopicCluster, Uncategorized),
		})
	}
	return rows
}

// RawRows builds the raw data table, at most RawRowLimit rows.
func RawRows(signals []models.Signal) []RawRow {
	signals = capped(signals, RawRowLimit)
	rows := make([]RawRow, 0, len(signals))
	for _, s := range signals {
		rows = append(rows, RawRow{
			Source:         orDefault(s.Source, UnknownSource),
			Title:          orDefault(s.Title, NoTitle),
			ImpactScore:    fixed(s.ImpactScore, 2),
			SentimentScore: fixed(s.SentimentScore, 2),
			Cluster:        orDefault(s.TopicCluster, RawNoCluster),
		})
	}
	return rows
}

func capped(signals []models.Signal, limit int) []models.Signal {
	if len(signals) > limit {
		return signals[:limit]
	}
	return signals
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
