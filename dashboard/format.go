// Package dashboard turns fetched signal data into view-models for the
// dashboard page: stat cards, tables, cluster cards and chart configs.
package dashboard

import (
	"math"
	"strconv"

	"signal-dashboard/models"
)

// StatCards holds the four headline numbers, already formatted.
type StatCards struct {
	AvgImpact       string
	AvgSentiment    string
	HighImpactCount string
	SourcesCount    string
}

// FormatStats renders averages with two decimals and counts as integers.
// Zero and absent values look the same.
func FormatStats(s models.StatsSummary) StatCards {
	return StatCards{
		AvgImpact:       fixed(s.AvgImpact, 2),
		AvgSentiment:    fixed(s.AvgSentiment, 2),
		HighImpactCount: strconv.Itoa(s.HighImpactCount),
		SourcesCount:    strconv.Itoa(s.SourcesCount),
	}
}

// fixed formats v with the given number of decimals. NaN and zero
// (including negative zero) render as plain zero; a small negative value
// that rounds to zero keeps its sign.
func fixed(v float64, decimals int) string {
	if v == 0 || math.IsNaN(v) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
