// Package ingest reads signal exports (CSV) into models.Signal values.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"signal-dashboard/models"
)

// Defaults applied to missing columns and empty cells.
const (
	DefaultSource       = "Unknown"
	DefaultTitle        = "No Title"
	DefaultSummary      = "No Summary"
	DefaultImpactLevel  = "Low"
	DefaultTopicCluster = "Uncategorized"
)

// Cells with these values count as missing.
var missingMarkers = map[string]bool{
	"":     true,
	"nan":  true,
	"na":   true,
	"n/a":  true,
	"null": true,
	"none": true,
}

// LoadFile reads the CSV export at path.
func LoadFile(path string) ([]models.Signal, error) {
	f, err := os.Open(path) //nolint:gosec // operator-provided path
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	signals, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return signals, nil
}

// ReadCSV parses a headered CSV. Column names are matched after trimming
// whitespace; unknown columns are ignored.
func ReadCSV(r io.Reader) ([]models.Signal, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	var signals []models.Signal
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := rowReader{columns: columns, record: record}
		signals = append(signals, models.Signal{
			Source:         row.text("Source", DefaultSource),
			Title:          row.text("Title", DefaultTitle),
			Summary:        row.text("Summary", DefaultSummary),
			ImpactScore:    row.number("impact_score"),
			ImpactLevel:    row.text("impact_level", DefaultImpactLevel),
			SentimentScore: row.number("sentiment_score"),
			TopicCluster:   row.text("topic_cluster", DefaultTopicCluster),
		})
	}
	return signals, nil
}

type rowReader struct {
	columns map[string]int
	record  []string
}

func (r rowReader) cell(name string) (string, bool) {
	i, ok := r.columns[name]
	if !ok || i >= len(r.record) {
		return "", false
	}
	v := r.record[i]
	if missingMarkers[strings.ToLower(strings.TrimSpace(v))] {
		return "", false
	}
	return v, true
}

func (r rowReader) text(name, fallback string) string {
	if v, ok := r.cell(name); ok {
		return v
	}
	return fallback
}

func (r rowReader) number(name string) float64 {
	v, ok := r.cell(name)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}
