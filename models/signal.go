package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Signal is one scored news item. JSON names follow the CSV export columns,
// which is why Source and Title are capitalised on the wire.
type Signal struct {
	ID             uint    `json:"-" gorm:"primaryKey"`
	Source         string  `json:"Source"`
	Title          string  `json:"Title"`
	Summary        string  `json:"Summary"`
	ImpactScore    float64 `json:"impact_score"`
	ImpactLevel    string  `json:"impact_level"`
	SentimentScore float64 `json:"sentiment_score"`
	TopicCluster   string  `json:"topic_cluster" gorm:"index"`
}

type StatsSummary struct {
	TotalSignals    int     `json:"total_signals"`
	AvgImpact       float64 `json:"avg_impact"`
	AvgSentiment    float64 `json:"avg_sentiment"`
	HighImpactCount int     `json:"high_impact_count"`
	SourcesCount    int     `json:"sources_count"`
}

// ClusterCounts maps topic cluster name to signal count and keeps the
// order the keys arrived in, both when decoding and encoding JSON.
type ClusterCounts = orderedmap.OrderedMap[string, int]

func NewClusterCounts() *ClusterCounts {
	return orderedmap.New[string, int]()
}
