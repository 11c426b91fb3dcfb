package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signal-dashboard/models"
)

func clusterFixture(n int) *models.ClusterCounts {
	counts := models.NewClusterCounts()
	for i := 0; i < n; i++ {
		counts.Set(fmt.Sprintf("cluster-%d", i), n-i)
	}
	return counts
}

func TestTopicChart_OneSlicePerKey(t *testing.T) {
	for _, n := range []int{0, 1, 6, 9} {
		cfg := TopicChart(clusterFixture(n))

		require.Len(t, cfg.Data.Datasets, 1)
		assert.Len(t, cfg.Data.Labels, n)
		assert.Len(t, cfg.Data.Datasets[0].Data, n)
		assert.Len(t, cfg.Data.Datasets[0].BackgroundColor, n)
		assert.Len(t, ClusterCards(clusterFixture(n)), n)
	}
}

func TestTopicChart_PaletteCycles(t *testing.T) {
	cfg := TopicChart(clusterFixture(8))
	colors := cfg.Data.Datasets[0].BackgroundColor.([]string)

	assert.Equal(t, "#38bdf8", colors[0])
	assert.Equal(t, "#22c55e", colors[5])
	assert.Equal(t, colors[0], colors[6])
	assert.Equal(t, colors[1], colors[7])
}

func TestTopicChart_JSON(t *testing.T) {
	counts := models.NewClusterCounts()
	counts.Set("Markets", 4)
	counts.Set("Energy", 2)

	b, err := json.Marshal(TopicChart(counts))
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, `"type":"doughnut"`)
	assert.Contains(t, out, `"labels":["Markets","Energy"]`)
	assert.Contains(t, out, `"data":[4,2]`)
	assert.Contains(t, out, `"cutout":"70%"`)
	assert.Contains(t, out, `"position":"right"`)
	assert.NotContains(t, out, `"scales"`)
}

func TestTopicChart_Nil(t *testing.T) {
	cfg := TopicChart(nil)
	assert.Empty(t, cfg.Data.Labels)

	b, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"data":[]`)
}

func TestScatterPoints(t *testing.T) {
	signals := []models.Signal{
		{Title: strings.Repeat("t", 31), SentimentScore: -0.25, ImpactScore: 7},
		{ImpactScore: 2},
	}

	points := ScatterPoints(signals)
	require.Len(t, points, 2)

	assert.Equal(t, -0.25, points[0].X)
	assert.Equal(t, 7.0, points[0].Y)
	assert.Equal(t, strings.Repeat("t", 30)+"...", points[0].Tooltip)
	assert.Equal(t, "Signal", points[1].Title)
	assert.Equal(t, "Signal...", points[1].Tooltip)
}

func TestScatterPoints_ShortTitleStillGetsEllipsis(t *testing.T) {
	points := ScatterPoints([]models.Signal{{Title: "Fed Raises Rates"}})
	require.Len(t, points, 1)

	assert.Equal(t, "Fed Raises Rates", points[0].Title)
	assert.Equal(t, "Fed Raises Rates...", points[0].Tooltip)
}

func TestScatterChart_Axes(t *testing.T) {
	cfg := ScatterChart(nil)

	require.NotNil(t, cfg.Options.Scales)
	require.NotNil(t, cfg.Options.Scales.X.Min)
	require.NotNil(t, cfg.Options.Scales.X.Max)
	assert.Equal(t, -1.0, *cfg.Options.Scales.X.Min)
	assert.Equal(t, 1.0, *cfg.Options.Scales.X.Max)
	assert.True(t, cfg.Options.Scales.Y.BeginAtZero)
	assert.Nil(t, cfg.Options.Scales.Y.Max, "y upper bound auto-scales")
	assert.False(t, cfg.Options.Plugins.Legend.Display)
}

func TestClusterCards(t *testing.T) {
	counts := models.NewClusterCounts()
	counts.Set("Tech", 12)
	counts.Set("AI", 1)

	cards := ClusterCards(counts)
	require.Len(t, cards, 2)
	assert.Equal(t, ClusterCard{Name: "Tech", Count: 12, Label: "12 Signals"}, cards[0])
	assert.Equal(t, ClusterCard{Name: "AI", Count: 1, Label: "1 Signals"}, cards[1])

	assert.Nil(t, ClusterCards(nil))
}
