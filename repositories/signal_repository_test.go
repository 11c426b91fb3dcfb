package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signal-dashboard/database"
	"signal-dashboard/models"
)

func newTestRepo(t *testing.T) *GormSignalRepository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "signals.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return NewSignalRepository(db, 2)
}

func fixtureSignals() []models.Signal {
	return []models.Signal{
		{Source: "Reuters", Title: "Fed Raises Rates", ImpactScore: 9, ImpactLevel: "High", SentimentScore: -0.5, TopicCluster: "Markets"},
		{Source: "Bloomberg", Title: "Oil slips", ImpactScore: 5, ImpactLevel: "medium", SentimentScore: -0.1, TopicCluster: "Energy"},
		{Source: "Reuters", Title: "Stocks rally", ImpactScore: 7, ImpactLevel: "HIGH", SentimentScore: 0.6, TopicCluster: "Markets"},
		{Source: "AP", Title: "New chip fab", ImpactScore: 3, ImpactLevel: "Low", SentimentScore: 0.3, TopicCluster: "Tech"},
		{Source: "FT", Title: "Gas prices", ImpactScore: 4, ImpactLevel: "Low", SentimentScore: 0, TopicCluster: "Energy"},
	}
}

func TestNewSignalRepository_DefaultBatchSize(t *testing.T) {
	repo := NewSignalRepository(nil, 0)
	assert.Equal(t, 100, repo.BatchSize)
}

func TestReplaceAllAndAll_PreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, fixtureSignals()))

	signals, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, signals, 5)
	for i, want := range fixtureSignals() {
		assert.Equal(t, want.Title, signals[i].Title)
	}

	// A second import replaces rather than appends.
	require.NoError(t, repo.ReplaceAll(ctx, fixtureSignals()[:2]))
	signals, err = repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, signals, 2)
}

func TestReplaceAll_Empty(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, fixtureSignals()))
	require.NoError(t, repo.ReplaceAll(ctx, nil))

	signals, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, signals)
}

func TestStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, fixtureSignals()))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalSignals)
	assert.InDelta(t, 5.6, stats.AvgImpact, 1e-9)
	assert.InDelta(t, 0.06, stats.AvgSentiment, 1e-9)
	assert.Equal(t, 2, stats.HighImpactCount, "impact level match is case-insensitive")
	assert.Equal(t, 4, stats.SourcesCount)
}

func TestStats_Empty(t *testing.T) {
	repo := newTestRepo(t)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.StatsSummary{}, stats)
}

func TestClusters_OrderedByCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.ReplaceAll(ctx, fixtureSignals()))

	counts, err := repo.Clusters(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, counts.Len())

	var keys []string
	var values []int
	for pair := counts.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
		values = append(values, pair.Value)
	}
	assert.Equal(t, []string{"Energy", "Markets", "Tech"}, keys)
	assert.Equal(t, []int{2, 2, 1}, values)
}

func TestAll_ClosedDatabase(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, database.Close(repo.DB))

	_, err := repo.All(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load signals")
}
