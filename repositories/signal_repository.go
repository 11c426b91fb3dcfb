package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"signal-dashboard/models"
)

type SignalRepository interface {
	All(ctx context.Context) ([]models.Signal, error)
	Stats(ctx context.Context) (models.StatsSummary, error)
	Clusters(ctx context.Context) (*models.ClusterCounts, error)
	ReplaceAll(ctx context.Context, signals []models.Signal) error
}

type GormSignalRepository struct {
	DB        *gorm.DB
	BatchSize int
}

func NewSignalRepository(db *gorm.DB, batchSize int) *GormSignalRepository {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &GormSignalRepository{
		DB:        db,
		BatchSize: batchSize,
	}
}

// All returns every stored signal in import order.
func (repo *GormSignalRepository) All(ctx context.Context) ([]models.Signal, error) {
	var signals []models.Signal
	if err := repo.DB.WithContext(ctx).Order("id").Find(&signals).Error; err != nil {
		return nil, fmt.Errorf("failed to load signals: %w", err)
	}
	return signals, nil
}

func (repo *GormSignalRepository) Stats(ctx context.Context) (models.StatsSummary, error) {
	db := repo.DB.WithContext(ctx)
	var stats models.StatsSummary

	var total int64
	if err := db.Model(&models.Signal{}).Count(&total).Error; err != nil {
		return stats, fmt.Errorf("failed to count signals: %w", err)
	}
	stats.TotalSignals = int(total)
	if total == 0 {
		return stats, nil
	}

	var averages struct {
		AvgImpact    float64
		AvgSentiment float64
	}
	err := db.Model(&models.Signal{}).
		Select("COALESCE(AVG(impact_score), 0) AS avg_impact, COALESCE(AVG(sentiment_score), 0) AS avg_sentiment").
		Scan(&averages).Error
	if err != nil {
		return stats, fmt.Errorf("failed to average scores: %w", err)
	}
	stats.AvgImpact = averages.AvgImpact
	stats.AvgSentiment = averages.AvgSentiment

	var highImpact int64
	if err := db.Model(&models.Signal{}).Where("LOWER(impact_level) = ?", "high").Count(&highImpact).Error; err != nil {
		return stats, fmt.Errorf("failed to count high impact signals: %w", err)
	}
	stats.HighImpactCount = int(highImpact)

	var sources int64
	if err := db.Model(&models.Signal{}).Distinct("source").Count(&sources).Error; err != nil {
		return stats, fmt.Errorf("failed to count sources: %w", err)
	}
	stats.SourcesCount = int(sources)

	return stats, nil
}

// Clusters counts signals per topic cluster, largest first. Ties are ordered
// by name so the result is stable.
func (repo *GormSignalRepository) Clusters(ctx context.Context) (*models.ClusterCounts, error) {
	var rows []struct {
		TopicCluster string
		Total        int
	}
	err := repo.DB.WithContext(ctx).
		Model(&models.Signal{}).
		Select("topic_cluster, COUNT(*) AS total").
		Group("topic_cluster").
		Order("total DESC, topic_cluster").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to group clusters: %w", err)
	}

	counts := models.NewClusterCounts()
	for _, row := range rows {
		counts.Set(row.TopicCluster, row.Total)
	}
	return counts, nil
}

// ReplaceAll swaps the stored signals for the given set in one transaction.
func (repo *GormSignalRepository) ReplaceAll(ctx context.Context, signals []models.Signal) error {
	return repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM signals").Error; err != nil {
			return fmt.Errorf("failed to clear signals: %w", err)
		}
		if len(signals) == 0 {
			return nil
		}

		rows := make([]models.Signal, len(signals))
		copy(rows, signals)
		for i := range rows {
			rows[i].ID = 0
		}
		if err := tx.CreateInBatches(rows, repo.BatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert signals: %w", err)
		}
		return nil
	})
}
