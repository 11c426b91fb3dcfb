package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"signal-dashboard/models"
)

// Fetcher loads the three dashboard resources. *client.Client implements it.
type Fetcher interface {
	FetchStats(ctx context.Context) (models.StatsSummary, error)
	FetchClusters(ctx context.Context) (*models.ClusterCounts, error)
	FetchData(ctx context.Context) ([]models.Signal, error)
}

// Snapshot is a point-in-time copy of the store's data.
type Snapshot struct {
	Stats    models.StatsSummary
	Clusters *models.ClusterCounts
	Signals  []models.Signal
}

// resource tracks fetch tickets for one resource. issued grows with every
// fetch; applied is the ticket of the response currently held.
type resource struct {
	issued  uint64
	applied uint64
}

// Store holds the last successfully fetched dashboard data. Each resource is
// replaced wholesale, and a response is dropped when a newer fetch of the
// same resource has already been applied.
type Store struct {
	fetcher Fetcher

	mu       sync.RWMutex
	stats    models.StatsSummary
	clusters *models.ClusterCounts
	signals  []models.Signal

	statsRes    resource
	clustersRes resource
	signalsRes  resource
}

func NewStore(fetcher Fetcher) *Store {
	return &Store{fetcher: fetcher}
}

// Refresh fetches stats, clusters and signals concurrently. Failures are
// logged and leave that resource's previous data in place; they never stop
// the other fetches.
func (s *Store) Refresh(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		s.RefreshStats(ctx)
		return nil
	})
	g.Go(func() error {
		s.RefreshClusters(ctx)
		return nil
	})
	g.Go(func() error {
		s.RefreshData(ctx)
		return nil
	})
	_ = g.Wait()
}

func (s *Store) RefreshStats(ctx context.Context) {
	ticket := s.issue(&s.statsRes)
	stats, err := s.fetcher.FetchStats(ctx)
	if err != nil {
		slog.Error("error fetching stats", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accept(&s.statsRes, ticket, "stats") {
		s.stats = stats
	}
}

func (s *Store) RefreshClusters(ctx context.Context) {
	ticket := s.issue(&s.clustersRes)
	clusters, err := s.fetcher.FetchClusters(ctx)
	if err != nil {
		slog.Error("error fetching clusters", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accept(&s.clustersRes, ticket, "clusters") {
		s.clusters = clusters
	}
}

func (s *Store) RefreshData(ctx context.Context) {
	ticket := s.issue(&s.signalsRes)
	signals, err := s.fetcher.FetchData(ctx)
	if err != nil {
		slog.Error("error fetching data", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.accept(&s.signalsRes, ticket, "data") {
		s.signals = signals
	}
}

func (s *Store) issue(r *resource) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.issued++
	return r.issued
}

// accept must be called with mu held.
func (s *Store) accept(r *resource, ticket uint64, name string) bool {
	if ticket <= r.applied {
		slog.Debug("dropping stale response", "resource", name, "ticket", ticket, "applied", r.applied)
		return false
	}
	r.applied = ticket
	return true
}

// Snapshot returns the current data. The signal slice and cluster map are
// shared with the store but never mutated after being applied.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Stats:    s.stats,
		Clusters: s.clusters,
		Signals:  s.signals,
	}
}
