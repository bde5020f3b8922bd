package dataset

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/gpulens/gpulens/pkg/metric"
)

// Store serves benchmark rows through an in-memory cache so repeated chart
// recomputations do not re-read the workbook. Staleness of overlapping
// recomputations is not the store's concern; each view tracks its own
// Generation.
type Store struct {
	loader Loader
	cache  *ristretto.Cache
	ttl    time.Duration
}

func NewStore(loader Loader, size int64, ttlSec int64) *Store {
	cache, _ := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * size,
		MaxCost:     size,
		BufferItems: 64,
	})
	return &Store{
		loader: loader,
		cache:  cache,
		ttl:    time.Duration(ttlSec) * time.Second,
	}
}

// Rows returns all normalized rows of the dataset at path, from cache when
// possible.
func (s *Store) Rows(ctx context.Context, path string) ([]Record, error) {
	if cached, found := s.cache.Get(path); found {
		return cached.([]Record), nil
	}

	startTime := time.Now()
	rows, err := s.loader.Load(ctx, path)
	metricTags := metric.BuildTag(metric.NewTag(metric.TagDataset, path))
	metric.Incr(metric.DatasetLoadCount, metricTags)
	metric.Timing(metric.DatasetLoadLatency, time.Since(startTime), metricTags)
	if err != nil {
		return nil, err
	}

	// Schedule eviction after the TTL so sheet replacements get picked up
	time.AfterFunc(s.ttl, func() {
		s.cache.Del(path)
	})
	s.cache.Set(path, rows, 1)
	return rows, nil
}
