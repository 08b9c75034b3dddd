package battlog

import (
	"context"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"
	"liyu1981.xyz/battlogger/pkg/common"
	"liyu1981.xyz/battlogger/pkg/metrics"
)

// refCache is a whole-table read-through cache for reference data.
//
// Every write bumps generation. The snapshot is only served while loadedAt
// equals generation; otherwise the next reader reloads the table. A load that
// started before an invalidation is handed to its caller but never installed,
// so a stale table can not outlive the write that made it stale.
type refCache[T any] struct {
	entity  string
	metrics *metrics.Metrics
	idOf    func(T) string
	load    func(ctx context.Context) ([]T, error)

	mu         sync.RWMutex
	generation uint64
	loadedAt   uint64
	byID       map[string]T
	ordered    []T
}

func newRefCache[T any](
	entity string,
	m *metrics.Metrics,
	idOf func(T) string,
	load func(ctx context.Context) ([]T, error),
) *refCache[T] {
	return &refCache[T]{
		entity:     entity,
		metrics:    m,
		idOf:       idOf,
		load:       load,
		generation: 1,
	}
}

// snapshot returns the current table. The returned values are shared and must
// not be modified.
func (c *refCache[T]) snapshot(ctx context.Context) (map[string]T, []T, error) {
	c.mu.RLock()
	if c.loadedAt == c.generation {
		byID, ordered := c.byID, c.ordered
		c.mu.RUnlock()
		c.metrics.CacheLookup(c.entity, metrics.CacheHit)
		return byID, ordered, nil
	}
	generation := c.generation
	c.mu.RUnlock()

	c.metrics.CacheLookup(c.entity, metrics.CacheMiss)

	rows, err := c.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	byID := make(map[string]T, len(rows))
	for _, row := range rows {
		byID[c.idOf(row)] = row
	}

	c.mu.Lock()
	if c.generation == generation {
		c.byID, c.ordered, c.loadedAt = byID, rows, generation
	}
	c.mu.Unlock()

	coreLogger(common.LoggerCategoryReferenceCache).Debug("Reloaded reference cache",
		zap.String("entity", c.entity), zap.Int("rows", len(rows)), zap.Uint64("generation", generation))

	return byID, rows, nil
}

func (c *refCache[T]) get(ctx context.Context, id string) (T, bool, error) {
	byID, _, err := c.snapshot(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	item, ok := byID[id]
	return item, ok, nil
}

func (c *refCache[T]) all(ctx context.Context) ([]T, error) {
	_, ordered, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(ordered), nil
}

func (c *refCache[T]) asMap(ctx context.Context) (map[string]T, error) {
	byID, _, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return maps.Clone(byID), nil
}

func (c *refCache[T]) invalidate() {
	c.mu.Lock()
	c.generation++
	c.byID, c.ordered = nil, nil
	c.mu.Unlock()

	c.metrics.CacheInvalidated(c.entity)
}
