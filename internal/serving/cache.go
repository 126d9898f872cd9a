package serving

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"ocrflow/internal/model"
	"ocrflow/pkg/domain"
)

// loadFunc materializes a predictor for one registered model version.
type loadFunc func(ctx context.Context, name domain.ModelName, version int) (*model.Predictor, error)

type cacheKey struct {
	name    domain.ModelName
	version int
}

type cacheEntry struct {
	key       cacheKey
	predictor *model.Predictor
}

// predictorCache is an LRU cache of loaded predictors keyed by model name and
// version. Version artifacts are immutable, so entries never go stale on their
// own; they leave the cache through capacity eviction or explicit invalidation
// when an endpoint is re-provisioned or deleted.
type predictorCache struct {
	load loadFunc

	mu sync.Mutex
	// capacity is the maximum number of resident predictors.
	capacity int
	entries  map[cacheKey]*list.Element
	// order keeps the most recently used entry at the front.
	order *list.List
}

func newPredictorCache(capacity int, load loadFunc) *predictorCache {
	if capacity < 1 {
		capacity = 1
	}

	return &predictorCache{
		load:     load,
		capacity: capacity,
		entries:  make(map[cacheKey]*list.Element),
		order:    list.New(),
	}
}

// GetOrLoad returns the cached predictor for the version, loading it on a
// miss. The cache lock is held across the load so concurrent requests for the
// same version do not load it twice.
func (c *predictorCache) GetOrLoad(ctx context.Context, name domain.ModelName, version int) (*model.Predictor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{name: name, version: version}
	if element, ok := c.entries[key]; ok {
		c.order.MoveToFront(element)

		return element.Value.(*cacheEntry).predictor, nil //nolint: forcetypeassert
	}

	predictor, err := c.load(ctx, name, version)
	if err != nil {
		return nil, fmt.Errorf("could not load model version: %w", err)
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, predictor: predictor})
	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key) //nolint: forcetypeassert
	}

	return predictor, nil
}

// Invalidate drops the cached predictor for the version if present.
func (c *predictorCache) Invalidate(name domain.ModelName, version int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey{name: name, version: version}
	if element, ok := c.entries[key]; ok {
		c.order.Remove(element)
		delete(c.entries, key)
	}
}

// Len returns the number of resident predictors.
func (c *predictorCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
