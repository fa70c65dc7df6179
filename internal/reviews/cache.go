package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/greenvista/landscaping-backend/pkg/logger"
	"github.com/greenvista/landscaping-backend/pkg/metrics"
	"github.com/greenvista/landscaping-backend/pkg/redis"
)

const cacheName = "reviews"

// Store is the slice of the Redis client the cache needs.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(name string) string
}

// Cache serves review snapshots with a TTL-bound Redis cache in front of the
// upstream fetch. Every failure path degrades to the fallback snapshot; the
// cache never returns an error to the page.
type Cache struct {
	store   Store
	fetcher Fetcher
	ttl     time.Duration
	logg    *logger.Logger
	qm      *metrics.QuoteMetrics
}

// NewCache wires the cache. A nil store disables caching (every call
// fetches); a nil fetcher makes the fallback the only data source.
func NewCache(store Store, fetcher Fetcher, ttl time.Duration, logg *logger.Logger, qm *metrics.QuoteMetrics) *Cache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{store: store, fetcher: fetcher, ttl: ttl, logg: logg, qm: qm}
}

// Get returns the current snapshot: cached if fresh, freshly fetched
// otherwise, fallback when both fail. Expiry is enforced by the Redis TTL, so
// a present key is by definition fresh.
func (c *Cache) Get(ctx context.Context) Snapshot {
	if c.store != nil {
		raw, err := c.store.Get(ctx, c.store.CacheKey(cacheName))
		if err == nil {
			var snap Snapshot
			if jsonErr := json.Unmarshal([]byte(raw), &snap); jsonErr == nil {
				c.qm.IncReviewCache("hit")
				return snap
			}
			// Corrupt entry: fall through to refetch.
			if c.logg != nil {
				c.logg.Warn(ctx, "cached review snapshot is corrupt, refetching")
			}
		} else if !errors.Is(err, redis.Nil) && c.logg != nil {
			c.logg.Error(ctx, "reading review cache", err)
		}
	}

	if c.fetcher == nil {
		c.qm.IncReviewCache("fallback")
		return FallbackSnapshot()
	}

	snap, err := c.fetcher.Fetch(ctx)
	if err != nil {
		if c.logg != nil {
			c.logg.Error(ctx, "fetching reviews, serving fallback", err)
		}
		c.qm.IncReviewCache("fallback")
		return FallbackSnapshot()
	}

	c.qm.IncReviewCache("miss")
	if c.store != nil {
		encoded, err := json.Marshal(snap)
		if err == nil {
			if err := c.store.Set(ctx, c.store.CacheKey(cacheName), string(encoded), c.ttl); err != nil && c.logg != nil {
				c.logg.Error(ctx, "writing review cache", err)
			}
		}
	}
	return snap
}
