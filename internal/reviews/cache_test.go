package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvista/landscaping-backend/pkg/redis"
)

type stubStore struct {
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newStubStore() *stubStore {
	return &stubStore{values: map[string]string{}}
}

func (s *stubStore) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.values[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (s *stubStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value.(string)
	return nil
}

func (s *stubStore) CacheKey(name string) string {
	return "gv:cache:" + name
}

type stubFetcher struct {
	snapshot Snapshot
	err      error
	calls    int
}

func (f *stubFetcher) Fetch(ctx context.Context) (Snapshot, error) {
	f.calls++
	if f.err != nil {
		return Snapshot{}, f.err
	}
	return f.snapshot, nil
}

func liveSnapshot() Snapshot {
	return Snapshot{
		Rating:       4.9,
		TotalReviews: 180,
		TrustSignals: []string{"Licensed and insured"},
		Reviews:      []Review{{ID: "live-1", Customer: "Maria T.", Rating: 5}},
	}
}

func TestCacheFetchesOnceWithinTTL(t *testing.T) {
	store := newStubStore()
	fetcher := &stubFetcher{snapshot: liveSnapshot()}
	cache := NewCache(store, fetcher, time.Hour, nil, nil)

	first := cache.Get(context.Background())
	second := cache.Get(context.Background())

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 4.9, first.Rating)
	assert.Equal(t, first, second)
}

func TestCacheRefetchesAfterExpiry(t *testing.T) {
	store := newStubStore()
	fetcher := &stubFetcher{snapshot: liveSnapshot()}
	cache := NewCache(store, fetcher, time.Hour, nil, nil)

	cache.Get(context.Background())
	// Redis evicts the key when the TTL elapses; simulate that here.
	store.values = map[string]string{}
	cache.Get(context.Background())

	assert.Equal(t, 2, fetcher.calls)
}

func TestCacheServesFallbackOnFetchFailure(t *testing.T) {
	store := newStubStore()
	fetcher := &stubFetcher{err: errors.New("upstream down")}
	cache := NewCache(store, fetcher, time.Hour, nil, nil)

	snap := cache.Get(context.Background())

	assert.Equal(t, FallbackSnapshot(), snap)
	// Fallback data is never written into the cache.
	assert.Zero(t, store.sets)
}

func TestCacheFallsBackToFetchOnStoreError(t *testing.T) {
	store := newStubStore()
	store.getErr = errors.New("redis unreachable")
	fetcher := &stubFetcher{snapshot: liveSnapshot()}
	cache := NewCache(store, fetcher, time.Hour, nil, nil)

	snap := cache.Get(context.Background())

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 4.9, snap.Rating)
}

func TestCacheRefetchesOnCorruptEntry(t *testing.T) {
	store := newStubStore()
	store.values[store.CacheKey("reviews")] = "{not json"
	fetcher := &stubFetcher{snapshot: liveSnapshot()}
	cache := NewCache(store, fetcher, time.Hour, nil, nil)

	snap := cache.Get(context.Background())

	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 4.9, snap.Rating)

	var cached Snapshot
	require.NoError(t, json.Unmarshal([]byte(store.values[store.CacheKey("reviews")]), &cached))
	assert.Equal(t, snap, cached)
}

func TestCacheWithoutStoreAlwaysFetches(t *testing.T) {
	fetcher := &stubFetcher{snapshot: liveSnapshot()}
	cache := NewCache(nil, fetcher, time.Hour, nil, nil)

	cache.Get(context.Background())
	cache.Get(context.Background())

	assert.Equal(t, 2, fetcher.calls)
}

func TestCacheWithoutFetcherServesFallback(t *testing.T) {
	cache := NewCache(newStubStore(), nil, time.Hour, nil, nil)

	snap := cache.Get(context.Background())

	assert.Equal(t, FallbackSnapshot(), snap)
}
