package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

// TimelinePageKey is the one and only key the page cache uses. The
// cache memoizes the whole home-timeline response prefix, so the
// stored body corresponds to whichever page parameter produced it and
// stays until the TTL runs out or someone calls Clear.
const TimelinePageKey = "timeline_page"

// PageCache memoizes the rendered home-timeline body. Writers do not
// invalidate it; staleness is bounded by the TTL alone.
type PageCache struct {
	client *ristretto.Cache
	pages  *cache.Cache[[]byte]
	ttl    time.Duration
}

func NewPageCache(client *ristretto.Cache, ttl time.Duration) *PageCache {
	return &PageCache{
		client: client,
		pages:  cache.New[[]byte](ristretto_store.NewRistretto(client)),
		ttl:    ttl,
	}
}

func (v *PageCache) Get(ctx context.Context) ([]byte, bool) {
	body, err := v.pages.Get(ctx, TimelinePageKey)
	if err != nil {
		return nil, false
	}
	return body, true
}

func (v *PageCache) Set(ctx context.Context, body []byte) error {
	return v.pages.Set(ctx, TimelinePageKey, body,
		store.WithExpiration(v.ttl),
		store.WithCost(int64(len(body))),
	)
}

func (v *PageCache) Clear(ctx context.Context) error {
	return v.pages.Delete(ctx, TimelinePageKey)
}

// Wait flushes ristretto's buffered writes so a following Get can see
// them. Readers never need this; tests do.
func (v *PageCache) Wait() {
	v.client.Wait()
}
