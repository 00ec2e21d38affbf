package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	types "github.com/yungbote/brewery-backend/internal/domain"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

func TestProductCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := NewProductCache(store, time.Minute, logger.Nop())

	price := decimal.RequireFromString("5.99")
	p := &types.Product{ID: uuid.New(), Version: 3, Name: "IPA", Style: "IPA", Code: "UPC-1", Price: &price}

	if _, ok := c.Get(ctx, p.ID); ok {
		t.Fatalf("expected miss before Put")
	}
	c.Put(ctx, p)
	got, ok := c.Get(ctx, p.ID)
	if !ok {
		t.Fatalf("expected hit after Put")
	}
	if got.Name != "IPA" || got.Version != 3 || got.Price == nil || !got.Price.Equal(price) {
		t.Fatalf("unexpected cached product: %+v", got)
	}

	c.Invalidate(ctx, p.ID)
	if _, ok := c.Get(ctx, p.ID); ok {
		t.Fatalf("expected miss after Invalidate")
	}
}

func TestProductCacheExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	c := NewProductCache(store, time.Minute, logger.Nop())

	p := &types.Product{ID: uuid.New(), Name: "Stout"}
	c.Put(ctx, p)
	now = now.Add(2 * time.Minute)
	if _, ok := c.Get(ctx, p.ID); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestProductCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	c := NewProductCache(store, time.Minute, logger.Nop())
	id := uuid.New()
	_ = store.Set(ctx, productKey(id), []byte("{not json"), 0)

	if _, ok := c.Get(ctx, id); ok {
		t.Fatalf("expected corrupt entry to miss")
	}
	if store.Len() != 0 {
		t.Fatalf("expected corrupt entry to be dropped")
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection reset")
}
func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection reset")
}
func (failingStore) Del(context.Context, ...string) error { return errors.New("connection reset") }

func TestProductCacheStoreErrorsAreMisses(t *testing.T) {
	ctx := context.Background()
	c := NewProductCache(failingStore{}, 0, nil)
	p := &types.Product{ID: uuid.New()}
	c.Put(ctx, p)
	c.Invalidate(ctx, p.ID)
	if _, ok := c.Get(ctx, p.ID); ok {
		t.Fatalf("expected miss on store error")
	}
}

func TestNilProductCacheIsNoop(t *testing.T) {
	var c *ProductCache
	if NewProductCache(nil, 0, nil) != nil {
		t.Fatalf("expected nil cache for nil store")
	}
	c.Put(context.Background(), &types.Product{})
	c.Invalidate(context.Background(), uuid.New())
	if _, ok := c.Get(context.Background(), uuid.New()); ok {
		t.Fatalf("nil cache should always miss")
	}
}

type lookupCounter struct{ hits, misses int }

func (l *lookupCounter) IncCacheLookup(cache string, hit bool) {
	if hit {
		l.hits++
		return
	}
	l.misses++
}

func TestProductCacheReportsLookups(t *testing.T) {
	ctx := context.Background()
	counter := &lookupCounter{}
	c := NewProductCache(NewMemoryStore(), time.Minute, logger.Nop()).WithMetrics(counter)

	p := &types.Product{ID: uuid.New(), Name: "Stout", Style: "STOUT", Code: "UPC-9"}
	c.Get(ctx, p.ID)
	c.Put(ctx, p)
	c.Get(ctx, p.ID)
	c.Get(ctx, p.ID)

	if counter.hits != 2 || counter.misses != 1 {
		t.Fatalf("unexpected lookups: hits=%d misses=%d", counter.hits, counter.misses)
	}
}
