package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/brewery-backend/internal/domain"
	"github.com/yungbote/brewery-backend/internal/platform/logger"
)

const productKeyPrefix = "brewery:product:"

const DefaultProductTTL = 5 * time.Minute

// ProductCache is a best-effort read-through cache for single product reads.
// Store failures are logged and treated as misses. A nil *ProductCache is a
// valid no-op cache.
type ProductCache struct {
	store   Store
	ttl     time.Duration
	log     *logger.Logger
	metrics LookupObserver
}

// LookupObserver records cache hits and misses.
type LookupObserver interface {
	IncCacheLookup(cache string, hit bool)
}

func NewProductCache(store Store, ttl time.Duration, baseLog *logger.Logger) *ProductCache {
	if store == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultProductTTL
	}
	if baseLog == nil {
		baseLog = logger.Nop()
	}
	return &ProductCache{store: store, ttl: ttl, log: baseLog.With("cache", "ProductCache")}
}

// WithMetrics attaches a hit/miss observer. Safe on a nil cache.
func (c *ProductCache) WithMetrics(m LookupObserver) *ProductCache {
	if c == nil {
		return nil
	}
	c.metrics = m
	return c
}

func (c *ProductCache) observe(hit bool) {
	if c.metrics != nil {
		c.metrics.IncCacheLookup("product", hit)
	}
}

func productKey(id uuid.UUID) string { return productKeyPrefix + id.String() }

func (c *ProductCache) Get(ctx context.Context, id uuid.UUID) (*types.Product, bool) {
	if c == nil {
		return nil, false
	}
	raw, ok, err := c.store.Get(ctx, productKey(id))
	if err != nil {
		c.log.Warn("product cache get failed", "product_id", id, "error", err)
		c.observe(false)
		return nil, false
	}
	if !ok {
		c.observe(false)
		return nil, false
	}
	var p types.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn("product cache entry unreadable", "product_id", id, "error", err)
		_ = c.store.Del(ctx, productKey(id))
		c.observe(false)
		return nil, false
	}
	c.observe(true)
	return &p, true
}

func (c *ProductCache) Put(ctx context.Context, p *types.Product) {
	if c == nil || p == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		c.log.Warn("product cache encode failed", "product_id", p.ID, "error", err)
		return
	}
	if err := c.store.Set(ctx, productKey(p.ID), raw, c.ttl); err != nil {
		c.log.Warn("product cache set failed", "product_id", p.ID, "error", err)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c == nil {
		return
	}
	if err := c.store.Del(ctx, productKey(id)); err != nil {
		c.log.Warn("product cache invalidate failed", "product_id", id, "error", err)
	}
}
