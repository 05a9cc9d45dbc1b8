// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"watchlist_backend/internal/feature/fx/usecase"
)

// CachingRateSource decorates a RateSource with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying rate source. Unlike the in-process memo kept by
// the converter, cached rates survive restarts.
type CachingRateSource struct {
	inner     usecase.RateSource
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingRateSourceがRateSourceを実装していることをコンパイル時に検証します。
var _ usecase.RateSource = (*CachingRateSource)(nil)

// NewCachingRateSource decorates a RateSource with Redis caching.
// If ttl is 0, it defaults to 12 hours. If namespace is empty, it uses "fxrate".
func NewCachingRateSource(rdb *redis.Client, ttl time.Duration, inner usecase.RateSource, namespace string) *CachingRateSource {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	if namespace == "" {
		namespace = "fxrate"
	}
	return &CachingRateSource{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// cachedRate is the structure stored in the cache.
type cachedRate struct {
	Rate float64 `json:"rate"`
}

// RateToEUR retrieves a rate, checking cache first then falling back to the
// external service.
func (c *CachingRateSource) RateToEUR(ctx context.Context, currency string) (float64, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.RateToEUR(ctx, currency)
	}

	key := c.cacheKey(currency)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out cachedRate
		if err := json.Unmarshal(b, &out); err == nil {
			return out.Rate, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the external service
	rate, err := c.inner.RateToEUR(ctx, currency)
	if err != nil {
		return 0, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(cachedRate{Rate: rate}); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return rate, nil
}

// cacheKey generates a cache key for a currency.
func (c *CachingRateSource) cacheKey(currency string) string {
	return c.namespace + ":" + safe(strings.ToUpper(currency))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
