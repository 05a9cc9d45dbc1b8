package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"watchlist_backend/internal/feature/fx/adapters/frankfurter"
	"watchlist_backend/internal/feature/fx/usecase"
	"watchlist_backend/internal/platform/cache"
	infrahttp "watchlist_backend/internal/platform/http"
)

// NewRateSource creates a RateSource implementation.
// If Redis is available, the Frankfurter client is wrapped with a caching
// decorator so repeated conversions for the same currency hit Redis instead
// of the upstream API. Otherwise the bare client is returned.
func NewRateSource(rdb *redis.Client) usecase.RateSource {
	cfg := frankfurter.LoadConfig()
	client := frankfurter.NewClient(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	if rdb != nil {
		return cache.NewCachingRateSource(rdb, 12*time.Hour, client, "fxrate")
	}
	return client
}
