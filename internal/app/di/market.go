// Package di provides dependency injection factories for creating application components.
package di

import (
	"watchlist_backend/internal/feature/lookup/adapters/yahoo"
	infrahttp "watchlist_backend/internal/platform/http"
)

// NewMarket creates a fully configured Yahoo Finance client with HTTP client.
func NewMarket() *yahoo.Client {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewClient(cfg, httpClient)
}
