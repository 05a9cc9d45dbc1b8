package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"watchlist_backend/internal/app/di"
	fxusecase "watchlist_backend/internal/feature/fx/usecase"
	lookupusecase "watchlist_backend/internal/feature/lookup/usecase"
	watchlistadapters "watchlist_backend/internal/feature/watchlist/adapters"
	watchlistusecase "watchlist_backend/internal/feature/watchlist/usecase"
	infradb "watchlist_backend/internal/platform/db"
	"watchlist_backend/internal/shared/ratelimiter"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	db := infradb.OpenDB()
	recordRepo := watchlistadapters.NewRecordRepository(db)
	lookupUC := lookupusecase.NewLookupUsecase(di.NewMarket())
	converter := fxusecase.NewConverter(di.NewRateSource(nil))
	limiter := ratelimiter.NewRateLimiter(2, time.Second)
	uc := watchlistusecase.NewWatchlistUsecase(recordRepo, lookupUC, converter, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	updated, skipped, err := uc.RefreshAll(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("refresh ok: updated=%d skipped=%d", updated, skipped)
}
