package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"watchlist_backend/internal/app/di"
	"watchlist_backend/internal/app/router"
	authadapters "watchlist_backend/internal/feature/auth/adapters"
	authhandler "watchlist_backend/internal/feature/auth/transport/handler"
	authusecase "watchlist_backend/internal/feature/auth/usecase"
	fxusecase "watchlist_backend/internal/feature/fx/usecase"
	lookuphandler "watchlist_backend/internal/feature/lookup/transport/handler"
	lookupusecase "watchlist_backend/internal/feature/lookup/usecase"
	watchlistadapters "watchlist_backend/internal/feature/watchlist/adapters"
	watchlisthandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "watchlist_backend/internal/feature/watchlist/usecase"
	infradb "watchlist_backend/internal/platform/db"
	infrajwt "watchlist_backend/internal/platform/jwt"
	infraredis "watchlist_backend/internal/platform/redis"
	"watchlist_backend/internal/shared/ratelimiter"
)

func main() {
	// .envがあれば読み込む（なくてもエラーにしない）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found. Using environment variables.")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository / external clients
	userRepo := authadapters.NewUserRepository(db)
	recordRepo := watchlistadapters.NewRecordRepository(db)
	market := di.NewMarket()
	rateSource := di.NewRateSource(rdb)

	// Usecase
	jwtGen := infrajwt.NewGenerator(os.Getenv(infrajwt.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	lookupUC := lookupusecase.NewLookupUsecase(market)
	converter := fxusecase.NewConverter(rateSource)
	limiter := ratelimiter.NewRateLimiter(2, time.Second)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(recordRepo, lookupUC, converter, limiter)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	lookupH := lookuphandler.NewLookupHandler(lookupUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)

	// ルータ生成
	router := router.NewRouter(authH, lookupH, watchlistH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(infrajwt.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
