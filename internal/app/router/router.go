package router

import (
	authhandler "watchlist_backend/internal/feature/auth/transport/handler"
	lookuphandler "watchlist_backend/internal/feature/lookup/transport/handler"
	watchlisthandler "watchlist_backend/internal/feature/watchlist/transport/handler"
	"watchlist_backend/internal/platform/http/handler"
	jwtmw "watchlist_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, lookup *lookuphandler.LookupHandler,
	watchlist *watchlisthandler.WatchlistHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		// 銘柄検索
		auth.GET("/lookup/isin/:code", lookup.ByISIN)
		auth.GET("/lookup/name", lookup.ByName)

		// ウォッチリスト操作
		auth.GET("/watchlist", watchlist.List)
		auth.POST("/watchlist", watchlist.Add)
		auth.POST("/watchlist/refresh", watchlist.Refresh)
		auth.POST("/watchlist/reorder", watchlist.Reorder)
		auth.PUT("/watchlist/:key/cost", watchlist.UpdateCost)
		auth.DELETE("/watchlist/:key", watchlist.Remove)
	}

	return r
}
