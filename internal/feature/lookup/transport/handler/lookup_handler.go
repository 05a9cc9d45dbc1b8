// Package handler はlookupフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/api"
	"watchlist_backend/internal/feature/lookup/domain"
	"watchlist_backend/internal/feature/lookup/domain/entity"
	"watchlist_backend/internal/feature/lookup/transport/http/dto"
)

// LookupUsecase は銘柄検索操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type LookupUsecase interface {
	LookupByISIN(ctx context.Context, code string) (entity.Snapshot, error)
	LookupByName(ctx context.Context, text string) (entity.Snapshot, error)
}

// LookupHandler は銘柄検索のHTTPリクエストを処理します。
type LookupHandler struct {
	uc LookupUsecase
}

// NewLookupHandler は指定されたusecaseでLookupHandlerの新しいインスタンスを生成します。
func NewLookupHandler(uc LookupUsecase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// ByISIN はISINコードで銘柄を検索し、スナップショットをJSONで返します。
//
// エンドポイント例:
// GET /lookup/isin/IE00B4L5Y98
func (h *LookupHandler) ByISIN(c *gin.Context) {
	snap, err := h.uc.LookupByISIN(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSnapshot(snap))
}

// ByName は銘柄名で検索し、最初に一致した銘柄のスナップショットをJSONで返します。
//
// エンドポイント例:
// GET /lookup/name?q=apple
func (h *LookupHandler) ByName(c *gin.Context) {
	snap, err := h.uc.LookupByName(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromSnapshot(snap))
}

// respondLookupError はドメインエラーをHTTPステータスに対応付けます。
// - 入力不備は400
// - 一致なしは404
// - 上流サービス障害・データ欠損は502
func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidISIN), errors.Is(err, domain.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Warn("lookup failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
	}
}
