// Package handler はwatchlistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/api"
	quote "watchlist_backend/internal/feature/lookup/domain/entity"
	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/feature/watchlist/transport/http/dto"
	"watchlist_backend/internal/feature/watchlist/usecase"
)

// WatchlistUsecase はウォッチリスト操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type WatchlistUsecase interface {
	List(ctx context.Context) []entity.Record
	Add(ctx context.Context, snap quote.Snapshot) (entity.Record, error)
	Remove(ctx context.Context, key string) error
	Reorder(ctx context.Context, movedKey, targetKey string) error
	UpdateAverageCost(ctx context.Context, key string, value *float64) error
	RefreshAll(ctx context.Context) (updated, skipped int, err error)
}

// WatchlistHandler はウォッチリストのHTTPリクエストを処理します。
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler は指定されたusecaseでWatchlistHandlerの新しいインスタンスを生成します。
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// List はフィルタとソートを適用した表示行をJSONで返します。
//
// エンドポイント例:
// GET /watchlist?name=apple&sort=priceEur&dir=desc
func (h *WatchlistHandler) List(c *gin.Context) {
	filters := usecase.Filters{
		Code:      c.Query("code"),
		Name:      c.Query("name"),
		Price:     c.Query("price"),
		PriceEUR:  c.Query("priceEur"),
		ChangePct: c.Query("changePct"),
	}

	sortState := usecase.DefaultSortState()
	if key := c.Query("sort"); key != "" {
		sortState.Key = usecase.SortKey(key)
	}
	if c.Query("dir") == string(usecase.Descending) {
		sortState.Direction = usecase.Descending
	}

	rows := usecase.DisplayRows(h.uc.List(c.Request.Context()), filters, sortState)

	out := make([]dto.RowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.FromRow(r))
	}
	c.JSON(http.StatusOK, out)
}

// Add は検索結果のスナップショットをウォッチリストに追加します。
// 同じコードのレコードが既に存在する場合は409を返します。
func (h *WatchlistHandler) Add(c *gin.Context) {
	var req dto.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	rec, err := h.uc.Add(c.Request.Context(), req.ToSnapshot())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCode) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to add record", "code", req.Code, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": rec.Key(), "order": rec.Order})
}

// Remove はキーに一致するレコードを削除します。該当がなくても204を返します。
func (h *WatchlistHandler) Remove(c *gin.Context) {
	if err := h.uc.Remove(c.Request.Context(), c.Param("key")); err != nil {
		slog.Error("failed to remove record", "key", c.Param("key"), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to remove record"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Reorder はドラッグ操作によるレコードの並べ替えを処理します。
func (h *WatchlistHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.uc.Reorder(c.Request.Context(), req.Moved, req.Target); err != nil {
		slog.Error("failed to reorder records", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to reorder records"})
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateCost はレコードの取得単価注釈を設定または削除します。
func (h *WatchlistHandler) UpdateCost(c *gin.Context) {
	var req dto.CostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	if err := h.uc.UpdateAverageCost(c.Request.Context(), c.Param("key"), req.AverageCost); err != nil {
		slog.Error("failed to update average cost", "key", c.Param("key"), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update record"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Refresh は全レコードの現在値を再取得し、更新・スキップ件数を返します。
func (h *WatchlistHandler) Refresh(c *gin.Context) {
	updated, skipped, err := h.uc.RefreshAll(c.Request.Context())
	if err != nil {
		slog.Error("refresh batch failed to persist", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save refreshed records"})
		return
	}
	c.JSON(http.StatusOK, dto.RefreshResponse{Updated: updated, Skipped: skipped})
}
