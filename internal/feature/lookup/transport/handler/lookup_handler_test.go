package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"watchlist_backend/internal/feature/lookup/domain"
	"watchlist_backend/internal/feature/lookup/domain/entity"
)

// mockLookupUsecase はLookupUsecaseインターフェースのモック実装です。
type mockLookupUsecase struct {
	LookupByISINFunc func(ctx context.Context, code string) (entity.Snapshot, error)
	LookupByNameFunc func(ctx context.Context, text string) (entity.Snapshot, error)
}

func (m *mockLookupUsecase) LookupByISIN(ctx context.Context, code string) (entity.Snapshot, error) {
	if m.LookupByISINFunc != nil {
		return m.LookupByISINFunc(ctx, code)
	}
	return entity.Snapshot{}, nil
}

func (m *mockLookupUsecase) LookupByName(ctx context.Context, text string) (entity.Snapshot, error) {
	if m.LookupByNameFunc != nil {
		return m.LookupByNameFunc(ctx, text)
	}
	return entity.Snapshot{}, nil
}

func ptr(v float64) *float64 { return &v }

// TestNewLookupHandler はコンストラクタが正しくインスタンスを生成することを検証します。
func TestNewLookupHandler(t *testing.T) {
	t.Parallel()

	h := NewLookupHandler(&mockLookupUsecase{})

	assert.NotNil(t, h, "handler should not be nil")
	assert.NotNil(t, h.uc, "usecase should not be nil")
}

// TestLookupHandler_ByISIN はISIN検索エンドポイントの各種シナリオを検証します。
func TestLookupHandler_ByISIN(t *testing.T) {
	gin.SetMode(gin.TestMode)

	snap := entity.Snapshot{
		Timestamp: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Code:      "IE00B4L5Y98",
		Symbol:    "IWDA.AS",
		Name:      "iShares Core MSCI World",
		Price:     ptr(101.5),
		PrevClose: ptr(100),
		Currency:  "EUR",
	}

	tests := []struct {
		name           string
		code           string
		mockFunc       func(ctx context.Context, code string) (entity.Snapshot, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns snapshot with derived change fields",
			code: "IE00B4L5Y98",
			mockFunc: func(ctx context.Context, code string) (entity.Snapshot, error) {
				return snap, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"timestamp": "2026-03-01T09:00:00Z",
				"code": "IE00B4L5Y98",
				"symbol": "IWDA.AS",
				"name": "iShares Core MSCI World",
				"price": 101.5,
				"prevClose": 100,
				"currency": "EUR",
				"open": null,
				"high": null,
				"low": null,
				"volume": null,
				"exchange": "",
				"change": 1.5,
				"changePct": 1.5
			}`,
		},
		{
			name: "failure: invalid ISIN maps to 400",
			code: "bogus",
			mockFunc: func(ctx context.Context, code string) (entity.Snapshot, error) {
				return entity.Snapshot{}, domain.ErrInvalidISIN
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid ISIN: must be 11 alphanumeric characters"}`,
		},
		{
			name: "failure: no match maps to 404",
			code: "XX000000000",
			mockFunc: func(ctx context.Context, code string) (entity.Snapshot, error) {
				return entity.Snapshot{}, domain.ErrNotFound
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no security found for query"}`,
		},
		{
			name: "failure: upstream outage maps to 502",
			code: "IE00B4L5Y98",
			mockFunc: func(ctx context.Context, code string) (entity.Snapshot, error) {
				return entity.Snapshot{}, domain.ErrUpstreamUnavailable
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"quote service unavailable"}`,
		},
		{
			name: "failure: incomplete payload maps to 502",
			code: "IE00B4L5Y98",
			mockFunc: func(ctx context.Context, code string) (entity.Snapshot, error) {
				return entity.Snapshot{}, domain.ErrIncompleteData
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"quote data unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewLookupHandler(&mockLookupUsecase{LookupByISINFunc: tt.mockFunc})

			router := gin.New()
			router.GET("/lookup/isin/:code", h.ByISIN)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/lookup/isin/"+tt.code, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestLookupHandler_ByName は名前検索エンドポイントを検証します。
func TestLookupHandler_ByName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success: passes query parameter through", func(t *testing.T) {
		h := NewLookupHandler(&mockLookupUsecase{
			LookupByNameFunc: func(ctx context.Context, text string) (entity.Snapshot, error) {
				assert.Equal(t, "vanguard all world", text)
				return entity.Snapshot{Symbol: "VWCE.DE", Name: "Vanguard FTSE All-World"}, nil
			},
		})

		router := gin.New()
		router.GET("/lookup/name", h.ByName)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/lookup/name?q=vanguard+all+world", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"symbol":"VWCE.DE"`)
	})

	t.Run("failure: empty query maps to 400", func(t *testing.T) {
		h := NewLookupHandler(&mockLookupUsecase{
			LookupByNameFunc: func(ctx context.Context, text string) (entity.Snapshot, error) {
				return entity.Snapshot{}, domain.ErrEmptyQuery
			},
		})

		router := gin.New()
		router.GET("/lookup/name", h.ByName)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/lookup/name", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("failure: unknown error maps to 502", func(t *testing.T) {
		h := NewLookupHandler(&mockLookupUsecase{
			LookupByNameFunc: func(ctx context.Context, text string) (entity.Snapshot, error) {
				return entity.Snapshot{}, errors.New("boom")
			},
		})

		router := gin.New()
		router.GET("/lookup/name", h.ByName)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/lookup/name?q=x", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
