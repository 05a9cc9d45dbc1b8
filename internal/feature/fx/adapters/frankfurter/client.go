package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"watchlist_backend/internal/feature/fx/adapters/frankfurter/dto"
	"watchlist_backend/internal/feature/fx/usecase"
)

// Client はFrankfurter APIから為替レートを取得するRateSource実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがRateSourceを実装していることをコンパイル時に検証します。
var _ usecase.RateSource = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// RateToEUR は指定通貨からユーロへの換算レートを取得します。
// レスポンスにEURのレートが含まれない場合はエラーを返します。
func (c *Client) RateToEUR(ctx context.Context, currency string) (float64, error) {
	q := url.Values{}
	q.Set("from", currency)
	q.Set("to", "EUR")

	u := fmt.Sprintf("%s/latest?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return 0, fmt.Errorf("frankfurter http %d", res.StatusCode)
	}

	var body dto.LatestResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, err
	}

	rate, ok := body.Rates["EUR"]
	if !ok {
		return 0, fmt.Errorf("frankfurter: EUR rate missing for %s", currency)
	}
	return rate, nil
}
