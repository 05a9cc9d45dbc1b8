package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"watchlist_backend/internal/feature/lookup/adapters/yahoo/dto"
	"watchlist_backend/internal/feature/lookup/domain"
	"watchlist_backend/internal/feature/lookup/domain/entity"
	"watchlist_backend/internal/feature/lookup/usecase"
)

// Client はYahoo Finance APIから銘柄検索と現在値を取得するMarketRepository実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// SearchBest は検索エンドポイントを呼び出し、最初の一致のシンボルと名称を返します。
// 一致が0件の場合はdomain.ErrNotFoundを返します。
func (c *Client) SearchBest(ctx context.Context, query string) (string, string, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("quotesCount", "1")
	q.Set("newsCount", "0")

	u := fmt.Sprintf("%s/v1/finance/search?%s", c.cfg.BaseURL, q.Encode())

	var body dto.SearchResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return "", "", err
	}
	if len(body.Quotes) == 0 {
		return "", "", domain.ErrNotFound
	}

	best := body.Quotes[0]
	// 名称はlongname → shortname → シンボルの順で補完
	name := best.LongName
	if name == "" {
		name = best.ShortName
	}
	if name == "" {
		name = best.Symbol
	}
	return best.Symbol, name, nil
}

// Quote はチャートエンドポイントから当日のスナップショットを取得します。
// metaブロックが欠けている場合はdomain.ErrIncompleteDataを返します。
func (c *Client) Quote(ctx context.Context, symbol string) (entity.Snapshot, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.cfg.BaseURL, url.PathEscape(symbol))

	var body dto.ChartResponse
	if err := c.getJSON(ctx, u, &body); err != nil {
		return entity.Snapshot{}, err
	}

	if len(body.Chart.Result) == 0 || body.Chart.Result[0].Meta == nil {
		return entity.Snapshot{}, domain.ErrIncompleteData
	}
	meta := body.Chart.Result[0].Meta

	// 前日終値はchartPreviousClose → previousCloseの順で補完
	prevClose := meta.ChartPreviousClose
	if prevClose == nil {
		prevClose = meta.PreviousClose
	}
	// 市場名はexchangeName → fullExchangeNameの順で補完
	exchange := meta.ExchangeName
	if exchange == "" {
		exchange = meta.FullExchangeName
	}
	// 名称はlongName → shortNameの順で補完（欠損可）
	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}

	return entity.Snapshot{
		Timestamp: time.Now().UTC(),
		Symbol:    symbol,
		Name:      name,
		Price:     meta.RegularMarketPrice,
		PrevClose: prevClose,
		Currency:  meta.Currency,
		Open:      meta.RegularMarketOpen,
		High:      meta.RegularMarketDayHigh,
		Low:       meta.RegularMarketDayLow,
		Volume:    meta.RegularMarketVolume,
		Exchange:  exchange,
	}, nil
}

// getJSON はGETリクエストを実行し、レスポンスJSONをoutにデコードします。
// トランスポート障害と4xx/5xxはdomain.ErrUpstreamUnavailableにまとめます。
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("%w: yahoo http %d", domain.ErrUpstreamUnavailable, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIncompleteData, err)
	}
	return nil
}
