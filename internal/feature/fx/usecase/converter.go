// Package usecase は通貨のユーロ換算ロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
)

// RateSource は外部の為替レートサービスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RateSource interface {
	// RateToEUR は1単位の通貨に対するユーロ換算レートを返します。
	RateToEUR(ctx context.Context, currency string) (float64, error)
}

// Converter は通貨金額をユーロに換算します。
// 取得済みレートはプロセス生存期間のメモにキャッシュし、追記のみで破棄しません。
type Converter struct {
	source RateSource

	mu    sync.Mutex
	rates map[string]float64
}

// NewConverter はEUR→1をシードしたConverterの新しいインスタンスを生成します。
func NewConverter(source RateSource) *Converter {
	return &Converter{
		source: source,
		rates:  map[string]float64{"EUR": 1},
	}
}

// ToEUR は金額をユーロに換算します。換算できない場合はnilを返し、エラーにはしません。
// - 金額がnilまたは非有限数の場合はnil
// - 通貨コードが空の場合はnil
// - EURの場合はネットワーク呼び出しなしで金額をそのまま返す
// - レート取得失敗時はキャッシュを汚さずnilを返す（次回の呼び出しで再試行される）
func (c *Converter) ToEUR(ctx context.Context, amount *float64, currency string) *float64 {
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		return nil
	}
	ccy := strings.ToUpper(strings.TrimSpace(currency))
	if ccy == "" {
		return nil
	}
	if ccy == "EUR" {
		v := *amount
		return &v
	}

	c.mu.Lock()
	rate, ok := c.rates[ccy]
	c.mu.Unlock()

	if !ok {
		fetched, err := c.source.RateToEUR(ctx, ccy)
		if err != nil {
			slog.Warn("FX rate fetch failed", "currency", ccy, "error", err)
			return nil
		}
		// 非有限・非正のレートは失敗として扱う
		if math.IsNaN(fetched) || math.IsInf(fetched, 0) || fetched <= 0 {
			slog.Warn("FX service returned invalid rate", "currency", ccy, "rate", fetched)
			return nil
		}
		c.mu.Lock()
		c.rates[ccy] = fetched
		c.mu.Unlock()
		rate = fetched
	}

	v := *amount * rate
	return &v
}
