// Package usecase は銘柄検索と現在値取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"regexp"
	"strings"

	"watchlist_backend/internal/feature/lookup/domain"
	"watchlist_backend/internal/feature/lookup/domain/entity"
)

// isinPattern はISINの書式（英数字11文字）を検証します。
var isinPattern = regexp.MustCompile(`^[A-Z0-9]{11}$`)

// MarketRepository は外部の検索・現在値サービスを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// SearchBest はクエリに最も一致する銘柄のシンボルと名称を返します。
	// 一致がない場合はdomain.ErrNotFoundを返します。
	SearchBest(ctx context.Context, query string) (symbol, name string, err error)

	// Quote は指定シンボルの当日スナップショットを取得します。
	Quote(ctx context.Context, symbol string) (entity.Snapshot, error)
}

// LookupUsecase はISINまたは銘柄名からスナップショットを解決するユースケースです。
type LookupUsecase struct {
	market MarketRepository
}

// NewLookupUsecase はLookupUsecaseの新しいインスタンスを生成します。
func NewLookupUsecase(market MarketRepository) *LookupUsecase {
	return &LookupUsecase{market: market}
}

// LookupByISIN はISINコードからスナップショットを解決します。
// ネットワーク呼び出しの前にコードの書式を検証し、
// 不正な場合はdomain.ErrInvalidISINを返します。
func (u *LookupUsecase) LookupByISIN(ctx context.Context, code string) (entity.Snapshot, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !isinPattern.MatchString(code) {
		return entity.Snapshot{}, domain.ErrInvalidISIN
	}
	return u.lookup(ctx, code, code)
}

// LookupByName は自由入力の銘柄名からスナップショットを解決します。
// 名前検索で得たスナップショットはコード欄が空になります。
func (u *LookupUsecase) LookupByName(ctx context.Context, text string) (entity.Snapshot, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Snapshot{}, domain.ErrEmptyQuery
	}
	return u.lookup(ctx, text, "")
}

// QuoteBySymbol は解決済みシンボルの現在値のみを再取得します。
// 検索ステップを省略するため、ウォッチリストの一括更新で使用されます。
func (u *LookupUsecase) QuoteBySymbol(ctx context.Context, symbol string) (entity.Snapshot, error) {
	return u.market.Quote(ctx, symbol)
}

// lookup は検索→現在値取得の2段階でスナップショットを組み立てます。
func (u *LookupUsecase) lookup(ctx context.Context, query, code string) (entity.Snapshot, error) {
	symbol, name, err := u.market.SearchBest(ctx, query)
	if err != nil {
		return entity.Snapshot{}, err
	}

	snap, err := u.market.Quote(ctx, symbol)
	if err != nil {
		return entity.Snapshot{}, err
	}

	snap.Code = code
	// 検索結果の名称を優先し、欠損時はシンボルで補完
	if name != "" {
		snap.Name = name
	}
	if snap.Name == "" {
		snap.Name = symbol
	}
	return snap, nil
}
