// Package usecase はウォッチリストの永続コレクション操作と表示パイプラインを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	quote "watchlist_backend/internal/feature/lookup/domain/entity"
	"watchlist_backend/internal/feature/watchlist/domain"
	"watchlist_backend/internal/feature/watchlist/domain/entity"
	"watchlist_backend/internal/shared/ratelimiter"
)

// RecordRepository はウォッチリストレコードの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RecordRepository interface {
	// Load は保存されたコレクションを保存順で返します。
	Load(ctx context.Context) ([]entity.Record, error)

	// ReplaceAll はコレクション全体を原子的に置き換えます。
	// 部分的な書き込みは発生させません。
	ReplaceAll(ctx context.Context, records []entity.Record) error
}

// QuoteSource は解決済みシンボルの現在値再取得を抽象化します。
type QuoteSource interface {
	QuoteBySymbol(ctx context.Context, symbol string) (quote.Snapshot, error)
}

// Converter は通貨金額のユーロ換算を抽象化します。nilは「換算不能」を意味します。
type Converter interface {
	ToEUR(ctx context.Context, amount *float64, currency string) *float64
}

// WatchlistUsecase はウォッチリストの追加・削除・並べ替え・更新操作を実装します。
// 全ての変更操作はコレクション全体のread-modify-writeであるため、
// 単一のミューテックスで直列化します。
type WatchlistUsecase struct {
	mu      sync.Mutex
	records RecordRepository
	quotes  QuoteSource
	fx      Converter
	limiter ratelimiter.RateLimiterInterface
}

// NewWatchlistUsecase はWatchlistUsecaseの新しいインスタンスを生成します。
func NewWatchlistUsecase(records RecordRepository, quotes QuoteSource, fx Converter,
	limiter ratelimiter.RateLimiterInterface) *WatchlistUsecase {
	return &WatchlistUsecase{records: records, quotes: quotes, fx: fx, limiter: limiter}
}

// load はコレクションを読み込みます。読み込み失敗は空のコレクションに
// 縮退させ、呼び出し元にエラーを伝播しません。
func (u *WatchlistUsecase) load(ctx context.Context) []entity.Record {
	rs, err := u.records.Load(ctx)
	if err != nil {
		slog.Warn("failed to load watchlist, starting empty", "error", err)
		return []entity.Record{}
	}
	return rs
}

// List は保存されたレコードを保存順で返します。
func (u *WatchlistUsecase) List(ctx context.Context) []entity.Record {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.load(ctx)
}

// Add はスナップショットをウォッチリストに昇格させます。
// 同じコード（大文字小文字無視、空コードは対象外）のレコードが既に存在する場合、
// コレクションを変更せずdomain.ErrDuplicateCodeを返します。
// ユーロ換算の失敗は追加を妨げず、PriceEURがnilになるだけです。
func (u *WatchlistUsecase) Add(ctx context.Context, snap quote.Snapshot) (entity.Record, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	rs := u.load(ctx)

	if code := strings.TrimSpace(snap.Code); code != "" {
		for _, r := range rs {
			if strings.EqualFold(r.Code, code) {
				return entity.Record{}, domain.ErrDuplicateCode
			}
		}
	}

	// 採番は既存の最大order+1（空のコレクションでは0）
	maxOrder := -1
	for _, r := range rs {
		if r.Order > maxOrder {
			maxOrder = r.Order
		}
	}

	rec := entity.Record{
		Snapshot: snap,
		PriceEUR: u.fx.ToEUR(ctx, snap.Price, snap.Currency),
		Order:    maxOrder + 1,
	}
	rs = append(rs, rec)

	if err := u.records.ReplaceAll(ctx, rs); err != nil {
		return entity.Record{}, err
	}
	return rec, nil
}

// Remove はキーに一致するレコードを削除します。
// 該当がなくてもエラーにはなりません。
func (u *WatchlistUsecase) Remove(ctx context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	rs := u.load(ctx)
	kept := make([]entity.Record, 0, len(rs))
	for _, r := range rs {
		if r.Key() != key {
			kept = append(kept, r)
		}
	}
	return u.records.ReplaceAll(ctx, kept)
}

// Reorder はmovedKeyのレコードをtargetKeyのレコードの直前に移動し、
// 全レコードのorderを新しい位置（0始まりの連番）に振り直します。
// どちらかのキーが見つからない場合、または同一の場合は何もしません。
func (u *WatchlistUsecase) Reorder(ctx context.Context, movedKey, targetKey string) error {
	if movedKey == targetKey {
		return nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	rs := u.load(ctx)
	movedIdx := indexByKey(rs, movedKey)
	targetIdx := indexByKey(rs, targetKey)
	if movedIdx < 0 || targetIdx < 0 {
		return nil
	}

	moved := rs[movedIdx]
	rs = append(rs[:movedIdx], rs[movedIdx+1:]...)

	// 削除後の位置を再探索してその直前に挿入
	insertIdx := indexByKey(rs, targetKey)
	if insertIdx < 0 {
		insertIdx = len(rs)
	}
	rs = append(rs[:insertIdx], append([]entity.Record{moved}, rs[insertIdx:]...)...)

	for i := range rs {
		rs[i].Order = i
	}
	return u.records.ReplaceAll(ctx, rs)
}

// UpdateAverageCost はキーに一致するレコードの取得単価を設定します。
// 該当がない場合は何もしません。nilは注釈の削除を意味します。
func (u *WatchlistUsecase) UpdateAverageCost(ctx context.Context, key string, value *float64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	rs := u.load(ctx)
	idx := indexByKey(rs, key)
	if idx < 0 {
		return nil
	}
	rs[idx].AverageCost = value
	return u.records.ReplaceAll(ctx, rs)
}

// RefreshAll は全レコードの現在値を逐次再取得します。
// シンボルのないレコードと取得に失敗したレコードはスキップとして数え、
// 元のフィールドを変更しません。1件の失敗がバッチ全体を中断することはありません。
// 永続化はバッチ完了後に1回だけ行います。
func (u *WatchlistUsecase) RefreshAll(ctx context.Context) (updated, skipped int, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	rs := u.load(ctx)
	for i := range rs {
		if rs[i].Symbol == "" {
			skipped++
			continue
		}

		// 上流のリクエストレートを抑えるため、取得ごとに待機
		u.limiter.WaitIfNeeded()

		snap, qerr := u.quotes.QuoteBySymbol(ctx, rs[i].Symbol)
		if qerr != nil {
			slog.Warn("refresh skipped record", "symbol", rs[i].Symbol, "error", qerr)
			skipped++
			continue
		}

		applyRefresh(&rs[i], snap)
		rs[i].PriceEUR = u.fx.ToEUR(ctx, rs[i].Price, rs[i].Currency)
		updated++
	}

	if perr := u.records.ReplaceAll(ctx, rs); perr != nil {
		return updated, skipped, perr
	}
	return updated, skipped, nil
}

// applyRefresh は取得したスナップショットでレコードの相場フィールドを上書きします。
// 通貨・市場名・名称は新しい値が欠損している場合に限り元の値を残します。
func applyRefresh(r *entity.Record, snap quote.Snapshot) {
	prevCurrency := r.Currency
	prevExchange := r.Exchange
	prevName := r.Name

	r.Timestamp = snap.Timestamp
	r.Price = snap.Price
	r.PrevClose = snap.PrevClose
	r.Open = snap.Open
	r.High = snap.High
	r.Low = snap.Low
	r.Volume = snap.Volume

	r.Currency = snap.Currency
	if r.Currency == "" {
		r.Currency = prevCurrency
	}
	r.Exchange = snap.Exchange
	if r.Exchange == "" {
		r.Exchange = prevExchange
	}
	r.Name = snap.Name
	if r.Name == "" {
		r.Name = prevName
	}
	if r.Name == "" {
		r.Name = r.Symbol
	}
}

// indexByKey はキーに一致するレコードの位置を返します。見つからない場合は-1です。
func indexByKey(rs []entity.Record, key string) int {
	for i, r := range rs {
		if r.Key() == key {
			return i
		}
	}
	return -1
}
