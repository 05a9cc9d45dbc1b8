// Package entity defines the domain models for the watchlist feature.
package entity

import (
	"time"

	quote "watchlist_backend/internal/feature/lookup/domain/entity"
)

// Record is a persisted watchlist entry: a quote snapshot plus the user's
// annotations and manual ordering. The capture timestamp is the stable key
// used to address a record, since the identifying code may be empty for
// name-based lookups.
type Record struct {
	quote.Snapshot

	PriceEUR    *float64 // Price converted to EUR at capture time, nil if conversion failed
	Order       int      // Manual ordering, reassigned to 0..n-1 on every reorder
	AverageCost *float64 // User-entered price-paid basis, assumed EUR-denominated
}

// Key returns the stable identifier used to address this record.
func (r Record) Key() string {
	return r.Timestamp.UTC().Format(time.RFC3339Nano)
}

// GainPct はユーロ換算価格と取得単価から評価損益率（%）を返します。
// どちらかが欠損、または取得単価がゼロの場合はnilを返します。
func (r Record) GainPct() *float64 {
	if r.PriceEUR == nil || r.AverageCost == nil || *r.AverageCost == 0 {
		return nil
	}
	pct := (*r.PriceEUR*100) / *r.AverageCost - 100
	return &pct
}
