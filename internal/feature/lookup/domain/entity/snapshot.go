// Package entity defines the domain models for the lookup feature.
package entity

import "time"

// Snapshot represents a point-in-time quote for a single security.
// Pointer fields are nil when the upstream service did not report a value.
type Snapshot struct {
	Timestamp time.Time // Instant the quote was captured
	Code      string    // ISIN, empty when the security was looked up by name
	Symbol    string    // Ticker symbol resolved by the search service
	Name      string    // Best available human-readable name
	Price     *float64  // Last price in the native currency
	PrevClose *float64  // Previous session close in the native currency
	Currency  string    // ISO currency code, may be empty
	Open      *float64  // Session open
	High      *float64  // Session high
	Low       *float64  // Session low
	Volume    *int64    // Session volume
	Exchange  string    // Free-text venue description
}

// Change は前日終値に対する価格変動を返します。欠損値は0として扱います。
func (s Snapshot) Change() float64 {
	var price, prev float64
	if s.Price != nil {
		price = *s.Price
	}
	if s.PrevClose != nil {
		prev = *s.PrevClose
	}
	return price - prev
}

// ChangePct は前日比の変動率（%）を返します。
// 前日終値が欠損またはゼロの場合はnilを返します。
func (s Snapshot) ChangePct() *float64 {
	if s.PrevClose == nil || *s.PrevClose == 0 {
		return nil
	}
	pct := s.Change() / *s.PrevClose * 100
	return &pct
}
