// Package dto defines data transfer objects for the watchlist HTTP API.
package dto

import (
	"time"

	quote "watchlist_backend/internal/feature/lookup/domain/entity"
)

// AddRequest is the snapshot the client posts back when the user confirms
// adding the current lookup result. The shape matches the lookup response.
type AddRequest struct {
	Timestamp time.Time `json:"timestamp" binding:"required"`
	Code      string    `json:"code"`
	Symbol    string    `json:"symbol" binding:"required"`
	Name      string    `json:"name"`
	Price     *float64  `json:"price"`
	PrevClose *float64  `json:"prevClose"`
	Currency  string    `json:"currency"`
	Open      *float64  `json:"open"`
	High      *float64  `json:"high"`
	Low       *float64  `json:"low"`
	Volume    *int64    `json:"volume"`
	Exchange  string    `json:"exchange"`
}

// ToSnapshot converts the request body into a domain snapshot.
func (r AddRequest) ToSnapshot() quote.Snapshot {
	return quote.Snapshot{
		Timestamp: r.Timestamp,
		Code:      r.Code,
		Symbol:    r.Symbol,
		Name:      r.Name,
		Price:     r.Price,
		PrevClose: r.PrevClose,
		Currency:  r.Currency,
		Open:      r.Open,
		High:      r.High,
		Low:       r.Low,
		Volume:    r.Volume,
		Exchange:  r.Exchange,
	}
}

// ReorderRequest moves one record immediately before another.
// Both records are addressed by their stable key.
type ReorderRequest struct {
	Moved  string `json:"moved" binding:"required"`
	Target string `json:"target" binding:"required"`
}

// CostRequest sets or clears the user-entered average cost of a record.
type CostRequest struct {
	AverageCost *float64 `json:"averageCost"`
}
