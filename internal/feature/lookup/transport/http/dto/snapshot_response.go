// Package dto defines data transfer objects for the lookup HTTP API.
package dto

import (
	"time"

	"watchlist_backend/internal/feature/lookup/domain/entity"
)

// SnapshotResponse is the JSON shape of a quote snapshot returned by the
// lookup endpoints. The client posts the same shape back to the watchlist
// endpoint when the user confirms the add.
type SnapshotResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Code      string    `json:"code"`
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name"`
	Price     *float64  `json:"price"`
	PrevClose *float64  `json:"prevClose"`
	Currency  string    `json:"currency"`
	Open      *float64  `json:"open"`
	High      *float64  `json:"high"`
	Low       *float64  `json:"low"`
	Volume    *int64    `json:"volume"`
	Exchange  string    `json:"exchange"`
	Change    float64   `json:"change"`
	ChangePct *float64  `json:"changePct"`
}

// FromSnapshot converts a domain snapshot into its response shape,
// deriving the change fields.
func FromSnapshot(s entity.Snapshot) SnapshotResponse {
	return SnapshotResponse{
		Timestamp: s.Timestamp,
		Code:      s.Code,
		Symbol:    s.Symbol,
		Name:      s.Name,
		Price:     s.Price,
		PrevClose: s.PrevClose,
		Currency:  s.Currency,
		Open:      s.Open,
		High:      s.High,
		Low:       s.Low,
		Volume:    s.Volume,
		Exchange:  s.Exchange,
		Change:    s.Change(),
		ChangePct: s.ChangePct(),
	}
}
