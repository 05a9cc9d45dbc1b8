package dto

import (
	"watchlist_backend/internal/feature/watchlist/usecase"
)

// RowResponse is one derived display row of the watchlist table.
// Formatted strings are what the client renders; the raw numbers the row was
// derived from are available again via the lookup shape on refresh.
type RowResponse struct {
	RowNo       int      `json:"rowNo"`
	Key         string   `json:"key"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Symbol      string   `json:"symbol"`
	Cost        string   `json:"cost"`
	Price       string   `json:"price"`
	PriceEUR    string   `json:"priceEur"`
	ChangePct   string   `json:"changePct"`
	ChangeClass string   `json:"changeClass"`
	GainPct     string   `json:"gainPct"`
	GainClass   string   `json:"gainClass"`
	Range       string   `json:"range"`
	Order       int      `json:"order"`
	Volume      *int64   `json:"volume"`
	Exchange    string   `json:"exchange"`
	Currency    string   `json:"currency"`
	PriceEURRaw *float64 `json:"priceEurRaw"`
}

// FromRow converts a derived view row into its response shape.
func FromRow(r usecase.Row) RowResponse {
	return RowResponse{
		RowNo:       r.RowNo,
		Key:         r.Key,
		Code:        r.CodeText,
		Name:        r.NameText,
		Symbol:      r.Record.Symbol,
		Cost:        r.CostText,
		Price:       r.PriceText,
		PriceEUR:    r.PriceEURText,
		ChangePct:   r.ChangePctText,
		ChangeClass: r.ChangeClass,
		GainPct:     r.GainPctText,
		GainClass:   r.GainClass,
		Range:       r.RangeText,
		Order:       r.Record.Order,
		Volume:      r.Record.Volume,
		Exchange:    r.Record.Exchange,
		Currency:    r.Record.Currency,
		PriceEURRaw: r.Record.PriceEUR,
	}
}

// RefreshResponse reports the outcome of a refresh-all batch.
type RefreshResponse struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}
