// Package dto defines the wire format of Frankfurter API responses.
package dto

// LatestResponse is the body of /latest?from=X&to=EUR.
type LatestResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}
