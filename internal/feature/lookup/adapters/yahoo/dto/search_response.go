// Package dto defines the wire format of Yahoo Finance API responses.
package dto

// SearchResponse is the body of /v1/finance/search.
type SearchResponse struct {
	Quotes []SearchQuote `json:"quotes"`
}

// SearchQuote is a single match returned by the search endpoint.
type SearchQuote struct {
	Symbol    string `json:"symbol"`
	LongName  string `json:"longname"`
	ShortName string `json:"shortname"`
}
