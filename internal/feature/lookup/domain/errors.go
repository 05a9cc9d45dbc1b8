// Package domain defines domain-level errors for the lookup feature.
package domain

import "errors"

// Domain errors for quote lookup operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrInvalidISIN indicates that the supplied code is not an 11-character
	// alphanumeric ISIN. It is returned before any network call is made.
	ErrInvalidISIN = errors.New("invalid ISIN: must be 11 alphanumeric characters")

	// ErrEmptyQuery indicates that a name lookup was attempted with an empty query.
	ErrEmptyQuery = errors.New("search query must not be empty")

	// ErrNotFound indicates that the search service returned zero matches.
	// This is a valid outcome, distinct from a transport failure.
	ErrNotFound = errors.New("no security found for query")

	// ErrUpstreamUnavailable indicates a transport failure or non-success
	// response from the search or quote service.
	ErrUpstreamUnavailable = errors.New("quote service unavailable")

	// ErrIncompleteData indicates that the quote response lacked the minimum
	// required price metadata.
	ErrIncompleteData = errors.New("quote data unavailable")
)
