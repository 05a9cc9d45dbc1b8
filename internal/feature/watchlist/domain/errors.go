// Package domain defines domain-level errors for the watchlist feature.
package domain

import "errors"

// Domain errors for watchlist operations.
var (
	// ErrDuplicateCode indicates that a record with the same non-empty
	// identifying code is already on the watchlist. The add is rejected
	// without mutating the collection.
	ErrDuplicateCode = errors.New("identifying code already on the watchlist")
)
