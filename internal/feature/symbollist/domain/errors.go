// Package domain defines domain-level errors for the symbollist feature.
package domain

import "errors"

var (
	// ErrSymbolNotFound indicates that no active symbol exists with the given code.
	ErrSymbolNotFound = errors.New("symbol not found")
)
