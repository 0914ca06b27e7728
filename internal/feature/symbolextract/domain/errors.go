// Package domain defines domain-level errors for the symbolextract feature.
package domain

import "errors"

var (
	// ErrSourceNotFound indicates that the saved schedule page does not exist.
	ErrSourceNotFound = errors.New("schedule source not found")

	// ErrSourceDecode indicates that the schedule page could not be decoded as Latin-1.
	ErrSourceDecode = errors.New("schedule source could not be decoded")
)
