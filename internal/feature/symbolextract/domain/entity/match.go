// Package entity defines the domain models for the symbolextract feature.
package entity

import "unicode/utf8"

// MaxSymbolLength is the exclusive upper bound on the length of a kept symbol.
const MaxSymbolLength = 15

// Match is one (time cell, symbol cell) pair found in a schedule page.
type Match struct {
	Time   string // HH:MM
	Symbol string
}

// Qualifies reports whether the symbol of m is short enough to be kept.
func (m Match) Qualifies() bool {
	return m.Symbol != "" && utf8.RuneCountInString(m.Symbol) < MaxSymbolLength
}
