package entity

import "sort"

// SymbolSet holds distinct symbol strings. Order is only defined by Sorted.
type SymbolSet struct {
	items map[string]struct{}
}

// NewSymbolSet returns an empty set.
func NewSymbolSet() *SymbolSet {
	return &SymbolSet{items: make(map[string]struct{})}
}

// Add inserts s and reports whether it was not already present.
func (s *SymbolSet) Add(sym string) bool {
	if _, ok := s.items[sym]; ok {
		return false
	}
	s.items[sym] = struct{}{}
	return true
}

// Contains reports whether sym is in the set.
func (s *SymbolSet) Contains(sym string) bool {
	_, ok := s.items[sym]
	return ok
}

// Len returns the number of distinct symbols.
func (s *SymbolSet) Len() int {
	return len(s.items)
}

// Sorted returns the symbols in ascending byte order.
func (s *SymbolSet) Sorted() []string {
	out := make([]string, 0, len(s.items))
	for sym := range s.items {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}
