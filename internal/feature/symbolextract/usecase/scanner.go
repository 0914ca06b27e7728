package usecase

import (
	"regexp"

	"schedule_backend/internal/feature/symbolextract/domain/entity"
)

// cellPairPattern matches a time cell followed by a symbol cell.
// The gap class is the whitespace set of a decoded Latin-1 text, which is wider than \s.
var cellPairPattern = regexp.MustCompile(
	`<td[^>]*>(\d{2}:\d{2})</td>` +
		`[\t\n\v\f\r \x{1c}-\x{1f}\x{85}\x{a0}]*` +
		`<td[^>]*>([A-Za-z0-9&~]+)</td>`,
)

// Scan returns every non-overlapping (time, symbol) pair in text, left to right.
func Scan(text string) []entity.Match {
	found := cellPairPattern.FindAllStringSubmatch(text, -1)
	matches := make([]entity.Match, 0, len(found))
	for _, m := range found {
		matches = append(matches, entity.Match{Time: m[1], Symbol: m[2]})
	}
	return matches
}

// Collect puts the symbols of the qualifying matches into a set.
func Collect(matches []entity.Match) *entity.SymbolSet {
	set := entity.NewSymbolSet()
	for _, m := range matches {
		if m.Qualifies() {
			set.Add(m.Symbol)
		}
	}
	return set
}
