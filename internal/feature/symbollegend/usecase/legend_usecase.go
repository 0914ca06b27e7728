// Package usecase decodes timetable symbol strings into legend markings and service days.
package usecase

import (
	"regexp"
	"strings"

	"schedule_backend/internal/feature/symbollegend/domain/entity"
)

var (
	dayCodePattern  = regexp.MustCompile(`^(?:[DSCM]|[67][A-Z]?)`)
	modifierPattern = regexp.MustCompile(`^[a-z&~]+`)
)

// twoCharMarkings are legend codes spelled with two characters.
var twoCharMarkings = map[string]struct{}{
	"~W": {},
	"Ex": {},
	"7G": {},
}

// LegendUsecase decodes symbol strings against a legend and a table of known day filters.
type LegendUsecase struct {
	legend      map[string]string
	daysFilters map[string][]entity.DayType
}

// NewLegendUsecase creates a LegendUsecase backed by the Grójec timetable legend.
func NewLegendUsecase() *LegendUsecase {
	return &LegendUsecase{
		legend:      entity.CourseLegend,
		daysFilters: entity.KnownDaysFilters,
	}
}

// Tokenize splits a symbol string into individual markings.
// "~W", "Ex" and "7G" are kept together; everything else is one character per marking.
func (u *LegendUsecase) Tokenize(code string) []string {
	runes := []rune(code)
	tokens := make([]string, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			pair := string(runes[i : i+2])
			if _, ok := twoCharMarkings[pair]; ok {
				tokens = append(tokens, pair)
				i++
				continue
			}
		}
		tokens = append(tokens, string(runes[i]))
	}
	return tokens
}

// Describe returns the markings of code with their legend text.
// Unknown markings are described by their own code.
func (u *LegendUsecase) Describe(code string) []entity.Marking {
	tokens := u.Tokenize(code)
	out := make([]entity.Marking, 0, len(tokens))
	for _, tok := range tokens {
		desc, ok := u.legend[tok]
		if !ok {
			desc = tok
		}
		out = append(out, entity.Marking{Code: tok, Description: desc})
	}
	return out
}

// Split separates a symbol string into its day part and its special-marks part.
// The day part is the leading run of day codes followed by any lowercase modifiers.
func (u *LegendUsecase) Split(code string) (days, marks string) {
	var b strings.Builder
	rest := code
	for {
		m := dayCodePattern.FindString(rest)
		if m == "" {
			break
		}
		b.WriteString(m)
		rest = rest[len(m):]
	}
	if m := modifierPattern.FindString(rest); m != "" {
		b.WriteString(m)
		rest = rest[len(m):]
	}
	return b.String(), rest
}

// DaysFilter returns the service days of code. Unknown codes run on all days.
func (u *LegendUsecase) DaysFilter(code string) []entity.DayType {
	if days, ok := u.daysFilters[code]; ok {
		out := make([]entity.DayType, len(days))
		copy(out, days)
		return out
	}
	out := make([]entity.DayType, len(entity.AllDays))
	copy(out, entity.AllDays)
	return out
}
