package reconcile

import (
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// substitutionCost weights a substitution as one deletion plus one insertion.
const substitutionCost = 2

// Normalize trims surrounding whitespace and lower-cases s.
func Normalize(s string) string {
	// cases.Caser keeps state, so build one per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Similarity returns an edit-distance ratio in [0,1] between two normalized strings.
// Both strings empty counts as a perfect match.
func Similarity(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0
	}
	lev := &metrics.Levenshtein{
		CaseSensitive: true,
		InsertCost:    1,
		DeleteCost:    1,
		ReplaceCost:   substitutionCost,
	}
	return float64(total-lev.Distance(a, b)) / float64(total)
}
