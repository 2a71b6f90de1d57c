package textmatch

import (
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// LongTargetLength is the normalized length from which a target tolerates
// two edits instead of one.
const LongTargetLength = 7

// Distance returns the Levenshtein distance between a and b, counting
// insertions, deletions and substitutions at cost 1 each. Transpositions are
// two substitutions. Callers pass normalized strings.
func Distance(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// Tolerance returns the largest edit distance accepted against target.
// Short targets tolerate less absolute error.
func Tolerance(target string) int {
	if utf8.RuneCountInString(target) >= LongTargetLength {
		return 2
	}
	return 1
}

// WithinTolerance reports the distance between input and target and whether
// it is small enough to count as a misspelling of target. Empty targets never
// match.
func WithinTolerance(input, target string) (int, bool) {
	if target == "" || input == "" {
		return -1, false
	}
	d := Distance(input, target)
	return d, d <= Tolerance(target)
}
