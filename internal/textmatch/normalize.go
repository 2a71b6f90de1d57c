// Package textmatch canonicalizes free-text answers and measures how far a
// typed answer is from an expected one.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes s for comparison:
// - lowercase
// - canonical decomposition with combining marks removed ("José" -> "jose")
// - everything outside [a-z0-9] and whitespace dropped
// - whitespace runs collapsed to one space, ends trimmed
//
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = stripMarks(s)

	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return -1
		}
	}, s)

	return strings.Join(strings.Fields(s), " ")
}

// LastName returns the final whitespace-separated token of the normalized
// form of s, or "" when s normalizes to nothing.
func LastName(s string) string {
	fields := strings.Fields(Normalize(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// stripMarks decomposes s and removes combining diacritical marks.
// A transformer chain keeps internal state, so one is built per call.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
