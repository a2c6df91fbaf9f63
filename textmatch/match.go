// Package textmatch holds the single case and accent insensitive matcher
// shared by reward triggers and event search.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case and strips diacritics, so "Titãs" and "TITAS" compare equal.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	// Casers carry state, so one is built per call.
	return cases.Fold().String(stripped)
}

// Contains reports whether needle appears in haystack after normalization.
// Only an empty needle matches everything; whitespace is significant.
func Contains(haystack, needle string) bool {
	n := Normalize(needle)
	if n == "" {
		return true
	}
	return strings.Contains(Normalize(haystack), n)
}

// ContainsAny reports whether needle appears in any of the fields.
func ContainsAny(needle string, fields ...string) bool {
	n := Normalize(needle)
	if n == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(Normalize(f), n) {
			return true
		}
	}
	return false
}
