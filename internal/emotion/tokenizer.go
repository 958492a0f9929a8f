package emotion

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes, strips combining marks, and recomposes, so "ansiosa"
// and "ansiósa" normalize to the same token sequence.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and removes diacritics.
func Normalize(text string) string {
	folded, _, err := transform.String(foldMarks, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}

// Tokenize normalizes text and splits it into word tokens, treating every
// non-letter, non-digit rune as a separator. Empty input yields no tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(Normalize(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
