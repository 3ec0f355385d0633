package letters

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeFold is Normalize preceded by Fold, so that "Élan" yields "ELAN"
// instead of "LAN". Letters without an ASCII base (ß, ø, Cyrillic, ...) are
// still dropped.
func NormalizeFold(s string) string {
	if validASCII(s) {
		return normalizeASCII(s)
	}
	return Normalize(Fold(s))
}

// Fold strips combining marks from s and leaves everything else, case and
// punctuation included, in place.
func Fold(s string) string {
	if validASCII(s) {
		return s
	}
	// transformers keep state, so each call gets its own chain
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return folded
}
