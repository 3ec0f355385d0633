// Package letters reduces arbitrary text to the 26-letter uppercase alphabet
// the cryptanalysis works on, and splits it into interleaved columns.
package letters

import (
	"unicode/utf8"

	"github.com/jcs242611/vigenere-cipher/internal/bytealg"
)

// AlphabetSize is the number of letters in the Latin alphabet.
const AlphabetSize = 26

// upperTable maps ASCII letters to their uppercase form and everything else to 0.
var upperTable = func() (t [256]byte) {
	for b := byte('A'); b <= 'Z'; b++ {
		t[b] = b
		t[b+0x20] = b
	}
	return t
}()

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return upperTable[b] != 0
}

// Upper returns the uppercase form of an ASCII letter, or 0 for any other byte.
func Upper(b byte) byte {
	return upperTable[b]
}

// Normalize case-folds s to uppercase and drops everything that is not an
// ASCII letter. The result only contains 'A'-'Z' and is never longer than s.
func Normalize(s string) string {
	if validASCII(s) {
		return normalizeASCII(s)
	}

	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= utf8.RuneSelf {
			continue
		}
		if u := upperTable[r]; u != 0 {
			b = append(b, u)
		}
	}
	return string(b)
}

// normalizeASCII is the byte-at-a-time path for input known to be ASCII.
func normalizeASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			goto normalize
		}
	}
	return s

normalize:
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if u := upperTable[s[i]]; u != 0 {
			b = append(b, u)
		}
	}
	return string(b)
}

// Count returns how often each letter occurs in s, case-folded.
func Count(s string) [AlphabetSize]int {
	return bytealg.Histogram(s)
}
