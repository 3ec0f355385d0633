package bytealg

// letterIndex maps a byte to its 0-based alphabet index, or 0xFF for non-letters.
// Both cases map to the same index.
var letterIndex = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xFF
	}
	for b := byte('A'); b <= 'Z'; b++ {
		t[b] = b - 'A'
		t[b+0x20] = b - 'A'
	}
	return t
}()

// Histogram counts the ASCII letters in s, folding case.
// All other bytes are ignored.
func Histogram(s string) [26]int {
	// four interleaved tables so consecutive equal bytes don't serialize on one counter
	var h0, h1, h2, h3 [27]int
	for ; len(s) >= 4; s = s[4:] {
		_ = s[3]
		h0[slot(s[0])]++
		h1[slot(s[1])]++
		h2[slot(s[2])]++
		h3[slot(s[3])]++
	}
	for i := 0; i < len(s); i++ {
		h0[slot(s[i])]++
	}

	var h [26]int
	for i := range h {
		h[i] = h0[i] + h1[i] + h2[i] + h3[i]
	}
	return h
}

// slot returns the histogram slot for b; slot 26 collects non-letters.
func slot(b byte) byte {
	idx := letterIndex[b]
	if idx == 0xFF {
		return 26
	}
	return idx
}

// Total returns the number of letters counted in h.
func Total(h *[26]int) int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// LetterIndex returns the alphabet index of b and whether b is an ASCII letter.
func LetterIndex(b byte) (int, bool) {
	idx := letterIndex[b]
	return int(idx), idx != 0xFF
}
