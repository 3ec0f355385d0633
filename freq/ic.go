package freq

import (
	"errors"
	"fmt"

	"github.com/jcs242611/vigenere-cipher/internal/bytealg"
)

// ErrInsufficientData is returned when a statistic is undefined because the
// text is too short.
var ErrInsufficientData = errors.New("freq: insufficient data")

// Typical index of coincidence values.
const (
	EnglishIC = 0.0667
	RandomIC  = 1.0 / 26
)

// IC returns the index of coincidence of s: the probability that two letters
// drawn without replacement are equal. Only letters count, case-folded.
func IC(s string) (float64, error) {
	h := bytealg.Histogram(s)
	return ICCounts(h, bytealg.Total(&h))
}

// ICCounts computes Σ c(c-1) / (n(n-1)) for letter counts h over n letters.
func ICCounts(h [26]int, n int) (float64, error) {
	if n < 2 {
		return 0, fmt.Errorf("index of coincidence over %d letters: %w", n, ErrInsufficientData)
	}
	var sum int
	for _, c := range h {
		sum += c * (c - 1)
	}
	return float64(sum) / (float64(n) * float64(n-1)), nil
}

// MeanIC averages the index of coincidence of each segment. It fails if
// there are no segments or any segment has fewer than two letters.
func MeanIC(segs []string) (float64, error) {
	if len(segs) == 0 {
		return 0, fmt.Errorf("mean index of coincidence: no segments: %w", ErrInsufficientData)
	}
	var total float64
	for j, seg := range segs {
		ic, err := IC(seg)
		if err != nil {
			return 0, fmt.Errorf("segment %d: %w", j, err)
		}
		total += ic
	}
	return total / float64(len(segs)), nil
}
