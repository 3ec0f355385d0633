package crack

import (
	"sort"

	"github.com/jcs242611/vigenere-cipher/freq"
)

// Result is one decryption attempt.
type Result struct {
	Key       string  `json:"key"`
	Plaintext string  `json:"plaintext"`
	IC        float64 `json:"ic"`
	KeyLength int     `json:"key_length"`
}

// Rank re-scores every result by the index of coincidence of its whole
// plaintext and returns them best first. Equal scores keep their input
// order. A plaintext with fewer than two letters scores 0. The input slice
// is not modified.
func Rank(results []Result) []Result {
	out := make([]Result, len(results))
	for i, r := range results {
		ic, err := freq.IC(r.Plaintext)
		if err != nil {
			ic = 0
		}
		r.IC = ic
		out[i] = r
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IC > out[j].IC
	})
	return out
}
