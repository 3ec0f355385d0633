// Package kasiski implements the Kasiski examination: repeated n-grams in a
// Vigenère ciphertext tend to recur at multiples of the key length.
package kasiski

// DefaultMinLength is the n-gram size used when none is given.
const DefaultMinLength = 3

// Repeat is an n-gram that occurs more than once, with every start position
// in ascending order.
type Repeat struct {
	Gram      string
	Positions []int
}

// Repeats slides an n-byte window across t (step 1, overlapping) and returns
// the n-grams that occur at least twice, ordered by first occurrence.
// n < 1 means DefaultMinLength. Text shorter than n has no repeats.
func Repeats(t string, n int) []Repeat {
	if n < 1 {
		n = DefaultMinLength
	}
	if len(t) < n {
		return nil
	}

	positions := make(map[string][]int)
	var order []string
	for i := 0; i+n <= len(t); i++ {
		gram := t[i : i+n]
		if _, seen := positions[gram]; !seen {
			order = append(order, gram)
		}
		positions[gram] = append(positions[gram], i)
	}

	var reps []Repeat
	for _, gram := range order {
		if pos := positions[gram]; len(pos) > 1 {
			reps = append(reps, Repeat{Gram: gram, Positions: pos})
		}
	}
	return reps
}

// Distances returns the gap between each pair of consecutive occurrences of
// every repeat. The result is a multiset: equal gaps appear once per pair.
func Distances(reps []Repeat) []int {
	var ds []int
	for _, r := range reps {
		for i := 1; i < len(r.Positions); i++ {
			ds = append(ds, r.Positions[i]-r.Positions[i-1])
		}
	}
	return ds
}

// FindDistances is Distances(Repeats(t, n)).
func FindDistances(t string, n int) []int {
	return Distances(Repeats(t, n))
}
