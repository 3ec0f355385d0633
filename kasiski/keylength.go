package kasiski

import (
	"errors"
	"slices"
	"sort"
)

// ErrEmptyKeySpace is returned when no key length survives estimation and
// there is no fallback band to fall back to.
var ErrEmptyKeySpace = errors.New("kasiski: no candidate key lengths")

// DefaultMaxLength bounds the key lengths considered.
const DefaultMaxLength = 5

// DefaultFallback is the band searched when the distances give no usable length.
var DefaultFallback = []int{2, 3, 4, 5}

// GCD returns the greatest common divisor of ds, or 0 for an empty set.
func GCD(ds []int) int {
	g := 0
	for _, d := range ds {
		g = gcd(g, d)
	}
	return g
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Divisors returns the divisors of g within [2, limit], ascending.
// Length 1 is never returned: it is a plain Caesar shift.
func Divisors(g, limit int) []int {
	var out []int
	for d := 2; d <= limit && d <= g; d++ {
		if g%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

// Estimate is the outcome of key length estimation.
type Estimate struct {
	Lengths  []int `json:"lengths"`  // unique, ascending
	GCD      int   `json:"gcd"`      // gcd of all distances, 0 when there were none
	Fallback bool  `json:"fallback"` // Lengths came from the fallback band
}

// Estimator turns Kasiski distances into candidate key lengths.
//
// The candidates are the divisors of the gcd of all distances, bounded by
// MaxLength. A single coincidental repeat can drag the gcd down to 1; Votes
// reports the per-distance view of the same data.
type Estimator struct {
	MaxLength int
	// Fallback is searched when the distances yield nothing. Nil disables it.
	Fallback []int
}

// NewEstimator returns an Estimator with the default bound and fallback band.
func NewEstimator() Estimator {
	return Estimator{MaxLength: DefaultMaxLength, Fallback: DefaultFallback}
}

// Estimate derives candidate key lengths from ds.
func (e Estimator) Estimate(ds []int) (Estimate, error) {
	g := GCD(ds)
	if lengths := Divisors(g, e.MaxLength); len(lengths) > 0 {
		return Estimate{Lengths: lengths, GCD: g}, nil
	}

	var band []int
	for _, k := range e.Fallback {
		if k >= 2 && k <= e.MaxLength {
			band = append(band, k)
		}
	}
	if len(band) == 0 {
		return Estimate{GCD: g}, ErrEmptyKeySpace
	}
	slices.Sort(band)
	return Estimate{Lengths: slices.Compact(band), GCD: g, Fallback: true}, nil
}

// Vote is the number of distances a key length divides.
type Vote struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// Votes counts, for every length in [2, limit], how many distances it divides.
// Results are ordered by count, then by length.
func Votes(ds []int, limit int) []Vote {
	if limit < 2 || len(ds) == 0 {
		return nil
	}
	votes := make([]Vote, 0, limit-1)
	for k := 2; k <= limit; k++ {
		v := Vote{Length: k}
		for _, d := range ds {
			if d%k == 0 {
				v.Count++
			}
		}
		votes = append(votes, v)
	}
	sort.SliceStable(votes, func(i, j int) bool {
		return votes[i].Count > votes[j].Count
	})
	return votes
}
