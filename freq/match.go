package freq

import (
	"fmt"
	"math"
	"sort"
)

// Metric measures how far a reconstructed distribution is from the reference.
type Metric int

const (
	// AbsDiff is the sum of absolute differences over all letters.
	AbsDiff Metric = iota
	// ChiSquared is Σ (observed-expected)² / expected, skipping letters the
	// reference gives zero weight.
	ChiSquared
)

func (m Metric) String() string {
	switch m {
	case AbsDiff:
		return "absdiff"
	case ChiSquared:
		return "chi2"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric is the inverse of Metric.String.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", "absdiff":
		return AbsDiff, nil
	case "chi2", "chisquared":
		return ChiSquared, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", s)
	}
}

func (m Metric) distance(ref, obs *Distribution) float64 {
	var d float64
	switch m {
	case ChiSquared:
		for i := range ref {
			if ref[i] != 0 {
				diff := obs[i] - ref[i]
				d += diff * diff / ref[i]
			}
		}
	default:
		for i := range ref {
			d += math.Abs(ref[i] - obs[i])
		}
	}
	return d
}

// ShiftCandidate is one Caesar shift and how poorly it matches the reference.
type ShiftCandidate struct {
	Shift      int
	Divergence float64
}

// Letter returns the key letter that produces this shift.
func (c ShiftCandidate) Letter() byte {
	return byte('A' + c.Shift)
}

// Matcher ranks the 26 Caesar shifts of a segment against a reference
// distribution.
type Matcher struct {
	ref    Distribution
	metric Metric
}

// NewMatcher returns a Matcher comparing against ref with the given metric.
func NewMatcher(ref Distribution, metric Metric) Matcher {
	return Matcher{ref: ref, metric: metric}
}

// Reference returns a copy of the matcher's reference distribution.
func (m Matcher) Reference() Distribution {
	return m.ref
}

// Rank returns all 26 shifts of segment, best match first. Ties keep
// ascending shift order.
//
// A short or non-English segment still gets a full ranking; it is just not
// a meaningful one.
func (m Matcher) Rank(segment string) []ShiftCandidate {
	obs := Observe(segment)
	out := make([]ShiftCandidate, 26)
	for s := range out {
		shifted := obs.Shift(s)
		out[s] = ShiftCandidate{Shift: s, Divergence: m.metric.distance(&m.ref, &shifted)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Divergence < out[j].Divergence
	})
	return out
}

// Best returns the single best shift for segment.
func (m Matcher) Best(segment string) ShiftCandidate {
	return m.Rank(segment)[0]
}
