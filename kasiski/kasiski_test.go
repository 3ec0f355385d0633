package kasiski

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeats(t *testing.T) {
	tests := []struct {
		text string
		n    int
		want []Repeat
	}{
		{"", 3, nil},
		{"AB", 3, nil},
		{"ABCDEF", 3, nil},
		{"ABCXABC", 3, []Repeat{{"ABC", []int{0, 4}}}},
		{"AAAA", 3, []Repeat{{"AAA", []int{0, 1}}}},
		{"ABCZZABCYYABC", 3, []Repeat{{"ABC", []int{0, 5, 10}}}},
		{"ABAB", 2, []Repeat{{"AB", []int{0, 2}}}},
		{"XYZXYZ", 0, []Repeat{{"XYZ", []int{0, 3}}}},
		// first-occurrence order, not lexical
		{"QRSABCQRSABC", 3, []Repeat{
			{"QRS", []int{0, 6}},
			{"RSA", []int{1, 7}},
			{"SAB", []int{2, 8}},
			{"ABC", []int{3, 9}},
		}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Repeats(tt.text, tt.n), "Repeats(%q, %d)", tt.text, tt.n)
	}
}

func TestDistances(t *testing.T) {
	reps := []Repeat{
		{"ABC", []int{0, 5, 10}},
		{"XYZ", []int{3, 15}},
	}
	assert.Equal(t, []int{5, 5, 12}, Distances(reps))
	assert.Nil(t, Distances(nil))
}

func TestFindDistancesSample(t *testing.T) {
	// normalized form of the classic short sample; only "CWG" repeats
	text := "PSPQMTORCCWGCWGWTJIJPOIGXKMEVQOPTOWDBSKGELDMLQXMZYLSWF"
	assert.Equal(t, []int{3}, FindDistances(text, 3))
	assert.Empty(t, FindDistances("TOMVWMZ", 8))
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 0, GCD(nil))
	assert.Equal(t, 7, GCD([]int{7}))
	assert.Equal(t, 4, GCD([]int{8, 12, 20}))
	assert.Equal(t, 1, GCD([]int{8, 12, 9}))
}

func TestDivisors(t *testing.T) {
	assert.Equal(t, []int{2, 3, 4, 6}, Divisors(12, 10))
	assert.Equal(t, []int{2, 3, 4}, Divisors(12, 5))
	assert.Nil(t, Divisors(1, 5))
	assert.Nil(t, Divisors(0, 5))
	assert.Nil(t, Divisors(7, 5))
}

func TestEstimate(t *testing.T) {
	e := NewEstimator()

	est, err := e.Estimate([]int{8, 12, 20})
	require.NoError(t, err)
	assert.Equal(t, Estimate{Lengths: []int{2, 4}, GCD: 4}, est)

	est, err = e.Estimate([]int{3})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, est.Lengths)
	assert.False(t, est.Fallback)
}

func TestEstimateFallback(t *testing.T) {
	e := NewEstimator()

	for _, ds := range [][]int{nil, {7, 14}, {5, 7}} {
		est, err := e.Estimate(ds)
		require.NoError(t, err)
		assert.True(t, est.Fallback, "distances %v", ds)
		assert.Equal(t, []int{2, 3, 4, 5}, est.Lengths)
	}
}

func TestEstimateFallbackClipped(t *testing.T) {
	e := Estimator{MaxLength: 3, Fallback: []int{5, 2, 3, 3, 1}}
	est, err := e.Estimate(nil)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, est.Lengths)
}

func TestEstimateEmptyKeySpace(t *testing.T) {
	_, err := Estimator{MaxLength: 5}.Estimate(nil)
	assert.ErrorIs(t, err, ErrEmptyKeySpace)

	_, err = Estimator{MaxLength: 1, Fallback: DefaultFallback}.Estimate([]int{4})
	assert.ErrorIs(t, err, ErrEmptyKeySpace)
}

func TestVotes(t *testing.T) {
	// 1 is the gcd here, but 4 divides most distances
	ds := []int{8, 12, 20, 9}
	votes := Votes(ds, 5)
	require.Len(t, votes, 4)
	assert.Equal(t, Vote{Length: 2, Count: 3}, votes[0])
	assert.Equal(t, Vote{Length: 4, Count: 3}, votes[1])
	assert.Equal(t, Vote{Length: 3, Count: 2}, votes[2])
	assert.Equal(t, Vote{Length: 5, Count: 1}, votes[3])

	assert.Nil(t, Votes(nil, 5))
	assert.Nil(t, Votes(ds, 1))
}
