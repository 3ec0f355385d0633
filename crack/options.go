package crack

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/jcs242611/vigenere-cipher/freq"
	"github.com/jcs242611/vigenere-cipher/kasiski"
)

// ErrInvalidOptions is returned by New for options outside their bounds.
var ErrInvalidOptions = errors.New("crack: invalid options")

// Hard upper bounds. Candidate generation is at most ShiftBreadth^k per key
// length, so these keep a bad configuration from exploding.
const (
	MaxKeyLengthLimit = 64
	CandidateCapLimit = 10000
)

// Order selects which candidates survive the CandidateCap truncation.
type Order int

const (
	// GenerationOrder keeps the first candidates of the Cartesian product,
	// last key position varying fastest.
	GenerationOrder Order = iota
	// ScoreOrder keeps the candidates with the lowest summed divergence.
	ScoreOrder
)

func (o Order) String() string {
	switch o {
	case GenerationOrder:
		return "generation"
	case ScoreOrder:
		return "score"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "generation":
		return GenerationOrder, nil
	case "score":
		return ScoreOrder, nil
	default:
		return 0, fmt.Errorf("unknown candidate order %q", s)
	}
}

// Options configures an Analyzer.
type Options struct {
	MinRepeatLength int // Kasiski n-gram size
	MaxKeyLength    int
	ShiftBreadth    int // top shifts kept per key position
	CandidateCap    int // keys kept per key length
	Order           Order
	Metric          freq.Metric
	// Fallback is the key length band used when Kasiski finds nothing.
	// An empty band turns the fallback off.
	Fallback []int
	// FoldDiacritics strips accents before normalization (é counts as E).
	FoldDiacritics bool
	// Reference is the expected plaintext letter distribution.
	Reference freq.Distribution
	// Workers evaluating key lengths concurrently; < 1 means GOMAXPROCS.
	Workers int
	Logger  *slog.Logger
}

// DefaultOptions returns the standard configuration: trigrams, key lengths up
// to 5, top 5 shifts, 5 keys per length, English reference.
func DefaultOptions() Options {
	return Options{
		MinRepeatLength: kasiski.DefaultMinLength,
		MaxKeyLength:    kasiski.DefaultMaxLength,
		ShiftBreadth:    5,
		CandidateCap:    5,
		Order:           GenerationOrder,
		Metric:          freq.AbsDiff,
		Fallback:        append([]int(nil), kasiski.DefaultFallback...),
		Reference:       freq.English(),
	}
}

// Validate reports the first option outside its bounds.
func (o Options) Validate() error {
	switch {
	case o.MinRepeatLength < 1:
		return fmt.Errorf("%w: min repeat length %d < 1", ErrInvalidOptions, o.MinRepeatLength)
	case o.MaxKeyLength < 2 || o.MaxKeyLength > MaxKeyLengthLimit:
		return fmt.Errorf("%w: max key length %d not in [2, %d]", ErrInvalidOptions, o.MaxKeyLength, MaxKeyLengthLimit)
	case o.ShiftBreadth < 1 || o.ShiftBreadth > 26:
		return fmt.Errorf("%w: shift breadth %d not in [1, 26]", ErrInvalidOptions, o.ShiftBreadth)
	case o.CandidateCap < 1 || o.CandidateCap > CandidateCapLimit:
		return fmt.Errorf("%w: candidate cap %d not in [1, %d]", ErrInvalidOptions, o.CandidateCap, CandidateCapLimit)
	case o.Order != GenerationOrder && o.Order != ScoreOrder:
		return fmt.Errorf("%w: %v", ErrInvalidOptions, o.Order)
	case o.Metric != freq.AbsDiff && o.Metric != freq.ChiSquared:
		return fmt.Errorf("%w: %v", ErrInvalidOptions, o.Metric)
	case o.Reference.Sum() == 0:
		return fmt.Errorf("%w: empty reference distribution", ErrInvalidOptions)
	}
	return nil
}

func (o Options) workers(jobs int) int {
	n := o.Workers
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	return max(1, min(n, jobs))
}
