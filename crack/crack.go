// Package crack recovers the key and plaintext of a Vigenère ciphertext with
// no other input.
//
// The pipeline normalizes the text, estimates key lengths from repeated
// trigrams (Kasiski), scores each length by mean index of coincidence,
// recovers each key position by frequency matching, expands the best shifts
// into a bounded set of keys and ranks the decryptions by index of
// coincidence.
package crack

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jcs242611/vigenere-cipher/freq"
	"github.com/jcs242611/vigenere-cipher/kasiski"
	"github.com/jcs242611/vigenere-cipher/letters"
	"github.com/jcs242611/vigenere-cipher/vigenere"
)

// LengthScore is the diagnostic for one key length hypothesis.
type LengthScore struct {
	Length int      `json:"length"`
	MeanIC float64  `json:"mean_ic"`
	Valid  bool     `json:"valid"` // false when a column is too short for an IC
	Keys   []string `json:"keys,omitempty"`
}

// Report is everything Analyze learned about a ciphertext.
type Report struct {
	Normalized string           `json:"normalized"`
	Distances  []int            `json:"distances"`
	Estimate   kasiski.Estimate `json:"estimate"`
	Votes      []kasiski.Vote   `json:"votes,omitempty"`
	Lengths    []LengthScore    `json:"lengths"`
	Results    []Result         `json:"results"`
}

// Best returns the top ranked result, if any.
func (r Report) Best() (Result, bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}
	return r.Results[0], true
}

// Alternatives returns every ranked result after the best one.
func (r Report) Alternatives() []Result {
	if len(r.Results) < 2 {
		return nil
	}
	return r.Results[1:]
}

// Analyzer runs the pipeline with a fixed configuration. It holds no
// per-call state and is safe for concurrent use.
type Analyzer struct {
	opts    Options
	matcher freq.Matcher
	log     *slog.Logger
}

// New validates opts and returns an Analyzer.
func New(opts Options) (*Analyzer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.Fallback = append([]int(nil), opts.Fallback...)
	log := opts.Logger
	if log == nil {
		log = slog.New(discardHandler{})
	}
	return &Analyzer{
		opts:    opts,
		matcher: freq.NewMatcher(opts.Reference, opts.Metric),
		log:     log.With("comp", "crack"),
	}, nil
}

// Analyze runs the pipeline with DefaultOptions.
func Analyze(ciphertext string) (Report, error) {
	a, err := New(DefaultOptions())
	if err != nil {
		return Report{}, err
	}
	return a.Analyze(ciphertext)
}

// Options returns the analyzer's configuration.
func (a *Analyzer) Options() Options {
	return a.opts
}

func (a *Analyzer) normalize(s string) string {
	if a.opts.FoldDiacritics {
		return letters.NormalizeFold(s)
	}
	return letters.Normalize(s)
}

// KeyLengths runs the key length stages only: Kasiski distances, the gcd
// estimate, factor votes and the mean IC of every candidate length.
func (a *Analyzer) KeyLengths(ciphertext string) (Report, error) {
	rep, err := a.estimate(ciphertext)
	if err != nil {
		return rep, err
	}
	for _, k := range rep.Estimate.Lengths {
		rep.Lengths = append(rep.Lengths, scoreLength(letters.Segment(rep.Normalized, k), k))
	}
	return rep, nil
}

// Analyze recovers candidate keys and plaintexts for ciphertext, best first.
//
// Ciphertext with fewer letters than the repeat length (or two, whichever is
// larger) returns a Report holding only the normalized text and an error
// wrapping freq.ErrInsufficientData.
func (a *Analyzer) Analyze(ciphertext string) (Report, error) {
	t0 := time.Now()
	rep, err := a.estimate(ciphertext)
	if err != nil {
		a.log.Warn("analysis aborted", "stage", "error", "err", err)
		return rep, err
	}

	lengths := rep.Estimate.Lengths
	scores := make([]LengthScore, len(lengths))
	found := make([][]Result, len(lengths))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := a.opts.workers(len(lengths)); w > 0; w-- {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scores[i], found[i] = a.evalLength(rep.Normalized, lengths[i])
			}
		}()
	}
	for i := range lengths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var all []Result
	for _, rs := range found {
		all = append(all, rs...)
	}
	rep.Lengths = scores
	rep.Results = Rank(all)

	a.log.Debug("analysis finished", "stage", "finish",
		"dur_ms", time.Since(t0).Milliseconds(), "count", len(rep.Results))
	return rep, nil
}

func (a *Analyzer) estimate(ciphertext string) (Report, error) {
	text := a.normalize(ciphertext)
	rep := Report{Normalized: text}

	if need := max(2, a.opts.MinRepeatLength); len(text) < need {
		return rep, fmt.Errorf("ciphertext has %d letters, need at least %d: %w",
			len(text), need, freq.ErrInsufficientData)
	}

	rep.Distances = kasiski.FindDistances(text, a.opts.MinRepeatLength)
	est := kasiski.Estimator{MaxLength: a.opts.MaxKeyLength, Fallback: a.opts.Fallback}
	e, err := est.Estimate(rep.Distances)
	rep.Estimate = e
	if err != nil {
		return rep, fmt.Errorf("estimate key length: %w", err)
	}
	rep.Votes = kasiski.Votes(rep.Distances, a.opts.MaxKeyLength)

	a.log.Debug("key lengths estimated", "stage", "estimate",
		"letters", len(text), "distances", len(rep.Distances), "gcd", e.GCD,
		"fallback", e.Fallback, "lengths", e.Lengths)
	return rep, nil
}

func scoreLength(segs []string, k int) LengthScore {
	ic, err := freq.MeanIC(segs)
	return LengthScore{Length: k, MeanIC: ic, Valid: err == nil}
}

func (a *Analyzer) evalLength(text string, k int) (LengthScore, []Result) {
	segs := letters.Segment(text, k)
	score := scoreLength(segs, k)

	ranked := make([][]freq.ShiftCandidate, k)
	for j, seg := range segs {
		ranked[j] = a.matcher.Rank(seg)
	}
	keys := Candidates(ranked, a.opts.ShiftBreadth, a.opts.CandidateCap, a.opts.Order)
	score.Keys = keys

	results := make([]Result, len(keys))
	for i, key := range keys {
		results[i] = Result{
			Key:       key,
			Plaintext: vigenere.DecryptNormalized(text, key),
			KeyLength: k,
		}
	}

	a.log.Debug("key length evaluated", "stage", "length",
		"length", k, "mean_ic", score.MeanIC, "valid", score.Valid, "keys", len(keys))
	return score, results
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
