package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcs242611/vigenere-cipher/crack"
	"github.com/jcs242611/vigenere-cipher/internal/config"
	"github.com/jcs242611/vigenere-cipher/kasiski"
	"github.com/jcs242611/vigenere-cipher/letters"
	"github.com/jcs242611/vigenere-cipher/vigenere"
)

// previewLen caps the plaintext shown per alternative in text output.
const previewLen = 48

type textWriter interface {
	writeText(w io.Writer) error
}

// write renders v as JSON or text depending on the output format.
func (a *app) write(cmd *cobra.Command, v textWriter) error {
	w := cmd.OutOrStdout()
	if a.cfg.Output.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return v.writeText(w)
}

type crackOutput struct {
	Key          string              `json:"key"`
	KeyLength    int                 `json:"key_length"`
	IC           float64             `json:"ic"`
	Plaintext    string              `json:"plaintext"`
	Alternatives []crack.Result      `json:"alternatives"`
	Distances    []int               `json:"distances"`
	Estimate     kasiski.Estimate    `json:"estimate"`
	Votes        []kasiski.Vote      `json:"votes,omitempty"`
	Lengths      []crack.LengthScore `json:"lengths"`
}

func newCrackOutput(raw string, rep crack.Report, cfg config.Config) (crackOutput, error) {
	best, _ := rep.Best()
	alts := rep.Alternatives()
	if len(alts) > cfg.Output.Top {
		alts = alts[:cfg.Output.Top]
	}

	// decrypt the raw text so case and punctuation survive
	src := raw
	if cfg.Analysis.FoldDiacritics {
		src = letters.Fold(raw)
	}
	plain, err := vigenere.Decrypt(src, best.Key)
	if err != nil {
		return crackOutput{}, fmt.Errorf("restore plaintext: %w", err)
	}

	return crackOutput{
		Key:          best.Key,
		KeyLength:    best.KeyLength,
		IC:           best.IC,
		Plaintext:    strings.TrimRight(plain, "\r\n"),
		Alternatives: alts,
		Distances:    rep.Distances,
		Estimate:     rep.Estimate,
		Votes:        rep.Votes,
		Lengths:      rep.Lengths,
	}, nil
}

func (o crackOutput) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "key:        %s (length %d, IC %.4f)\n", o.Key, o.KeyLength, o.IC)
	fmt.Fprintf(&b, "plaintext:  %s\n", o.Plaintext)

	if len(o.Alternatives) > 0 {
		b.WriteString("\nalternatives:\n")
		for _, r := range o.Alternatives {
			fmt.Fprintf(&b, "  %-*s  %.4f  %s\n", maxKeyWidth(o.Alternatives), r.Key, r.IC, preview(r.Plaintext))
		}
	}

	b.WriteString("\nkey lengths:\n")
	writeLengths(&b, o.Estimate, o.Lengths)
	_, err := io.WriteString(w, b.String())
	return err
}

type keyLengthsOutput struct {
	Letters   int                 `json:"letters"`
	Distances []int               `json:"distances"`
	Estimate  kasiski.Estimate    `json:"estimate"`
	Votes     []kasiski.Vote      `json:"votes,omitempty"`
	Lengths   []crack.LengthScore `json:"lengths"`
}

func newKeyLengthsOutput(rep crack.Report) keyLengthsOutput {
	return keyLengthsOutput{
		Letters:   len(rep.Normalized),
		Distances: rep.Distances,
		Estimate:  rep.Estimate,
		Votes:     rep.Votes,
		Lengths:   rep.Lengths,
	}
}

func (o keyLengthsOutput) writeText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "letters:    %d\n", o.Letters)
	fmt.Fprintf(&b, "distances:  %s\n", joinInts(o.Distances))
	if len(o.Votes) > 0 {
		b.WriteString("votes:     ")
		for _, v := range o.Votes {
			fmt.Fprintf(&b, " %d:%d", v.Length, v.Count)
		}
		b.WriteByte('\n')
	}
	writeLengths(&b, o.Estimate, o.Lengths)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeLengths(b *strings.Builder, est kasiski.Estimate, lengths []crack.LengthScore) {
	if est.Fallback {
		b.WriteString("  no repeated sequences, trying the fallback lengths\n")
	} else {
		fmt.Fprintf(b, "  gcd %d\n", est.GCD)
	}
	for _, ls := range lengths {
		ic := "n/a"
		if ls.Valid {
			ic = fmt.Sprintf("%.4f", ls.MeanIC)
		}
		fmt.Fprintf(b, "  %2d  mean IC %s", ls.Length, ic)
		if len(ls.Keys) > 0 {
			fmt.Fprintf(b, "  keys %s", strings.Join(ls.Keys, " "))
		}
		b.WriteByte('\n')
	}
}

func maxKeyWidth(rs []crack.Result) int {
	w := 0
	for _, r := range rs {
		w = max(w, len(r.Key))
	}
	return w
}

func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	return s[:previewLen] + "..."
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "none"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}
