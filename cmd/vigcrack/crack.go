package main

import (
	"github.com/spf13/cobra"

	"github.com/jcs242611/vigenere-cipher/crack"
	"github.com/jcs242611/vigenere-cipher/internal/diag"
)

func newCrackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Recover key and plaintext from ciphertext",
		Long: `Run the whole attack and print the best key, the plaintext with its
original spacing and punctuation, the runner-up keys and the per key length
diagnostics.

EXAMPLES:
  vigcrack crack -t "Pspqmtorccw gc wgwtji jpoigxk mevqoptow dbsk geldmlq xm zylswf."
  vigcrack crack -f secret.txt --max-key-length 8 --order score
  vigcrack crack -f secret.txt.gz --format json --top 10`,
		Args: cobra.NoArgs,
		RunE: a.runCrack,
	}
	addInputFlags(cmd)
	addAnalysisFlags(cmd)
	cmd.Flags().Int("top", 0, "Alternatives to print after the best result (default from config: 4)")
	return cmd
}

func (a *app) runCrack(cmd *cobra.Command, _ []string) error {
	if err := a.applyFlags(cmd); err != nil {
		return err
	}
	raw, err := a.readInput(cmd)
	if err != nil {
		return err
	}
	an, err := a.analyzer()
	if err != nil {
		return err
	}

	t := diag.Start(a.log, "crack", "analyzing ciphertext", "bytes", len(raw))
	rep, err := an.Analyze(raw)
	if err != nil {
		t.Fail(err)
		return err
	}
	t.Finish("analysis done", len(rep.Results))

	out, err := newCrackOutput(raw, rep, a.cfg)
	if err != nil {
		return err
	}
	return a.write(cmd, out)
}

func newKeyLengthsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keylengths",
		Short: "Estimate the key length only",
		Long: `Print the Kasiski distances, the gcd based key length estimate, the
factor votes and the mean index of coincidence of every candidate length.
English text scores near 0.067 at the right length, random text near 0.038.`,
		Args: cobra.NoArgs,
		RunE: a.runKeyLengths,
	}
	addInputFlags(cmd)
	addAnalysisFlags(cmd)
	return cmd
}

func (a *app) runKeyLengths(cmd *cobra.Command, _ []string) error {
	if err := a.applyFlags(cmd); err != nil {
		return err
	}
	raw, err := a.readInput(cmd)
	if err != nil {
		return err
	}
	an, err := a.analyzer()
	if err != nil {
		return err
	}

	t := diag.Start(a.log, "keylengths", "estimating key length", "bytes", len(raw))
	rep, err := an.KeyLengths(raw)
	if err != nil {
		t.Fail(err)
		return err
	}
	t.Finish("estimate done", len(rep.Lengths))
	return a.write(cmd, newKeyLengthsOutput(rep))
}

func addAnalysisFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("format", "", "Output format (text, json)")
	f.Int("min-repeat", 0, "Length of the repeated sequences Kasiski looks for")
	f.Int("max-key-length", 0, "Largest key length considered")
	f.Int("breadth", 0, "Best shifts kept per key position")
	f.Int("cap", 0, "Candidate keys kept per key length")
	f.String("order", "", "Which candidates survive the cap (generation, score)")
	f.String("metric", "", "Frequency distance (absdiff, chi2)")
	f.IntSlice("fallback", nil, "Key lengths tried when no repeats are found")
	f.Bool("fold-diacritics", false, "Count accented letters as their base letter")
	f.Int("workers", 0, "Key lengths evaluated concurrently (0: one per CPU)")
}

// applyFlags copies every flag set on the command line over the config.
func (a *app) applyFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	an := &a.cfg.Analysis
	ints := map[string]*int{
		"min-repeat":     &an.MinRepeatLength,
		"max-key-length": &an.MaxKeyLength,
		"breadth":        &an.ShiftBreadth,
		"cap":            &an.CandidateCap,
		"workers":        &an.Workers,
		"top":            &a.cfg.Output.Top,
	}
	for name, dst := range ints {
		if f.Changed(name) {
			*dst, _ = f.GetInt(name)
		}
	}
	strs := map[string]*string{
		"order":  &an.Order,
		"metric": &an.Metric,
		"format": &a.cfg.Output.Format,
	}
	for name, dst := range strs {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	if f.Changed("fallback") {
		an.Fallback, _ = f.GetIntSlice("fallback")
	}
	if f.Changed("fold-diacritics") {
		an.FoldDiacritics, _ = f.GetBool("fold-diacritics")
	}
	return a.cfg.Validate()
}

func (a *app) analyzer() (*crack.Analyzer, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = a.log
	return crack.New(opts)
}
