// Package config loads vigcrack settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jcs242611/vigenere-cipher/crack"
	"github.com/jcs242611/vigenere-cipher/freq"
	"github.com/jcs242611/vigenere-cipher/kasiski"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the file layout. Zero values in a file keep the defaults.
type Config struct {
	Analysis Analysis `yaml:"analysis"`
	Log      Log      `yaml:"log"`
	Output   Output   `yaml:"output"`
}

// Analysis mirrors crack.Options.
type Analysis struct {
	MinRepeatLength int    `yaml:"min_repeat_length"`
	MaxKeyLength    int    `yaml:"max_key_length"`
	ShiftBreadth    int    `yaml:"shift_breadth"`
	CandidateCap    int    `yaml:"candidate_cap"`
	Order           string `yaml:"order"`
	Metric          string `yaml:"metric"`
	Fallback        []int  `yaml:"fallback"`
	FoldDiacritics  bool   `yaml:"fold_diacritics"`
	Workers         int    `yaml:"workers"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Output struct {
	Format string `yaml:"format"` // text or json
	Top    int    `yaml:"top"`    // alternatives printed after the best result
}

// Default returns the built-in settings.
func Default() Config {
	d := crack.DefaultOptions()
	return Config{
		Analysis: Analysis{
			MinRepeatLength: d.MinRepeatLength,
			MaxKeyLength:    d.MaxKeyLength,
			ShiftBreadth:    d.ShiftBreadth,
			CandidateCap:    d.CandidateCap,
			Order:           d.Order.String(),
			Metric:          d.Metric.String(),
			Fallback:        append([]int(nil), kasiski.DefaultFallback...),
		},
		Log:    Log{Level: "info", Format: "text"},
		Output: Output{Format: "text", Top: 4},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.merge(data); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.merge(data); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) merge(data []byte) error {
	// fallback: [] in a file disables the band, a missing key keeps it
	var probe struct {
		Analysis struct {
			Fallback *[]int `yaml:"fallback"`
		} `yaml:"analysis"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	a, f := &c.Analysis, file.Analysis
	setInt(&a.MinRepeatLength, f.MinRepeatLength)
	setInt(&a.MaxKeyLength, f.MaxKeyLength)
	setInt(&a.ShiftBreadth, f.ShiftBreadth)
	setInt(&a.CandidateCap, f.CandidateCap)
	setInt(&a.Workers, f.Workers)
	setString(&a.Order, f.Order)
	setString(&a.Metric, f.Metric)
	if probe.Analysis.Fallback != nil {
		a.Fallback = *probe.Analysis.Fallback
	}
	a.FoldDiacritics = a.FoldDiacritics || f.FoldDiacritics

	setString(&c.Log.Level, file.Log.Level)
	setString(&c.Log.Format, file.Log.Format)
	setString(&c.Output.Format, file.Output.Format)
	setInt(&c.Output.Top, file.Output.Top)
	return nil
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := c.Options(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output format %q", ErrInvalid, c.Output.Format)
	}
	if c.Output.Top < 0 {
		return fmt.Errorf("%w: output top %d < 0", ErrInvalid, c.Output.Top)
	}
	return nil
}

// Options converts the analysis section to crack.Options. The logger is
// left for the caller.
func (c Config) Options() (crack.Options, error) {
	a := c.Analysis
	order, err := crack.ParseOrder(a.Order)
	if err != nil {
		return crack.Options{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	metric, err := freq.ParseMetric(a.Metric)
	if err != nil {
		return crack.Options{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	opts := crack.DefaultOptions()
	opts.MinRepeatLength = a.MinRepeatLength
	opts.MaxKeyLength = a.MaxKeyLength
	opts.ShiftBreadth = a.ShiftBreadth
	opts.CandidateCap = a.CandidateCap
	opts.Order = order
	opts.Metric = metric
	opts.Fallback = append([]int(nil), a.Fallback...)
	opts.FoldDiacritics = a.FoldDiacritics
	opts.Workers = a.Workers
	if err := opts.Validate(); err != nil {
		return crack.Options{}, err
	}
	return opts, nil
}
