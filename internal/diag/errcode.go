package diag

import (
	"errors"
	"io/fs"

	"github.com/jcs242611/vigenere-cipher/crack"
	"github.com/jcs242611/vigenere-cipher/internal/config"
	"github.com/jcs242611/vigenere-cipher/freq"
	"github.com/jcs242611/vigenere-cipher/kasiski"
	"github.com/jcs242611/vigenere-cipher/vigenere"
)

// Code is a coarse error class used in logs and for exit statuses.
type Code string

const (
	CodeUnknown          Code = "unknown"
	CodeInsufficientData Code = "insufficient_data"
	CodeEmptyKeySpace    Code = "empty_key_space"
	CodeInvalidInput     Code = "invalid_input"
	CodeIO               Code = "io"
)

// Classify maps err onto a Code using sentinel errors only.
func Classify(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	if errors.Is(err, freq.ErrInsufficientData) {
		return CodeInsufficientData
	}
	if errors.Is(err, kasiski.ErrEmptyKeySpace) {
		return CodeEmptyKeySpace
	}
	if errors.Is(err, vigenere.ErrInvalidKey) || errors.Is(err, crack.ErrInvalidOptions) ||
		errors.Is(err, config.ErrInvalid) {
		return CodeInvalidInput
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return CodeIO
	}
	return CodeUnknown
}

// ExitCode maps a Code to a process exit status.
func ExitCode(c Code) int {
	switch c {
	case CodeInsufficientData, CodeEmptyKeySpace:
		return 3
	case CodeInvalidInput:
		return 2
	case CodeIO:
		return 4
	default:
		return 1
	}
}
