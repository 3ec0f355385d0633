package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/jcs242611/vigenere-cipher/internal/diag"
)

// maxInput bounds how much text one invocation reads.
const maxInput = 64 << 20

var errNoInput = errors.New("no input text provided. Use --text, --file, or pipe to stdin")

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "Input text")
	cmd.Flags().StringP("file", "f", "", "Input file, - for stdin (.gz is decompressed)")
}

// readInput returns --text, else the contents of --file, else stdin.
func (a *app) readInput(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}

	path, _ := cmd.Flags().GetString("file")
	src := "stdin"
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", path, err)
		}
		defer f.Close()
		r, src = f, path
	}

	t := diag.Start(a.log, "input", "reading input", "source", src)
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(r)
		if err != nil {
			t.Fail(err)
			return "", fmt.Errorf("failed to decompress %s: %w", src, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInput+1))
	if err != nil {
		t.Fail(err)
		return "", fmt.Errorf("failed to read %s: %w", src, err)
	}
	if len(data) > maxInput {
		return "", fmt.Errorf("input %s is larger than %d bytes", src, maxInput)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return "", errNoInput
	}
	t.Finish("input read", len(data))
	return string(data), nil
}
