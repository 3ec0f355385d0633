package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcs242611/vigenere-cipher/vigenere"
)

func newCipherCmd(a *app, op string) *cobra.Command {
	fn := vigenere.Encrypt
	short := "Encrypt text with a known key"
	if op == "decrypt" {
		fn = vigenere.Decrypt
		short = "Decrypt text with a known key"
	}

	cmd := &cobra.Command{
		Use:   op,
		Short: short,
		Long: short + `. Only the letters A-Z are shifted and only they advance
the key; case and everything else pass through unchanged.

EXAMPLE:
  vigcrack ` + op + ` --key LEMON --text "Attack at dawn!"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, _ := cmd.Flags().GetString("key")
			text, err := a.readInput(cmd)
			if err != nil {
				return err
			}
			out, err := fn(text, key)
			if err != nil {
				return fmt.Errorf("%s with key %q: %w", op, key, err)
			}
			a.log.Debug("cipher applied", "comp", "cli", "op", op, "count", len(out))
			if !strings.HasSuffix(out, "\n") {
				out += "\n"
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	addInputFlags(cmd)
	cmd.Flags().StringP("key", "k", "", "Cipher key (letters only count)")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
