// Package vigenere implements the classical Vigenère cipher over A-Z.
//
// It is a teaching cipher with no security value.
package vigenere

import (
	"errors"
	"strings"

	"github.com/jcs242611/vigenere-cipher/letters"
)

// ErrInvalidKey is returned for a key that contains no letters.
var ErrInvalidKey = errors.New("vigenere: key has no letters")

// EncryptLetter shifts uppercase letter c forward by shift positions.
func EncryptLetter(c byte, shift int) byte {
	return byte('A' + mod26(int(c-'A')+shift))
}

// DecryptLetter shifts uppercase letter c back by shift positions:
// P = (C - K) mod 26.
func DecryptLetter(c byte, shift int) byte {
	return byte('A' + mod26(int(c-'A')-shift))
}

func mod26(x int) int {
	x %= 26
	if x < 0 {
		x += 26
	}
	return x
}

// Encrypt applies key to the letters of text. Non-letters are copied through
// and do not consume a key letter; letter case is preserved.
func Encrypt(text, key string) (string, error) {
	return apply(text, key, EncryptLetter)
}

// Decrypt is the inverse of Encrypt.
func Decrypt(text, key string) (string, error) {
	return apply(text, key, DecryptLetter)
}

func apply(text, key string, fn func(byte, int) byte) (string, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	k := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		u := letters.Upper(c)
		if u == 0 {
			b.WriteByte(c)
			continue
		}
		out := fn(u, shifts[k%len(shifts)])
		if c != u {
			out += 0x20
		}
		b.WriteByte(out)
		k++
	}
	return b.String(), nil
}

func keyShifts(key string) ([]int, error) {
	norm := letters.Normalize(key)
	if norm == "" {
		return nil, ErrInvalidKey
	}
	shifts := make([]int, len(norm))
	for i := 0; i < len(norm); i++ {
		shifts[i] = int(norm[i] - 'A')
	}
	return shifts, nil
}

// DecryptNormalized decrypts text that is already normalized (A-Z only) with
// a normalized key. It skips validation and is used on the analysis hot path.
func DecryptNormalized(text, key string) string {
	b := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		b[i] = DecryptLetter(text[i], int(key[i%len(key)]-'A'))
	}
	return string(b)
}
