package letters

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	segascii "github.com/segmentio/asm/ascii"
	"github.com/stretchr/testify/assert"
)

func makeASCII(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rand.Uint32() & 0x7f)
	}
	return data
}

func onlyUpper(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "ABC"},
		{"ABC", "ABC"},
		{"Hello, World!", "HELLOWORLD"},
		{"...!?", ""},
		{"   \t\n", ""},
		{"a1b2c3", "ABC"},
		{"[`@{", ""},
		{"Pspqmtorccw gc wgwtji jpoigxk mevqoptow dbsk geldmlq xm zylswf.",
			"PSPQMTORCCWGCWGWTJIJPOIGXKMEVQOPTOWDBSKGELDMLQXMZYLSWF"},
		{"naïve café", "NAVECAF"},
		{"Жa☺b", "AB"},
		{"a\xffb", "AB"},
		{strings.Repeat("xY.", 40), strings.Repeat("XY", 40)},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for n := 0; n < 200; n++ {
		s := string(makeASCII(n))
		once := Normalize(s)
		assert.True(t, onlyUpper(once), "Normalize(%q) = %q has non A-Z bytes", s, once)
		assert.LessOrEqual(t, len(once), len(s))
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalizeFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain ascii", "PLAINASCII"},
		{"Élan", "ELAN"},
		{"naïve café", "NAIVECAFE"},
		{"straße", "STRAE"},
		{"Ångström", "ANGSTROM"},
	}

	for _, tt := range tests {
		if got := NormalizeFold(tt.in); got != tt.want {
			t.Errorf("NormalizeFold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"Hello, world!", "Hello, world!"},
		{"Élan, naïve café.", "Elan, naive cafe."},
		{"straße", "straße"},
	}

	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsLetter(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
		if got := IsLetter(byte(b)); got != want {
			t.Errorf("IsLetter(%#x) = %v, want %v", b, got, want)
		}
		if want {
			assert.Equal(t, byte(strings.ToUpper(string(rune(b)))[0]), Upper(byte(b)))
		} else {
			assert.Zero(t, Upper(byte(b)))
		}
	}
}

func TestValidASCII(t *testing.T) {
	for i := 0; i < 200; i++ {
		data := makeASCII(i)
		if !validASCII(string(data)) {
			t.Fatalf("validASCII(%q) = false; want true", data)
		}
		if i == 0 {
			continue
		}
		idx := rand.Intn(i)
		data[idx] |= 0x80
		if validASCII(string(data)) {
			t.Fatalf("validASCII(%q) = true; want false", data)
		}
		assert.Equal(t, idx, indexMaskGo(data, 0x80))
	}
}

func TestCount(t *testing.T) {
	c := Count("Aa bB zz!")
	assert.Equal(t, 2, c[0])
	assert.Equal(t, 2, c[1])
	assert.Equal(t, 2, c[25])
	assert.Equal(t, 0, c[2])
}

func FuzzNormalize(f *testing.F) {
	f.Add("")
	f.Add("Hello, World!")
	f.Add("naïve café")
	f.Add("\xff\xfeabc")
	f.Fuzz(func(t *testing.T, s string) {
		once := Normalize(s)
		if !onlyUpper(once) {
			t.Fatalf("Normalize(%q) = %q has non A-Z bytes", s, once)
		}
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent: %q -> %q -> %q", s, once, twice)
		}
		if folded := NormalizeFold(s); !onlyUpper(folded) {
			t.Fatalf("NormalizeFold(%q) = %q has non A-Z bytes", s, folded)
		}
	})
}

func BenchmarkNormalize(b *testing.B) {
	for _, n := range []int{7, 44, 1000, 100000} {
		s := string(makeASCII(n))

		b.Run(fmt.Sprintf("go-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				isASCIIGo(s)
			}
		})

		b.Run(fmt.Sprintf("segment-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				segascii.ValidString(s)
			}
		})

		b.Run(fmt.Sprintf("normalize-%d", n), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				Normalize(s)
			}
		})
	}
}
