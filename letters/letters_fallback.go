package letters

import "math/bits"

func indexMaskGo[T string | []byte](s T, mask byte) int {
	mask32 := uint32(mask)
	mask32 |= mask32 << 8
	mask32 |= mask32 << 16

	pos := 0
	for ; len(s) >= 8; pos, s = pos+8, s[8:] {
		_ = s[7]
		first32 := uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
		second32 := uint32(s[4]) | uint32(s[5])<<8 | uint32(s[6])<<16 | uint32(s[7])<<24
		if (first32|second32)&mask32 != 0 {
			first32 &= mask32
			if first32 != 0 {
				return pos + bits.TrailingZeros32(first32)/8
			}
			second32 &= mask32
			return pos + 4 + bits.TrailingZeros32(second32)/8
		}
	}

	for i := 0; i < len(s); i++ {
		if s[i]&mask != 0 {
			return pos + i
		}
	}
	return -1
}

func isASCIIGo[T string | []byte](s T) bool {
	return indexMaskGo(s, 0x80) == -1
}
