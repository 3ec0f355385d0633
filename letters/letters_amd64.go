package letters

import (
	segascii "github.com/segmentio/asm/ascii"
	"golang.org/x/sys/cpu"
)

var hasAVX2 = cpu.X86.HasAVX2

func validASCII(s string) bool {
	if hasAVX2 && len(s) >= 32 {
		return segascii.ValidString(s)
	}

	return isASCIIGo(s)
}
