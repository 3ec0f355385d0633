//go:build !amd64

package letters

func validASCII(s string) bool {
	return isASCIIGo(s)
}
