package letters

import "strings"

// Segment splits t into k columns: byte i of t goes to column i mod k, in
// order. Columns hold the letters a single key position was applied to.
// Segment returns nil for k < 1.
func Segment(t string, k int) []string {
	if k < 1 {
		return nil
	}
	bufs := make([][]byte, k)
	for j := range bufs {
		bufs[j] = make([]byte, 0, len(t)/k+1)
	}
	for i := 0; i < len(t); i++ {
		bufs[i%k] = append(bufs[i%k], t[i])
	}

	segs := make([]string, k)
	for j, b := range bufs {
		segs[j] = string(b)
	}
	return segs
}

// Interleave is the inverse of Segment: it reads the columns round-robin
// until every column is exhausted.
func Interleave(segs []string) string {
	n := 0
	for _, s := range segs {
		n += len(s)
	}

	var b strings.Builder
	b.Grow(n)
	for i := 0; b.Len() < n; i++ {
		for _, s := range segs {
			if i < len(s) {
				b.WriteByte(s[i])
			}
		}
	}
	return b.String()
}
