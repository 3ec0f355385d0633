package crack

import (
	"container/heap"
	"slices"

	"github.com/jcs242611/vigenere-cipher/freq"
)

// Candidates builds keys from the top breadth shifts of each key position.
// ranked[p] must be sorted best first, as returned by freq.Matcher.Rank.
//
// At most min(breadth^len(ranked), limit) keys are returned, and the full
// product is never materialized. With GenerationOrder the first keys of the
// product are kept (last position varies fastest), so the first key is
// always the per-position best. With ScoreOrder keys come out by ascending
// summed divergence.
func Candidates(ranked [][]freq.ShiftCandidate, breadth, limit int, order Order) []string {
	if len(ranked) == 0 || breadth < 1 || limit < 1 {
		return nil
	}
	top := make([][]freq.ShiftCandidate, len(ranked))
	for p, r := range ranked {
		if len(r) == 0 {
			return nil
		}
		top[p] = r[:min(breadth, len(r))]
	}

	if order == ScoreOrder {
		return bestSums(top, limit)
	}
	return product(top, limit)
}

func product(top [][]freq.ShiftCandidate, limit int) []string {
	idx := make([]int, len(top))
	var keys []string
	for len(keys) < limit {
		keys = append(keys, keyAt(top, idx))

		// odometer increment, rightmost digit first
		p := len(idx) - 1
		for ; p >= 0; p-- {
			idx[p]++
			if idx[p] < len(top[p]) {
				break
			}
			idx[p] = 0
		}
		if p < 0 {
			break
		}
	}
	return keys
}

func keyAt(top [][]freq.ShiftCandidate, idx []int) string {
	b := make([]byte, len(idx))
	for p, i := range idx {
		b[p] = top[p][i].Letter()
	}
	return string(b)
}

type node struct {
	idx   []int
	score float64
}

// nodeHeap orders by score, then lexicographically by index so that equal
// scores come out in generation order.
type nodeHeap []node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}
	return slices.Compare(h[i].idx, h[j].idx) < 0
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// bestSums enumerates index vectors in ascending order of summed divergence.
// Every position's list is sorted, so bumping one index never lowers the sum
// and a best-first search over single bumps visits vectors in order.
func bestSums(top [][]freq.ShiftCandidate, limit int) []string {
	score := func(idx []int) float64 {
		var s float64
		for p, i := range idx {
			s += top[p][i].Divergence
		}
		return s
	}
	seen := make(map[string]bool)
	visit := func(idx []int) bool {
		k := string(toBytes(idx))
		if seen[k] {
			return false
		}
		seen[k] = true
		return true
	}

	start := make([]int, len(top))
	visit(start)
	h := &nodeHeap{{idx: start, score: score(start)}}

	var keys []string
	for h.Len() > 0 && len(keys) < limit {
		n := heap.Pop(h).(node)
		keys = append(keys, keyAt(top, n.idx))
		for p := range n.idx {
			if n.idx[p]+1 >= len(top[p]) {
				continue
			}
			next := slices.Clone(n.idx)
			next[p]++
			if visit(next) {
				heap.Push(h, node{idx: next, score: score(next)})
			}
		}
	}
	return keys
}

func toBytes(idx []int) []byte {
	b := make([]byte, len(idx))
	for i, v := range idx {
		b[i] = byte(v)
	}
	return b
}
