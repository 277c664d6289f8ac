package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPriorityQueue_HeapLaw(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		freqs := rapid.SliceOfN(rapid.IntRange(0, 1000), 1, 64).Draw(rt, "freqs")

		nodes := make([]*Node, len(freqs))
		for i, f := range freqs {
			nodes[i] = &Node{Freq: f, seq: i}
		}
		pq := newQueue(nodes)

		var out []int
		for pq.Len() > 0 {
			out = append(out, pq.popMin().Freq)
		}

		for i := 1; i < len(out); i++ {
			if out[i-1] > out[i] {
				rt.Fatalf("not non-decreasing at %d: %v", i, out)
			}
		}
	})
}

func TestPriorityQueue_PopEmptyPanics(t *testing.T) {
	pq := newQueue(nil)
	require.Panics(t, func() { pq.popMin() })
}
