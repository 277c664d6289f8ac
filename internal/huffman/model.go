// Package huffman builds a per-file Huffman tree and code table from a
// stream of Unicode code points, and derives the frequency table the
// side-table format persists.
package huffman

import (
	"bufio"
	"io"
	"sort"

	"github.com/kelbwah/unihuff/internal/codec"
	"github.com/kelbwah/unihuff/internal/errs"
)

// MaxCodeLength bounds how long a derived Huffman code may be. Inputs whose
// tree would produce a longer code fail with errs.CodeOverflow rather than
// silently truncating.
const MaxCodeLength = 32

// FrequencyTable maps a code point to its occurrence count in a file.
type FrequencyTable map[rune]int

// CollectFrequencies decodes r as a UTF-8 code-point stream and counts
// occurrences. Malformed bytes are dropped and decoding resynchronizes at
// the next successful DecodeNext call, so one corrupt byte loses a single
// code point rather than failing the whole file.
func CollectFrequencies(r io.Reader) (FrequencyTable, error) {
	br := bufio.NewReader(r)
	freq := make(FrequencyTable)
	for {
		cp, _, err := codec.DecodeNext(br)
		if err == io.EOF {
			return freq, nil
		}
		if err != nil {
			continue
		}
		if cp >= codec.MaxCodePoint {
			continue
		}
		freq[cp]++
	}
}

// BuildTree constructs a Huffman tree from freq. Distinct code points are
// seeded as leaves in ascending order so heap ties break deterministically
// (see Node.seq). If freq holds exactly one distinct code point, the lone
// leaf is wrapped under a synthetic parent so its derived code is "0"
// instead of empty.
func BuildTree(freq FrequencyTable) (*Node, error) {
	if len(freq) == 0 {
		return nil, errs.New(errs.HeapUnderflow, "huffman.BuildTree", nil)
	}

	points := make([]rune, 0, len(freq))
	for cp := range freq {
		points = append(points, cp)
	}
	sort.Slice(points, func(i, j int) bool { return points[i] < points[j] })

	nodes := make([]*Node, len(points))
	seq := 0
	for i, cp := range points {
		nodes[i] = &Node{CodePoint: cp, Freq: freq[cp], seq: seq}
		seq++
	}

	pq := newQueue(nodes)
	for pq.Len() > 1 {
		left := pq.popMin()
		right := pq.popMin()
		merged := &Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
			seq:   seq,
		}
		seq++
		pq.insert(merged)
	}

	root := pq.popMin()
	if root.IsLeaf() {
		root = &Node{Freq: root.Freq, Left: root, seq: seq}
	}
	return root, nil
}

// CodeTable maps a code point to its Huffman bit-string ("0"/"1" runes).
type CodeTable map[rune]string

// BuildCodeTable derives the code table from root by a pre-order walk: left
// child appends '0', right child appends '1'. Fails with errs.CodeOverflow
// if any derived code would exceed MaxCodeLength.
func BuildCodeTable(root *Node) (CodeTable, error) {
	table := make(CodeTable)
	if err := walkCodes(root, make([]byte, 0, MaxCodeLength), table); err != nil {
		return nil, err
	}
	return table, nil
}

func walkCodes(n *Node, prefix []byte, table CodeTable) error {
	if n == nil {
		return nil
	}
	if len(prefix) > MaxCodeLength {
		return errs.New(errs.CodeOverflow, "huffman.BuildCodeTable", nil)
	}
	if n.IsLeaf() {
		table[n.CodePoint] = string(prefix)
		return nil
	}
	if n.Left != nil {
		if err := walkCodes(n.Left, append(prefix, '0'), table); err != nil {
			return err
		}
	}
	if n.Right != nil {
		if err := walkCodes(n.Right, append(prefix, '1'), table); err != nil {
			return err
		}
	}
	return nil
}
