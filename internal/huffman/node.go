package huffman

// Node is a Huffman tree node: either a leaf carrying a code point, or an
// internal node owning two children (the synthetic parent BuildTree places
// over a lone leaf owns only a Left child). The tree is a strict
// arborescence — a Node owns its subtree outright, and dropping the root
// releases the whole tree.
type Node struct {
	CodePoint rune // meaningful only when IsLeaf()
	Freq      int
	Left      *Node
	Right     *Node

	// seq orders ties deterministically across runs: leaves are seeded in
	// ascending code-point order so seq doubles as the leaf tie-break,
	// internal nodes get the next seq at merge time so seq also captures
	// their insertion order.
	seq int
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
