package huffman

import "container/heap"

// priorityQueue is a binary min-heap of *Node keyed by Freq ascending, with
// ties broken by seq ascending (see Node.seq). container/heap's sift-down
// already swaps only on strict inequality, giving the stable-tie behavior
// the model requires.
type priorityQueue []*Node

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].Freq != pq[j].Freq {
		return pq[i].Freq < pq[j].Freq
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*Node))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

// newQueue builds and heap-initializes a priority queue from nodes.
func newQueue(nodes []*Node) *priorityQueue {
	pq := priorityQueue(nodes)
	heap.Init(&pq)
	return &pq
}

func (pq *priorityQueue) insert(n *Node) { heap.Push(pq, n) }

// popMin removes and returns the minimum-frequency node. Calling popMin on
// an empty queue is a programming error — the tree-build invariant forbids
// it, so it panics rather than returning a sentinel.
func (pq *priorityQueue) popMin() *Node {
	if pq.Len() == 0 {
		panic("huffman: pop from empty priority queue")
	}
	return heap.Pop(pq).(*Node)
}
