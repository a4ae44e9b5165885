package simplify

import "container/heap"

// nodeHeap is a container/heap min-heap over ringNode.cost, breaking ties
// deterministically by X then Y so repeated runs over the same ring
// always remove vertices in the same order.
type nodeHeap []*ringNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.p.X != b.p.X {
		return a.p.X < b.p.X
	}
	return a.p.Y < b.p.Y
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap) Push(x any) {
	n := x.(*ringNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	*h = old[:last]
	return n
}

// fix restores heap order for n after its cost changed.
func fix(h *nodeHeap, n *ringNode) {
	heap.Fix(h, n.index)
}
