package simplify

import (
	"math"

	"rastercontour/pkg/contour"
)

// ringNode is one vertex of a cyclic doubly linked ring, carrying its own
// Visvalingam-Whyatt removal cost: the area of the triangle it forms with
// its two current neighbors. Removing a node only ever changes its
// neighbors' costs, which is what lets the simplifier recompute and
// reheap a small, bounded set of nodes per removal instead of the whole
// ring.
type ringNode struct {
	p      contour.Pixel
	prev   *ringNode
	next   *ringNode
	locked bool
	cost   float64
	index  int // position in the heap's backing slice, maintained by heap.Interface
}

func triangleArea(a, b, c contour.Pixel) float64 {
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

func (n *ringNode) recomputeCost() {
	if n.locked {
		n.cost = math.Inf(1)
		return
	}
	n.cost = triangleArea(n.prev.p, n.p, n.next.p)
}

// buildRing turns a closed polygon (first point not repeated as last)
// into a cyclic linked list of ringNodes, one per vertex, consulting
// lock to mark knot vertices as locked.
func buildRing(points []contour.Pixel, lock *lockIndex) []*ringNode {
	nodes := make([]*ringNode, len(points))
	for i, p := range points {
		nodes[i] = &ringNode{p: p, locked: lock.multiplicity(p.X, p.Y) > 2}
	}
	n := len(nodes)
	for i, node := range nodes {
		node.prev = nodes[(i-1+n)%n]
		node.next = nodes[(i+1)%n]
	}
	for _, node := range nodes {
		node.recomputeCost()
	}
	return nodes
}

// remove splices n out of its ring and recomputes its former neighbors'
// costs.
func (n *ringNode) remove() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev.recomputeCost()
	n.next.recomputeCost()
}

// collect walks the ring starting at start, in link order, into a plain
// slice.
func collect(start *ringNode) []contour.Pixel {
	if start == nil {
		return nil
	}
	points := []contour.Pixel{start.p}
	for n := start.next; n != start; n = n.next {
		points = append(points, n.p)
	}
	return points
}
