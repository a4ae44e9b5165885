// Package simplify reduces the vertex count of traced contour rings with
// Visvalingam-Whyatt simplification: repeatedly drop the ring vertex
// whose removal changes the polygon's area least, stopping once every
// remaining vertex's cost meets a caller-supplied tolerance. Vertices
// that occur more than twice across the rings simplified together (a
// junction of more than two ring edge pairs) are locked and never
// removed, since dropping one would tear the topology apart rather than
// just smoothing it.
package simplify

import (
	"container/heap"

	"rastercontour/pkg/contour"
)

// Ring simplifies a single closed ring (first point not repeated as
// last) to within tolerance.
func Ring(points []contour.Pixel, tolerance float64) []contour.Pixel {
	lock := buildLockIndex([][]contour.Pixel{points})
	return simplifyRing(points, tolerance, lock)
}

// Contour simplifies every ring of c to within tolerance. Vertex
// multiplicity is counted across all of c's rings together, so a vertex
// that occurs more than twice across them is locked in every ring that
// contains it; a vertex shared by exactly two rings is not locked.
func Contour(c contour.Contour, tolerance float64) contour.Contour {
	lock := buildLockIndex(c.Rings)
	out := contour.Contour{Border: c.Border, Rings: make([][]contour.Pixel, len(c.Rings))}
	for i, ring := range c.Rings {
		out.Rings[i] = simplifyRing(ring, tolerance, lock)
	}
	return out
}

func simplifyRing(points []contour.Pixel, tolerance float64, lock *lockIndex) []contour.Pixel {
	if len(points) <= 4 {
		out := make([]contour.Pixel, len(points))
		copy(out, points)
		return out
	}

	nodes := buildRing(points, lock)
	h := make(nodeHeap, len(nodes))
	copy(h, nodes)
	for i, n := range h {
		n.index = i
	}
	heap.Init(&h)

	count := len(nodes)
	for count > 3 && h.Len() > 0 {
		cheapest := h[0]
		if cheapest.locked || cheapest.cost >= tolerance {
			break
		}
		heap.Pop(&h)
		prev, next := cheapest.prev, cheapest.next
		cheapest.remove()
		count--
		fix(&h, prev)
		fix(&h, next)
	}

	if h.Len() == 0 {
		return collect(nodes[0])
	}
	return collect(h[0])
}
