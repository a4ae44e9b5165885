package simplify

import (
	"rastercontour/pkg/contour"

	"github.com/asim/quadtree"
)

// lockIndex counts how many times each exact pixel-space point occurs
// across a set of rings. A point with multiplicity greater than 2 is a
// knot - a vertex where more than two ring edge pairs meet - and must
// survive simplification intact.
//
// Grounded on pkg/cleaner/pathtree.go's pathTree: a quadtree queried with
// a zero-size AABB to do exact-point lookup, incrementing a counter
// carried as the point's Data on repeat hits instead of inserting a
// duplicate.
type lockIndex struct {
	tree *quadtree.QuadTree
}

type pointCount struct {
	n int
}

var zeroAABBHalf = quadtree.NewPoint(0, 0, nil)

func newLockIndex(minX, minY, maxX, maxY float64) *lockIndex {
	midX, midY := (minX+maxX)/2, (minY+maxY)/2
	halfW, halfH := maxX-midX, maxY-midY
	// Add a small margin so points exactly on the bounding box edge aren't
	// dropped, and so a degenerate single-point ring still gets a
	// non-empty AABB.
	halfW += 1
	halfH += 1
	aabb := quadtree.NewAABB(
		quadtree.NewPoint(midX, midY, nil),
		quadtree.NewPoint(halfW, halfH, nil),
	)
	return &lockIndex{tree: quadtree.New(aabb, 0, nil)}
}

func (l *lockIndex) touch(x, y float64) {
	point := quadtree.NewPoint(x, y, nil)
	found := l.tree.KNearest(quadtree.NewAABB(point, zeroAABBHalf), 1, nil)
	if len(found) > 0 {
		fx, fy := found[0].Coordinates()
		if fx == x && fy == y {
			found[0].Data().(*pointCount).n++
			return
		}
	}
	l.tree.Insert(quadtree.NewPoint(x, y, &pointCount{n: 1}))
}

func (l *lockIndex) multiplicity(x, y float64) int {
	point := quadtree.NewPoint(x, y, nil)
	found := l.tree.KNearest(quadtree.NewAABB(point, zeroAABBHalf), 1, nil)
	if len(found) == 0 {
		return 0
	}
	fx, fy := found[0].Coordinates()
	if fx != x || fy != y {
		return 0
	}
	return found[0].Data().(*pointCount).n
}

// buildLockIndex counts every vertex occurrence across rings and returns
// an index queryable by multiplicity.
func buildLockIndex(rings [][]contour.Pixel) *lockIndex {
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0
	first := true
	for _, ring := range rings {
		for _, p := range ring {
			if first {
				minX, maxX = p.X, p.X
				minY, maxY = p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	idx := newLockIndex(minX, minY, maxX, maxY)
	for _, ring := range rings {
		for _, p := range ring {
			idx.touch(p.X, p.Y)
		}
	}
	return idx
}
