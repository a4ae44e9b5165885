package geometry

import "math"

type Point struct {
	X float64
	Y float64
}

type Vector2 = Point

type LineSegment struct {
	A Point
	B Point
}

// Polyline is an open chain of points. pkg/svgexport builds one from a
// whole contour ring, repeating the ring's first point at the end, before
// calling Simplify on it.
type Polyline []Point

func (a Vector2) Minus(b Vector2) Vector2 {
	return Vector2{X: a.X - b.X, Y: a.Y - b.Y}
}

func (v Vector2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

func (a Vector2) CrossProductZ(b Vector2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Distance returns the distance between two points.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (s LineSegment) Length() float64 {
	return s.A.Distance(s.B)
}

// Distance returns the distance between a point and a line segment.
func (s LineSegment) Distance(p Point) float64 {
	AP := p.Minus(s.A)
	AB := s.A.Minus(s.B)
	mAP := AP.Magnitude()
	mBP := p.Minus(s.B).Magnitude()
	mAB := AB.Magnitude()

	if mAP > mAB || mBP > mAB {
		// closest point on line is outside segment boundaries, so the closest point
		// is the nearest of the two endpoints.
		return math.Min(mAP, mBP)
	}

	return math.Abs(AP.CrossProductZ(AB)) / mAB
}

// Simplify simplifies the polyline using the Douglas-Peucker algorithm.
func (points Polyline) Simplify(epsilon float64) Polyline {
	if len(points) < 2 {
		return nil
	}

	firstPoint, lastPoint := points[0], points[len(points)-1]
	chord := LineSegment{A: firstPoint, B: lastPoint}
	if len(points) == 2 {
		return Polyline{firstPoint, lastPoint}
	}

	dmax := 0.0
	index := 0
	for i := 1; i < len(points)-1; i++ {
		d := chord.Distance(points[i])
		if d > dmax {
			index = i
			dmax = d
		}
	}

	if dmax < epsilon {
		return Polyline{firstPoint, lastPoint}
	}

	// note: need to be careful on the recursive step to not call with < 2 points
	recResults1 := Polyline(points[:index+1]).Simplify(epsilon)
	recResults2 := Polyline(points[index:]).Simplify(epsilon)

	return append(recResults1[:len(recResults1)-1], recResults2...)
}
