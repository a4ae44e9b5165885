package svgpath

import "math"

// Simplify removes vertices that sit within a small fixed distance of the
// straight line between their neighbors - an exact-collinearity cleanup,
// distinct from pkg/geometry's tolerance-driven Douglas-Peucker pass.
// Only LineTo runs are eligible: a contour-derived SubPath never contains
// a CurveTo, so there is no curve-simplification step here.
func (path *SubPath) Simplify() {
	path.simplifyLines()
}

func (path *SubPath) simplifyLines() {
	// Remove redundant points along line segments
	lastX, lastY := path.X, path.Y
	keepIndex := 0
	for i, drawTo := range path.DrawTo {
		if i == len(path.DrawTo)-1 {
			path.DrawTo[keepIndex] = drawTo
			keepIndex++
			break
		}
		next := path.DrawTo[i+1]
		// Get the distance between this point and the line segment between "last" and "next".
		dx := next.X - lastX
		dy := next.Y - lastY
		dist := math.Abs(dx*(lastY-drawTo.Y)-dy*(lastX-drawTo.X)) /
			math.Sqrt(dx*dx+dy*dy)

		// Only keep the point if it's needed
		if drawTo.Command != LineTo || next.Command != LineTo || dist > 0.01 {
			path.DrawTo[keepIndex] = drawTo
			keepIndex++
			lastX, lastY = drawTo.X, drawTo.Y
		}
	}
	path.DrawTo = path.DrawTo[:keepIndex]
}
