package contour

// Point is a vertex on the doubled lattice: the original pixel (i, j)
// corresponds to lattice point (2i, 2j), and cell-edge midpoints fall on
// odd coordinates, so every segment endpoint the builder produces is an
// exact integer, never a fraction.
type Point struct {
	X, Y int
}

// Pixel is a 2D point in pixel (real) space, the coordinate system rings
// are returned in.
type Pixel struct {
	X, Y float64
}
