// Package raster provides the binary raster view consumed by the contour
// extraction engine: row-major access by (x, y) with out-of-bounds reads
// defined to return 0.
package raster

// Raster is the read-only view the contour engine sweeps over. Get must
// return 0 for any (x, y) outside [0, W) x [0, H) - this is what gives the
// border cells of the contour algorithm a consistent "outside" value to
// compare against, without the algorithm needing to special-case the edges
// of the image itself.
type Raster interface {
	// Get returns 0 or 1 for the pixel at (x, y), or 0 if (x, y) is outside
	// the raster's bounds.
	Get(x, y int) int

	// Dims returns the raster's width and height.
	Dims() (width, height int)
}

// BitRaster is a flat, row-major binary raster, the concrete Raster
// implementation most callers will build directly. It plays the same role
// here that vectorize.ColorImage played in the teacher: a simple
// slice-backed image type that the contour tests construct by hand, just restricted to two values instead of a 9-color palette.
type BitRaster struct {
	Width  int
	Height int
	Data   []byte
}

// NewBitRaster allocates a zeroed BitRaster of the given dimensions.
func NewBitRaster(width, height int) *BitRaster {
	return &BitRaster{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height),
	}
}

func (r *BitRaster) Dims() (int, int) {
	return r.Width, r.Height
}

func (r *BitRaster) Get(x, y int) int {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return 0
	}
	if r.Data[x+y*r.Width] != 0 {
		return 1
	}
	return 0
}

// Set assigns the pixel at (x, y) to 0 or 1. Out-of-bounds writes are
// silently ignored, matching the "always-0 outside" contract of Get.
func (r *BitRaster) Set(x, y, v int) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	if v != 0 {
		r.Data[x+y*r.Width] = 1
	} else {
		r.Data[x+y*r.Width] = 0
	}
}

// Threshold reports whether a raw sample value should be treated as the
// "on" (1) class of a binary raster.
type Threshold[T any] func(v T) bool

// typedRaster adapts a caller's own 2D slice, plus a Threshold predicate,
// to the Raster interface - the Go equivalent of the original C++
// FindContour functor's templated operator()(ConstRaster, Threshold)
// overload, which lets contouring run directly against an arbitrary raster
// representation instead of requiring the caller to pre-copy into a
// bitfield mask.
type typedRaster[T any] struct {
	rows      [][]T
	width     int
	height    int
	threshold Threshold[T]
}

// FromThreshold adapts a row-major 2D slice to Raster by applying
// threshold to each sample. rows[y][x] is the sample at pixel (x, y); all
// rows must have the same length.
func FromThreshold[T any](rows [][]T, threshold Threshold[T]) Raster {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	return &typedRaster[T]{rows: rows, width: width, height: height, threshold: threshold}
}

func (r *typedRaster[T]) Dims() (int, int) {
	return r.width, r.height
}

func (r *typedRaster[T]) Get(x, y int) int {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return 0
	}
	if r.threshold(r.rows[y][x]) {
		return 1
	}
	return 0
}
