// Package contour implements the marching-squares-style contour
// extraction engine: a variant of marching squares operating on a
// doubled-resolution lattice, producing oriented segments that are
// incrementally stitched into closed rings, row-major, as the raster is
// swept.
package contour

import "rastercontour/pkg/raster"

// PixelOrigin selects how a lattice vertex maps back to a pixel-space
// coordinate.
type PixelOrigin int

const (
	// OriginCenter places each pixel's center at its integer pixel
	// coordinate, so a 1x1 "on" raster produces a ring with corners at
	// +/-0.5.
	OriginCenter PixelOrigin = iota
	// OriginCorner shifts every coordinate by (0.5, 0.5), placing pixel
	// corners at integer coordinates instead.
	OriginCorner
)

// Params configures one contour extraction pass.
type Params struct {
	PixelOrigin          PixelOrigin
	JoinStraightSegments bool
	AmbiguousOracle      Oracle
}

func (p Params) oracle() Oracle {
	if p.AmbiguousOracle == nil {
		return DefaultOracle
	}
	return p.AmbiguousOracle
}

// Contour is the result of one extraction pass: the rings found, and a
// bitmap marking the "on" pixels of every non-trivial cell (all four
// pixels of a saddle cell); see Border.
type Contour struct {
	Rings  [][]Pixel
	Border *Border
}

// Empty reports whether c has no rings.
func (c Contour) Empty() bool {
	return len(c.Rings) == 0
}

// Finder is a reusable contour extractor that remembers, for the
// lifetime of the Finder, how each ambiguous (saddle) lattice vertex was
// resolved. Reusing one Finder across several calls to Find (for example
// once per label value of a multi-label raster, thresholded a different
// way each time) keeps every call's saddle resolution consistent at
// shared vertices - the same role original_source/imgproc/contours.hpp's
// FindContour class plays by keeping its ambiguousCells map alive across
// calls to operator().
type Finder struct {
	ambiguous map[Point]CellCode
}

// NewFinder returns a Finder with an empty ambiguous-vertex memo.
func NewFinder() *Finder {
	return &Finder{ambiguous: map[Point]CellCode{}}
}

func (f *Finder) resolve(oracle Oracle, v Point, code CellCode) CellCode {
	if resolved, ok := f.ambiguous[v]; ok {
		return resolved
	}
	resolved := oracle(v, code)
	f.ambiguous[v] = resolved
	return resolved
}

// Find runs one contour extraction pass over r with params, using and
// updating f's ambiguous-vertex memo.
func (f *Finder) Find(r raster.Raster, params Params) (Contour, error) {
	b := newBuilder(r, f, params)
	return b.run()
}

// Find is the one-shot convenience form of Finder.Find, for callers that
// don't need saddle resolution to persist across several rasters.
func Find(r raster.Raster, params Params) (Contour, error) {
	return NewFinder().Find(r, params)
}
