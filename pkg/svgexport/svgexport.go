// Package svgexport is a thin, optional consumer of pkg/contour's ring
// output, rendering it to an SVG document. It mirrors the teacher's own
// vectorize.Vectorize: build cleaner.SVGXMLNode trees, run an optional
// Douglas-Peucker cleanup pass with pkg/geometry (Options.CleanupEpsilon)
// plus a collinearity cleanup with pkg/svgpath before emitting path data, and
// marshal. Nothing in pkg/contour or pkg/simplify depends on this
// package.
package svgexport

import (
	"encoding/xml"
	"fmt"

	"rastercontour/pkg/cleaner"
	"rastercontour/pkg/color"
	"rastercontour/pkg/contour"
	"rastercontour/pkg/geometry"
	"rastercontour/pkg/svgpath"
)

// Options configures one Render call.
type Options struct {
	Width, Height int
	// StrokeColor selects a palette entry for every ring's stroke.
	StrokeColor color.Color
	// CleanupEpsilon runs pkg/geometry's Douglas-Peucker simplifier over
	// each ring's vertices as a final numeric cleanup pass, in addition
	// to whatever simplification pkg/simplify already performed. Zero
	// disables the pass.
	CleanupEpsilon float64
}

func hexColor(c color.Color) string {
	r, g, b, _ := color.ColorToImageColor(c).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func toPolyline(ring []contour.Pixel) geometry.Polyline {
	line := make(geometry.Polyline, len(ring))
	for i, p := range ring {
		line[i] = geometry.Point{X: p.X, Y: p.Y}
	}
	return line
}

func ringToSubPath(ring []contour.Pixel, epsilon float64) *svgpath.SubPath {
	if epsilon > 0 && len(ring) > 2 {
		// Simplify is defined over open polylines; close the chord
		// explicitly first so the seam between last and first vertex is
		// eligible for the same cleanup as every other edge.
		closed := append(toPolyline(ring), geometry.Point{X: ring[0].X, Y: ring[0].Y})
		simplified := closed.Simplify(epsilon)
		if len(simplified) >= 2 {
			ring = make([]contour.Pixel, len(simplified)-1)
			for i := range ring {
				ring[i] = contour.Pixel{X: simplified[i].X, Y: simplified[i].Y}
			}
		}
	}
	if len(ring) == 0 {
		return &svgpath.SubPath{}
	}
	path := &svgpath.SubPath{X: ring[0].X, Y: ring[0].Y}
	for _, p := range ring[1:] {
		path.DrawTo = append(path.DrawTo, &svgpath.DrawTo{Command: svgpath.LineTo, X: p.X, Y: p.Y})
	}
	path.DrawTo = append(path.DrawTo, &svgpath.DrawTo{Command: svgpath.ClosePath})
	// Collinearity cleanup, independent of and in addition to the
	// epsilon-tolerance pass above: drops any LineTo point within 0.01 of
	// the line through its neighbors, whether or not that pass ran.
	path.Simplify()
	return path
}

// Render builds an SVG document for c's rings and returns the marshaled
// XML. One <path> element carries all rings, each as its own subpath.
func Render(c contour.Contour, opts Options) (string, error) {
	pathNode := &cleaner.SVGXMLNode{
		XMLName: xml.Name{Local: "path"},
		Styles: "fill:none;stroke:" + hexColor(opts.StrokeColor) +
			";stroke-width:1;stroke-linecap:butt;stroke-linejoin:miter;stroke-miterlimit:4;stroke-opacity:1",
	}
	for _, ring := range c.Rings {
		pathNode.Path = append(pathNode.Path, ringToSubPath(ring, opts.CleanupEpsilon))
	}

	svg := &cleaner.SVGXMLNode{
		XMLName:  xml.Name{Local: "svg"},
		Children: []*cleaner.SVGXMLNode{pathNode},
		Width:    fmt.Sprintf("%d", opts.Width),
		Height:   fmt.Sprintf("%d", opts.Height),
		ViewBox:  fmt.Sprintf("0 0 %d %d", opts.Width, opts.Height),
		Version:  "1.1",
	}

	out, err := svg.Marshal()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
