// Package svgpath represents SVG path data (the "d" attribute) as a tree
// of subpaths and serializes it back to the wire format. Contours only
// ever flow outward through this package, so it carries no path-data
// parser - ToString is the only direction.
package svgpath

import (
	"strconv"
	"strings"
)

// SubPath is one "M ..." moveto group: a start point followed by a
// sequence of draw commands.
type SubPath struct {
	X, Y   float64
	DrawTo []*DrawTo
}

type Command string

const (
	ClosePath = "Z"
	LineTo    = "L"
	CurveTo   = "C"
)

type DrawTo struct {
	Command Command
	X, Y    float64
	X1, Y1  float64
	X2, Y2  float64
}

func ToString(groups []*SubPath) string {
	var buf strings.Builder

	// Note: this function runs a simple serialization. It does not try to optimize the path string.

	formatNumber := func(n float64) string {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	for i, group := range groups {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString("M " + formatNumber(group.X) + " " + formatNumber(group.Y))
		for _, drawTo := range group.DrawTo {
			switch drawTo.Command {
			case LineTo:
				buf.WriteString(" L " + formatNumber(drawTo.X) + " " + formatNumber(drawTo.Y))
			case CurveTo:
				buf.WriteString(" C " +
					formatNumber(drawTo.X1) + " " + formatNumber(drawTo.Y1) + " " +
					formatNumber(drawTo.X2) + " " + formatNumber(drawTo.Y2) + " " +
					formatNumber(drawTo.X) + " " + formatNumber(drawTo.Y))
			case ClosePath:
				buf.WriteString(" Z")
			}
		}
	}

	return buf.String()
}
