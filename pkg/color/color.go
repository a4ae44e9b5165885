package color

import "image/color"

// Color is a restricted, cannonical palette used to render contour output:
// background, filled-region fill/stroke, and a couple of accent colors for
// locked junction vertices and border-touching geometry.
type Color byte

const (
	White Color = iota
	Black
	Gray
	Red
	Green
	Blue
	Magenta
	Cyan
	Orange
)

var Palette = color.Palette{
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // White
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // Black
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // Gray
	color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // Red
	color.RGBA{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}, // Green
	color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // Blue
	color.RGBA{R: 0xcc, G: 0x00, B: 0xcc, A: 0xff}, // Magenta
	color.RGBA{R: 0x00, G: 0xbb, B: 0xdd, A: 0xff}, // Cyan
	color.RGBA{R: 0xff, G: 0xdd, B: 0x00, A: 0xff}, // Orange
}

func ColorToImageColor(c Color) color.Color {
	if int(c) >= len(Palette) {
		return Palette[White]
	}
	return Palette[c]
}
