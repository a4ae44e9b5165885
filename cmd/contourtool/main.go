package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"rastercontour/pkg/cfg"
	"rastercontour/pkg/color"
	"rastercontour/pkg/contour"
	"rastercontour/pkg/raster"
	"rastercontour/pkg/simplify"
	"rastercontour/pkg/svgexport"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("usage: %s grid-file\n", os.Args[0])
		return
	}

	filename := os.Args[1]
	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("file read error: %s", err)
	}
	defer f.Close()

	r, err := readGrid(f)
	if err != nil {
		log.Fatalf("grid parse error: %s", err)
	}
	w, h := r.Dims()

	c, err := contour.Find(r, contour.Params{
		PixelOrigin:          cfg.DefaultPixelOrigin,
		JoinStraightSegments: cfg.DefaultJoinStraightSegments,
	})
	if err != nil {
		log.Fatalf("contour error: %s", err)
	}

	c = simplify.Contour(c, cfg.DefaultSimplifyTolerance)

	svg, err := svgexport.Render(c, svgexport.Options{
		Width:       w,
		Height:      h,
		StrokeColor: color.Black,
	})
	if err != nil {
		log.Fatalf("svg export error: %s", err)
	}

	fmt.Println(svg)
}

// readGrid reads a minimal plain-text 0/1 raster: one row per line, one
// character per pixel, any non-'1' byte read as off. This is a synthetic
// input format for exercising the contour engine directly, not a stand-in
// for a real image decoder.
func readGrid(f *os.File) (*raster.BitRaster, error) {
	var rows []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	r := raster.NewBitRaster(width, height)
	for y, row := range rows {
		for x, ch := range row {
			if ch == '1' {
				r.Set(x, y, 1)
			}
		}
	}
	return r, nil
}
