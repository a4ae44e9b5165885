package raster_test

import (
	"testing"

	"rastercontour/pkg/raster"
)

func TestBitRasterGetSetRoundTrip(t *testing.T) {
	r := raster.NewBitRaster(3, 2)
	r.Set(1, 0, 1)
	r.Set(2, 1, 1)
	want := [][]int{
		{0, 1, 0},
		{0, 0, 1},
	}
	for y, row := range want {
		for x, v := range row {
			if got := r.Get(x, y); got != v {
				t.Errorf("Get(%d,%d) = %d, want %d", x, y, got, v)
			}
		}
	}
}

func TestBitRasterOutOfBoundsReadsZero(t *testing.T) {
	r := raster.NewBitRaster(2, 2)
	r.Set(0, 0, 1)
	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {5, 5}}
	for _, c := range cases {
		if got := r.Get(c[0], c[1]); got != 0 {
			t.Errorf("Get(%d,%d) = %d, want 0 (out of bounds)", c[0], c[1], got)
		}
	}
}

func TestBitRasterOutOfBoundsWriteIsIgnored(t *testing.T) {
	r := raster.NewBitRaster(2, 2)
	r.Set(-1, -1, 1)
	r.Set(10, 10, 1)
	w, h := r.Dims()
	if w != 2 || h != 2 {
		t.Fatalf("Dims() = (%d,%d), want (2,2)", w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Get(x, y) != 0 {
				t.Errorf("out-of-bounds Set leaked into (%d,%d)", x, y)
			}
		}
	}
}

func TestFromThresholdAppliesPredicate(t *testing.T) {
	rows := [][]uint8{
		{0, 100, 255},
		{10, 10, 200},
	}
	r := raster.FromThreshold(rows, func(v uint8) bool { return v > 128 })
	want := [][]int{
		{0, 0, 1},
		{0, 0, 1},
	}
	for y, row := range want {
		for x, v := range row {
			if got := r.Get(x, y); got != v {
				t.Errorf("Get(%d,%d) = %d, want %d", x, y, got, v)
			}
		}
	}
}

func TestFromThresholdOutOfBoundsReadsZero(t *testing.T) {
	rows := [][]int{{1, 1}, {1, 1}}
	r := raster.FromThreshold(rows, func(v int) bool { return v != 0 })
	if got := r.Get(5, 5); got != 0 {
		t.Errorf("Get(out of bounds) = %d, want 0", got)
	}
	w, h := r.Dims()
	if w != 2 || h != 2 {
		t.Errorf("Dims() = (%d,%d), want (2,2)", w, h)
	}
}
