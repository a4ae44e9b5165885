package contour

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"rastercontour/pkg/raster"
)

func grid(rows ...string) *raster.BitRaster {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	r := raster.NewBitRaster(w, h)
	for y, row := range rows {
		for x, ch := range row {
			if ch == '#' {
				r.Set(x, y, 1)
			}
		}
	}
	return r
}

func TestFindSinglePixel(t *testing.T) {
	r := grid("#")
	got, err := Find(r, Params{PixelOrigin: OriginCenter, JoinStraightSegments: true})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := [][]Pixel{
		{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}},
	}
	if diff := cmp.Diff(want, got.Rings, cmp.Comparer(ringsEquivalent)); diff != "" {
		t.Errorf("Find(single pixel) rings differ: %s\ngot: %+v", diff, got.Rings)
	}
}

// ringsEquivalent compares two single rings up to cyclic rotation, since
// the ring walk's starting vertex depends on sweep order, not on the
// shape being traced.
func ringsEquivalent(a, b []Pixel) bool {
	if len(a) != len(b) {
		return false
	}
	for offset := 0; offset < len(a); offset++ {
		match := true
		for i := range a {
			if a[i] != b[(i+offset)%len(b)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestFindTwoByTwoBlock(t *testing.T) {
	r := grid(
		"##",
		"##",
	)
	got, err := Find(r, Params{PixelOrigin: OriginCenter, JoinStraightSegments: true})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got.Rings) != 1 {
		t.Fatalf("got %d rings, want 1", len(got.Rings))
	}
	want := []Pixel{
		{X: -0.5, Y: -0.5}, {X: 1.5, Y: -0.5}, {X: 1.5, Y: 1.5}, {X: -0.5, Y: 1.5},
	}
	if !ringsEquivalent(want, got.Rings[0]) {
		t.Errorf("Find(2x2 block) ring = %v, want (up to rotation) %v", got.Rings[0], want)
	}
}

func TestFindDiagonalPairIsTwoRings(t *testing.T) {
	// Two pixels touching only at a corner: raster(0,0) and raster(1,1) on,
	// the other two off. The shared corner cell classifies as the 0b1010
	// saddle; with the default (keep-as-is) oracle this keeps the two
	// pixels as separate diamonds rather than merging them.
	r := grid(
		"#.",
		".#",
	)
	got, err := Find(r, Params{PixelOrigin: OriginCenter, JoinStraightSegments: true})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got.Rings) != 2 {
		t.Fatalf("got %d rings, want 2: %+v", len(got.Rings), got.Rings)
	}
}

func TestFindIsDeterministic(t *testing.T) {
	r := grid(
		".###..",
		".#.#..",
		".###.#",
		"....##",
		"##....",
	)
	params := Params{PixelOrigin: OriginCorner, JoinStraightSegments: true}
	first, err := Find(r, params)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Find(r, params)
		if err != nil {
			t.Fatalf("Find iteration %d: %v", i, err)
		}
		if diff := cmp.Diff(first, again, cmp.AllowUnexported(Border{})); diff != "" {
			t.Errorf("Find is not deterministic, iteration %d differs: %s", i, diff)
		}
	}
}

func TestFindEveryRingHasAtLeastThreeVertices(t *testing.T) {
	r := grid(
		".###..",
		".#.#..",
		".###.#",
		"....##",
		"##....",
	)
	got, err := Find(r, Params{PixelOrigin: OriginCenter, JoinStraightSegments: false})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(got.Rings) == 0 {
		t.Fatal("expected at least one ring")
	}
	for i, ring := range got.Rings {
		if len(ring) < 3 {
			t.Errorf("ring %d has only %d vertices", i, len(ring))
		}
	}
}

func TestBorderMasksOnlyBoundaryPixels(t *testing.T) {
	r := grid(
		"...",
		".#.",
		"...",
	)
	got, err := Find(r, Params{})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := x == 1 && y == 1
			if got.Border.Get(x, y) != want {
				t.Errorf("Border.Get(%d,%d) = %v, want %v", x, y, got.Border.Get(x, y), want)
			}
		}
	}
}

func TestFinderReusesAmbiguousResolution(t *testing.T) {
	r := grid(
		"#.",
		".#",
	)
	calls := 0
	oracle := func(v Point, code CellCode) CellCode {
		calls++
		return code.Complement()
	}
	f := NewFinder()
	if _, err := f.Find(r, Params{AmbiguousOracle: oracle}); err != nil {
		t.Fatalf("first Find: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected oracle to be called once, got %d", calls)
	}
	if _, err := f.Find(r, Params{AmbiguousOracle: oracle}); err != nil {
		t.Fatalf("second Find: %v", err)
	}
	if calls != 1 {
		t.Errorf("reused Finder re-consulted the oracle: calls = %d, want 1", calls)
	}
}
