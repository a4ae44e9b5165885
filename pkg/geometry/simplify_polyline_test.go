package geometry_test

import (
	"testing"

	"rastercontour/pkg/geometry"
)

func TestSimplifyCollapsesCollinearPoints(t *testing.T) {
	line := geometry.Polyline{
		{X: 0, Y: 0},
		{X: 1, Y: 0.01},
		{X: 2, Y: 0},
		{X: 3, Y: 0},
	}
	got := line.Simplify(0.1)
	want := geometry.Polyline{{X: 0, Y: 0}, {X: 3, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("Simplify = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSimplifyKeepsPointsOutsideTolerance(t *testing.T) {
	line := geometry.Polyline{
		{X: 0, Y: 0},
		{X: 1, Y: 5},
		{X: 2, Y: 0},
	}
	got := line.Simplify(0.1)
	if len(got) != 3 {
		t.Fatalf("Simplify dropped the outlier vertex: %v", got)
	}
}

func TestSimplifyTwoPointLineIsUnchanged(t *testing.T) {
	line := geometry.Polyline{{X: 0, Y: 0}, {X: 5, Y: 5}}
	got := line.Simplify(1)
	if len(got) != 2 || got[0] != line[0] || got[1] != line[1] {
		t.Errorf("Simplify(two points) = %v, want %v", got, line)
	}
}

func TestLineSegmentDistance(t *testing.T) {
	seg := geometry.LineSegment{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}}
	if d := seg.Distance(geometry.Point{X: 5, Y: 3}); d != 3 {
		t.Errorf("Distance(perpendicular) = %v, want 3", d)
	}
	if d := seg.Distance(geometry.Point{X: 15, Y: 0}); d != 5 {
		t.Errorf("Distance(beyond endpoint) = %v, want 5", d)
	}
}
