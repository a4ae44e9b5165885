package contour

// segSpec describes one segment to emit for a cell: a direction label and
// the start/end lattice offsets from (2i, 2j).
type segSpec struct {
	dir        Direction
	sx, sy     int
	ex, ey     int
}

// innerTable maps each non-ambiguous, non-trivial cell code to the
// segment(s) it emits for an inner cell, per spec.md 4.3.1. Grounded on
// original_source/imgproc/contours.cpp's ContourBuilder::add.
var innerTable = map[CellCode][]segSpec{
	code0001: {{DirRD, 0, 1, 1, 2}},
	code0010: {{DirRU, 1, 2, 2, 1}},
	code0011: {{DirR, 0, 1, 2, 1}},
	code0100: {{DirLU, 2, 1, 1, 0}},
	code0110: {{DirU, 1, 2, 1, 0}},
	code0111: {{DirRU, 0, 1, 1, 0}},
	code1000: {{DirLD, 1, 0, 0, 1}},
	code1001: {{DirD, 1, 0, 1, 2}},
	code1011: {{DirRD, 1, 0, 2, 1}},
	code1100: {{DirL, 2, 1, 0, 1}},
	code1101: {{DirLD, 2, 1, 1, 2}},
	code1110: {{DirLU, 1, 2, 0, 1}},
}

// borderTable maps each non-ambiguous cell code to the segment(s) it
// emits for a border cell, per spec.md 4.3.2. Codes 0000, 0011, 0110,
// 1001, 1100 and 1111 are absent here and fall back to innerTable, since
// the border table only overrides the codes that need an extra
// perimeter-closing edge.
var borderTable = map[CellCode][]segSpec{
	code0001: {{DirR, 0, 1, 1, 1}, {DirD, 1, 1, 1, 2}},
	code0010: {{DirU, 1, 2, 1, 1}, {DirR, 1, 1, 2, 1}},
	code0100: {{DirL, 2, 1, 1, 1}, {DirU, 1, 1, 1, 0}},
	code1000: {{DirD, 1, 0, 1, 1}, {DirL, 1, 1, 0, 1}},
	code0111: {{DirU, 0, 1, 0, 0}, {DirR, 0, 0, 1, 0}},
	code1011: {{DirR, 1, 0, 2, 0}, {DirD, 2, 0, 2, 1}},
	code1101: {{DirD, 2, 1, 2, 2}, {DirL, 2, 2, 1, 2}},
	code1110: {{DirL, 1, 2, 0, 2}, {DirU, 0, 2, 0, 1}},
}

// ambiguous0101InnerShape and ambiguous1010InnerShape are the two
// two-segment diagonal splits a saddle inner cell can produce, ported
// directly from original_source/imgproc/contours.cpp's hardcoded
// b0101 (split into b0111 + b1101) and b1010 (split into b1011 + b1110)
// inner cases.
func ambiguous0101InnerShape() []segSpec {
	return []segSpec{
		{DirRU, 0, 1, 1, 0},
		{DirLD, 2, 1, 1, 2},
	}
}

func ambiguous1010InnerShape() []segSpec {
	return []segSpec{
		{DirRD, 1, 0, 2, 1},
		{DirLU, 1, 2, 0, 1},
	}
}

// ambiguousInner returns the segment pair for an ambiguous inner cell.
// code is the raw classified code (0b0101 or 0b1010); flipped reports
// whether the oracle returned its complement, in which case the cell
// uses the other saddle's shape - connecting the opposite pair of
// corners - exactly as ambiguousBorder does for border cells.
func ambiguousInner(code CellCode, flipped bool) []segSpec {
	use0101Shape := (code == code0101) != flipped
	if use0101Shape {
		return ambiguous0101InnerShape()
	}
	return ambiguous1010InnerShape()
}

// ambiguous0101BorderShape and ambiguous1010BorderShape are the two
// four-segment, two-corner-turn shapes a saddle border cell can produce.
// They mirror original_source/imgproc/contours.cpp's hardcoded b0101/
// b1010 border cases exactly.
func ambiguous0101BorderShape() []segSpec {
	return []segSpec{
		{DirU, 0, 1, 0, 0},
		{DirR, 0, 0, 1, 0},
		{DirD, 2, 1, 2, 2},
		{DirL, 2, 2, 1, 2},
	}
}

func ambiguous1010BorderShape() []segSpec {
	return []segSpec{
		{DirR, 1, 0, 2, 0},
		{DirD, 2, 0, 2, 1},
		{DirL, 1, 2, 0, 2},
		{DirU, 0, 2, 0, 1},
	}
}

// ambiguousBorder returns the four-segment shape for an ambiguous border
// cell. Flipping a saddle's interpretation swaps it for the other
// saddle's shape: the source gives 0101 and 1010 each one fixed shape
// with no oracle, and the two shapes are exact mirror images of each
// other across the cell's vertical center line, so "flip 0101" and "plain 1010" (and
// vice versa) are the same topology.
func ambiguousBorder(code CellCode, flipped bool) []segSpec {
	use0101Shape := (code == code0101) != flipped
	if use0101Shape {
		return ambiguous0101BorderShape()
	}
	return ambiguous1010BorderShape()
}
