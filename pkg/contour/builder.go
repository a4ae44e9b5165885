package contour

import "rastercontour/pkg/raster"

// build holds the mutable state of one Finder.Find pass: the segment
// arena plus the two endpoint indices used to stitch new segments onto
// existing open chains. Grounded directly on original_source/imgproc/
// contours.cpp's ContourBuilder, translated from intrusive pointer links
// to arena indices per the spec's memory-safety note.
type build struct {
	raster raster.Raster
	finder *Finder
	params Params
	width  int
	height int

	arena   []segment
	byStart map[Point]int
	byEnd   map[Point]int

	border *Border
	rings  [][]Pixel
}

func newBuilder(r raster.Raster, f *Finder, params Params) *build {
	w, h := r.Dims()
	return &build{
		raster:  r,
		finder:  f,
		params:  params,
		width:   w,
		height:  h,
		byStart: map[Point]int{},
		byEnd:   map[Point]int{},
		border:  newBorder(w, h),
	}
}

// run sweeps every cell row-major, matching original_source/imgproc/
// contours.cpp's findContours loop exactly: cell (i, j) samples pixels
// (i, j), (i+1, j), (i, j+1) and (i+1, j+1), so a cell at i = -1 or
// j = -1 - entirely outside the raster - is still needed to close off
// the left and top edges, while the right and bottom edges are already
// closed by the last real column/row (i = width-1, j = height-1)
// sampling one out-of-bounds corner apiece. No symmetric i = width or
// j = height cell is needed: it would sample only out-of-bounds pixels
// and always classify as empty.
func (b *build) run() (Contour, error) {
	w, h := b.width, b.height

	for i := -1; i <= w-1; i++ {
		if err := b.addCell(i, -1, true); err != nil {
			return Contour{}, err
		}
	}
	for j := 0; j <= h-2; j++ {
		if err := b.addCell(-1, j, true); err != nil {
			return Contour{}, err
		}
		for i := 0; i <= w-2; i++ {
			if err := b.addCell(i, j, false); err != nil {
				return Contour{}, err
			}
		}
		if err := b.addCell(w-1, j, true); err != nil {
			return Contour{}, err
		}
	}
	for i := -1; i <= w-1; i++ {
		if err := b.addCell(i, h-1, true); err != nil {
			return Contour{}, err
		}
	}
	return Contour{Rings: b.rings, Border: b.border}, nil
}

func (b *build) addCell(i, j int, isBorder bool) error {
	code := classify(b.raster, i, j)
	if code == code0000 || code == code1111 {
		return nil
	}
	markBorderMask(b.border.set, i, j, code)

	origin := Point{X: 2 * i, Y: 2 * j}
	specs, err := b.cellSpecs(i, j, code, isBorder)
	if err != nil {
		return err
	}
	for _, s := range specs {
		start := Point{X: origin.X + s.sx, Y: origin.Y + s.sy}
		end := Point{X: origin.X + s.ex, Y: origin.Y + s.ey}
		if err := b.addSegment(code, s.dir, start, end); err != nil {
			return err
		}
	}
	return nil
}

func (b *build) cellSpecs(i, j int, code CellCode, isBorder bool) ([]segSpec, error) {
	if code.IsAmbiguous() {
		resolved := b.finder.resolve(b.params.oracle(), Point{X: 2 * i, Y: 2 * j}, code)
		flipped := resolved != code
		if isBorder {
			return ambiguousBorder(code, flipped), nil
		}
		return ambiguousInner(code, flipped), nil
	}
	if isBorder {
		if specs, ok := borderTable[code]; ok {
			return specs, nil
		}
	}
	return innerTable[code], nil
}

// addSegment inserts one new oriented segment into the arena and
// performs the stitch: link it onto any open chain ending at its start
// or beginning at its end, propagate ring-leader indices across the
// merged chain, and emit a ring if the stitch just closed one. This is
// the index-based translation of ContourBuilder::addSegment's five-way
// case split.
func (b *build) addSegment(code CellCode, dir Direction, start, end Point) error {
	idx := len(b.arena)
	b.arena = append(b.arena, newSegment(code, dir, start, end))

	pIdx, pOk := b.byEnd[start]
	nIdx, nOk := b.byStart[end]

	b.byStart[start] = idx
	b.byEnd[end] = idx

	if pOk {
		b.arena[pIdx].next = idx
		b.arena[idx].prev = pIdx
	}
	if nOk {
		b.arena[nIdx].prev = idx
		b.arena[idx].next = nIdx
	}

	if !pOk && !nOk {
		return nil
	}

	pLeader := noSegment
	if pOk {
		pLeader = b.arena[pIdx].leader
	}
	nLeader := noSegment
	if nOk {
		nLeader = b.arena[nIdx].leader
	}

	switch {
	case pLeader == noSegment && nLeader == noSegment:
		b.arena[idx].leader = idx
		if pOk {
			b.arena[pIdx].leader = idx
		}
		if nOk {
			b.arena[nIdx].leader = idx
		}
		return nil

	case pLeader == noSegment:
		b.arena[idx].leader = nLeader
		if pOk {
			b.propagateBackward(pIdx, nLeader)
		}
		return nil

	case nLeader == noSegment:
		b.arena[idx].leader = pLeader
		if nOk {
			b.propagateForward(nIdx, pLeader)
		}
		return nil

	case pLeader != nLeader:
		b.arena[idx].leader = pLeader
		b.propagateForward(nIdx, pLeader)
		return nil

	default: // pLeader == nLeader: the stitch just closed a ring
		b.arena[idx].leader = pLeader
		return b.emitRing(pLeader)
	}
}

func (b *build) propagateBackward(from int, leader int) {
	for walk := from; walk != noSegment; walk = b.arena[walk].prev {
		b.arena[walk].leader = leader
	}
}

func (b *build) propagateForward(from int, leader int) {
	for walk := from; walk != noSegment; walk = b.arena[walk].next {
		b.arena[walk].leader = leader
	}
}

func (b *build) emitRing(head int) error {
	pixels, err := assembleRing(b.arena, head, b.params)
	if err != nil {
		return err
	}
	b.rings = append(b.rings, pixels)
	return nil
}
