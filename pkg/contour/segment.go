package contour

// segment is one oriented lattice edge, stored by index in the builder's
// arena rather than by pointer - the memory-safe translation the spec
// calls for of the original implementation's intrusive Segment/Links
// struct: prev, next and ring leader become arena indices, with -1
// standing in for "none".
type segment struct {
	code  CellCode  // the classified code that produced this segment
	dir   Direction
	start Point
	end   Point

	prev   int
	next   int
	leader int
}

// noSegment is the sentinel used for "no such link yet".
const noSegment = -1

func newSegment(code CellCode, dir Direction, start, end Point) segment {
	return segment{
		code:   code,
		dir:    dir,
		start:  start,
		end:    end,
		prev:   noSegment,
		next:   noSegment,
		leader: noSegment,
	}
}
