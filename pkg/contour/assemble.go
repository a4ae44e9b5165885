package contour

// assembleRing walks a closed chain of segments starting at its ring
// leader and produces the pixel-space ring polygon, per spec.md 4.4.
//
// The head segment H and its predecessor H.prev are compared by code
// (the classified cell code that produced each, not the direction): if
// they differ, H itself is the terminal segment and every other
// segment's start contributes a vertex; if they match - as for the two
// segments of one border cell or of one saddle split - H.prev is
// terminal instead, and its start is not added to the ring, even where
// that point is a corner of the traced boundary.
func assembleRing(arena []segment, head int, params Params) ([]Pixel, error) {
	h := arena[head]
	if h.next == noSegment {
		return nil, &InvariantError{
			Start: h.start, End: h.end, Direction: h.dir,
			DeclaredIndex: head, ExpectedIndex: head,
			Reason: "ring leader has no next link",
		}
	}
	if h.prev == noSegment {
		return nil, &InvariantError{
			Start: h.start, End: h.end, Direction: h.dir,
			DeclaredIndex: head, ExpectedIndex: head,
			Reason: "ring leader has no prev link",
		}
	}

	terminal := head
	if h.code == arena[h.prev].code {
		terminal = h.prev
	}

	ring := make([]Pixel, 0, 8)
	ring = append(ring, toPixel(h.start, params))

	p, s := head, h.next
	for s != terminal {
		cur := arena[s]
		if cur.leader != head {
			return nil, &InvariantError{
				Start: cur.start, End: cur.end, Direction: cur.dir,
				DeclaredIndex: cur.leader, ExpectedIndex: head,
				Reason: "segment's ring leader does not match the ring being walked",
			}
		}
		if !params.JoinStraightSegments || cur.dir != arena[p].dir {
			ring = append(ring, toPixel(cur.start, params))
		}
		if cur.next == noSegment {
			return nil, &InvariantError{
				Start: cur.start, End: cur.end, Direction: cur.dir,
				DeclaredIndex: cur.leader, ExpectedIndex: head,
				Reason: "segment has no next link while walking an open ring",
			}
		}
		p, s = s, cur.next
	}
	return ring, nil
}

func toPixel(v Point, params Params) Pixel {
	x, y := float64(v.X)/2, float64(v.Y)/2
	if params.PixelOrigin == OriginCorner {
		x += 0.5
		y += 0.5
	}
	return Pixel{X: x, Y: y}
}
