package contour

// markBorderMask applies spec.md 4.3.3's border-pixel bookkeeping rule for
// one classified cell (i, j) with raw code: mark the raster pixel at each
// corner bit set in code, except that the two saddle codes mark all four
// corners. Codes 0b0000 and 0b1111 mark none because addCell returns
// before calling this for them; the per-bit rule alone would mark nothing
// for 0000 but all four corners for 1111.
func markBorderMask(mark func(x, y int), i, j int, code CellCode) {
	if code.IsAmbiguous() {
		mark(i, j+1)
		mark(i+1, j+1)
		mark(i+1, j)
		mark(i, j)
		return
	}
	if code&0x1 != 0 {
		mark(i, j+1)
	}
	if code&0x2 != 0 {
		mark(i+1, j+1)
	}
	if code&0x4 != 0 {
		mark(i+1, j)
	}
	if code&0x8 != 0 {
		mark(i, j)
	}
}
