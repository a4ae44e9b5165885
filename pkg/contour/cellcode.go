package contour

import "rastercontour/pkg/raster"

// CellCode is the 4-bit code for a 2x2 window of raster pixels, bits
// b3 b2 b1 b0 as defined in the data model:
//
//	b0 = raster(i,   j+1)
//	b1 = raster(i+1, j+1)
//	b2 = raster(i+1, j)
//	b3 = raster(i,   j)
type CellCode uint8

const (
	code0000 CellCode = 0x0
	code0001 CellCode = 0x1
	code0010 CellCode = 0x2
	code0011 CellCode = 0x3
	code0100 CellCode = 0x4
	code0101 CellCode = 0x5
	code0110 CellCode = 0x6
	code0111 CellCode = 0x7
	code1000 CellCode = 0x8
	code1001 CellCode = 0x9
	code1010 CellCode = 0xa
	code1011 CellCode = 0xb
	code1100 CellCode = 0xc
	code1101 CellCode = 0xd
	code1110 CellCode = 0xe
	code1111 CellCode = 0xf
)

// IsAmbiguous reports whether code is one of the two saddle codes whose
// topology isn't uniquely determined by the code alone.
func (c CellCode) IsAmbiguous() bool {
	return c == code0101 || c == code1010
}

// Complement returns the bitwise complement of c within 4 bits - the
// "flipped" interpretation of a saddle code.
func (c CellCode) Complement() CellCode {
	return c ^ 0xf
}

// Oracle resolves an ambiguous cell code at a given lattice vertex to
// either itself (interpret as-is) or its complement (interpret inverted).
// It is always called with code equal to 0b0101 or 0b1010.
type Oracle func(v Point, code CellCode) CellCode

// DefaultOracle always keeps the code as classified.
func DefaultOracle(_ Point, code CellCode) CellCode {
	return code
}

func classify(r raster.Raster, i, j int) CellCode {
	flag := func(x, y int, bit CellCode) CellCode {
		if r.Get(x, y) != 0 {
			return bit
		}
		return 0
	}
	return flag(i, j+1, 0x1) | flag(i+1, j+1, 0x2) | flag(i+1, j, 0x4) | flag(i, j, 0x8)
}
