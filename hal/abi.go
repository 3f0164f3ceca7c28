package hal

// Composite arguments cross the firmware boundary by value. The helpers
// below produce the exact little-endian memory image of each type so the
// TinyGo adapter can pass it in integer registers.

// PackRect returns the 8-byte image of r: x, y, w, h as consecutive uint16s.
func PackRect(r Rect) uint64 {
	return uint64(r.X) | uint64(r.Y)<<16 | uint64(r.W)<<32 | uint64(r.H)<<48
}

// UnpackRect is the inverse of PackRect.
func UnpackRect(v uint64) Rect {
	return Rect{X: uint16(v), Y: uint16(v >> 16), W: uint16(v >> 32), H: uint16(v >> 48)}
}

// PackPoint returns the 4-byte image of p: x, y as consecutive uint16s.
func PackPoint(p Point) uint32 {
	return uint32(p.X) | uint32(p.Y)<<16
}

// UnpackPoint is the inverse of PackPoint.
func UnpackPoint(v uint32) Point {
	return Point{X: uint16(v), Y: uint16(v >> 16)}
}

// PackColor returns the 2-byte image of c.
func PackColor(c Color) uint16 { return c.rgb565 }
