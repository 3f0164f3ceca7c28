package hal

const (
	ScreenWidth  uint16 = 320
	ScreenHeight uint16 = 240
)

// ScreenRect covers the whole panel.
var ScreenRect = Rect{X: 0, Y: 0, W: ScreenWidth, H: ScreenHeight}

// Rect is a screen rectangle. Field order is the firmware layout.
type Rect struct {
	X uint16
	Y uint16
	W uint16
	H uint16
}

// Point is a screen position. Field order is the firmware layout.
type Point struct {
	X uint16
	Y uint16
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return uint32(p.X) >= uint32(r.X) && uint32(p.X) < uint32(r.X)+uint32(r.W) &&
		uint32(p.Y) >= uint32(r.Y) && uint32(p.Y) < uint32(r.Y)+uint32(r.H)
}

// OnScreen reports whether r lies entirely within ScreenRect.
func (r Rect) OnScreen() bool {
	return uint32(r.X)+uint32(r.W) <= uint32(ScreenWidth) &&
		uint32(r.Y)+uint32(r.H) <= uint32(ScreenHeight)
}
