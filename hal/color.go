package hal

import "fmt"

// Color is a packed RGB565 pixel: rrrrrggggggbbbbb.
//
// Its memory image is a single uint16, which is what the firmware expects.
type Color struct {
	rgb565 uint16
}

// FromRGB888 packs 8-bit channels into RGB565 by truncation.
func FromRGB888(r, g, b uint8) Color {
	return Color{rgb565: uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3)}
}

var (
	Black = FromRGB888(0, 0, 0)
	White = FromRGB888(255, 255, 255)
	Red   = FromRGB888(255, 0, 0)
	Green = FromRGB888(0, 255, 0)
	Blue  = FromRGB888(0, 0, 255)
)

// RGB565 returns the packed transport value.
func (c Color) RGB565() uint16 { return c.rgb565 }

// RGB888 expands the color back to 8-bit channels, scaling each field to
// the full 0..255 range.
func (c Color) RGB888() (r, g, b uint8) {
	rr := (c.rgb565 >> 11) & 0x1F
	gg := (c.rgb565 >> 5) & 0x3F
	bb := c.rgb565 & 0x1F

	r = uint8((uint32(rr) * 255) / 31)
	g = uint8((uint32(gg) * 255) / 63)
	b = uint8((uint32(bb) * 255) / 31)
	return r, g, b
}

func (c Color) String() string {
	return fmt.Sprintf("rgb565(%#04x)", c.rgb565)
}

// colorFromRGB565 rebuilds a Color from its transport value. It is only
// used when reading pixels back from a framebuffer.
func colorFromRGB565(v uint16) Color { return Color{rgb565: v} }
