//go:build !tinygo

package hal

// rgb565ToRGBA expands a little-endian RGB565 buffer into RGBA pixels,
// dimmed by the backlight level.
func rgb565ToRGBA(dst, src []byte, brightness uint8) {
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := colorFromRGB565(uint16(src[i]) | uint16(src[i+1])<<8).RGB888()
		j := (i / 2) * 4
		dst[j+0] = dim(r, brightness)
		dst[j+1] = dim(g, brightness)
		dst[j+2] = dim(b, brightness)
		dst[j+3] = 0xFF
	}
}

func dim(v, level uint8) uint8 {
	return uint8(uint16(v) * uint16(level) / 255)
}
