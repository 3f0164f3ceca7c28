//go:build !tinygo

package hal

import (
	"bytes"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

type textFont struct {
	font   tinyfont.Fonter
	height int16
	ascent int16
}

var (
	smallFont = textFont{font: &proggy.TinySZ8pt7b, height: 14, ascent: 10}
	largeFont = textFont{font: &freemono.Regular9pt7b, height: 18, ascent: 13}
)

// drawText renders NUL-terminated text line by line starting at p. Each
// line's box is painted with bg before the glyphs are drawn.
func drawText(d fbTarget, fb *hostFramebuffer, text []byte, p Point, large bool, fg, bg Color) {
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	f := smallFont
	if large {
		f = largeFont
	}

	r, g, b := fg.RGB888()
	fgRGBA := color.RGBA{R: r, G: g, B: b, A: 0xFF}

	x := int16(p.X)
	y := int16(p.Y)
	for _, line := range bytes.Split(text, []byte{'\n'}) {
		if len(line) > 0 {
			_, w := tinyfont.LineWidth(f.font, string(line))
			fb.fill(Rect{X: uint16(x), Y: uint16(y), W: uint16(w), H: uint16(f.height)}, bg)
			tinyfont.WriteLine(d, f.font, x, y+f.ascent, string(line), fgRGBA)
		}
		y += f.height
		if int(y) >= fb.height {
			return
		}
	}
}
