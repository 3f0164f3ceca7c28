//go:build !tinygo

package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

// pushRect writes pixels row-major into r. Pixels falling outside the panel
// are dropped, as are pixels past the end of the slice.
func (f *hostFramebuffer) pushRect(r Rect, pixels []Color) {
	if r.Empty() {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	i := 0
	for y := int(r.Y); y < int(r.Y)+int(r.H); y++ {
		for x := int(r.X); x < int(r.X)+int(r.W); x++ {
			if i >= len(pixels) {
				return
			}
			f.setLocked(x, y, pixels[i])
			i++
		}
	}
}

func (f *hostFramebuffer) fill(r Rect, c Color) {
	if r.Empty() {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	x0 := clampInt(int(r.X), 0, f.width)
	y0 := clampInt(int(r.Y), 0, f.height)
	x1 := clampInt(int(r.X)+int(r.W), 0, f.width)
	y1 := clampInt(int(r.Y)+int(r.H), 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	lo := byte(c.rgb565)
	hi := byte(c.rgb565 >> 8)
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
}

func (f *hostFramebuffer) setLocked(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	off := y*f.stride + x*2
	f.buf[off] = byte(c.rgb565)
	f.buf[off+1] = byte(c.rgb565 >> 8)
}

func (f *hostFramebuffer) pixel(x, y int) Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	off := y*f.stride + x*2
	return colorFromRGB565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fbTarget adapts the framebuffer to the tinyfont drawing contract.
type fbTarget struct {
	fb *hostFramebuffer
}

var _ drivers.Displayer = fbTarget{}

func (d fbTarget) Size() (x, y int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d fbTarget) SetPixel(x, y int16, c color.RGBA) {
	d.fb.mu.Lock()
	defer d.fb.mu.Unlock()
	d.fb.setLocked(int(x), int(y), FromRGB888(c.R, c.G, c.B))
}

func (d fbTarget) Display() error { return nil }

type hostDisplay struct {
	fb *hostFramebuffer
	t  *hostTime
}

func (d *hostDisplay) PushRect(r Rect, pixels []Color) { d.fb.pushRect(r, pixels) }
func (d *hostDisplay) PushRectUniform(r Rect, c Color) { d.fb.fill(r, c) }
func (d *hostDisplay) WaitForVBlank()                  { d.t.waitForVBlank() }

func (d *hostDisplay) DrawString(text []byte, p Point, large bool, fg, bg Color) {
	drawText(fbTarget{fb: d.fb}, d.fb, text, p, large, fg, bg)
}
