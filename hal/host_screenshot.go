//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// Image returns the current simulated screen as an RGBA image.
func (s *HostScreen) Image() *image.RGBA {
	return screenImage(s.h)
}

func screenImage(h *hostHAL) *image.RGBA {
	fb := h.fb
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	scratch := make([]byte, len(fb.buf))
	fb.snapshotRGB565(scratch)
	rgb565ToRGBA(img.Pix, scratch, h.light.Brightness())
	return img
}

// SaveScreenshot writes the screen of a host HAL to path as PNG, enlarged
// by scale.
func SaveScreenshot(h HAL, path string, scale int) error {
	hh, ok := h.(*hostHAL)
	if !ok {
		return errors.New("screenshot: not a host HAL")
	}
	if scale <= 0 {
		scale = 1
	}

	img := screenImage(hh)
	b := img.Bounds()
	dc := gg.NewContext(b.Dx()*scale, b.Dy()*scale)
	dc.Scale(float64(scale), float64(scale))
	dc.DrawImage(img, 0, 0)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	return nil
}
