package eadk

import (
	"fmt"

	"epsilon/hal"
)

// Display wraps the firmware drawing calls.
type Display struct {
	d hal.Display
}

// PushRect copies pixels into r, row-major. len(pixels) must be r.W*r.H;
// this is not checked.
func (d Display) PushRect(r Rect, pixels []Color) { d.d.PushRect(r, pixels) }

func (d Display) PushRectUniform(r Rect, c Color) { d.d.PushRectUniform(r, c) }

// WaitForVBlank blocks until the next vertical blank.
func (d Display) WaitForVBlank() { d.d.WaitForVBlank() }

// DrawString draws NUL-terminated text at p.
func (d Display) DrawString(text []byte, p Point, large bool, fg, bg Color) {
	d.d.DrawString(text, p, large, fg, bg)
}

// Clear fills the whole screen with c.
func (d Display) Clear(c Color) { d.d.PushRectUniform(ScreenRect, c) }

// DrawText copies s into a bounded buffer, terminates it and draws it.
func (d Display) DrawText(s string, p Point, large bool, fg, bg Color) error {
	var buf [TextBufSize]byte
	tb := NewTextBuf(buf[:len(buf)-1])
	if _, err := tb.WriteString(s); err != nil {
		return fmt.Errorf("draw text: %w", err)
	}
	text, _ := tb.CString()
	d.d.DrawString(text, p, large, fg, bg)
	return nil
}
