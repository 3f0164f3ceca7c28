package eadk

import "fmt"

// printOrigin is where the print helpers place their text.
var printOrigin = Point{X: 0, Y: 30}

// Printf formats into a fixed buffer and draws the result in black on
// white. Output longer than the buffer is not drawn; the overflow is
// returned instead.
func (d *Device) Printf(format string, args ...any) error {
	return d.drawf(printOrigin, false, Black, White, format, args...)
}

// Println is Printf with default formatting of args.
func (d *Device) Println(args ...any) error {
	return d.draw(printOrigin, false, Black, White, func(tb *TextBuf) error {
		_, err := fmt.Fprint(tb, args...)
		return err
	})
}

// Eprintf is Printf for errors: red text on white.
func (d *Device) Eprintf(format string, args ...any) error {
	return d.drawf(printOrigin, false, Red, White, format, args...)
}

// MustPrintf is Printf that treats overflow as an invariant violation.
func (d *Device) MustPrintf(format string, args ...any) {
	if err := d.Printf(format, args...); err != nil {
		panic(err)
	}
}

func (d *Device) drawf(p Point, large bool, fg, bg Color, format string, args ...any) error {
	return d.draw(p, large, fg, bg, func(tb *TextBuf) error {
		_, err := fmt.Fprintf(tb, format, args...)
		return err
	})
}

func (d *Device) draw(p Point, large bool, fg, bg Color, format func(*TextBuf) error) error {
	var buf [TextBufSize]byte
	tb := NewTextBuf(buf[:len(buf)-1])
	if err := format(tb); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	text, _ := tb.CString()
	d.h.Display().DrawString(text, p, large, fg, bg)
	return nil
}
