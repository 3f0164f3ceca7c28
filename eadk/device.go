// Package eadk is the application surface over the calculator firmware:
// typed display, timing, backlight, input and external data calls, a
// bounded formatting buffer, and the last-resort failure reporter.
package eadk

import "epsilon/hal"

type (
	Color         = hal.Color
	Rect          = hal.Rect
	Point         = hal.Point
	Key           = hal.Key
	Event         = hal.Event
	KeyboardState = hal.KeyboardState
)

const (
	ScreenWidth  = hal.ScreenWidth
	ScreenHeight = hal.ScreenHeight
)

var (
	ScreenRect = hal.ScreenRect

	Black = hal.Black
	White = hal.White
	Red   = hal.Red
	Green = hal.Green
	Blue  = hal.Blue
)

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color { return hal.FromRGB888(r, g, b) }

// Device wraps one HAL. Apps create a single Device at startup.
type Device struct {
	h    hal.HAL
	sink FailureSink
}

// New returns a Device over h with the build's default failure sink.
func New(h hal.HAL) *Device {
	d := &Device{h: h}
	d.sink = DefaultSink(d)
	return d
}

// SetFailureSink replaces the failure sink. Call it once, at startup.
func (d *Device) SetFailureSink(s FailureSink) {
	if s == nil {
		s = DefaultSink(d)
	}
	d.sink = s
}

// FailureSink returns the installed failure sink.
func (d *Device) FailureSink() FailureSink { return d.sink }

func (d *Device) Display() Display     { return Display{d: d.h.Display()} }
func (d *Device) Timing() Timing       { return Timing{t: d.h.Timing()} }
func (d *Device) Backlight() Backlight { return Backlight{b: d.h.Backlight()} }
func (d *Device) Input() Input         { return Input{in: d.h.Input()} }

// Entropy returns the firmware random word source.
func (d *Device) Entropy() hal.Entropy { return d.h.Entropy() }

// Logger returns the platform logger, or nil when there is none.
func (d *Device) Logger() hal.Logger { return d.h.Logger() }

// ExternalData returns the read-only region the firmware maps for the app.
// It stays valid for the life of the process. Do not write to it.
func (d *Device) ExternalData() []byte { return d.h.ExternalData() }

// Timing wraps the firmware sleep and clock calls.
type Timing struct {
	t hal.Timing
}

func (t Timing) Usleep(us uint32) { t.t.Usleep(us) }
func (t Timing) Msleep(ms uint32) { t.t.Msleep(ms) }

// Millis returns the monotonic millisecond counter.
func (t Timing) Millis() uint64 { return t.t.Millis() }

// Backlight wraps the firmware brightness calls. Levels are not clamped.
type Backlight struct {
	b hal.Backlight
}

func (b Backlight) SetBrightness(level uint8) { b.b.SetBrightness(level) }
func (b Backlight) Brightness() uint8         { return b.b.Brightness() }
