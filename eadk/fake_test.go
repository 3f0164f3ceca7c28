package eadk

import (
	"strings"

	"epsilon/hal"
)

type drawCall struct {
	text   string
	p      Point
	large  bool
	fg, bg Color
}

// fakeHAL records every firmware call.
type fakeHAL struct {
	draws    []drawCall
	fills    []Rect
	pushed   int
	vblanks  int
	sleeps   []uint32
	millis   uint64
	level    uint8
	words    uint32
	scan     uint64
	events   []uint16
	timeouts []int32
	extern   []byte
	lines    []string
}

func (f *fakeHAL) Logger() hal.Logger       { return fakeLogger{f} }
func (f *fakeHAL) Display() hal.Display     { return fakeDisplay{f} }
func (f *fakeHAL) Backlight() hal.Backlight { return fakeBacklight{f} }
func (f *fakeHAL) Timing() hal.Timing       { return fakeTiming{f} }
func (f *fakeHAL) Entropy() hal.Entropy     { return fakeEntropy{f} }
func (f *fakeHAL) Input() hal.Input         { return fakeInput{f} }
func (f *fakeHAL) ExternalData() []byte     { return f.extern }

type fakeLogger struct{ f *fakeHAL }

func (l fakeLogger) WriteLineString(s string) { l.f.lines = append(l.f.lines, s) }
func (l fakeLogger) WriteLineBytes(b []byte)  { l.f.lines = append(l.f.lines, string(b)) }

type fakeDisplay struct{ f *fakeHAL }

func (d fakeDisplay) PushRect(r Rect, pixels []Color) { d.f.pushed += len(pixels) }
func (d fakeDisplay) PushRectUniform(r Rect, c Color) { d.f.fills = append(d.f.fills, r) }
func (d fakeDisplay) WaitForVBlank()                  { d.f.vblanks++ }

func (d fakeDisplay) DrawString(text []byte, p Point, large bool, fg, bg Color) {
	// Keep the terminator visible so tests can check it.
	d.f.draws = append(d.f.draws, drawCall{text: string(text), p: p, large: large, fg: fg, bg: bg})
}

type fakeBacklight struct{ f *fakeHAL }

func (b fakeBacklight) SetBrightness(level uint8) { b.f.level = level }
func (b fakeBacklight) Brightness() uint8         { return b.f.level }

type fakeTiming struct{ f *fakeHAL }

func (t fakeTiming) Usleep(us uint32) { t.f.sleeps = append(t.f.sleeps, us) }
func (t fakeTiming) Msleep(ms uint32) { t.f.sleeps = append(t.f.sleeps, ms*1000) }
func (t fakeTiming) Millis() uint64   { return t.f.millis }

type fakeEntropy struct{ f *fakeHAL }

func (e fakeEntropy) Random() uint32 {
	e.f.words++
	return e.f.words
}

type fakeInput struct{ f *fakeHAL }

func (in fakeInput) KeyboardScan() uint64 { return in.f.scan }

func (in fakeInput) EventGet(timeout *int32) uint16 {
	in.f.timeouts = append(in.f.timeouts, *timeout)
	if len(in.f.events) == 0 {
		*timeout = 0
		return uint16(hal.EventNone)
	}
	e := in.f.events[0]
	in.f.events = in.f.events[1:]
	return e
}

// haltRecorder replaces the idle loop so tests can observe the halt.
type haltRecorder struct{ halted int }

func (h *haltRecorder) halt() { h.halted++ }

func trimNUL(s string) string { return strings.TrimSuffix(s, "\x00") }
