package eadk

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epsilon/hal"
)

type captureSink struct {
	infos []PanicInfo
}

func (s *captureSink) Fail(info PanicInfo) { s.infos = append(s.infos, info) }

func TestPrintfDrawsTerminatedText(t *testing.T) {
	f := &fakeHAL{}
	d := New(f)

	require.NoError(t, d.Printf("Bonjour"))
	require.Len(t, f.draws, 1)
	got := f.draws[0]
	assert.Equal(t, "Bonjour\x00", got.text)
	assert.Equal(t, Point{X: 0, Y: 30}, got.p)
	assert.False(t, got.large)
	assert.Equal(t, Black, got.fg)
	assert.Equal(t, White, got.bg)

	require.NoError(t, d.Println("n =", 3))
	assert.Equal(t, "n =3\x00", f.draws[1].text)
}

func TestPrintfOverflowDrawsNothing(t *testing.T) {
	f := &fakeHAL{}
	d := New(f)

	err := d.Printf("%s", strings.Repeat("x", TextBufSize))
	require.ErrorIs(t, err, ErrTextOverflow)
	assert.Empty(t, f.draws)

	// One byte is kept for the terminator.
	require.NoError(t, d.Printf("%s", strings.Repeat("x", TextBufSize-1)))
	require.Len(t, f.draws, 1)
	assert.Len(t, f.draws[0].text, TextBufSize)

	assert.Panics(t, func() { d.MustPrintf("%s", strings.Repeat("y", 2*TextBufSize)) })
}

func TestEprintfIsRed(t *testing.T) {
	f := &fakeHAL{}
	require.NoError(t, New(f).Eprintf("line %d.", 7))
	require.Len(t, f.draws, 1)
	assert.Equal(t, "line 7.\x00", f.draws[0].text)
	assert.Equal(t, Red, f.draws[0].fg)
	assert.Equal(t, White, f.draws[0].bg)
}

func TestDisplayPassThrough(t *testing.T) {
	f := &fakeHAL{}
	disp := New(f).Display()

	disp.Clear(Blue)
	disp.PushRectUniform(Rect{X: 1, Y: 2, W: 3, H: 4}, Red)
	disp.PushRect(Rect{W: 2, H: 2}, make([]Color, 4))
	disp.WaitForVBlank()
	require.NoError(t, disp.DrawText("hi", Point{X: 5, Y: 6}, true, White, Black))

	assert.Equal(t, []Rect{ScreenRect, {X: 1, Y: 2, W: 3, H: 4}}, f.fills)
	assert.Equal(t, 4, f.pushed)
	assert.Equal(t, 1, f.vblanks)
	require.Len(t, f.draws, 1)
	assert.Equal(t, drawCall{text: "hi\x00", p: Point{X: 5, Y: 6}, large: true, fg: White, bg: Black}, f.draws[0])
}

func TestTimingAndBacklight(t *testing.T) {
	f := &fakeHAL{millis: 1234}
	d := New(f)

	d.Timing().Usleep(10)
	d.Timing().Msleep(2)
	assert.Equal(t, []uint32{10, 2000}, f.sleeps)
	assert.Equal(t, uint64(1234), d.Timing().Millis())

	d.Backlight().SetBrightness(42)
	assert.Equal(t, uint8(42), f.level)
	assert.Equal(t, uint8(42), d.Backlight().Brightness())
}

func TestInputEventGet(t *testing.T) {
	f := &fakeHAL{events: []uint16{uint16(hal.EventOK), 6, uint16(hal.EventNone)}}
	in := New(f).Input()

	e, ok := in.EventGet(100)
	assert.True(t, ok)
	assert.Equal(t, hal.EventOK, e)

	_, ok = in.EventGet(0)
	assert.False(t, ok, "code 6 is not an event")

	_, ok = in.EventGet(-1)
	assert.False(t, ok)

	assert.Equal(t, []int32{100, 0, -1}, f.timeouts)
}

func TestInputScan(t *testing.T) {
	f := &fakeHAL{scan: 1<<uint(hal.KeyOK) | 1<<uint(hal.KeyEXE)}
	st := New(f).Input().Scan()
	assert.True(t, st.KeyDown(hal.KeyOK))
	assert.True(t, st.KeyDown(hal.KeyEXE))
	assert.False(t, st.KeyDown(hal.KeyBack))

	f.scan = 0
	assert.True(t, st.KeyDown(hal.KeyOK), "snapshot does not follow the keyboard")
}

func TestExternalData(t *testing.T) {
	blob := []byte{1, 2, 3}
	d := New(&fakeHAL{extern: blob})
	assert.Equal(t, blob, d.ExternalData())
	assert.Empty(t, New(&fakeHAL{}).ExternalData())
}

func TestDebugSinkDrawsFailure(t *testing.T) {
	f := &fakeHAL{}
	d := New(f)
	var rec haltRecorder
	sink := NewDebugSink(d)
	sink.Halt = rec.halt

	sink.Fail(PanicInfo{File: "src/main.go", Line: 12, HasLocation: true, Message: "boom", HasMessage: true})

	require.Len(t, f.draws, 3)
	assert.Equal(t, drawCall{text: "src/main.go\x00", p: Point{X: 0, Y: 40}, large: true, fg: Red, bg: White}, f.draws[0])
	assert.Equal(t, drawCall{text: "boom\x00", p: Point{X: 0, Y: 0}, large: true, fg: Red, bg: White}, f.draws[1])
	assert.Equal(t, "\n\nline 12.", trimNUL(f.draws[2].text))
	assert.Equal(t, Point{X: 0, Y: 30}, f.draws[2].p)
	assert.Equal(t, Red, f.draws[2].fg)
	assert.Equal(t, []string{"panic: src/main.go:12: boom"}, f.lines)
	assert.Equal(t, 1, rec.halted)
}

func TestDebugSinkFallbacks(t *testing.T) {
	f := &fakeHAL{}
	d := New(f)
	var rec haltRecorder
	sink := NewDebugSink(d)
	sink.Halt = rec.halt

	sink.Fail(PanicInfo{})

	require.Len(t, f.draws, 3)
	assert.Equal(t, "<unknown location>", trimNUL(f.draws[0].text))
	assert.Equal(t, "<no message>", trimNUL(f.draws[1].text))
	assert.Equal(t, "\n\nline unknown.", trimNUL(f.draws[2].text))
	assert.Equal(t, 1, rec.halted)
}

func TestDebugSinkOversizedMessage(t *testing.T) {
	f := &fakeHAL{}
	sink := NewDebugSink(New(f))
	sink.Halt = func() {}

	sink.Fail(PanicInfo{Message: strings.Repeat("m", 4*TextBufSize), HasMessage: true})

	require.Len(t, f.draws, 3)
	assert.Equal(t, "<no message>", trimNUL(f.draws[1].text))
}

func TestDebugSinkOversizedLocation(t *testing.T) {
	f := &fakeHAL{}
	sink := NewDebugSink(New(f))
	sink.Halt = func() {}

	sink.Fail(PanicInfo{File: strings.Repeat("f", 2*TextBufSize), Line: 3, HasLocation: true, Message: "m", HasMessage: true})

	require.Len(t, f.draws, 3)
	assert.Equal(t, drawCall{text: "<unknown location>\x00", p: Point{X: 0, Y: 40}, large: true, fg: Red, bg: White}, f.draws[0])
	assert.Equal(t, "m", trimNUL(f.draws[1].text))
	assert.Equal(t, "\n\nline 3.", trimNUL(f.draws[2].text))
}

func TestReleaseSinkIsSilent(t *testing.T) {
	f := &fakeHAL{}
	var rec haltRecorder
	sink := NewReleaseSink()
	sink.Halt = rec.halt

	sink.Fail(PanicInfo{Message: "boom", HasMessage: true})

	assert.Empty(t, f.draws)
	assert.Empty(t, f.lines)
	assert.Equal(t, 1, rec.halted)
}

func TestDefaultSink(t *testing.T) {
	d := New(&fakeHAL{})
	assert.IsType(t, &DebugSink{}, d.FailureSink())

	d.SetFailureSink(NewReleaseSink())
	assert.IsType(t, &ReleaseSink{}, d.FailureSink())

	d.SetFailureSink(nil)
	assert.IsType(t, &DebugSink{}, d.FailureSink())
}

func TestGuardReportsPanicSite(t *testing.T) {
	d := New(&fakeHAL{})
	sink := &captureSink{}
	d.SetFailureSink(sink)

	var line int
	d.Guard(func() { _, _, line, _ = runtime.Caller(0); panic("boom") })

	require.Len(t, sink.infos, 1)
	info := sink.infos[0]
	assert.True(t, info.HasLocation)
	assert.Equal(t, "eadk_test.go", filepath.Base(info.File))
	assert.Equal(t, line, info.Line)
	assert.True(t, info.HasMessage)
	assert.Equal(t, "boom", info.Message)
}

func TestGuardMessages(t *testing.T) {
	d := New(&fakeHAL{})
	sink := &captureSink{}
	d.SetFailureSink(sink)

	d.Guard(func() { panic(errors.New("disk on fire")) })
	d.Guard(func() { panic(42) })
	d.Guard(func() {})

	require.Len(t, sink.infos, 2)
	assert.Equal(t, "disk on fire", sink.infos[0].Message)
	assert.Equal(t, "42", sink.infos[1].Message)
}

func TestGuardRuntimeError(t *testing.T) {
	d := New(&fakeHAL{})
	sink := &captureSink{}
	d.SetFailureSink(sink)

	var xs []int
	d.Guard(func() { _ = xs[3] })

	require.Len(t, sink.infos, 1)
	assert.Contains(t, sink.infos[0].Message, "index out of range")
	assert.Equal(t, "eadk_test.go", filepath.Base(sink.infos[0].File))
}

func TestFailReportsCaller(t *testing.T) {
	d := New(&fakeHAL{})
	sink := &captureSink{}
	d.SetFailureSink(sink)

	_, _, line, _ := runtime.Caller(0)
	d.Fail("bad state")

	require.Len(t, sink.infos, 1)
	assert.Equal(t, "eadk_test.go", filepath.Base(sink.infos[0].File))
	assert.Equal(t, line+1, sink.infos[0].Line)
	assert.Equal(t, "bad state", sink.infos[0].Text())
}

func TestPanicInfoString(t *testing.T) {
	assert.Equal(t, "a.go:3: x", PanicInfo{File: "a.go", Line: 3, HasLocation: true, Message: "x", HasMessage: true}.String())
	assert.Equal(t, "<unknown location>: <no message>", PanicInfo{}.String())
}
