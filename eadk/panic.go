package eadk

import (
	"fmt"
	"runtime"
	"strings"
)

// PanicInfo describes an unrecoverable failure. Location and message are
// both optional.
type PanicInfo struct {
	File        string
	Line        int
	HasLocation bool

	Message    string
	HasMessage bool
}

const (
	unknownLocation = "<unknown location>"
	noMessage       = "<no message>"
)

// Location returns the failing file, or a placeholder.
func (p PanicInfo) Location() string {
	if !p.HasLocation || p.File == "" {
		return unknownLocation
	}
	return p.File
}

// Text returns the failure message, or a placeholder.
func (p PanicInfo) Text() string {
	if !p.HasMessage {
		return noMessage
	}
	return p.Message
}

func (p PanicInfo) String() string {
	if p.HasLocation {
		return fmt.Sprintf("%s:%d: %s", p.Location(), p.Line, p.Text())
	}
	return p.Location() + ": " + p.Text()
}

// FailureSink receives every unrecoverable failure. Fail does not return
// on a device; there is no way back to normal execution.
type FailureSink interface {
	Fail(info PanicInfo)
}

func haltForever() {
	select {}
}

// DebugSink paints the failure on screen and halts.
type DebugSink struct {
	d *Device
	// Halt ends execution. Defaults to blocking forever.
	Halt func()
}

// NewDebugSink returns a DebugSink drawing on d.
func NewDebugSink(d *Device) *DebugSink {
	return &DebugSink{d: d, Halt: haltForever}
}

var (
	panicLocationOrigin = Point{X: 0, Y: 40}
	panicMessageOrigin  = Point{X: 0, Y: 0}
)

func (s *DebugSink) Fail(info PanicInfo) {
	if l := s.d.Logger(); l != nil {
		l.WriteLineString("panic: " + info.String())
	}

	disp := s.d.Display()
	if err := disp.DrawText(info.Location(), panicLocationOrigin, true, Red, White); err != nil {
		_ = disp.DrawText(unknownLocation, panicLocationOrigin, true, Red, White)
	}
	if err := disp.DrawText(info.Text(), panicMessageOrigin, true, Red, White); err != nil {
		_ = disp.DrawText(noMessage, panicMessageOrigin, true, Red, White)
	}
	if info.HasLocation {
		_ = s.d.Eprintf("\n\nline %d.", info.Line)
	} else {
		_ = s.d.Eprintf("\n\nline unknown.")
	}

	halt(s.Halt)
}

// ReleaseSink halts without any output.
type ReleaseSink struct {
	Halt func()
}

// NewReleaseSink returns a ReleaseSink that blocks forever.
func NewReleaseSink() *ReleaseSink {
	return &ReleaseSink{Halt: haltForever}
}

func (s *ReleaseSink) Fail(PanicInfo) {
	halt(s.Halt)
}

func halt(fn func()) {
	if fn == nil {
		fn = haltForever
	}
	fn()
}

// Fail reports an invariant violation at the caller's location.
func (d *Device) Fail(msg string) {
	info := PanicInfo{Message: msg, HasMessage: true}
	if _, file, line, ok := runtime.Caller(1); ok {
		info.File, info.Line, info.HasLocation = file, line, true
	}
	d.sink.Fail(info)
}

// Guard runs fn and hands any panic it raises to the failure sink. With
// the default sinks, Guard does not return after a panic.
func (d *Device) Guard(fn func()) {
	defer func() {
		if v := recover(); v != nil {
			d.sink.Fail(panicInfo(v))
		}
	}()
	fn()
}

// panicInfo describes the recovered value v. It must be called from the
// deferred function that recovered, so the panic site is still on the
// stack.
func panicInfo(v any) PanicInfo {
	info := PanicInfo{HasMessage: true}
	switch v := v.(type) {
	case error:
		info.Message = v.Error()
	case string:
		info.Message = v
	case fmt.Stringer:
		info.Message = v.String()
	default:
		info.Message = fmt.Sprint(v)
	}

	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	panicking := false
	for {
		f, more := frames.Next()
		if f.Function == "runtime.gopanic" {
			panicking = true
		} else if panicking && !strings.HasPrefix(f.Function, "runtime.") {
			info.File, info.Line, info.HasLocation = f.File, f.Line, true
			break
		}
		if !more {
			break
		}
	}
	return info
}
