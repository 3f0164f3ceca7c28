package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// Display is the screen side of the firmware boundary.
//
// Every method maps to exactly one firmware call. Nothing here clips or
// validates; the firmware owns the panel.
type Display interface {
	// PushRect copies len(pixels) colors into r, row-major. The caller
	// supplies exactly r.W*r.H colors.
	PushRect(r Rect, pixels []Color)
	PushRectUniform(r Rect, c Color)
	// WaitForVBlank blocks until the next vertical blank interval.
	WaitForVBlank()
	// DrawString draws NUL-terminated text with its top-left corner at p.
	DrawString(text []byte, p Point, large bool, fg, bg Color)
}

// Backlight controls screen brightness. Levels are passed through unclamped.
type Backlight interface {
	SetBrightness(level uint8)
	Brightness() uint8
}

// Timing provides sleeps and a monotonic millisecond counter.
type Timing interface {
	Usleep(us uint32)
	Msleep(ms uint32)
	Millis() uint64
}

// Entropy yields one random 32-bit word per call.
type Entropy interface {
	Random() uint32
}

// Input provides the keyboard scan and the event queue.
type Input interface {
	// KeyboardScan returns the raw bitmask of held keys.
	KeyboardScan() uint64
	// EventGet waits up to timeout milliseconds for the next event and
	// returns its raw firmware code. The firmware decrements *timeout by
	// the time spent waiting.
	EventGet(timeout *int32) uint16
}

// HAL provides the only contact point between the app and the firmware.
type HAL interface {
	Logger() Logger
	Display() Display
	Backlight() Backlight
	Timing() Timing
	Entropy() Entropy
	Input() Input
	// ExternalData is the read-only blob the firmware maps for the app.
	// Callers must not write to it.
	ExternalData() []byte
}
