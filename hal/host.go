//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync"
)

// HostConfig configures the simulated firmware.
type HostConfig struct {
	// Seed feeds the entropy source. Equal seeds give equal sequences.
	Seed uint64
	// ExternalData is exposed read-only through HAL.ExternalData.
	ExternalData []byte
	// Brightness is the initial backlight level.
	Brightness uint8
	// Log receives logger output. Nil means stdout.
	Log io.Writer

	clock clock
}

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	disp   *hostDisplay
	light  *hostBacklight
	kbd    *hostKeyboard
	t      *hostTime
	rng    *hostEntropy
	extern []byte
}

// New returns a host HAL implementation with default settings.
func New() HAL {
	return NewHost(HostConfig{Brightness: 255})
}

// NewHost returns a host HAL implementation.
func NewHost(cfg HostConfig) HAL {
	return newHostHAL(cfg)
}

func newHostHAL(cfg HostConfig) *hostHAL {
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	c := cfg.clock
	if c == nil {
		c = realClock{}
	}
	logger := &hostLogger{w: w}
	fb := newHostFramebuffer(int(ScreenWidth), int(ScreenHeight))
	t := newHostTime(c)
	return &hostHAL{
		logger: logger,
		fb:     fb,
		disp:   &hostDisplay{fb: fb, t: t},
		light:  &hostBacklight{level: cfg.Brightness},
		kbd:    newHostKeyboard(c),
		t:      t,
		rng:    newHostEntropy(cfg.Seed),
		extern: cfg.ExternalData,
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return h.disp }
func (h *hostHAL) Backlight() Backlight { return h.light }
func (h *hostHAL) Timing() Timing       { return h.t }
func (h *hostHAL) Entropy() Entropy     { return h.rng }
func (h *hostHAL) Input() Input         { return h.kbd }
func (h *hostHAL) ExternalData() []byte { return h.extern }

// Screen returns the simulated panel of a host HAL, or nil for any other HAL.
func Screen(h HAL) *HostScreen {
	hh, ok := h.(*hostHAL)
	if !ok {
		return nil
	}
	return &HostScreen{h: hh}
}

// HostScreen exposes the simulated panel and keyboard to host frontends.
type HostScreen struct {
	h *hostHAL
}

// Pixel returns the color at (x, y). Out-of-range reads return Black.
func (s *HostScreen) Pixel(x, y int) Color { return s.h.fb.pixel(x, y) }

// SnapshotRGB565 copies the panel into dst (little-endian RGB565).
func (s *HostScreen) SnapshotRGB565(dst []byte) { s.h.fb.snapshotRGB565(dst) }

// Brightness returns the current backlight level.
func (s *HostScreen) Brightness() uint8 { return s.h.light.Brightness() }

// SetKey marks k as held or released for subsequent keyboard scans.
func (s *HostScreen) SetKey(k Key, down bool) { s.h.kbd.setKey(k, down) }

// PostEvent queues e for EventGet. It reports false if the queue is full.
func (s *HostScreen) PostEvent(e Event) bool { return s.h.kbd.post(e) }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostBacklight struct {
	mu    sync.Mutex
	level uint8
}

func (b *hostBacklight) SetBrightness(level uint8) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.level = level
}

func (b *hostBacklight) Brightness() uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.level
}

type hostEntropy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newHostEntropy(seed uint64) *hostEntropy {
	return &hostEntropy{rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

func (e *hostEntropy) Random() uint32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Uint32()
}
