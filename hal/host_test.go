package hal

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

// After advances the clock immediately and returns a fired channel.
func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

func newTestHAL(t *testing.T) (*hostHAL, *fakeClock) {
	t.Helper()
	c := newFakeClock()
	var log bytes.Buffer
	h := newHostHAL(HostConfig{Seed: 7, Brightness: 128, Log: &log, clock: c})
	return h, c
}

func TestHostPushRectUniformClips(t *testing.T) {
	h, _ := newTestHAL(t)
	d := h.Display()

	d.PushRectUniform(Rect{X: 310, Y: 230, W: 100, H: 100}, Red)
	assert.Equal(t, Red, h.fb.pixel(310, 230))
	assert.Equal(t, Red, h.fb.pixel(319, 239))
	assert.Equal(t, Black, h.fb.pixel(309, 230))

	d.PushRectUniform(Rect{X: 5, Y: 5, W: 0, H: 10}, Green)
	assert.Equal(t, Black, h.fb.pixel(5, 5))
}

func TestHostPushRectRowMajor(t *testing.T) {
	h, _ := newTestHAL(t)
	px := []Color{Red, Green, Blue, White}
	h.Display().PushRect(Rect{X: 1, Y: 2, W: 2, H: 2}, px)

	assert.Equal(t, Red, h.fb.pixel(1, 2))
	assert.Equal(t, Green, h.fb.pixel(2, 2))
	assert.Equal(t, Blue, h.fb.pixel(1, 3))
	assert.Equal(t, White, h.fb.pixel(2, 3))

	// A short pixel slice stops the copy instead of reading past it.
	h.Display().PushRect(Rect{X: 0, Y: 0, W: 10, H: 10}, []Color{Blue})
	assert.Equal(t, Blue, h.fb.pixel(0, 0))
	assert.Equal(t, Black, h.fb.pixel(1, 0))
}

func TestHostDrawStringPaintsBackground(t *testing.T) {
	h, _ := newTestHAL(t)
	h.Display().PushRectUniform(ScreenRect, Green)
	h.Display().DrawString([]byte("Hi\x00garbage"), Point{X: 0, Y: 0}, false, Black, White)

	assert.Equal(t, White, h.fb.pixel(0, 0))
	var dark int
	for y := 0; y < int(smallFont.height); y++ {
		for x := 0; x < 20; x++ {
			if h.fb.pixel(x, y) == Black {
				dark++
			}
		}
	}
	assert.Positive(t, dark, "glyph pixels drawn")
	assert.Equal(t, Green, h.fb.pixel(200, 0), "text after NUL is not drawn")
	assert.Equal(t, Green, h.fb.pixel(0, int(smallFont.height)), "one line only")
}

func TestHostDrawStringNewlines(t *testing.T) {
	h, _ := newTestHAL(t)
	h.Display().PushRectUniform(ScreenRect, Green)
	h.Display().DrawString([]byte("\n\nline 3.\x00"), Point{X: 0, Y: 30}, true, Red, White)

	assert.Equal(t, Green, h.fb.pixel(0, 30), "empty lines paint nothing")
	assert.Equal(t, White, h.fb.pixel(0, 30+2*int(largeFont.height)))
}

func TestHostTiming(t *testing.T) {
	h, c := newTestHAL(t)
	tm := h.Timing()

	assert.Equal(t, uint64(0), tm.Millis())
	tm.Msleep(25)
	tm.Usleep(3000)
	assert.Equal(t, uint64(28), tm.Millis())
	assert.Equal(t, []time.Duration{25 * time.Millisecond, 3 * time.Millisecond}, c.sleeps)
}

func TestHostWaitForVBlankAlignsToFrames(t *testing.T) {
	h, c := newTestHAL(t)
	c.Sleep(5 * time.Millisecond)
	h.Display().WaitForVBlank()
	assert.Equal(t, vblankInterval, c.Now().Sub(h.t.t0))

	h.Display().WaitForVBlank()
	assert.Equal(t, 2*vblankInterval, c.Now().Sub(h.t.t0))
}

func TestHostEventGetTimeouts(t *testing.T) {
	h, _ := newTestHAL(t)
	in := h.Input()

	timeout := int32(0)
	assert.Equal(t, uint16(EventNone), in.EventGet(&timeout), "zero polls once")

	timeout = 50
	assert.Equal(t, uint16(EventNone), in.EventGet(&timeout))
	assert.Equal(t, int32(0), timeout, "timeout is consumed")

	require.True(t, h.kbd.post(EventSeven))
	timeout = 50
	assert.Equal(t, uint16(EventSeven), in.EventGet(&timeout))
	assert.Equal(t, int32(50), timeout, "queued event returns without waiting")

	require.True(t, h.kbd.post(EventOK))
	timeout = -1
	assert.Equal(t, uint16(EventOK), in.EventGet(&timeout), "negative waits for the next event")
}

func TestHostEventQueueBounded(t *testing.T) {
	h, _ := newTestHAL(t)
	for i := 0; i < hostEventQueueLen; i++ {
		require.True(t, h.kbd.post(EventOne))
	}
	assert.False(t, h.kbd.post(EventTwo))
}

func TestHostBacklightPassThrough(t *testing.T) {
	h, _ := newTestHAL(t)
	b := h.Backlight()
	assert.Equal(t, uint8(128), b.Brightness())
	b.SetBrightness(0)
	assert.Equal(t, uint8(0), b.Brightness())
	b.SetBrightness(255)
	assert.Equal(t, uint8(255), b.Brightness())
}

func TestHostEntropyDeterministic(t *testing.T) {
	a := newHostEntropy(42)
	b := newHostEntropy(42)
	c := newHostEntropy(43)
	same := true
	for i := 0; i < 16; i++ {
		va, vb, vc := a.Random(), b.Random(), c.Random()
		require.Equal(t, va, vb)
		if va != vc {
			same = false
		}
	}
	assert.False(t, same, "different seeds give different words")
}

func TestHostScreenAccess(t *testing.T) {
	h, _ := newTestHAL(t)
	s := Screen(h)
	require.NotNil(t, s)

	s.SetKey(KeyAns, true)
	assert.True(t, KeyboardStateFromRaw(h.Input().KeyboardScan()).KeyDown(KeyAns))
	assert.True(t, s.PostEvent(EventAns))

	h.Display().PushRectUniform(Rect{X: 0, Y: 0, W: 1, H: 1}, White)
	img := s.Image()
	// Brightness 128 dims white to about half.
	assert.Equal(t, uint8(128), img.Pix[0])
	assert.Equal(t, uint8(0xFF), img.Pix[3])
}

func TestSaveScreenshot(t *testing.T) {
	h, _ := newTestHAL(t)
	h.Display().PushRectUniform(ScreenRect, Blue)
	path := filepath.Join(t.TempDir(), "shot.png")

	require.NoError(t, SaveScreenshot(h, path, 2))
	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestLoadExternalData(t *testing.T) {
	b, err := LoadExternalData("")
	require.NoError(t, err)
	assert.Empty(t, b)

	dir := t.TempDir()
	path := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))
	b, err = LoadExternalData(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	_, err = LoadExternalData(dir)
	assert.ErrorIs(t, err, os.ErrInvalid)

	_, err = LoadExternalData(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	h := newHostHAL(HostConfig{ExternalData: []byte("abc"), Log: &bytes.Buffer{}})
	assert.Equal(t, []byte("abc"), h.ExternalData())
}
