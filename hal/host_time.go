//go:build !tinygo

package hal

import "time"

// vblankInterval is the simulated panel refresh period.
const vblankInterval = time.Second / 60

type clock interface {
	Now() time.Time
	Sleep(d time.Duration)
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) Sleep(d time.Duration)                  { time.Sleep(d) }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

type hostTime struct {
	c  clock
	t0 time.Time
}

func newHostTime(c clock) *hostTime {
	return &hostTime{c: c, t0: c.Now()}
}

func (t *hostTime) Usleep(us uint32) {
	t.c.Sleep(time.Duration(us) * time.Microsecond)
}

func (t *hostTime) Msleep(ms uint32) {
	t.c.Sleep(time.Duration(ms) * time.Millisecond)
}

func (t *hostTime) Millis() uint64 {
	elapsed := t.c.Now().Sub(t.t0)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / time.Millisecond)
}

// waitForVBlank sleeps until the next refresh boundary measured from boot.
func (t *hostTime) waitForVBlank() {
	elapsed := t.c.Now().Sub(t.t0)
	if elapsed < 0 {
		elapsed = 0
	}
	next := (elapsed/vblankInterval + 1) * vblankInterval
	t.c.Sleep(next - elapsed)
}
