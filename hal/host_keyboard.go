//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

const hostEventQueueLen = 64

type hostKeyboard struct {
	c clock

	mu   sync.Mutex
	bits uint64

	ch chan Event
}

func newHostKeyboard(c clock) *hostKeyboard {
	return &hostKeyboard{c: c, ch: make(chan Event, hostEventQueueLen)}
}

func (k *hostKeyboard) KeyboardScan() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.bits
}

func (k *hostKeyboard) setKey(key Key, down bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if down {
		k.bits |= 1 << uint(key)
	} else {
		k.bits &^= 1 << uint(key)
	}
}

func (k *hostKeyboard) post(e Event) bool {
	select {
	case k.ch <- e:
		return true
	default:
		return false
	}
}

// EventGet follows the firmware contract: a positive timeout waits up to
// that many milliseconds and is decremented by the time spent, zero polls
// once, a negative timeout waits forever.
func (k *hostKeyboard) EventGet(timeout *int32) uint16 {
	t := *timeout
	switch {
	case t == 0:
		select {
		case e := <-k.ch:
			return uint16(e)
		default:
			return uint16(EventNone)
		}
	case t < 0:
		return uint16(<-k.ch)
	}

	select {
	case e := <-k.ch:
		return uint16(e)
	default:
	}

	start := k.c.Now()
	defer func() {
		spent := int64(k.c.Now().Sub(start) / time.Millisecond)
		left := int64(t) - spent
		if left < 0 {
			left = 0
		}
		*timeout = int32(left)
	}()

	select {
	case e := <-k.ch:
		return uint16(e)
	case <-k.c.After(time.Duration(t) * time.Millisecond):
		return uint16(EventNone)
	}
}
