//go:build !tinygo

package hal

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal frontend.
type TerminalConfig struct {
	Hz int
	// Hold is how long a key stays down in scans after a key press.
	// Terminals report presses only, never releases.
	Hold time.Duration
}

var terminalKeys = map[tcell.Key]struct {
	key   Key
	event Event
}{
	tcell.KeyLeft:       {KeyLeft, EventLeft},
	tcell.KeyUp:         {KeyUp, EventUp},
	tcell.KeyDown:       {KeyDown, EventDown},
	tcell.KeyRight:      {KeyRight, EventRight},
	tcell.KeyEnter:      {KeyOK, EventOK},
	tcell.KeyEscape:     {KeyBack, EventBack},
	tcell.KeyBackspace:  {KeyBackspace, EventBackspace},
	tcell.KeyBackspace2: {KeyBackspace, EventBackspace},
	tcell.KeyTab:        {KeyToolbox, EventToolbox},
	tcell.KeyHome:       {KeyHome, EventNone},
	tcell.KeyEnd:        {KeyOnOff, EventNone},
}

var runeKeys = map[rune]Key{
	'0': KeyZero, '1': KeyOne, '2': KeyTwo, '3': KeyThree, '4': KeyFour,
	'5': KeyFive, '6': KeySix, '7': KeySeven, '8': KeyEight, '9': KeyNine,
	'+': KeyPlus, '-': KeyMinus, '*': KeyMultiplication, '/': KeyDivision,
	'.': KeyDot, ',': KeyComma, '(': KeyLeftParenthesis, ')': KeyRightParenthesis,
	'^': KeyPower,
}

// RunTerminal renders the simulated screen in the terminal with half-block
// characters (two pixel rows per cell) and maps key presses to calculator
// keys and events. Ctrl-C quits.
func RunTerminal(cfg HostConfig, tcfg TerminalConfig, run func(HAL)) error {
	if tcfg.Hz <= 0 {
		tcfg.Hz = 30
	}
	if tcfg.Hold <= 0 {
		tcfg.Hold = 150 * time.Millisecond
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer s.Fini()

	h := newHostHAL(cfg)
	term := &hostTerminal{h: h, s: s, hold: tcfg.Hold, held: make(map[Key]time.Time)}

	done := make(chan struct{})
	go func() {
		defer close(done)
		run(h)
	}()

	quit := make(chan struct{})
	go term.pollEvents(quit)

	t := time.NewTicker(time.Second / time.Duration(tcfg.Hz))
	defer t.Stop()
	for {
		select {
		case <-done:
			return nil
		case <-quit:
			return nil
		case now := <-t.C:
			term.releaseExpired(now)
			term.draw()
		}
	}
}

type hostTerminal struct {
	h    *hostHAL
	s    tcell.Screen
	hold time.Duration

	mu   sync.Mutex
	held map[Key]time.Time
}

func (t *hostTerminal) pollEvents(quit chan<- struct{}) {
	for {
		ev := t.s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.s.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				close(quit)
				return
			}
			t.handleKey(ev)
		}
	}
}

func (t *hostTerminal) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if k, ok := runeKeys[r]; ok {
			t.press(k)
		}
		if e, ok := EventForRune(r); ok {
			t.h.kbd.post(e)
		}
		return
	}
	m, ok := terminalKeys[ev.Key()]
	if !ok {
		return
	}
	t.press(m.key)
	if m.event != EventNone {
		t.h.kbd.post(m.event)
	}
}

func (t *hostTerminal) press(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held[k] = time.Now().Add(t.hold)
	t.h.kbd.setKey(k, true)
}

func (t *hostTerminal) releaseExpired(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, until := range t.held {
		if now.After(until) {
			delete(t.held, k)
			t.h.kbd.setKey(k, false)
		}
	}
}

func (t *hostTerminal) draw() {
	cols, rows := t.s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	fb := t.h.fb
	level := t.h.light.Brightness()
	cellColor := func(x, y int) tcell.Color {
		r, g, b := fb.pixel(x*fb.width/cols, y*fb.height/(rows*2)).RGB888()
		return tcell.NewRGBColor(int32(dim(r, level)), int32(dim(g, level)), int32(dim(b, level)))
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(cx, cy*2)).
				Background(cellColor(cx, cy*2+1))
			t.s.SetContent(cx, cy, '▀', nil, style)
		}
	}
	t.s.Show()
}
