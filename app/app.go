package app

import (
	"fmt"

	"epsilon/eadk"
	"epsilon/eadk/random"
	"epsilon/hal"
)

// Config selects demo behaviour.
type Config struct {
	// Release installs the silent failure sink regardless of build tags.
	Release bool
	// Rects is the number of random rectangles painted at startup.
	Rects int
}

// statusBackground sets the status line apart from the random rectangles.
var statusBackground = eadk.RGB(0x20, 0x20, 0x40)

const (
	defaultRects     = 100
	eventPollMillis  = 100
	brightnessStep   = 16
	statusLineOrigin = 200
)

// New returns the app body for the host runners.
func New(cfg Config) func(hal.HAL) {
	return func(h hal.HAL) {
		d := eadk.New(h)
		installFailureSink(d, cfg)
		d.Guard(func() { Main(d, cfg) })
	}
}

// Run starts the app and blocks forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	New(Config{})(h)
	select {}
}

// Main paints random rectangles, greets, then echoes input events until
// Back is pressed.
func Main(d *eadk.Device, cfg Config) {
	if cfg.Rects <= 0 {
		cfg.Rects = defaultRects
	}
	disp := d.Display()
	src := d.Entropy()
	for i := 0; i < cfg.Rects; i++ {
		c := random.Value[eadk.Color](src)
		r := random.Value[eadk.Rect](src)
		disp.PushRectUniform(r, c)
	}

	d.MustPrintf("Bonjour")
	if ext := d.ExternalData(); len(ext) > 0 {
		_ = disp.DrawText(fmt.Sprintf("external data: %d bytes", len(ext)),
			eadk.Point{X: 0, Y: 60}, false, eadk.Black, eadk.White)
	}

	in := d.Input()
	light := d.Backlight()
	var digits uint64
	for {
		if in.Scan().KeyDown(hal.KeyBack) {
			return
		}
		ev, ok := in.EventGet(eventPollMillis)
		if !ok {
			continue
		}
		switch {
		case ev == hal.EventBack:
			return
		case ev == hal.EventUp:
			light.SetBrightness(stepBrightness(light.Brightness(), brightnessStep))
		case ev == hal.EventDown:
			light.SetBrightness(stepBrightness(light.Brightness(), -brightnessStep))
		case ev.IsDigit():
			v, _ := ev.ToDigit()
			digits = digits*10 + uint64(v)
		case ev == hal.EventBackspace:
			digits /= 10
		}
		status(d, ev, digits)
		disp.WaitForVBlank()
	}
}

func status(d *eadk.Device, ev eadk.Event, digits uint64) {
	line := fmt.Sprintf("%-12s n=%-10d t=%dms", ev, digits, d.Timing().Millis())
	_ = d.Display().DrawText(line, eadk.Point{X: 0, Y: statusLineOrigin}, false, eadk.White, statusBackground)
}

func stepBrightness(level uint8, step int) uint8 {
	v := int(level) + step
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
