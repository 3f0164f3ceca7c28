//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	// Screenshot, if set, is the PNG path the final screen is written to.
	Screenshot string
	// Scale enlarges the screenshot.
	Scale int
}

// RunHeadless runs the app without opening a window. It returns when run
// returns, when the tick budget is spent, or when ctx is done.
func RunHeadless(ctx context.Context, cfg HostConfig, hcfg HeadlessConfig, run func(HAL)) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}

	h := newHostHAL(cfg)
	done := make(chan struct{})
	go func() {
		defer close(done)
		run(h)
	}()

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hcfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var err error
	var tick uint64
loop:
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break loop
		case <-done:
			break loop
		case <-t.C:
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				break loop
			}
		}
	}

	if hcfg.Screenshot != "" {
		if serr := SaveScreenshot(h, hcfg.Screenshot, hcfg.Scale); serr != nil {
			return serr
		}
	}
	return err
}
