package eadk

import "epsilon/hal"

// Input wraps the keyboard scan and the event queue.
type Input struct {
	in hal.Input
}

// Scan captures which keys are held right now. Query the returned snapshot
// as often as needed; it does not change.
func (in Input) Scan() KeyboardState {
	return hal.KeyboardStateFromRaw(in.in.KeyboardScan())
}

// EventGet waits for the next event. A positive timeout waits up to that
// many milliseconds, zero polls once, a negative timeout waits forever.
// It reports false when no event arrived or the firmware returned a code
// outside the event catalogue.
func (in Input) EventGet(timeout int32) (Event, bool) {
	return hal.EventFromCode(in.in.EventGet(&timeout))
}
