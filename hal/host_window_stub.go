//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window frontend.
type WindowConfig struct {
	Scale int
}

func RunWindow(_ HostConfig, _ WindowConfig, _ func(HAL)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
