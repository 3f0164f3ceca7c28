//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"os"
)

// maxExternalDataBytes bounds the simulated external data region. The
// device maps at most this much flash for the app.
const maxExternalDataBytes = 4 * 1024 * 1024

var ErrExternalDataTooLarge = errors.New("external data too large")

// LoadExternalData reads the file that backs the simulated external data
// region. An empty path yields an empty region.
func LoadExternalData(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("external data %s: %w", path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("external data %s: %w", path, os.ErrInvalid)
	}
	if st.Size() > maxExternalDataBytes {
		return nil, fmt.Errorf("external data %s (%d bytes): %w", path, st.Size(), ErrExternalDataTooLarge)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("external data %s: %w", path, err)
	}
	return b, nil
}
