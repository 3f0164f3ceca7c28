//go:build !release

package eadk

// DefaultSink returns the failure sink of debug builds: the failure is
// drawn on screen before halting.
func DefaultSink(d *Device) FailureSink {
	return NewDebugSink(d)
}
