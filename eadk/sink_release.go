//go:build release

package eadk

// DefaultSink returns the failure sink of release builds: halt silently.
func DefaultSink(d *Device) FailureSink {
	return NewReleaseSink()
}
