package app

import "epsilon/eadk"

// installFailureSink picks the sink for this run. The build tag default is
// kept unless the config forces a release sink.
func installFailureSink(d *eadk.Device, cfg Config) {
	if cfg.Release {
		d.SetFailureSink(eadk.NewReleaseSink())
		if l := d.Logger(); l != nil {
			l.WriteLineString("failure sink: release")
		}
		return
	}
	if l := d.Logger(); l != nil {
		l.WriteLineString("failure sink: default")
	}
}
