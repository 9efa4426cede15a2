//go:build !statsview

package pcb

import "io"

// LaunchStats is a no-op in builds without the statsview tag, so callers
// in cmd/galaga don't need a separate build-tagged call site.
func (p *PCB) LaunchStats(output io.Writer) {}

// StatsAvailable reports whether this build includes the telemetry
// dashboard.
func StatsAvailable() bool {
	return false
}
