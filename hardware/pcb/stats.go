//go:build statsview

package pcb

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// statsAddress is the local HTTP address for the telemetry dashboard,
// active only when this binary is built with the statsview tag.
const statsAddress = "localhost:12600"

// LaunchStats starts the embedded statsview dashboard, which shows
// statsview's own default panes, and starts publishStats. This PCB's
// cycle/opcode counters are not added to the dashboard.
func (p *PCB) LaunchStats(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(statsAddress))
	mgr := statsview.New()

	go mgr.Start()
	go p.publishStats()

	fmt.Fprintf(output, "stats server available at %s/debug/statsview\n", statsAddress)
}

// publishStats samples the running counters once a second for as long as
// the debug controller has not been cancelled. statsview scrapes metric
// values through its own registered panes; here we simply keep the
// counters fresh enough to be read by anything observing the PCB.
func (p *PCB) publishStats() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var lastCycles int64
	for !p.Debug.Cancelled() {
		<-ticker.C
		cycles := p.TotalCycles()
		p.cyclesPerSecond = cycles - lastCycles
		lastCycles = cycles
	}
}

// StatsAvailable reports whether this build includes the telemetry
// dashboard.
func StatsAvailable() bool {
	return true
}
