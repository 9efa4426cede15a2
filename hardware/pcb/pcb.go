// Package pcb implements the 60Hz hardware loop: it drives three Z80
// stepping engines through the shared memory bus, dispatches VBLANK
// interrupts, throttles real time, and hands composed frames to a video
// sink.
package pcb

import (
	"github.com/Justin-Credible/galaga-emulator/debugger"
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
	"github.com/Justin-Credible/galaga-emulator/hardware/video"
	"github.com/Justin-Credible/galaga-emulator/hardware/z80"
	"github.com/Justin-Credible/galaga-emulator/sink"
)

// CPUHz is the Z80 clock rate driving both throttling and interrupt
// scheduling.
const CPUHz = 3_072_000

// CyclesPerFrame is the number of CPU1 cycles that make up one 1/60s
// VBLANK window.
const CyclesPerFrame = CPUHz / 60

// PCB owns the bus, the three CPU stepping engines, the video composer,
// and the debug controller -- everything the hardware thread touches.
// Nothing here is safe for concurrent use except through the sinks and
// the debugger.Controller's own atomics.
type PCB struct {
	Bus *memory.Bus

	CPU1, CPU2, CPU3 z80.Engine

	Composer *video.Composer

	VideoSink      sink.VideoSink
	AudioSink      sink.AudioSink
	BreakpointSink sink.BreakpointSink

	Debug *debugger.Controller

	cyclesInWindow       int
	cyclesSinceInterrupt int
	totalCycles          int64
	totalOpcodes         int64

	// cyclesPerSecond is sampled once a second by the optional statsview
	// telemetry goroutine (stats.go); it is harmless dead weight in
	// builds without the statsview tag.
	cyclesPerSecond int64

	// singleStep is set by a CommandSingleStep mailbox entry; the loop
	// re-pauses after the next full iteration completes instead of
	// running freely.
	singleStep bool

	// iePrevious holds each CPU's interrupt-enable flag as it stood
	// immediately before the last dispatch decision, for the snapshot's
	// interrupts-enabled-flag-and-its-previous-value field.
	iePrevious [3]bool

	limiter *limiter
}

// New builds a PCB ready to Run. debug may be nil, in which case the loop
// never checks breakpoints and runs unconditionally.
func New(bus *memory.Bus, cpu1, cpu2, cpu3 z80.Engine, composer *video.Composer, videoSink sink.VideoSink, audioSink sink.AudioSink, breakpointSink sink.BreakpointSink, debug *debugger.Controller) *PCB {
	if debug == nil {
		debug = debugger.NewController()
	}
	return &PCB{
		Bus:            bus,
		CPU1:           cpu1,
		CPU2:           cpu2,
		CPU3:           cpu3,
		Composer:       composer,
		VideoSink:      videoSink,
		AudioSink:      audioSink,
		BreakpointSink: breakpointSink,
		Debug:          debug,
		limiter:        newLimiter(CyclesPerFrame),
	}
}

// TotalCycles and TotalOpcodes report the running counters used by the
// snapshot and by the optional telemetry dashboard.
func (p *PCB) TotalCycles() int64  { return p.totalCycles }
func (p *PCB) TotalOpcodes() int64 { return p.totalOpcodes }
