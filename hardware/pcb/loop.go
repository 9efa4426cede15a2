package pcb

import (
	"time"

	"github.com/Justin-Credible/galaga-emulator/debugger"
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
	"github.com/Justin-Credible/galaga-emulator/logger"
)

// pausedPollInterval is how long the loop sleeps between checks of the
// paused flag.
const pausedPollInterval = 250 * time.Millisecond

// Run drives the hardware loop until the debug controller's cancelled
// flag is set: step CPU1 unconditionally, CPU2/CPU3 only if not halted,
// accumulate CPU1's cycles, throttle once a frame's worth have been
// consumed, and dispatch interrupts. A fatal error from any CPU's Step
// is logged, sets Debug's cancelled flag so the UI thread can observe it
// via Cancelled, and is returned, ending the loop. No state dump is
// written and Debug's run state is left unchanged.
func (p *PCB) Run() error {
	p.limiter.Start()
	p.Debug.SetRunning()

	// skipBreakpoints lets the first iteration after a breakpoint pause
	// step past the PC that triggered it.
	skipBreakpoints := false

	for !p.Debug.Cancelled() {
		p.drainCommands()

		for p.Debug.Paused() && !p.Debug.Cancelled() {
			time.Sleep(pausedPollInterval)
			p.drainCommands()
		}
		if p.Debug.Cancelled() {
			break
		}

		if p.Debug.Debugging() && !skipBreakpoints && p.checkBreakpoints() {
			p.Debug.Pause()
			skipBreakpoints = true
			continue
		}
		skipBreakpoints = false

		c1, err := p.CPU1.Step()
		if err != nil {
			logger.Logf("pcb", "cpu1 step failed: %s", err)
			p.Debug.Cancel()
			return err
		}

		if !p.Bus.HaltCPU2() {
			if _, err := p.CPU2.Step(); err != nil {
				logger.Logf("pcb", "cpu2 step failed: %s", err)
				p.Debug.Cancel()
				return err
			}
		}
		if !p.Bus.HaltCPU3() {
			if _, err := p.CPU3.Step(); err != nil {
				logger.Logf("pcb", "cpu3 step failed: %s", err)
				p.Debug.Cancel()
				return err
			}
		}

		p.totalCycles += int64(c1)
		p.totalOpcodes++

		p.cyclesInWindow += c1
		if p.cyclesInWindow >= CyclesPerFrame {
			p.limiter.WaitIfNeeded()
			p.cyclesInWindow = 0
		}

		p.handleInterrupts(c1)

		if p.singleStep {
			p.singleStep = false
			p.Debug.Pause()
		}
	}

	return nil
}

// drainCommands empties the debug command channel at the top of each
// loop iteration, applying each entry immediately. Save/load-state
// commands are logged rather than acted on here -- hardware/pcb has no
// dependency on the snapshot package's file I/O, so a caller watching
// the same Command values (or calling Snapshot()/Load() directly) owns
// that side effect.
func (p *PCB) drainCommands() {
	for {
		cmd, ok := p.Debug.TryRecv()
		if !ok {
			return
		}

		switch cmd.Kind {
		case debugger.CommandContinue:
			p.Debug.Resume()
		case debugger.CommandSingleStep:
			p.singleStep = true
			p.Debug.Resume()
		case debugger.CommandAddBreakpoint:
			p.Debug.AddBreakpoint(cmd.Breakpoint)
		case debugger.CommandRemoveBreakpoint:
			p.Debug.RemoveBreakpoint(cmd.Breakpoint)
		case debugger.CommandReverseStep:
			if err := p.Debug.ReverseStep(); err != nil {
				logger.Logf("pcb", "reverse step: %s", err)
			}
		case debugger.CommandSaveState, debugger.CommandLoadState:
			logger.Logf("pcb", "command %v requested for path %q; caller must act on it", cmd.Kind, cmd.Path)
		}
	}
}

// checkBreakpoints runs the pre-step breakpoint hook: a match on any
// CPU's current PC latches the controller into Paused rather than
// single-stepping automatically, leaving the actual single-step/
// continue decision to the debug mailbox.
func (p *PCB) checkBreakpoints() bool {
	if pc := p.CPU1.PC(); p.Debug.Hit(memory.CPU1, pc) {
		p.reportBreakpoint(memory.CPU1, pc)
		return true
	}
	if pc := p.CPU2.PC(); p.Debug.Hit(memory.CPU2, pc) {
		p.reportBreakpoint(memory.CPU2, pc)
		return true
	}
	if pc := p.CPU3.PC(); p.Debug.Hit(memory.CPU3, pc) {
		p.reportBreakpoint(memory.CPU3, pc)
		return true
	}
	return false
}

func (p *PCB) reportBreakpoint(cpu memory.CPUID, pc uint16) {
	if p.BreakpointSink != nil {
		p.BreakpointSink.Hit(int(cpu), pc)
	}
}
