// Package debugger implements breakpoint, single-step, and save/load
// machinery without an interactive console of its own -- that surface
// is an explicit external collaborator driven through a mailbox-style
// command channel.
package debugger

import (
	"sync/atomic"

	"github.com/Justin-Credible/galaga-emulator/debugger/govern"
	"github.com/Justin-Credible/galaga-emulator/galerr"
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
)

// CommandKind enumerates the one-shot commands the UI/platform thread may
// post into the debug mailbox.
type CommandKind int

const (
	CommandContinue CommandKind = iota
	CommandSingleStep
	CommandAddBreakpoint
	CommandRemoveBreakpoint
	CommandSaveState
	CommandLoadState
	CommandReverseStep
)

// Command is one entry in the debug command channel.
type Command struct {
	Kind       CommandKind
	Breakpoint Breakpoint
	Path       string
}

// Breakpoint identifies a single address at which a CPU should drop into
// single-step, matched against a specific CPU or shared across all three
// when CPU is zero.
type Breakpoint struct {
	CPU  memory.CPUID
	Addr uint16
}

// Controller holds the atomic flags and mailbox the hardware thread polls
// at the top of each loop iteration, and the breakpoint set the pre-step
// hook matches against.
type Controller struct {
	paused    atomic.Bool
	cancelled atomic.Bool
	debugging atomic.Bool

	state atomic.Int32

	Commands chan Command

	breakpoints map[Breakpoint]bool
}

// NewController returns a Controller with its run state set to
// Initialising and a buffered, non-blocking command mailbox.
func NewController() *Controller {
	c := &Controller{
		Commands:    make(chan Command, 16),
		breakpoints: make(map[Breakpoint]bool),
	}
	c.state.Store(int32(govern.Initialising))
	return c
}

// State reports the loop's current run state.
func (c *Controller) State() govern.State {
	return govern.State(c.state.Load())
}

func (c *Controller) setState(s govern.State) {
	c.state.Store(int32(s))
}

// SetRunning marks the loop's run state as Running, without touching the
// paused flag -- used by the PCB loop on entry and on resume from a
// single-step.
func (c *Controller) SetRunning() {
	c.setState(govern.Running)
}

// SetDebugging enables or disables the pre-step breakpoint hook. When
// disabled (the default), the loop never checks breakpoints.
func (c *Controller) SetDebugging(enabled bool) {
	c.debugging.Store(enabled)
}

// Debugging reports whether breakpoint checking is enabled.
func (c *Controller) Debugging() bool {
	return c.debugging.Load()
}

// Pause and Resume set and clear the UI->HW paused flag.
func (c *Controller) Pause() {
	c.paused.Store(true)
	c.setState(govern.Paused)
}

func (c *Controller) Resume() {
	c.paused.Store(false)
	c.setState(govern.Running)
}

// Paused reports the paused flag the hardware thread busy-waits on.
func (c *Controller) Paused() bool {
	return c.paused.Load()
}

// Cancel requests the hardware loop exit at its next iteration boundary.
func (c *Controller) Cancel() {
	c.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (c *Controller) Cancelled() bool {
	return c.cancelled.Load()
}

// TryRecv drains one pending command from the mailbox without blocking,
// for the hardware thread's top-of-iteration check.
func (c *Controller) TryRecv() (Command, bool) {
	select {
	case cmd := <-c.Commands:
		return cmd, true
	default:
		return Command{}, false
	}
}

// AddBreakpoint and RemoveBreakpoint manage the breakpoint set directly;
// the PCB loop's pre-step hook calls Hit to test the current PC against it.
func (c *Controller) AddBreakpoint(b Breakpoint) {
	c.breakpoints[b] = true
}

func (c *Controller) RemoveBreakpoint(b Breakpoint) {
	delete(c.breakpoints, b)
}

// Hit reports whether addr on the given CPU matches a registered
// breakpoint, either CPU-specific or shared (CPU == 0).
func (c *Controller) Hit(cpu memory.CPUID, addr uint16) bool {
	if c.breakpoints[Breakpoint{CPU: cpu, Addr: addr}] {
		return true
	}
	return c.breakpoints[Breakpoint{CPU: 0, Addr: addr}]
}

// ReverseStep is not implemented for the multi-CPU loop. It returns a
// recoverable Unimplemented diagnostic rather than panicking, so a
// caller that wires the option through gets a structured error instead
// of undefined behaviour.
func (c *Controller) ReverseStep() error {
	return galerr.New(galerr.Unimplemented, "debugger", uint16(0), byte(0))
}
