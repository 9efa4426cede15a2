package debugger_test

import (
	"testing"

	"github.com/Justin-Credible/galaga-emulator/debugger"
	"github.com/Justin-Credible/galaga-emulator/debugger/govern"
	"github.com/Justin-Credible/galaga-emulator/galerr"
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
)

func TestPauseResumeState(t *testing.T) {
	c := debugger.NewController()
	if c.State() != govern.Initialising {
		t.Fatalf("new controller state = %s, want Initialising", c.State())
	}

	c.Pause()
	if !c.Paused() || c.State() != govern.Paused {
		t.Fatalf("Pause() did not set paused state")
	}

	c.Resume()
	if c.Paused() || c.State() != govern.Running {
		t.Fatalf("Resume() did not clear paused state")
	}
}

func TestBreakpointMatchingSharedAndPerCPU(t *testing.T) {
	c := debugger.NewController()

	c.AddBreakpoint(debugger.Breakpoint{CPU: memory.CPU1, Addr: 0x1234})
	c.AddBreakpoint(debugger.Breakpoint{Addr: 0x5678}) // shared, CPU == 0

	if !c.Hit(memory.CPU1, 0x1234) {
		t.Errorf("expected hit for cpu1-specific breakpoint")
	}
	if c.Hit(memory.CPU2, 0x1234) {
		t.Errorf("cpu2 should not hit a cpu1-specific breakpoint")
	}
	if !c.Hit(memory.CPU2, 0x5678) || !c.Hit(memory.CPU3, 0x5678) {
		t.Errorf("expected shared breakpoint to match every cpu")
	}

	c.RemoveBreakpoint(debugger.Breakpoint{CPU: memory.CPU1, Addr: 0x1234})
	if c.Hit(memory.CPU1, 0x1234) {
		t.Errorf("expected removed breakpoint to stop matching")
	}
}

func TestCancel(t *testing.T) {
	c := debugger.NewController()
	if c.Cancelled() {
		t.Fatalf("new controller should not be cancelled")
	}
	c.Cancel()
	if !c.Cancelled() {
		t.Fatalf("Cancel() did not stick")
	}
}

func TestReverseStepIsUnimplemented(t *testing.T) {
	c := debugger.NewController()
	err := c.ReverseStep()
	if !galerr.Is(err, galerr.Unimplemented) {
		t.Fatalf("expected Unimplemented, got %v", err)
	}
}

func TestTryRecvDrainsMailboxNonBlocking(t *testing.T) {
	c := debugger.NewController()

	if _, ok := c.TryRecv(); ok {
		t.Fatalf("expected empty mailbox to report ok=false")
	}

	c.Commands <- debugger.Command{Kind: debugger.CommandContinue}
	c.Commands <- debugger.Command{Kind: debugger.CommandSingleStep}

	first, ok := c.TryRecv()
	if !ok || first.Kind != debugger.CommandContinue {
		t.Fatalf("expected CommandContinue first, got %+v ok=%v", first, ok)
	}

	second, ok := c.TryRecv()
	if !ok || second.Kind != debugger.CommandSingleStep {
		t.Fatalf("expected CommandSingleStep second, got %+v ok=%v", second, ok)
	}

	if _, ok := c.TryRecv(); ok {
		t.Fatalf("expected mailbox to be empty after draining")
	}
}
