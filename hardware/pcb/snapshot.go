package pcb

import (
	"github.com/Justin-Credible/galaga-emulator/galerr"
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
	"github.com/Justin-Credible/galaga-emulator/hardware/z80"
)

// interruptMode is fixed at Z80 IM2 for every CPU on this board (the
// interrupt vector is formed from the I register and the low byte
// supplied by the interrupting device); carried as an explicit
// snapshot field rather than assumed, in case a future engine supports
// other modes.
const interruptMode = 2

// CPUState is the per-CPU slice of a snapshot: registers, halted flag,
// interrupt-enable flag and its previous value, and interrupt mode.
type CPUState struct {
	Registers     z80.Registers
	Halted        bool
	IE            bool
	IEPrevious    bool
	InterruptMode int
}

// State is the composite snapshot record: per-CPU state, the 64KiB
// shared memory array, and the loop's running counters. ROM images are
// excluded -- they are immutable inputs, not mutable state.
type State struct {
	CPU1, CPU2, CPU3 CPUState

	Bus memory.BusState

	TotalCycles          int64
	TotalOpcodes         int64
	CyclesSinceInterrupt int
}

// Snapshot captures a copy of every field Load can restore. It does not
// pause the loop itself -- the caller must ensure the loop is paused or
// not yet started before calling it.
func (p *PCB) Snapshot() *State {
	return &State{
		CPU1: p.cpuState(p.CPU1, 0),
		CPU2: p.cpuState(p.CPU2, 1),
		CPU3: p.cpuState(p.CPU3, 2),

		Bus: p.Bus.Snapshot(),

		TotalCycles:          p.totalCycles,
		TotalOpcodes:         p.totalOpcodes,
		CyclesSinceInterrupt: p.cyclesSinceInterrupt,
	}
}

func (p *PCB) cpuState(engine z80.Engine, ieIndex int) CPUState {
	return CPUState{
		Registers:     engine.Registers(),
		Halted:        engine.Halted(),
		IE:            engine.InterruptEnable(),
		IEPrevious:    p.iePrevious[ieIndex],
		InterruptMode: interruptMode,
	}
}

// Load overwrites every field a prior Snapshot captured. Behaviour is
// undefined if called while the loop is actively stepping a CPU.
func (p *PCB) Load(s *State) error {
	if s == nil {
		return galerr.New(galerr.SnapshotDecodeError, "nil state")
	}

	p.Bus.Restore(s.Bus)

	restoreCPU(p.CPU1, s.CPU1)
	restoreCPU(p.CPU2, s.CPU2)
	restoreCPU(p.CPU3, s.CPU3)

	p.iePrevious[0] = s.CPU1.IEPrevious
	p.iePrevious[1] = s.CPU2.IEPrevious
	p.iePrevious[2] = s.CPU3.IEPrevious

	p.totalCycles = s.TotalCycles
	p.totalOpcodes = s.TotalOpcodes
	p.cyclesSinceInterrupt = s.CyclesSinceInterrupt
	p.cyclesInWindow = 0

	return nil
}

func restoreCPU(engine z80.Engine, s CPUState) {
	engine.SetRegisters(s.Registers)
	engine.SetHalted(s.Halted)
	engine.SetInterruptEnable(s.IE)
}
