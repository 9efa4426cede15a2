// Package stub provides a deterministic Engine test double used by the
// tests in hardware/pcb and by any caller that needs to drive the PCB
// loop without a real Z80 core.
package stub

import "github.com/Justin-Credible/galaga-emulator/hardware/z80"

// ConstantCycleEngine consumes a fixed number of cycles per Step() and
// records every interrupt injected into it, so tests can assert on
// interrupt scheduling without needing real instruction decode.
type ConstantCycleEngine struct {
	CyclesPerStep int

	pc         uint16
	regs       z80.Registers
	halted     bool
	ie         bool
	steps      int
	maskableLog []uint8
	nmiCount   int
}

// NewConstantCycleEngine returns an engine that reports cyclesPerStep cycles
// consumed on every Step() call.
func NewConstantCycleEngine(cyclesPerStep int) *ConstantCycleEngine {
	return &ConstantCycleEngine{CyclesPerStep: cyclesPerStep}
}

func (e *ConstantCycleEngine) Step() (int, error) {
	e.steps++
	return e.CyclesPerStep, nil
}

func (e *ConstantCycleEngine) InjectMaskable(vectorLow uint8) {
	e.maskableLog = append(e.maskableLog, vectorLow)
}

func (e *ConstantCycleEngine) InjectNMI() {
	e.nmiCount++
}

func (e *ConstantCycleEngine) SetInterruptEnable(enable bool) { e.ie = enable }
func (e *ConstantCycleEngine) InterruptEnable() bool          { return e.ie }

func (e *ConstantCycleEngine) PC() uint16      { return e.pc }
func (e *ConstantCycleEngine) SetPC(pc uint16) { e.pc = pc }

func (e *ConstantCycleEngine) Registers() z80.Registers       { return e.regs }
func (e *ConstantCycleEngine) SetRegisters(r z80.Registers)   { e.regs = r }

func (e *ConstantCycleEngine) Halted() bool         { return e.halted }
func (e *ConstantCycleEngine) SetHalted(halted bool) { e.halted = halted }

// Steps reports how many times Step has been called.
func (e *ConstantCycleEngine) Steps() int { return e.steps }

// MaskableLog reports every vector low byte injected via InjectMaskable, in
// call order.
func (e *ConstantCycleEngine) MaskableLog() []uint8 { return e.maskableLog }

// NMICount reports how many times InjectNMI has been called.
func (e *ConstantCycleEngine) NMICount() int { return e.nmiCount }
