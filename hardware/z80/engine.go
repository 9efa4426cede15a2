// Package z80 declares the capability set the PCB loop needs from a Z80
// stepping engine, without implementing Z80 instruction semantics itself
// -- that is an explicit external collaborator. hardware/pcb depends
// only on the Engine interface; hardware/z80/stub provides a
// deterministic test double that satisfies it for tests.
package z80

// Registers is the subset of Z80 register state a snapshot needs to
// reproduce: a plain value type, copied in and out of the engine
// rather than referenced.
type Registers struct {
	A, F   uint8
	B, C   uint8
	D, E   uint8
	H, L   uint8
	IX, IY uint16
	SP     uint16
	I, R   uint8

	// Shadow register set, exposed for completeness of the snapshot even
	// though nothing in this module inspects it.
	A_, F_ uint8
	B_, C_ uint8
	D_, E_ uint8
	H_, L_ uint8
}

// Engine is the capability set hardware/pcb drives each tick of the loop.
// An implementation owns Z80 instruction decode/execute; this module only
// calls through the interface.
type Engine interface {
	// Step executes one instruction (or one halted no-op) and returns the
	// number of clock cycles it consumed.
	Step() (cycles int, err error)

	// InjectMaskable simulates an IM2 maskable interrupt request, with
	// vectorLow supplying the low byte of the interrupt vector (the high
	// byte comes from the engine's own I register).
	InjectMaskable(vectorLow uint8)

	// InjectNMI simulates a non-maskable interrupt request.
	InjectNMI()

	// SetInterruptEnable and InterruptEnable control and report the
	// engine's IE flip-flop (distinct from the bus-side MMIO interrupt
	// enable latches in hardware/memory, which gate whether the PCB loop
	// calls these at all).
	SetInterruptEnable(enable bool)
	InterruptEnable() bool

	PC() uint16
	SetPC(pc uint16)

	Registers() Registers
	SetRegisters(r Registers)

	Halted() bool
	SetHalted(halted bool)
}
