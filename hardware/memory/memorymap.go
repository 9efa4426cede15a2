// Package memory implements the Galaga PCB's memory-mapped bus: the per-CPU
// address decoder, the shared RAM/VRAM array, and the MMIO latches that the
// three CPUs use to talk to each other and to the rest of the board.
//
// The decoder is a range-matched table rather than a full 64Ki lookup
// table: a sequence of range tests evaluated in a fixed order.
package memory

// CPUID identifies which of the three Z80s is making a bus access. The
// decoder is parameterised by this value because the three CPUs mostly, but
// not entirely, share the same view of memory (see the CPU2/CPU3 ROM mirror
// rules in readROM).
type CPUID int

const (
	CPU1 CPUID = 1
	CPU2 CPUID = 2
	CPU3 CPUID = 3
)

func (id CPUID) String() string {
	switch id {
	case CPU1:
		return "cpu1"
	case CPU2:
		return "cpu2"
	case CPU3:
		return "cpu3"
	}
	return "cpu?"
}

// Memory map constants, named after the board's documented address
// ranges.
const (
	OriginROM = uint16(0x0000)
	MemtopROM = uint16(0x3fff)

	OriginDIP = uint16(0x6800)
	MemtopDIP = uint16(0x6807)

	OriginSound = uint16(0x6800)
	MemtopSound = uint16(0x681f)

	LatchCPU1IRQ  = uint16(0x6820)
	LatchCPU2IRQ  = uint16(0x6821)
	LatchCPU3NMI  = uint16(0x6822)
	LatchReset    = uint16(0x6823)
	OriginLatches = uint16(0x6820)
	MemtopLatches = uint16(0x6827)

	Watchdog = uint16(0x6830)

	Origin06XX = uint16(0x7000)
	Memtop06XX = uint16(0x7100)

	OriginVRAMCode = uint16(0x8000)
	MemtopVRAMCode = uint16(0x83ff)
	OriginVRAMAttr = uint16(0x8400)
	MemtopVRAMAttr = uint16(0x87ff)

	OriginSharedRAM1 = uint16(0x8800)
	MemtopSharedRAM1 = uint16(0x8bff)
	OriginSharedRAM2 = uint16(0x9000)
	MemtopSharedRAM2 = uint16(0x93ff)
	OriginSharedRAM3 = uint16(0x9800)
	MemtopSharedRAM3 = uint16(0x9bff)

	OriginStarfield = uint16(0xa000)
	MemtopStarfield = uint16(0xa005)
	FlipScreen      = uint16(0xa007)

	cpu2ROMLimit = uint16(0x0fff)
)

// Op distinguishes a read from a write for error reporting.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

func (o Op) String() string {
	if o == OpWrite {
		return "write"
	}
	return "read"
}
