package memory

import (
	"github.com/Justin-Credible/galaga-emulator/galerr"
	"github.com/Justin-Credible/galaga-emulator/logger"
)

// Bus is the Galaga PCB's memory-mapped bus: three CPU-local ROM images, a
// 64KiB array shared by all three CPUs (VRAM and working RAM live in
// different slices of the same array, per the address map), the DIP-switch
// readback, and the interrupt-enable/halt latches written by CPU1 at
// 0x6820-0x6823.
//
// Bus is the sole arbiter of this state. The PCB loop steps the three CPUs
// strictly sequentially, so there is no concurrent access to model here --
// every exported method assumes single-threaded, program-order use.
type Bus struct {
	cpu1ROM [0x4000]byte
	cpu2ROM [0x1000]byte
	cpu3ROM [0x1000]byte
	shared  [0x10000]byte

	dip [8]byte

	haltCPU2  bool
	haltCPU3  bool
	irqEnable [3]bool // indexed by CPUID-1

	port0LastWrite byte

	sound [0x20]byte

	writableROM bool
}

// NewBus builds a Bus from the three CPU program images. cpu1 must be
// exactly 16KiB, cpu2 and cpu3 exactly 4KiB -- the sizes of the ROM
// sockets on the PCB, independent of how many bytes the ROM set actually
// populates. Any other length is rejected with RomSizeMismatch.
func NewBus(cpu1, cpu2, cpu3 []byte, writableROM bool) (*Bus, error) {
	b := &Bus{writableROM: writableROM, haltCPU2: true, haltCPU3: true}

	if len(cpu1) != len(b.cpu1ROM) {
		return nil, galerr.New(galerr.RomSizeMismatch, "cpu1", len(b.cpu1ROM), len(cpu1))
	}
	if len(cpu2) != len(b.cpu2ROM) {
		return nil, galerr.New(galerr.RomSizeMismatch, "cpu2", len(b.cpu2ROM), len(cpu2))
	}
	if len(cpu3) != len(b.cpu3ROM) {
		return nil, galerr.New(galerr.RomSizeMismatch, "cpu3", len(b.cpu3ROM), len(cpu3))
	}

	copy(b.cpu1ROM[:], cpu1)
	copy(b.cpu2ROM[:], cpu2)
	copy(b.cpu3ROM[:], cpu3)

	// SWB5 "Freeze = Off" default, read back at 0x6804.
	b.dip[0x6804-OriginDIP] = 0b00000010

	return b, nil
}

// SetDIP installs the eight DIP-bank readback bytes (0x6800-0x6807),
// overriding the all-zero-except-freeze-off default built by NewBus.
func (b *Bus) SetDIP(dip [8]byte) {
	b.dip = dip
}

// HaltCPU2 and HaltCPU3 report the halt latch the PCB loop consults before
// stepping each CPU.
func (b *Bus) HaltCPU2() bool { return b.haltCPU2 }
func (b *Bus) HaltCPU3() bool { return b.haltCPU3 }

// ForceRunningCPU2 and ForceRunningCPU3 clear the corresponding halt latch
// directly. The interrupt controller calls these when an interrupt targets
// a halted CPU, which must force it running before the interrupt handler
// is injected, independent of the 0x6823 latch write path.
func (b *Bus) ForceRunningCPU2() { b.haltCPU2 = false }
func (b *Bus) ForceRunningCPU3() { b.haltCPU3 = false }

// IRQEnable reports the interrupt-enable latch for the given CPU, as last
// set by a write to its latch byte (0x6820/0x6821/0x6822) or cleared by the
// interrupt controller after dispatch.
func (b *Bus) IRQEnable(cpu CPUID) bool {
	return b.irqEnable[cpu-1]
}

// SetIRQEnable is used by the interrupt controller to clear a CPU's enable
// latch once it has dispatched that CPU's interrupt.
func (b *Bus) SetIRQEnable(cpu CPUID, v bool) {
	b.irqEnable[cpu-1] = v
}

// Port0LastWrite returns the last byte CPU1 wrote to device port 0, used as
// the low byte of the IM2 vector assembled by the interrupt controller.
func (b *Bus) Port0LastWrite() byte {
	return b.port0LastWrite
}

// SoundRegisters returns the current contents of the waveform sound
// generator register bank (0x6800-0x681F), sunk but not synthesised
// into audio.
func (b *Bus) SoundRegisters() [0x20]byte {
	return b.sound
}

// WriteDevicePort handles a Z80 `OUT` instruction. This is Z80 I/O-space,
// distinct from the memory-mapped bus -- the stepping engine calls this
// directly rather than going through Read8/Write8. The only implemented
// port is CPU1 port 0, which latches port0LastWrite for IM2 vector
// assembly; everything else is a diagnostic no-op.
func (b *Bus) WriteDevicePort(cpu CPUID, port int, value byte) {
	if cpu == CPU1 && port == 0 {
		b.port0LastWrite = value
		return
	}
	logger.Logf("bus", "%s: unimplemented device port write %d <- %#02x", cpu, port, value)
}

// ReadDevicePort handles a Z80 `IN` instruction. No input ports are
// implemented; every read logs and returns 0.
func (b *Bus) ReadDevicePort(cpu CPUID, port int) byte {
	logger.Logf("bus", "%s: unimplemented device port read %d", cpu, port)
	return 0
}

// Read8 decodes and performs a single byte read issued by cpu.
func (b *Bus) Read8(cpu CPUID, addr uint16) (uint8, error) {
	switch {
	case addr <= MemtopROM:
		return b.readROM(cpu, addr)

	case addr >= OriginDIP && addr <= MemtopDIP:
		return b.dip[addr-OriginDIP], nil

	case addr >= OriginLatches && addr <= MemtopLatches:
		// The latch bank is write-only on real hardware; a read back
		// observes whatever the bus last drove, which in practice is
		// never relied upon by the ROM. Treat it as shared memory so a
		// stray read doesn't fault.
		return b.shared[addr], nil

	case addr >= Origin06XX && addr <= Memtop06XX:
		// 06XX read stub: return 0x10 so CPU1's I/O wait-loop progresses.
		return 0x10, nil

	case isSharedRange(addr):
		return b.shared[addr], nil

	case addr >= OriginStarfield && addr <= MemtopStarfield, addr == FlipScreen, addr == Watchdog:
		return 0, nil

	default:
		return 0, galerr.New(galerr.UnmappedAddress, int(cpu), addr, OpRead)
	}
}

// Write8 decodes and performs a single byte write issued by cpu.
func (b *Bus) Write8(cpu CPUID, addr uint16, value uint8) error {
	switch {
	case addr <= MemtopROM:
		return b.writeROM(cpu, addr, value)

	case addr >= OriginLatches && addr <= MemtopLatches:
		b.writeLatch(cpu, addr, value)
		return nil

	case addr >= OriginSound && addr <= MemtopSound:
		// The sound register bank (0x6800-0x681F) overlaps the DIP
		// bank's address range (0x6800-0x6807), but the map is
		// read/write-split: DIP is read-only, so writes anywhere in
		// 0x6800-0x681F -- including the DIP sub-range -- land in the
		// sound registers, never in b.dip.
		b.sound[addr-OriginSound] = value
		return nil

	case addr >= Origin06XX && addr <= Memtop06XX,
		addr >= OriginStarfield && addr <= MemtopStarfield, addr == FlipScreen, addr == Watchdog:
		// Sink writes: 06XX bus, starfield generator, flip-screen and
		// watchdog kick. Diagnostic only; none of these drive emulated
		// state.
		logger.Logf("bus", "%s: sink write %#04x <- %#02x", cpu, addr, value)
		return nil

	case isSharedRange(addr):
		b.shared[addr] = value
		return nil

	default:
		return galerr.New(galerr.UnmappedAddress, int(cpu), addr, OpWrite)
	}
}

// Read16 reads a little-endian pair: lo = addr, hi = addr+1.
func (b *Bus) Read16(cpu CPUID, addr uint16) (uint16, error) {
	lo, err := b.Read8(cpu, addr)
	if err != nil {
		return 0, err
	}
	hi, err := b.Read8(cpu, addr+1)
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

// Write16 writes a little-endian pair: lo = addr, hi = addr+1.
func (b *Bus) Write16(cpu CPUID, addr uint16, value uint16) error {
	if err := b.Write8(cpu, addr, uint8(value)); err != nil {
		return err
	}
	return b.Write8(cpu, addr+1, uint8(value>>8))
}

func (b *Bus) readROM(cpu CPUID, addr uint16) (uint8, error) {
	switch cpu {
	case CPU1:
		return b.cpu1ROM[addr], nil
	case CPU2:
		if addr > cpu2ROMLimit {
			logger.Logf("bus", "cpu2: rom read above mirror boundary at %#04x", addr)
			return 0x00, nil
		}
		return b.cpu2ROM[addr], nil
	case CPU3:
		if addr > cpu2ROMLimit {
			return 0, galerr.New(galerr.DeviceFault, int(cpu), "rom read above mirror boundary")
		}
		return b.cpu3ROM[addr], nil
	default:
		return 0, galerr.New(galerr.UnmappedAddress, int(cpu), addr, OpRead)
	}
}

func (b *Bus) writeROM(cpu CPUID, addr uint16, value uint8) error {
	if !b.writableROM {
		return galerr.New(galerr.ReadOnlyWrite, int(cpu), addr)
	}
	switch cpu {
	case CPU1:
		b.cpu1ROM[addr] = value
	case CPU2:
		if addr <= cpu2ROMLimit {
			b.cpu2ROM[addr] = value
		}
	case CPU3:
		if addr <= cpu2ROMLimit {
			b.cpu3ROM[addr] = value
		}
	default:
		return galerr.New(galerr.UnmappedAddress, int(cpu), addr, OpWrite)
	}
	return nil
}

// writeLatch handles a write to the 0x6820-0x6827 latch bank. Addresses
// 0x6824-0x6827 are Unimplemented -- logged and dropped, not fatal.
func (b *Bus) writeLatch(cpu CPUID, addr uint16, value uint8) {
	switch addr {
	case LatchCPU1IRQ:
		b.irqEnable[CPU1-1] = value != 0
	case LatchCPU2IRQ:
		b.irqEnable[CPU2-1] = value != 0
	case LatchCPU3NMI:
		b.irqEnable[CPU3-1] = value == 0
	case LatchReset:
		b.haltCPU2 = value == 0
		b.haltCPU3 = value == 0
	default:
		err := galerr.New(galerr.Unimplemented, "bus", addr, value)
		logger.Log("bus", err.Error())
	}
}

func isSharedRange(addr uint16) bool {
	switch {
	case addr >= OriginVRAMCode && addr <= MemtopVRAMCode:
		return true
	case addr >= OriginVRAMAttr && addr <= MemtopVRAMAttr:
		return true
	case addr >= OriginSharedRAM1 && addr <= MemtopSharedRAM1:
		return true
	case addr >= OriginSharedRAM2 && addr <= MemtopSharedRAM2:
		return true
	case addr >= OriginSharedRAM3 && addr <= MemtopSharedRAM3:
		return true
	}
	return false
}

// Peek reads the shared array directly, bypassing decoder side effects --
// used by the video composer (which always reads through CPU1's view).
func (b *Bus) Peek(addr uint16) byte {
	return b.shared[addr]
}

// BusState is the bus-owned slice of a hardware/pcb.State snapshot: the
// shared 64KiB array plus the latch-bank state (halt flags,
// interrupt-enable latches, port0LastWrite). Omitting these from a save
// would make a resumed game silently forget which CPUs were halted and
// which interrupts were pending. ROM images are excluded; they are
// immutable inputs, not state.
type BusState struct {
	Shared         [0x10000]byte
	HaltCPU2       bool
	HaltCPU3       bool
	IRQEnable      [3]bool
	Port0LastWrite byte
}

// Snapshot captures BusState.
func (b *Bus) Snapshot() BusState {
	return BusState{
		Shared:         b.shared,
		HaltCPU2:       b.haltCPU2,
		HaltCPU3:       b.haltCPU3,
		IRQEnable:      b.irqEnable,
		Port0LastWrite: b.port0LastWrite,
	}
}

// Restore overwrites bus-owned state from a prior Snapshot.
func (b *Bus) Restore(s BusState) {
	b.shared = s.Shared
	b.haltCPU2 = s.HaltCPU2
	b.haltCPU3 = s.HaltCPU3
	b.irqEnable = s.IRQEnable
	b.port0LastWrite = s.Port0LastWrite
}
