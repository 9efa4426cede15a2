package memory_test

import (
	"testing"

	"github.com/Justin-Credible/galaga-emulator/galerr"
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
)

func newBus(t *testing.T) *memory.Bus {
	t.Helper()
	cpu1 := make([]byte, 0x4000)
	cpu2 := make([]byte, 0x1000)
	cpu3 := make([]byte, 0x1000)
	b, err := memory.NewBus(cpu1, cpu2, cpu3, false)
	if err != nil {
		t.Fatalf("NewBus: %s", err)
	}
	return b
}

func TestNewBusRejectsWrongSizedROM(t *testing.T) {
	_, err := memory.NewBus(make([]byte, 0x100), make([]byte, 0x1000), make([]byte, 0x1000), false)
	if !galerr.Is(err, galerr.RomSizeMismatch) {
		t.Fatalf("expected RomSizeMismatch, got %v", err)
	}
}

func TestDIPDefaultFreezeOff(t *testing.T) {
	b := newBus(t)

	v, err := b.Read8(memory.CPU1, memory.OriginDIP+4) // 0x6804
	if err != nil {
		t.Fatalf("Read8: %s", err)
	}
	if v != 0b00000010 {
		t.Errorf("0x6804 = %#02x, want 0b00000010", v)
	}

	v, err = b.Read8(memory.CPU1, memory.OriginDIP)
	if err != nil {
		t.Fatalf("Read8: %s", err)
	}
	if v != 0 {
		t.Errorf("0x6800 = %#02x, want 0", v)
	}
}

func TestROMWriteRejectedUnlessWritable(t *testing.T) {
	b := newBus(t)

	err := b.Write8(memory.CPU1, 0x0010, 0xff)
	if !galerr.Is(err, galerr.ReadOnlyWrite) {
		t.Fatalf("expected ReadOnlyWrite, got %v", err)
	}

	writable, err := memory.NewBus(make([]byte, 0x4000), make([]byte, 0x1000), make([]byte, 0x1000), true)
	if err != nil {
		t.Fatalf("NewBus: %s", err)
	}
	if err := writable.Write8(memory.CPU1, 0x0010, 0xff); err != nil {
		t.Fatalf("Write8 on writable rom: %s", err)
	}
	v, _ := writable.Read8(memory.CPU1, 0x0010)
	if v != 0xff {
		t.Errorf("readback = %#02x, want 0xff", v)
	}
}

func TestCPU2ROMMirrorBoundary(t *testing.T) {
	b := newBus(t)

	v, err := b.Read8(memory.CPU2, 0x0fff)
	if err != nil {
		t.Fatalf("Read8 at boundary: %s", err)
	}
	_ = v

	v, err = b.Read8(memory.CPU2, 0x1000)
	if err != nil {
		t.Fatalf("Read8 above boundary should not fault, got %s", err)
	}
	if v != 0x00 {
		t.Errorf("cpu2 read above mirror boundary = %#02x, want 0x00", v)
	}
}

func TestCPU3ROMAboveMirrorBoundaryIsFatal(t *testing.T) {
	b := newBus(t)

	_, err := b.Read8(memory.CPU3, 0x1000)
	if !galerr.Is(err, galerr.DeviceFault) {
		t.Fatalf("expected DeviceFault, got %v", err)
	}
}

func TestSharedRAMRoundTrip(t *testing.T) {
	b := newBus(t)

	if err := b.Write8(memory.CPU1, memory.OriginSharedRAM1, 0x42); err != nil {
		t.Fatalf("Write8: %s", err)
	}
	v, err := b.Read8(memory.CPU2, memory.OriginSharedRAM1)
	if err != nil {
		t.Fatalf("Read8: %s", err)
	}
	if v != 0x42 {
		t.Errorf("shared ram read by cpu2 = %#02x, want 0x42", v)
	}
}

func TestReadWrite16LittleEndian(t *testing.T) {
	b := newBus(t)

	if err := b.Write16(memory.CPU1, memory.OriginSharedRAM1, 0xbeef); err != nil {
		t.Fatalf("Write16: %s", err)
	}
	lo, _ := b.Read8(memory.CPU1, memory.OriginSharedRAM1)
	hi, _ := b.Read8(memory.CPU1, memory.OriginSharedRAM1+1)
	if lo != 0xef || hi != 0xbe {
		t.Fatalf("Write16 stored %#02x %#02x, want ef be", lo, hi)
	}

	v, err := b.Read16(memory.CPU1, memory.OriginSharedRAM1)
	if err != nil {
		t.Fatalf("Read16: %s", err)
	}
	if v != 0xbeef {
		t.Errorf("Read16 = %#04x, want 0xbeef", v)
	}
}

func TestUnmappedAddressIsFatal(t *testing.T) {
	b := newBus(t)

	_, err := b.Read8(memory.CPU1, 0x4000)
	if !galerr.Is(err, galerr.UnmappedAddress) {
		t.Fatalf("expected UnmappedAddress, got %v", err)
	}
}

func TestLatchBankIRQEnable(t *testing.T) {
	b := newBus(t)

	if b.IRQEnable(memory.CPU1) {
		t.Fatalf("cpu1 irq enable should start false")
	}
	if err := b.Write8(memory.CPU1, memory.LatchCPU1IRQ, 1); err != nil {
		t.Fatalf("Write8: %s", err)
	}
	if !b.IRQEnable(memory.CPU1) {
		t.Errorf("cpu1 irq enable should be set after writing 1 to 0x6820")
	}

	// 0x6822 is inverted: writing 0 enables CPU3's interrupt.
	if err := b.Write8(memory.CPU1, memory.LatchCPU3NMI, 0); err != nil {
		t.Fatalf("Write8: %s", err)
	}
	if !b.IRQEnable(memory.CPU3) {
		t.Errorf("cpu3 irq enable should be set after writing 0 to 0x6822")
	}
}

func TestLatchResetReleasesHalt(t *testing.T) {
	b := newBus(t)

	if !b.HaltCPU2() || !b.HaltCPU3() {
		t.Fatalf("cpu2/cpu3 should start halted")
	}

	if err := b.Write8(memory.CPU1, memory.LatchReset, 1); err != nil {
		t.Fatalf("Write8: %s", err)
	}
	if b.HaltCPU2() || b.HaltCPU3() {
		t.Errorf("cpu2/cpu3 should be running after writing nonzero to 0x6823")
	}

	if err := b.Write8(memory.CPU1, memory.LatchReset, 0); err != nil {
		t.Fatalf("Write8: %s", err)
	}
	if !b.HaltCPU2() || !b.HaltCPU3() {
		t.Errorf("cpu2/cpu3 should halt again after writing 0 to 0x6823")
	}
}

func TestUnimplementedLatchIsRecoverable(t *testing.T) {
	b := newBus(t)

	if err := b.Write8(memory.CPU1, 0x6824, 0xff); err != nil {
		t.Fatalf("unimplemented latch write should not fault: %s", err)
	}
}

func TestDevicePortLatchesForIM2Vector(t *testing.T) {
	b := newBus(t)

	b.WriteDevicePort(memory.CPU1, 0, 0x37)
	if got := b.Port0LastWrite(); got != 0x37 {
		t.Errorf("Port0LastWrite() = %#02x, want 0x37", got)
	}

	if got := b.ReadDevicePort(memory.CPU1, 1); got != 0 {
		t.Errorf("unimplemented port read = %#02x, want 0", got)
	}
}

func TestSoundRegisterWriteRoundTrip(t *testing.T) {
	b := newBus(t)

	if err := b.Write8(memory.CPU1, memory.OriginSound, 0x5a); err != nil {
		t.Fatalf("Write8: %s", err)
	}
	if err := b.Write8(memory.CPU1, memory.MemtopSound, 0xa5); err != nil {
		t.Fatalf("Write8: %s", err)
	}

	regs := b.SoundRegisters()
	if regs[0] != 0x5a {
		t.Errorf("sound register 0 = %#02x, want 0x5a", regs[0])
	}
	if regs[len(regs)-1] != 0xa5 {
		t.Errorf("sound register %d = %#02x, want 0xa5", len(regs)-1, regs[len(regs)-1])
	}
}

// TestSoundWriteDoesNotShadowDIP covers the overlap between the DIP
// bank's read range (0x6800-0x6807) and the sound registers' write
// range (0x6800-0x681F): a write anywhere in that overlap must land in
// the sound registers, never in the read-only DIP bank, and must not
// disturb whatever SetDIP last installed.
func TestSoundWriteDoesNotShadowDIP(t *testing.T) {
	b := newBus(t)

	var dip [8]byte
	dip[4] = 0b00000010
	b.SetDIP(dip)

	if err := b.Write8(memory.CPU1, memory.OriginDIP, 0x7e); err != nil {
		t.Fatalf("Write8: %s", err)
	}

	if got := b.SoundRegisters()[0]; got != 0x7e {
		t.Errorf("sound register 0 = %#02x, want 0x7e", got)
	}

	v, err := b.Read8(memory.CPU1, memory.OriginDIP+4)
	if err != nil {
		t.Fatalf("Read8: %s", err)
	}
	if v != 0b00000010 {
		t.Errorf("0x6804 = %#02x, want unchanged 0b00000010", v)
	}
}

func Test06XXReadStub(t *testing.T) {
	b := newBus(t)

	v, err := b.Read8(memory.CPU1, memory.Origin06XX)
	if err != nil {
		t.Fatalf("Read8: %s", err)
	}
	if v != 0x10 {
		t.Errorf("06XX read = %#02x, want 0x10", v)
	}
}
