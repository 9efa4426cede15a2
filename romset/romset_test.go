package romset

import (
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/Justin-Credible/galaga-emulator/galerr"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		t.Fatalf("writeFile: %v", err)
	}
}

// miniSet builds a tiny one-entry catalogue so tests don't need to carry
// real Galaga ROM bytes.
func miniSet(t *testing.T, data []byte) (string, func()) {
	t.Helper()
	sum := crc32.ChecksumIEEE(data)

	Sets["__test"] = Set{
		CPU1ProgramA: {Primary: "test.bin", Size: len(data), CRC32: hex32(sum)},
	}
	return "__test", func() { delete(Sets, "__test") }
}

func hex32(v uint32) string {
	const digits = "0123456789abcdef"
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = digits[v&0xf]
		v >>= 4
	}
	return string(b)
}

func TestLoadUnknownSet(t *testing.T) {
	_, err := Load("does-not-exist", t.TempDir(), false)
	if !galerr.Is(err, galerr.UnknownRomSet) {
		t.Fatalf("expected UnknownRomSet, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	name, cleanup := miniSet(t, []byte{1, 2, 3, 4})
	defer cleanup()

	_, err := Load(name, t.TempDir(), false)
	if !galerr.Is(err, galerr.RomMissing) {
		t.Fatalf("expected RomMissing, got %v", err)
	}
}

func TestLoadSizeMismatch(t *testing.T) {
	name, cleanup := miniSet(t, []byte{1, 2, 3, 4})
	defer cleanup()

	dir := t.TempDir()
	writeFile(t, dir, "test.bin", []byte{1, 2, 3})

	_, err := Load(name, dir, false)
	if !galerr.Is(err, galerr.RomSizeMismatch) {
		t.Fatalf("expected RomSizeMismatch, got %v", err)
	}
}

func TestLoadChecksumMismatch(t *testing.T) {
	name, cleanup := miniSet(t, []byte{1, 2, 3, 4})
	defer cleanup()

	dir := t.TempDir()
	writeFile(t, dir, "test.bin", []byte{9, 9, 9, 9})

	_, err := Load(name, dir, false)
	if !galerr.Is(err, galerr.RomChecksumMismatch) {
		t.Fatalf("expected RomChecksumMismatch, got %v", err)
	}
}

func TestLoadSkipChecksumsToleratesMismatch(t *testing.T) {
	name, cleanup := miniSet(t, []byte{1, 2, 3, 4})
	defer cleanup()

	dir := t.TempDir()
	writeFile(t, dir, "test.bin", []byte{9, 9, 9, 9})

	images, err := Load(name, dir, true)
	if err != nil {
		t.Fatalf("unexpected error with skipChecksums: %v", err)
	}
	if len(images[CPU1ProgramA]) != 4 {
		t.Fatalf("expected loaded image despite mismatch, got %v", images[CPU1ProgramA])
	}
}

func TestLoadSkipChecksumsStillFaultsOnSizeMismatch(t *testing.T) {
	name, cleanup := miniSet(t, []byte{1, 2, 3, 4})
	defer cleanup()

	dir := t.TempDir()
	writeFile(t, dir, "test.bin", []byte{1, 2, 3})

	_, err := Load(name, dir, true)
	if !galerr.Is(err, galerr.RomSizeMismatch) {
		t.Fatalf("expected RomSizeMismatch even with skipChecksums, got %v", err)
	}
}

func TestLoadSucceeds(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	name, cleanup := miniSet(t, data)
	defer cleanup()

	dir := t.TempDir()
	writeFile(t, dir, "test.bin", data)

	images, err := Load(name, dir, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(images[CPU1ProgramA]) != string(data) {
		t.Fatalf("unexpected image bytes: %v", images[CPU1ProgramA])
	}
}

func TestLoadAlternateFilename(t *testing.T) {
	data := []byte{5, 6, 7, 8}
	sum := crc32.ChecksumIEEE(data)
	Sets["__test_alt"] = Set{
		CPU1ProgramA: {Primary: "missing.bin", Alternate: "present.bin", Size: len(data), CRC32: hex32(sum)},
	}
	defer delete(Sets, "__test_alt")

	dir := t.TempDir()
	writeFile(t, dir, "present.bin", data)

	images, err := Load("__test_alt", dir, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(images[CPU1ProgramA]) != string(data) {
		t.Fatalf("unexpected image bytes: %v", images[CPU1ProgramA])
	}
}

func TestAssembleCPU1ConcatenatesInBankOrder(t *testing.T) {
	images := map[RomID][]byte{
		CPU1ProgramA: {0xa},
		CPU1ProgramB: {0xb},
		CPU1ProgramC: {0xc},
		CPU1ProgramD: {0xd},
	}
	got := AssembleCPU1(images)
	want := []byte{0xa, 0xb, 0xc, 0xd}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRecognisedSetsAreWellFormed(t *testing.T) {
	for name, set := range map[string]Set{
		"galaga":   Sets["galaga"],
		"galagao":  Sets["galagao"],
		"galagamw": Sets["galagamw"],
		"galagamk": Sets["galagamk"],
	} {
		for id, entry := range set {
			if entry.Primary == "" {
				t.Errorf("%s: rom id %d has empty primary filename", name, id)
			}
			if entry.Size <= 0 {
				t.Errorf("%s: rom id %d has non-positive size", name, id)
			}
			if len(entry.CRC32) != 8 {
				t.Errorf("%s: rom id %d has malformed crc32 %q", name, id, entry.CRC32)
			}
		}
	}
}
