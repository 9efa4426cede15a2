package galerr

var messages = map[Errno]string{
	RomMissing:           "rom missing: %s",
	RomSizeMismatch:      "rom %s: expected size %d, got %d",
	RomChecksumMismatch:  "rom %s: expected crc32 %s, got %s",
	UnknownRomSet:        "unknown rom set %q",
	ConfigParseError:     "config: %v",
	UnmappedAddress:      "cpu%d: unmapped address %#04x (%s)",
	ReadOnlyWrite:        "cpu%d: write to read-only rom at %#04x",
	Unimplemented:        "%s: unimplemented register at %#04x (value %#02x)",
	DeviceFault:          "cpu%d: device fault: %s",
	SnapshotVersionMismatch: "snapshot: unsupported version %d",
	SnapshotDecodeError:  "snapshot: %v",
}
