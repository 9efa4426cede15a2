// Package romset loads the ROM images that make up one of the recognised
// Galaga board variants from a directory on disk, verifying each file's
// size and CRC32 against a literal catalogue. Generalised to a whole
// directory of named ROM images rather than a single cartridge file,
// since this board is built from many small EPROMs rather than one
// cartridge.
package romset

import (
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/Justin-Credible/galaga-emulator/galerr"
	"github.com/Justin-Credible/galaga-emulator/logger"
)

// Load reads every ROM image named by set from dir and returns the raw
// bytes keyed by RomID. Each file's size is always checked against the
// catalogue entry and a mismatch is fatal. If skipChecksums is false, the
// CRC32 is checked as well and a mismatch is fatal; if it is true, the
// CRC32 is not computed and a log line notes the skip. The alternate filename (when present) is tried if the primary
// filename is missing, to tolerate differently named dumps of the same
// data.
func Load(setName string, dir string, skipChecksums bool) (map[RomID][]byte, error) {
	set, ok := Sets[setName]
	if !ok {
		return nil, galerr.New(galerr.UnknownRomSet, setName)
	}

	images := make(map[RomID][]byte, len(set))

	for id, entry := range set {
		data, path, err := readEntry(dir, entry)
		if err != nil {
			return nil, err
		}

		if len(data) != entry.Size {
			return nil, galerr.New(galerr.RomSizeMismatch, path, entry.Size, len(data))
		}

		if !skipChecksums {
			if sum := crc32.ChecksumIEEE(data); fmt.Sprintf("%08x", sum) != entry.CRC32 {
				return nil, galerr.New(galerr.RomChecksumMismatch, path, entry.CRC32, fmt.Sprintf("%08x", sum))
			}
		} else {
			logger.Logf("romset", "skipping checksum for %s", path)
		}

		images[id] = data
	}

	return images, nil
}

func readEntry(dir string, entry Entry) ([]byte, string, error) {
	primary := filepath.Join(dir, entry.Primary)
	data, err := os.ReadFile(primary)
	if err == nil {
		return data, primary, nil
	}

	if entry.Alternate != "" {
		alternate := filepath.Join(dir, entry.Alternate)
		if data, err := os.ReadFile(alternate); err == nil {
			return data, alternate, nil
		}
	}

	return nil, primary, galerr.New(galerr.RomMissing, primary)
}
