// Package snapshot provides the versioned, self-describing JSON
// envelope used to persist a hardware/pcb.State to and from disk.
package snapshot

import (
	"encoding/json"
	"os"

	"github.com/Justin-Credible/galaga-emulator/galerr"
	"github.com/Justin-Credible/galaga-emulator/hardware/pcb"
)

// CurrentVersion is the only envelope version this package can read or
// write.
const CurrentVersion = 1

// Envelope wraps a pcb.State with a version tag so that a future format
// change can be detected instead of silently misparsed.
type Envelope struct {
	Version int        `json:"version"`
	State   *pcb.State `json:"state"`
}

// Encode marshals state into a versioned JSON envelope.
func Encode(state *pcb.State) ([]byte, error) {
	data, err := json.MarshalIndent(Envelope{Version: CurrentVersion, State: state}, "", "  ")
	if err != nil {
		return nil, galerr.New(galerr.SnapshotDecodeError, err)
	}
	return data, nil
}

// Decode parses a versioned JSON envelope and returns the enclosed
// state, rejecting anything but CurrentVersion.
func Decode(data []byte) (*pcb.State, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, galerr.New(galerr.SnapshotDecodeError, err)
	}
	if env.Version != CurrentVersion {
		return nil, galerr.New(galerr.SnapshotVersionMismatch, env.Version)
	}
	if env.State == nil {
		return nil, galerr.New(galerr.SnapshotDecodeError, "missing state")
	}
	return env.State, nil
}

// Save encodes state and writes it to path.
func Save(path string, state *pcb.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return galerr.New(galerr.SnapshotDecodeError, err)
	}
	return nil
}

// Load reads path and decodes its envelope.
func Load(path string) (*pcb.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, galerr.New(galerr.SnapshotDecodeError, err)
	}
	return Decode(data)
}
