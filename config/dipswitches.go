package config

import (
	"encoding/json"
	"os"

	"github.com/Justin-Credible/galaga-emulator/galerr"
)

// DIPSwitches names the SWA/SWB bit fields documented for the Galaga
// board, JSON (de)serialisable through encoding/json.
type DIPSwitches struct {
	Coinage      string `json:"coinage"`
	Lives        int    `json:"lives"`
	BonusScore   string `json:"bonus_score"`
	Difficulty   string `json:"difficulty"`
	DemoSound    bool   `json:"demo_sound"`
	FreezeScreen bool   `json:"freeze_screen"`
}

// DefaultDIPSwitches matches the bus decoder's own default: 0x6804
// reads back 0b00000010, freeze off, normal difficulty.
func DefaultDIPSwitches() DIPSwitches {
	return DIPSwitches{
		Coinage:      "1coin_1credit",
		Lives:        3,
		BonusScore:   "20k_70k",
		Difficulty:   "normal",
		DemoSound:    false,
		FreezeScreen: false,
	}
}

// LoadDIPSwitches reads a JSON-encoded DIPSwitches file. An empty path
// is not an error; it yields the defaults.
func LoadDIPSwitches(path string) (DIPSwitches, error) {
	if path == "" {
		return DefaultDIPSwitches(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DIPSwitches{}, galerr.New(galerr.ConfigParseError, err)
	}

	dip := DefaultDIPSwitches()
	if err := json.Unmarshal(data, &dip); err != nil {
		return DIPSwitches{}, galerr.New(galerr.ConfigParseError, err)
	}
	return dip, nil
}

// Save writes dip as indented JSON to path.
func (dip DIPSwitches) Save(path string) error {
	data, err := json.MarshalIndent(dip, "", "  ")
	if err != nil {
		return galerr.New(galerr.ConfigParseError, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return galerr.New(galerr.ConfigParseError, err)
	}
	return nil
}

// Encode packs the DIP switches into the single byte the bus stores at
// 0x6804, following the bit layout implied by the default value
// (0b00000010: bit 1 set when the screen is not frozen).
func (dip DIPSwitches) Encode() byte {
	var b byte
	if !dip.FreezeScreen {
		b |= 0b0000_0010
	}
	if dip.DemoSound {
		b |= 0b0000_0100
	}
	return b
}
