package sdl

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
)

// Inputs maps keyboard keys to the coin/start/joystick lines the board
// exposes through its DIP bank: a small fixed button set, the one an
// arcade cabinet actually has, rather than a general key-to-event bus.
//
// bank is the live 0x6800-0x6807 bank; only offset 0 (coin/start/
// joystick/fire) is driven by the keyboard, the remaining seven bytes
// keep whatever the bus was last configured with.
type Inputs struct {
	bus  *memory.Bus
	bank [8]byte
}

// NewInputs wires keyboard events to bus's DIP bank, seeding the bank
// from the bus's current readback values.
func NewInputs(bus *memory.Bus) *Inputs {
	in := &Inputs{bus: bus}
	for i := 0; i < 8; i++ {
		v, _ := bus.Read8(memory.CPU1, memory.OriginDIP+uint16(i))
		in.bank[i] = v
	}
	return in
}

// Poll drains pending SDL events, applying coin/start/joystick presses
// to the bus and returning false once a quit event has been seen.
func (in *Inputs) Poll() bool {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return true
		}

		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			in.applyKey(e)
		}
	}
}

func (in *Inputs) applyKey(e *sdl.KeyboardEvent) {
	down := e.Type == sdl.KEYDOWN

	var bit byte
	switch sdl.GetKeyName(e.Keysym.Sym) {
	case "5":
		bit = 0b0000_0001 // coin 1
	case "1":
		bit = 0b0000_0010 // start 1
	case "Left":
		bit = 0b0000_0100
	case "Right":
		bit = 0b0000_1000
	case "Space":
		bit = 0b0001_0000 // fire
	default:
		return
	}

	if down {
		in.bank[0] |= bit
	} else {
		in.bank[0] &^= bit
	}
	in.bus.SetDIP(in.bank)
}
