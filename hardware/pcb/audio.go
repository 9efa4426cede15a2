package pcb

import (
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
	"github.com/Justin-Credible/galaga-emulator/sink"
)

func audioStateFromBus(bus *memory.Bus) sink.AudioState {
	return sink.AudioState{LastWrites: bus.SoundRegisters()}
}
