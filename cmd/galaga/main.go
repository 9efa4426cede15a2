// Command galaga wires the config, romset, hardware/memory, hardware/pcb
// and sink packages together into a runnable emulator: parse a command
// line, build the hardware, hand it to a sink-backed run loop.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Justin-Credible/galaga-emulator/config"
	"github.com/Justin-Credible/galaga-emulator/debugger"
	"github.com/Justin-Credible/galaga-emulator/debugger/console"
	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
	"github.com/Justin-Credible/galaga-emulator/hardware/pcb"
	"github.com/Justin-Credible/galaga-emulator/hardware/video"
	"github.com/Justin-Credible/galaga-emulator/hardware/z80/stub"
	"github.com/Justin-Credible/galaga-emulator/logger"
	"github.com/Justin-Credible/galaga-emulator/romset"
	"github.com/Justin-Credible/galaga-emulator/sink"
	"github.com/Justin-Credible/galaga-emulator/sink/sdl"
	"github.com/Justin-Credible/galaga-emulator/sink/wav"
	"github.com/Justin-Credible/galaga-emulator/snapshot"
)

func main() {
	logger.SetEcho(os.Stderr)

	cfg, mode, result, err := config.ParseArgs(os.Args[1:], os.Stdout)
	switch result {
	case config.ParseHelp:
		return
	case config.ParseError:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(cfg, mode); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, mode string) error {
	images, err := romset.Load(cfg.ROMSet, cfg.ROMPath, cfg.SkipChecksums)
	if err != nil {
		return err
	}

	cpu1ROM := romset.AssembleCPU1(images)
	bus, err := memory.NewBus(cpu1ROM, images[romset.CPU2Program], images[romset.CPU3Program], cfg.WritableROM)
	if err != nil {
		return err
	}

	dip, err := config.LoadDIPSwitches(cfg.DIPSwitchesPath)
	if err != nil {
		return err
	}
	// dip.Encode's byte belongs at 0x6804 (offset 4 from OriginDIP); the
	// other seven offsets are left zero, matching NewBus's own defaults
	// everywhere except the byte SetDIP is about to override.
	var dipBank [8]byte
	dipBank[4] = dip.Encode()
	bus.SetDIP(dipBank)

	composer, err := video.NewComposerFromPROMs(
		toTileROM(images[romset.TilesGfx]),
		toColorProm(images[romset.ColorProm]),
		toLookupProm(images[romset.CharLookupProm]),
	)
	if err != nil {
		return err
	}

	debug := debugger.NewController()
	if cfg.Debug {
		debug.SetDebugging(true)
		debug.Pause()
		addBreakpoints(debug, cfg)

		term, err := console.Open()
		if err != nil {
			return err
		}
		defer term.Close()

		go runConsole(term, debug)
	}

	screen, err := sdl.NewScreen(3)
	if err != nil {
		return err
	}
	defer screen.Close()

	var audioSink sink.AudioSink
	if cfg.WavOutPath != "" {
		f, err := os.Create(cfg.WavOutPath)
		if err != nil {
			return err
		}
		defer f.Close()

		w := wav.NewWriter(f)
		defer w.Close()
		audioSink = w
	}

	// Z80 instruction semantics are out of this module's scope (an
	// abstract stepping engine only); until a real core is wired in, the
	// deterministic stub stands in for each CPU so the rest of the loop,
	// bus and video pipeline can run end to end.
	board := pcb.New(
		bus,
		stub.NewConstantCycleEngine(4),
		stub.NewConstantCycleEngine(4),
		stub.NewConstantCycleEngine(4),
		composer,
		screen,
		audioSink,
		nil,
		debug,
	)

	if cfg.LoadStatePath != "" {
		state, err := snapshot.Load(cfg.LoadStatePath)
		if err != nil {
			return err
		}
		if err := board.Load(state); err != nil {
			return err
		}
	}

	if mode == "DEBUG" {
		board.LaunchStats(os.Stdout)
	}

	return board.Run()
}

// runConsole feeds keypresses from term into debug's command mailbox
// until 'q' is read, at which point it cancels the loop.
func runConsole(term *console.Console, debug *debugger.Controller) {
	for {
		key, err := term.ReadKey()
		if err != nil || key == 'q' {
			debug.Cancel()
			return
		}
		if cmd, ok := console.CommandForKey(key); ok {
			debug.Commands <- cmd
		}
	}
}

func addBreakpoints(debug *debugger.Controller, cfg config.Config) {
	addBreakpoint(debug, memory.CPUID(0), cfg.Break)
	addBreakpoint(debug, memory.CPU1, cfg.BreakCPU1)
	addBreakpoint(debug, memory.CPU2, cfg.BreakCPU2)
	addBreakpoint(debug, memory.CPU3, cfg.BreakCPU3)
}

func addBreakpoint(debug *debugger.Controller, cpu memory.CPUID, addr string) {
	if addr == "" {
		return
	}
	v, err := strconv.ParseUint(addr, 0, 16)
	if err != nil {
		logger.Logf("cmd/galaga", "invalid breakpoint address %q: %s", addr, err)
		return
	}
	debug.AddBreakpoint(debugger.Breakpoint{CPU: cpu, Addr: uint16(v)})
}

func toTileROM(data []byte) [256 * 16]byte {
	var out [256 * 16]byte
	copy(out[:], data)
	return out
}

func toColorProm(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], data)
	return out
}

func toLookupProm(data []byte) [256]byte {
	var out [256]byte
	copy(out[:], data)
	return out
}
