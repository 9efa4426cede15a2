// Package sink declares the explicit sink handles the PCB loop hands
// composed output to. The core never imports a concrete sink; adapters
// (sink/sdl, sink/wav) live outside hardware/ and implement these
// interfaces.
package sink

import "image"

// VideoSink receives one composed frame per VBLANK.
type VideoSink interface {
	Render(frame *image.RGBA)
}

// AudioState carries the stub waveform-generator state sunk once per
// VBLANK. Audio synthesis itself is out of scope, but the register
// writes still reach a sink rather than being dropped.
type AudioState struct {
	// LastWrites holds the most recent byte written to each of the sound
	// register addresses in 0x6800-0x681F, indexed by offset from 0x6800.
	LastWrites [0x20]byte
}

// AudioSink receives the audio stub state once per VBLANK.
type AudioSink interface {
	Mix(state AudioState)
}

// BreakpointSink is notified when the debug controller's pre-step hook
// matches a registered breakpoint.
type BreakpointSink interface {
	Hit(cpuID int, addr uint16)
}

// NopVideoSink discards every frame; useful for headless runs and tests
// that only care about the hardware loop's own bookkeeping.
type NopVideoSink struct{}

func (NopVideoSink) Render(frame *image.RGBA) {}

// NopAudioSink discards every audio state update.
type NopAudioSink struct{}

func (NopAudioSink) Mix(state AudioState) {}

// NopBreakpointSink discards every breakpoint hit notification.
type NopBreakpointSink struct{}

func (NopBreakpointSink) Hit(cpuID int, addr uint16) {}
