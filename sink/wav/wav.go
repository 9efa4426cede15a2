// Package wav is a reference sink.AudioSink adapter that writes the
// board's sound-register state to a WAV file using
// github.com/go-audio/wav and github.com/go-audio/audio. The waveform
// generator registers are sunk as silence frames rather than
// synthesised into audio; the point of this adapter is to give the
// sound-register port a real writer instead of dropping it on the
// floor.
package wav

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Justin-Credible/galaga-emulator/sink"
)

const (
	sampleRate  = 44100
	numChannels = 1
	bitDepth    = 16

	// samplesPerVBlank is how many silence samples to write for each
	// 1/60s Mix call, matching the PCB loop's interrupt cadence.
	samplesPerVBlank = sampleRate / 60
)

// Writer accumulates silence frames, one VBLANK's worth per Mix call,
// into a WAV file.
type Writer struct {
	enc *wav.Encoder
	buf *audio.IntBuffer
}

// NewWriter opens a WAV encoder over w. Close must be called to finalise
// the file's header.
func NewWriter(w io.WriteSeeker) *Writer {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, numChannels, 1)
	return &Writer{
		enc: enc,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: numChannels, SampleRate: sampleRate},
			Data:           make([]int, samplesPerVBlank),
			SourceBitDepth: bitDepth,
		},
	}
}

// Mix implements sink.AudioSink. The sound-register state isn't
// synthesised into a waveform, so every call writes one VBLANK's worth
// of silence; w.buf.Data is allocated zeroed and never mutated, so
// nothing needs re-zeroing between calls.
func (w *Writer) Mix(state sink.AudioState) {
	_ = w.enc.Write(w.buf)
}

// Close finalises the WAV header. It must be called after the last Mix.
func (w *Writer) Close() error {
	return w.enc.Close()
}
