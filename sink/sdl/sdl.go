// Package sdl is a reference sink.VideoSink adapter that presents each
// composed frame in a fixed-size window using github.com/veandco/go-sdl2:
// a single streaming texture updated and presented once per frame, at
// this board's fixed 288x224 frame size.
package sdl

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Justin-Credible/galaga-emulator/hardware/video"
)

// Screen presents RGBA frames in an SDL window. It implements
// sink.VideoSink.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	scale    int32
}

// NewScreen creates the window, renderer and streaming texture sized for
// this board's fixed 288x224 frame, scaled up by scale for visibility on
// modern displays.
func NewScreen(scale int32) (*Screen, error) {
	if scale < 1 {
		scale = 1
	}

	width := int32(video.FrameWidth) * scale
	height := int32(video.FrameHeight) * scale

	window, err := sdl.CreateWindow("Galaga", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STREAMING, int32(video.FrameWidth), int32(video.FrameHeight))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	return &Screen{window: window, renderer: renderer, texture: texture, scale: scale}, nil
}

// Render implements sink.VideoSink: it streams frame's pixels into the
// texture and presents it. frame is expected to be video.FrameWidth by
// video.FrameHeight, the shape hardware/video.Composer always produces.
func (s *Screen) Render(frame *image.RGBA) {
	if frame == nil {
		return
	}

	if err := s.texture.Update(nil, frame.Pix, frame.Stride); err != nil {
		return
	}

	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}

// Close releases the SDL resources.
func (s *Screen) Close() {
	s.texture.Destroy()
	s.renderer.Destroy()
	s.window.Destroy()
}
