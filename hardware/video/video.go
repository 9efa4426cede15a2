// Package video composes the 288x224 frame buffer from VRAM and the tile
// renderer each VBLANK, and encodes it to the wire format the external
// video sink expects.
package video

import (
	"bytes"
	"image"
	"image/draw"

	"github.com/jsummers/gobmp"

	"github.com/Justin-Credible/galaga-emulator/hardware/memory"
	"github.com/Justin-Credible/galaga-emulator/hardware/video/palette"
	"github.com/Justin-Credible/galaga-emulator/hardware/video/tile"
)

const (
	tileSize = 8

	// FrameCols and FrameRows are the final, rotated frame's tile grid
	// dimensions: 288x224 pixels at 8x8 tiles.
	FrameCols = 36
	FrameRows = 28

	FrameWidth  = FrameCols * tileSize
	FrameHeight = FrameRows * tileSize
)

// Composer owns the tile renderer and the reusable frame buffer. No
// resource other than the one-shot frame handoff crosses threads;
// Composer itself is not safe for concurrent use.
type Composer struct {
	renderer *tile.Renderer
	frame    *image.RGBA
}

// NewComposer builds a Composer around an already-decoded tile renderer.
func NewComposer(renderer *tile.Renderer) *Composer {
	return &Composer{
		renderer: renderer,
		frame:    image.NewRGBA(image.Rect(0, 0, FrameWidth, FrameHeight)),
	}
}

// NewComposerFromPROMs decodes the color and lookup PROMs into a palette
// table, builds a tile renderer over tileROM, and returns a ready Composer.
// This is the usual construction path; NewComposer is exposed directly for
// callers (and tests) that already have a tile.Renderer.
func NewComposerFromPROMs(tileROM [256 * 16]byte, colorProm [32]byte, lookupProm [256]byte) (*Composer, error) {
	colors := palette.BuildColors(colorProm)
	palettes := palette.BuildPalettes(lookupProm, colors)

	var tilePalettes [64][4]tile.Color
	for p := range palettes {
		for e := range palettes[p] {
			tilePalettes[p][e] = tile.Color(palettes[p][e])
		}
	}

	return NewComposer(tile.NewRenderer(tileROM, tilePalettes)), nil
}

// CaptureFrame walks the playfield and the four strip regions and blits
// each tile into the reusable frame buffer, returning it. The caller
// must not retain the returned image past the next call to CaptureFrame.
//
// The address-space row numbering used by the playfield and strip regions
// runs 0-35 (36 native rows), wider than the 28-row final frame; row
// positions are folded into the visible 28 rows with row%FrameRows. Under
// this folding every playfield-wrap row is eventually repainted by the
// later strip regions, so no clearing between frames is needed -- every
// on-screen pixel is overwritten each pass.
func (c *Composer) CaptureFrame(bus *memory.Bus) *image.RGBA {
	const (
		playfieldLo = 0x040
		playfieldHi = 0x3bf
	)

	for i := 0; i <= playfieldHi-playfieldLo; i++ {
		addr := uint16(playfieldLo + i)
		rowOffset := i % 32
		colOffset := i / 32

		tileIndex := int(bus.Peek(0x8000+addr) & 0x7f)
		paletteIndex := int(bus.Peek(0x8400+addr) & 0x3f)

		c.blit(bus, 29-colOffset, 2+rowOffset, tileIndex, paletteIndex)
	}

	c.drawStrip(bus, 0x3df, 0x3c0, 0)
	c.drawStrip(bus, 0x3ff, 0x3e0, 1)
	c.drawStrip(bus, 0x01f, 0x000, 34)
	c.drawStrip(bus, 0x03f, 0x020, 35)

	return c.frame
}

// drawStrip blits consecutive tiles for one of the top/bottom strip
// regions, reading addresses descending from hi to lo (inclusive) and
// placing them left to right starting at column 0 of row.
func (c *Composer) drawStrip(bus *memory.Bus, hi, lo uint16, row int) {
	col := 0
	for addr := hi; ; addr-- {
		tileIndex := int(bus.Peek(0x8000+addr) & 0x7f)
		paletteIndex := int(bus.Peek(0x8400+addr) & 0x3f)

		c.blit(bus, col, row, tileIndex, paletteIndex)
		col++

		if addr == lo {
			break
		}
	}
}

func (c *Composer) blit(bus *memory.Bus, col, row, tileIndex, paletteIndex int) {
	row = ((row % FrameRows) + FrameRows) % FrameRows
	col = ((col % FrameCols) + FrameCols) % FrameCols

	img := c.renderer.Tile(tileIndex, paletteIndex)
	dstX, dstY := col*tileSize, row*tileSize
	dst := image.Rect(dstX, dstY, dstX+tileSize, dstY+tileSize)
	draw.Draw(c.frame, dst, img, image.Point{}, draw.Src)
}

// EncodeBMP encodes img to a BMP image's bytes, suitable for handing to
// a video sink that wants a wire-format image rather than an
// in-process image.Image.
func EncodeBMP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := gobmp.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
