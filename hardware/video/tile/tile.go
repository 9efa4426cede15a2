// Package tile renders 8x8 tiles from the Galaga tile ROM through a
// decoded palette table, and caches the results: constructed once per
// (tile, palette) pair and read many times thereafter.
package tile

import "image"

// bytesPerTile is the size of one tile's planar data block in the tile
// ROM: two bit-planes, one byte per row of 8 pixels, eight rows.
const bytesPerTile = 16

// plane0Offset and plane1Offset fix the tile ROM's bit-plane layout:
// plane0 is the low half of the 16-byte block (one byte per row),
// plane1 the high half.
const (
	plane0Offset = 0
	plane1Offset = 8
)

// Color is the minimal pixel type the renderer needs; hardware/video
// supplies palette.Color values that satisfy this shape via an adapter so
// this package doesn't import hardware/video/palette directly.
type Color struct {
	R, G, B uint8
}

// Renderer holds the tile ROM (256 tiles of 16 bytes each) and the 64
// decoded palettes, and lazily builds an 8x8 RGBA image per
// (tile, palette) combination on first request.
type Renderer struct {
	rom      [256 * bytesPerTile]byte
	palettes [64][4]Color

	cache [256][64]*image.RGBA
}

// NewRenderer builds a Renderer over the given tile ROM and decoded
// palette table. The ROM must be exactly 256*16 bytes.
func NewRenderer(rom [256 * bytesPerTile]byte, palettes [64][4]Color) *Renderer {
	return &Renderer{rom: rom, palettes: palettes}
}

// Tile returns the 8x8 RGBA image for tileIndex rendered with
// palettes[paletteIndex], building and caching it on first request.
// Palette entry 0 is opaque for tiles; sprite transparency is out of
// scope for this renderer.
func (r *Renderer) Tile(tileIndex, paletteIndex int) *image.RGBA {
	if cached := r.cache[tileIndex][paletteIndex]; cached != nil {
		return cached
	}

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	base := tileIndex * bytesPerTile
	pal := r.palettes[paletteIndex]

	for row := 0; row < 8; row++ {
		p0 := r.rom[base+plane0Offset+row]
		p1 := r.rom[base+plane1Offset+row]

		for col := 0; col < 8; col++ {
			shift := uint(7 - col)
			b0 := (p0 >> shift) & 1
			b1 := (p1 >> shift) & 1
			entry := b0 | b1<<1

			c := pal[entry]
			img.Set(col, row, rgba{c})
		}
	}

	r.cache[tileIndex][paletteIndex] = img
	return img
}

// rgba adapts Color to image/color.Color with full alpha; every tile
// pixel this renderer produces is opaque.
type rgba struct {
	c Color
}

func (p rgba) RGBA() (r, g, b, a uint32) {
	r = uint32(p.c.R)
	r |= r << 8
	g = uint32(p.c.G)
	g |= g << 8
	b = uint32(p.c.B)
	b |= b << 8
	a = 0xffff
	return
}
