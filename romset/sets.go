package romset

// RomID names one logical ROM image on the board, independent of which
// set (and therefore which filename) it comes from.
type RomID int

const (
	CPU1ProgramA RomID = iota
	CPU1ProgramB
	CPU1ProgramC
	CPU1ProgramD
	CPU2Program
	CPU3Program
	TilesGfx
	SpriteGfxLow
	SpriteGfxHigh
	ColorProm
	CharLookupProm
	SpriteLookupProm
	Control1Prom
	Control2Prom
	NamcoMCU1
	NamcoMCU2
)

// Entry is one catalogue row: the expected filename (and an optional
// alternate name seen in other dumps of the same data), size in bytes,
// and CRC32 as a lowercase hex string.
type Entry struct {
	Primary     string
	Alternate   string
	Size        int
	CRC32       string
	Description string
}

// Set is a complete ROM catalogue for one board revision.
type Set map[RomID]Entry

// Sets lists the four Galaga board revisions recognised by the MAME
// "galaga" driver family, reproduced here as literal tables rather than
// parsed from an external XML catalogue.
var Sets = map[string]Set{
	"galaga": {
		CPU1ProgramA:     {Primary: "gg1_1b.3p", Size: 0x1000, CRC32: "ab036c9f", Description: "CPU1 program ROM, bank A"},
		CPU1ProgramB:     {Primary: "gg1_2b.3m", Size: 0x1000, CRC32: "d9232240", Description: "CPU1 program ROM, bank B"},
		CPU1ProgramC:     {Primary: "gg1_3.2m", Size: 0x1000, CRC32: "753ce503", Description: "CPU1 program ROM, bank C"},
		CPU1ProgramD:     {Primary: "gg1_4b.2l", Size: 0x1000, CRC32: "499f8496", Description: "CPU1 program ROM, bank D"},
		CPU2Program:      {Primary: "gg1_5b.3f", Size: 0x1000, CRC32: "bb5caae3", Description: "CPU2 program ROM"},
		CPU3Program:      {Primary: "gg1_7b.2c", Size: 0x1000, CRC32: "d016686b", Description: "CPU3 program ROM"},
		TilesGfx:         {Primary: "gg1_9.4l", Size: 0x1000, CRC32: "58b2f47c", Description: "Tile (character) graphics ROM"},
		SpriteGfxLow:     {Primary: "gg1_11.4d", Size: 0x1000, CRC32: "ad447c80", Description: "Sprite graphics ROM, low plane"},
		SpriteGfxHigh:    {Primary: "gg1_10.4f", Size: 0x1000, CRC32: "dd6f1afc", Description: "Sprite graphics ROM, high plane"},
		ColorProm:        {Primary: "prom-5.5n", Size: 0x20, CRC32: "54603c6b", Description: "Color PROM"},
		CharLookupProm:   {Primary: "prom-4.2n", Size: 0x100, CRC32: "6ed27e5d", Description: "Character palette lookup PROM"},
		SpriteLookupProm: {Primary: "prom-3.1c", Size: 0x100, CRC32: "d68314e9", Description: "Sprite palette lookup PROM"},
		Control1Prom:     {Primary: "prom-1.1d", Size: 0x100, CRC32: "7a2815b4", Description: "Starfield/control PROM 1"},
		Control2Prom:     {Primary: "prom-2.5c", Size: 0x100, CRC32: "77245b66", Description: "Starfield/control PROM 2"},
		NamcoMCU1:        {Primary: "51xx.bin", Size: 0x400, CRC32: "c2f60b76", Description: "Namco 51XX I/O MCU"},
		NamcoMCU2:        {Primary: "54xx.bin", Size: 0x400, CRC32: "ee7357e0", Description: "Namco 54XX sound MCU"},
	},

	"galagao": {
		CPU1ProgramA:     {Primary: "gg1-1.3p", Size: 0x1000, CRC32: "a3a0f743", Description: "CPU1 program ROM, bank A"},
		CPU1ProgramB:     {Primary: "gg1-2.3m", Size: 0x1000, CRC32: "43bb0d5c", Description: "CPU1 program ROM, bank B"},
		CPU1ProgramC:     {Primary: "gg1-3.2m", Size: 0x1000, CRC32: "753ce503", Description: "CPU1 program ROM, bank C"},
		CPU1ProgramD:     {Primary: "gg1-4.2l", Size: 0x1000, CRC32: "903020c6", Description: "CPU1 program ROM, bank D"},
		CPU2Program:      {Primary: "gg1-5.3f", Size: 0x1000, CRC32: "3102fccd", Description: "CPU2 program ROM"},
		CPU3Program:      {Primary: "gg1-7.2c", Size: 0x1000, CRC32: "8995088d", Description: "CPU3 program ROM"},
		TilesGfx:         {Primary: "gg1-9.4l", Size: 0x1000, CRC32: "58b2f47c", Description: "Tile (character) graphics ROM"},
		SpriteGfxLow:     {Primary: "gg1-11.4d", Size: 0x1000, CRC32: "ad447c80", Description: "Sprite graphics ROM, low plane"},
		SpriteGfxHigh:    {Primary: "gg1-10.4f", Size: 0x1000, CRC32: "dd6f1afc", Description: "Sprite graphics ROM, high plane"},
		ColorProm:        {Primary: "prom-5.5n", Size: 0x20, CRC32: "54603c6b", Description: "Color PROM"},
		CharLookupProm:   {Primary: "prom-4.2n", Size: 0x100, CRC32: "6ed27e5d", Description: "Character palette lookup PROM"},
		SpriteLookupProm: {Primary: "prom-3.1c", Size: 0x100, CRC32: "d68314e9", Description: "Sprite palette lookup PROM"},
		Control1Prom:     {Primary: "prom-1.1d", Size: 0x100, CRC32: "7a2815b4", Description: "Starfield/control PROM 1"},
		Control2Prom:     {Primary: "prom-2.5c", Size: 0x100, CRC32: "77245b66", Description: "Starfield/control PROM 2"},
		NamcoMCU1:        {Primary: "51xx.bin", Size: 0x400, CRC32: "c2f60b76", Description: "Namco 51XX I/O MCU"},
		NamcoMCU2:        {Primary: "54xx.bin", Size: 0x400, CRC32: "ee7357e0", Description: "Namco 54XX sound MCU"},
	},

	"galagamw": {
		CPU1ProgramA:     {Primary: "gg1-1b.3p", Alternate: "3200a.bin", Size: 0x1000, CRC32: "ab036c9f", Description: "CPU1 program ROM, bank A"},
		CPU1ProgramB:     {Primary: "gg1-2b.3m", Alternate: "3300b.bin", Size: 0x1000, CRC32: "d9232240", Description: "CPU1 program ROM, bank B"},
		CPU1ProgramC:     {Primary: "gg1-3.2m", Alternate: "3400c.bin", Size: 0x1000, CRC32: "753ce503", Description: "CPU1 program ROM, bank C"},
		CPU1ProgramD:     {Primary: "gg1-4b.2l", Alternate: "3500d.bin", Size: 0x1000, CRC32: "499f8496", Description: "CPU1 program ROM, bank D"},
		CPU2Program:      {Primary: "gg1-5b.3f", Size: 0x1000, CRC32: "bb5caae3", Description: "CPU2 program ROM"},
		CPU3Program:      {Primary: "gg1-7b.2c", Size: 0x1000, CRC32: "d016686b", Description: "CPU3 program ROM"},
		TilesGfx:         {Primary: "gg1-9.4l", Size: 0x1000, CRC32: "58b2f47c", Description: "Tile (character) graphics ROM"},
		SpriteGfxLow:     {Primary: "gg1-11.4d", Size: 0x1000, CRC32: "ad447c80", Description: "Sprite graphics ROM, low plane"},
		SpriteGfxHigh:    {Primary: "gg1-10.4f", Size: 0x1000, CRC32: "dd6f1afc", Description: "Sprite graphics ROM, high plane"},
		ColorProm:        {Primary: "prom-5.5n", Size: 0x20, CRC32: "54603c6b", Description: "Color PROM"},
		CharLookupProm:   {Primary: "prom-4.2n", Size: 0x100, CRC32: "6ed27e5d", Description: "Character palette lookup PROM"},
		SpriteLookupProm: {Primary: "prom-3.1c", Size: 0x100, CRC32: "d68314e9", Description: "Sprite palette lookup PROM"},
		Control1Prom:     {Primary: "prom-1.1d", Size: 0x100, CRC32: "7a2815b4", Description: "Starfield/control PROM 1"},
		Control2Prom:     {Primary: "prom-2.5c", Size: 0x100, CRC32: "77245b66", Description: "Starfield/control PROM 2"},
		NamcoMCU1:        {Primary: "51xx.bin", Size: 0x400, CRC32: "c2f60b76", Description: "Namco 51XX I/O MCU"},
		NamcoMCU2:        {Primary: "54xx.bin", Size: 0x400, CRC32: "ee7357e0", Description: "Namco 54XX sound MCU"},
	},

	"galagamk": {
		CPU1ProgramA:     {Primary: "gg1-1.3p", Size: 0x1000, CRC32: "a3a0f743", Description: "CPU1 program ROM, bank A"},
		CPU1ProgramB:     {Primary: "gg1-2.3m", Size: 0x1000, CRC32: "43bb0d5c", Description: "CPU1 program ROM, bank B"},
		CPU1ProgramC:     {Primary: "gg1-3.2m", Size: 0x1000, CRC32: "753ce503", Description: "CPU1 program ROM, bank C"},
		CPU1ProgramD:     {Primary: "gg1-4.2l", Size: 0x1000, CRC32: "903020c6", Description: "CPU1 program ROM, bank D"},
		CPU2Program:      {Primary: "gg1-5.3f", Size: 0x1000, CRC32: "3102fccd", Description: "CPU2 program ROM"},
		CPU3Program:      {Primary: "gg1-7.2c", Size: 0x1000, CRC32: "8995088d", Description: "CPU3 program ROM"},
		TilesGfx:         {Primary: "gg1-9.4l", Size: 0x1000, CRC32: "58b2f47c", Description: "Tile (character) graphics ROM"},
		SpriteGfxLow:     {Primary: "gg1-11.4d", Size: 0x1000, CRC32: "ad447c80", Description: "Sprite graphics ROM, low plane"},
		SpriteGfxHigh:    {Primary: "gg1-10.4f", Size: 0x1000, CRC32: "dd6f1afc", Description: "Sprite graphics ROM, high plane"},
		ColorProm:        {Primary: "prom-5.5n", Size: 0x20, CRC32: "54603c6b", Description: "Color PROM"},
		CharLookupProm:   {Primary: "prom-4.2n", Size: 0x100, CRC32: "6ed27e5d", Description: "Character palette lookup PROM"},
		SpriteLookupProm: {Primary: "prom-3.1c", Size: 0x100, CRC32: "d68314e9", Description: "Sprite palette lookup PROM"},
		Control1Prom:     {Primary: "prom-1.1d", Size: 0x100, CRC32: "7a2815b4", Description: "Starfield/control PROM 1"},
		Control2Prom:     {Primary: "prom-2.5c", Size: 0x100, CRC32: "77245b66", Description: "Starfield/control PROM 2"},
		NamcoMCU1:        {Primary: "51xx.bin", Size: 0x400, CRC32: "c2f60b76", Description: "Namco 51XX I/O MCU"},
		NamcoMCU2:        {Primary: "54xx.bin", Size: 0x400, CRC32: "ee7357e0", Description: "Namco 54XX sound MCU"},
	},
}
