package chip8

// Memory layout constants. Programs are always loaded at ProgramStart;
// the font glyphs live below it so ROMs expecting the classic 1802
// interpreter layout still find them at FontBase.
const (
	MemorySize   = 0x1000
	ProgramStart = 0x200
	FontBase     = 0x050
	MaxROMSize   = MemorySize - ProgramStart

	DisplayWidth  = 64
	DisplayHeight = 32

	NumRegisters = 16
	NumKeys      = 16
	StackDepth   = 16
)

// Font holds the 5-byte-per-glyph bitmap font for hex digits 0-F,
// loaded at FontBase by New.
var Font = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}
