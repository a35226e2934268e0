package chip8

// CHIP-8 memory layout constants.
//
//	0x000-0x04F: font glyphs for the hex digits 0-F, 5 bytes each
//	0x050-0x1FF: reserved
//	0x200-0xFFF: program space
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// MaxAddress is the highest valid memory address.
	MaxAddress = 0xFFF

	// ProgramStart is the address programs are loaded to and the initial program counter.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the address of the glyph for digit 0.
	FontStart = 0x000

	// FontGlyphSize is the size of one font glyph in bytes.
	FontGlyphSize = 5

	fontEnd = FontStart + 16*FontGlyphSize
)

var fontSet = [16 * FontGlyphSize]byte{
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

// Memory is the flat 4KB address space of the machine.
// Addresses wrap at MaxAddress like the 12 bit address bus of the original hardware.
type Memory [MemorySize]byte

// load clears the memory and places the font and the program.
// The caller has to ensure that the program fits.
func (m *Memory) load(program []byte) {
	*m = Memory{}
	copy(m[FontStart:], fontSet[:])
	copy(m[ProgramStart:], program)
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) byte {
	return m[address&MaxAddress]
}

// write stores a byte at the given address. Writes into the font area are dropped,
// the glyphs are immutable after initialization.
func (m *Memory) write(address uint16, value byte) {
	address &= MaxAddress
	if address < fontEnd {
		return
	}
	m[address] = value
}

// FontAddress returns the address of the glyph for the given hex digit.
// Only the low nibble of the digit is used.
func FontAddress(digit uint8) uint16 {
	return FontStart + uint16(digit&0x0F)*FontGlyphSize
}
