// Package bus provides the flat 64 KiB address space the CPU core runs against.
package bus

// Size is the number of addressable bytes.
const Size = 0x10000

// Bus is a flat byte-addressable store. Every address is readable and
// writable; there is no banking or memory-mapped I/O.
type Bus struct {
	mem [Size]byte
}

// New returns a bus with image copied to address 0x0000. Bytes beyond
// 0xFFFF are ignored.
func New(image []byte) *Bus {
	b := &Bus{}
	b.Load(0x0000, image)
	return b
}

// Load copies data into memory starting at addr, wrapping at 0xFFFF.
func (b *Bus) Load(addr uint16, data []byte) {
	for i, v := range data {
		if i >= Size {
			return
		}
		b.mem[addr+uint16(i)] = v
	}
}

func (b *Bus) Read(addr uint16) byte {
	return b.mem[addr]
}

func (b *Bus) Write(addr uint16, value byte) {
	b.mem[addr] = value
}

// Read16 reads a little-endian word. The high byte comes from addr+1,
// which wraps to 0x0000 at the top of memory.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return lo | (hi << 8)
}

// Write16 stores a little-endian word.
func (b *Bus) Write16(addr uint16, value uint16) {
	b.Write(addr, byte(value&0x00FF))
	b.Write(addr+1, byte(value>>8))
}
