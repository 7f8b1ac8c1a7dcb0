package cpu

// Memory is the address space the core executes against. Word accessors are
// little endian. Address arithmetic (stack pointer moves, PC advance) wraps
// at 0xFFFF and is done by the core, not by Memory.
type Memory interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	Read16(addr uint16) uint16
	Write16(addr uint16, value uint16)
}
