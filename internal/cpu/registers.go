package cpu

import "fmt"

// Reg8 names one of the seven general purpose 8-bit registers. F is not a
// Reg8: it is only reachable through the flag accessors and the AF pair.
type Reg8 uint8

// The order matches the 3-bit register field of the opcode encoding, with
// index 6 ((HL)) left out.
//
//go:generate go tool stringer -linecomment -type=Reg8
const (
	B Reg8 = iota // B
	C             // C
	D             // D
	E             // E
	H             // H
	L             // L
	A             // A
)

// Reg16 names a 16-bit register: one of the virtual pairs or SP.
type Reg16 uint8

//go:generate go tool stringer -linecomment -type=Reg16
const (
	BC Reg16 = iota // BC
	DE              // DE
	HL              // HL
	SP              // SP
	AF              // AF
)

// Flag is a condition on the F register. The four positive flags map to one
// bit each; the negated forms are only used as branch predicates.
type Flag uint8

//go:generate go tool stringer -linecomment -type=Flag
const (
	Zero         Flag = iota // Z
	Negative                 // N
	HalfCarry                // H
	Carry                    // C
	NotZero                  // NZ
	NotNegative              // NN
	NotHalfCarry             // NH
	NotCarry                 // NC
)

// Flag bits in F.
const (
	flagZ byte = 1 << 7
	flagN byte = 1 << 6
	flagH byte = 1 << 5
	flagC byte = 1 << 4
)

// positive returns the flag's bit and whether the flag is a negated form.
func (f Flag) positive() (mask byte, negated bool) {
	switch f {
	case Zero:
		return flagZ, false
	case Negative:
		return flagN, false
	case HalfCarry:
		return flagH, false
	case Carry:
		return flagC, false
	case NotZero:
		return flagZ, true
	case NotNegative:
		return flagN, true
	case NotHalfCarry:
		return flagH, true
	case NotCarry:
		return flagC, true
	}
	return 0, false
}

// Registers is the SM83 register file. F is kept unexported so that its low
// nibble stays zero.
type Registers struct {
	A, B, C, D, E, H, L byte
	f                   byte

	SP uint16
	PC uint16
}

// F returns the flags register.
func (r *Registers) F() byte { return r.f }

// SetF writes the flags register. The low nibble is discarded.
func (r *Registers) SetF(v byte) { r.f = v & 0xF0 }

// ResetNoBoot loads the DMG register state left behind by the boot ROM.
func (r *Registers) ResetNoBoot() {
	r.A, r.f = 0x01, 0xB0
	r.B, r.C = 0x00, 0x13
	r.D, r.E = 0x00, 0xD8
	r.H, r.L = 0x01, 0x4D
	r.SP = 0xFFFE
	r.PC = 0x0100
}

func (r *Registers) cell(n Reg8) *byte {
	switch n {
	case B:
		return &r.B
	case C:
		return &r.C
	case D:
		return &r.D
	case E:
		return &r.E
	case H:
		return &r.H
	case L:
		return &r.L
	default:
		return &r.A
	}
}

func (r *Registers) Get8(n Reg8) byte { return *r.cell(n) }

func (r *Registers) Set8(n Reg8, v byte) { *r.cell(n) = v }

func (r *Registers) Get16(n Reg16) uint16 {
	switch n {
	case BC:
		return uint16(r.B)<<8 | uint16(r.C)
	case DE:
		return uint16(r.D)<<8 | uint16(r.E)
	case HL:
		return uint16(r.H)<<8 | uint16(r.L)
	case AF:
		return uint16(r.A)<<8 | uint16(r.f)
	default:
		return r.SP
	}
}

func (r *Registers) Set16(n Reg16, v uint16) {
	switch n {
	case BC:
		r.B, r.C = byte(v>>8), byte(v)
	case DE:
		r.D, r.E = byte(v>>8), byte(v)
	case HL:
		r.H, r.L = byte(v>>8), byte(v)
	case AF:
		r.A, r.f = byte(v>>8), byte(v)&0xF0
	default:
		r.SP = v
	}
}

// IncPair increments a 16-bit register and returns the value it held before.
func (r *Registers) IncPair(n Reg16) uint16 {
	v := r.Get16(n)
	r.Set16(n, v+1)
	return v
}

// DecPair decrements a 16-bit register and returns the value it held before.
func (r *Registers) DecPair(n Reg16) uint16 {
	v := r.Get16(n)
	r.Set16(n, v-1)
	return v
}

// Flag reports whether the condition holds.
func (r *Registers) Flag(f Flag) bool {
	mask, negated := f.positive()
	if negated {
		return r.f&mask == 0
	}
	return r.f&mask != 0
}

// SetFlag makes the condition true. For a negated form that clears the
// underlying bit.
func (r *Registers) SetFlag(f Flag) {
	mask, negated := f.positive()
	if negated {
		r.f &^= mask
		return
	}
	r.f |= mask
}

// ResetFlag makes the condition false.
func (r *Registers) ResetFlag(f Flag) {
	mask, negated := f.positive()
	if negated {
		r.f |= mask
		return
	}
	r.f &^= mask
}

func (r *Registers) setFlagTo(f Flag, on bool) {
	if on {
		r.SetFlag(f)
	} else {
		r.ResetFlag(f)
	}
}

func (r *Registers) setZNHC(z, n, h, carry bool) {
	var f byte
	if z {
		f |= flagZ
	}
	if n {
		f |= flagN
	}
	if h {
		f |= flagH
	}
	if carry {
		f |= flagC
	}
	r.f = f
}

func (r *Registers) carryBit() byte {
	if r.f&flagC != 0 {
		return 1
	}
	return 0
}

func (r *Registers) String() string {
	return fmt.Sprintf("A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X SP=%04X PC=%04X",
		r.A, r.f, r.B, r.C, r.D, r.E, r.H, r.L, r.SP, r.PC)
}
