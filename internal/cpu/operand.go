package cpu

import "fmt"

// Data8 is a source of an 8-bit value. The set of implementations is closed:
// Imm8, Reg8, Indirect, HighPage, HighPageC and Absolute.
type Data8 interface {
	fmt.Stringer
	read8(r *Registers, m Memory) byte
}

// MutableData8 is an 8-bit location that can also be written. Imm8 is the
// only Data8 that is not a MutableData8.
type MutableData8 interface {
	Data8
	write8(r *Registers, m Memory, v byte)
}

// Data16 is a source of a 16-bit value: Imm16, Reg16 or Absolute.
type Data16 interface {
	fmt.Stringer
	read16(r *Registers, m Memory) uint16
}

// MutableData16 is a writable 16-bit location: Reg16 or Absolute.
type MutableData16 interface {
	Data16
	write16(r *Registers, m Memory, v uint16)
}

// Imm8 is an 8-bit value encoded in the instruction.
type Imm8 byte

func (v Imm8) read8(*Registers, Memory) byte { return byte(v) }
func (v Imm8) String() string                { return fmt.Sprintf("$%02X", byte(v)) }

// Imm16 is a 16-bit value encoded in the instruction.
type Imm16 uint16

func (v Imm16) read16(*Registers, Memory) uint16 { return uint16(v) }
func (v Imm16) String() string                   { return fmt.Sprintf("$%04X", uint16(v)) }

func (n Reg8) read8(r *Registers, _ Memory) byte         { return r.Get8(n) }
func (n Reg8) write8(r *Registers, _ Memory, v byte)     { r.Set8(n, v) }
func (n Reg16) read16(r *Registers, _ Memory) uint16     { return r.Get16(n) }
func (n Reg16) write16(r *Registers, _ Memory, v uint16) { r.Set16(n, v) }

// Step is the side effect an indirect access has on its address register.
type Step uint8

const (
	StepNone Step = iota
	StepInc
	StepDec
)

// Indirect addresses memory through a register pair. With StepInc or StepDec
// the old pair value is the address and the pair is moved after the access.
type Indirect struct {
	Pair Reg16
	Step Step
}

func (i Indirect) address(r *Registers) uint16 {
	switch i.Step {
	case StepInc:
		return r.IncPair(i.Pair)
	case StepDec:
		return r.DecPair(i.Pair)
	}
	return r.Get16(i.Pair)
}

func (i Indirect) read8(r *Registers, m Memory) byte     { return m.Read(i.address(r)) }
func (i Indirect) write8(r *Registers, m Memory, v byte) { m.Write(i.address(r), v) }

func (i Indirect) String() string {
	switch i.Step {
	case StepInc:
		return fmt.Sprintf("(%v+)", i.Pair)
	case StepDec:
		return fmt.Sprintf("(%v-)", i.Pair)
	}
	return fmt.Sprintf("(%v)", i.Pair)
}

// HighPage addresses 0xFF00 plus an immediate offset.
type HighPage byte

func (p HighPage) read8(_ *Registers, m Memory) byte     { return m.Read(0xFF00 | uint16(p)) }
func (p HighPage) write8(_ *Registers, m Memory, v byte) { m.Write(0xFF00|uint16(p), v) }
func (p HighPage) String() string                        { return fmt.Sprintf("($FF00+$%02X)", byte(p)) }

// HighPageC addresses 0xFF00 plus register C.
type HighPageC struct{}

func (HighPageC) read8(r *Registers, m Memory) byte     { return m.Read(0xFF00 | uint16(r.C)) }
func (HighPageC) write8(r *Registers, m Memory, v byte) { m.Write(0xFF00|uint16(r.C), v) }
func (HighPageC) String() string                        { return "($FF00+C)" }

// Absolute addresses memory at a fixed 16-bit address. It serves both as an
// 8-bit location (LD (a16),A) and a 16-bit one (LD (a16),SP).
type Absolute uint16

func (a Absolute) read8(_ *Registers, m Memory) byte        { return m.Read(uint16(a)) }
func (a Absolute) write8(_ *Registers, m Memory, v byte)    { m.Write(uint16(a), v) }
func (a Absolute) read16(_ *Registers, m Memory) uint16     { return m.Read16(uint16(a)) }
func (a Absolute) write16(_ *Registers, m Memory, v uint16) { m.Write16(uint16(a), v) }
func (a Absolute) String() string                           { return fmt.Sprintf("($%04X)", uint16(a)) }

