package cpu

import "fmt"

// Op is one decoded operation. Each implementation carries only the operands
// it needs; Execute interprets them. String renders assembler syntax.
type Op interface {
	fmt.Stringer
	isOp()
}

// ALUKind selects an 8-bit accumulator operation. The order matches bits 3-5
// of opcodes 0x80-0xBF.
type ALUKind uint8

//go:generate go tool stringer -linecomment -type=ALUKind
const (
	Add      ALUKind = iota // ADD
	AddCarry                // ADC
	Sub                     // SUB
	SubCarry                // SBC
	And                     // AND
	Xor                     // XOR
	Or                      // OR
	Compare                 // CP
)

// ShiftKind selects a rotate/shift operation. The order matches bits 3-5 of
// CB-prefixed opcodes 0x00-0x3F.
type ShiftKind uint8

//go:generate go tool stringer -linecomment -type=ShiftKind
const (
	RotateLeftCarry      ShiftKind = iota // RLC
	RotateRightCarry                      // RRC
	RotateLeft                            // RL
	RotateRight                           // RR
	ShiftLeftArithmetic                   // SLA
	ShiftRightArithmetic                  // SRA
	Swap                                  // SWAP
	ShiftRightLogical                     // SRL
)

type (
	Nop               struct{}
	Stop              struct{}
	Halt              struct{}
	DisableInterrupts struct{}
	EnableInterrupts  struct{}

	// Load8 copies Src into Dst.
	Load8 struct {
		Dst MutableData8
		Src Data8
	}
	// Load16 copies Src into Dst.
	Load16 struct {
		Dst MutableData16
		Src Data16
	}
	// LoadHLSP is LD HL,SP+e.
	LoadHLSP struct{ Offset int8 }
	// AddSP is ADD SP,e.
	AddSP struct{ Offset int8 }

	Inc8  struct{ Dst MutableData8 }
	Dec8  struct{ Dst MutableData8 }
	Inc16 struct{ Dst Reg16 }
	Dec16 struct{ Dst Reg16 }

	// ALU combines the accumulator with Src.
	ALU struct {
		Kind ALUKind
		Src  Data8
	}
	// Add16 is ADD HL,rr.
	Add16 struct{ Src Reg16 }

	// RotateA is one of the accumulator-only rotates RLCA, RRCA, RLA and RRA.
	// Only the four rotate kinds are valid.
	RotateA struct{ Kind ShiftKind }
	// Rotate is a CB-prefixed rotate, shift or swap.
	Rotate struct {
		Kind ShiftKind
		Dst  MutableData8
	}

	Bit struct {
		Index uint8
		Src   Data8
	}
	Set struct {
		Index uint8
		Dst   MutableData8
	}
	Reset struct {
		Index uint8
		Dst   MutableData8
	}

	DecimalAdjust   struct{}
	Complement      struct{}
	SetCarry        struct{}
	ComplementCarry struct{}

	// Jump is JP a16 (Target is Imm16) or JP HL (Target is HL).
	Jump   struct{ Target Data16 }
	JumpIf struct {
		Cond   Flag
		Target uint16
	}
	// JumpRelative adds Offset to the address of the next instruction.
	JumpRelative   struct{ Offset int8 }
	JumpRelativeIf struct {
		Cond   Flag
		Offset int8
	}
	Call   struct{ Target uint16 }
	CallIf struct {
		Cond   Flag
		Target uint16
	}
	Return          struct{}
	ReturnIf        struct{ Cond Flag }
	ReturnInterrupt struct{}
	Restart         struct{ Vector uint8 }
	Push            struct{ Src Reg16 }
	Pop             struct{ Dst Reg16 }

	// Unimplemented marks an opcode with no defined instruction.
	Unimplemented struct{ Opcode byte }
)

func (Nop) isOp()               {}
func (Stop) isOp()              {}
func (Halt) isOp()              {}
func (DisableInterrupts) isOp() {}
func (EnableInterrupts) isOp()  {}
func (Load8) isOp()             {}
func (Load16) isOp()            {}
func (LoadHLSP) isOp()          {}
func (AddSP) isOp()             {}
func (Inc8) isOp()              {}
func (Dec8) isOp()              {}
func (Inc16) isOp()             {}
func (Dec16) isOp()             {}
func (ALU) isOp()               {}
func (Add16) isOp()             {}
func (RotateA) isOp()           {}
func (Rotate) isOp()            {}
func (Bit) isOp()               {}
func (Set) isOp()               {}
func (Reset) isOp()             {}
func (DecimalAdjust) isOp()     {}
func (Complement) isOp()        {}
func (SetCarry) isOp()          {}
func (ComplementCarry) isOp()   {}
func (Jump) isOp()              {}
func (JumpIf) isOp()            {}
func (JumpRelative) isOp()      {}
func (JumpRelativeIf) isOp()    {}
func (Call) isOp()              {}
func (CallIf) isOp()            {}
func (Return) isOp()            {}
func (ReturnIf) isOp()          {}
func (ReturnInterrupt) isOp()   {}
func (Restart) isOp()           {}
func (Push) isOp()              {}
func (Pop) isOp()               {}
func (Unimplemented) isOp()     {}

func (Nop) String() string               { return "NOP" }
func (Stop) String() string              { return "STOP" }
func (Halt) String() string              { return "HALT" }
func (DisableInterrupts) String() string { return "DI" }
func (EnableInterrupts) String() string  { return "EI" }
func (DecimalAdjust) String() string     { return "DAA" }
func (Complement) String() string        { return "CPL" }
func (SetCarry) String() string          { return "SCF" }
func (ComplementCarry) String() string   { return "CCF" }
func (Return) String() string            { return "RET" }
func (ReturnInterrupt) String() string   { return "RETI" }

func (o Load8) String() string  { return fmt.Sprintf("LD %v, %v", o.Dst, o.Src) }
func (o Load16) String() string { return fmt.Sprintf("LD %v, %v", o.Dst, o.Src) }

func (o LoadHLSP) String() string { return fmt.Sprintf("LD HL, SP%+d", o.Offset) }
func (o AddSP) String() string    { return fmt.Sprintf("ADD SP, %+d", o.Offset) }

func (o Inc8) String() string  { return fmt.Sprintf("INC %v", o.Dst) }
func (o Dec8) String() string  { return fmt.Sprintf("DEC %v", o.Dst) }
func (o Inc16) String() string { return fmt.Sprintf("INC %v", o.Dst) }
func (o Dec16) String() string { return fmt.Sprintf("DEC %v", o.Dst) }

func (o ALU) String() string {
	switch o.Kind {
	case Add, AddCarry, SubCarry:
		return fmt.Sprintf("%v A, %v", o.Kind, o.Src)
	}
	return fmt.Sprintf("%v %v", o.Kind, o.Src)
}

func (o Add16) String() string { return fmt.Sprintf("ADD HL, %v", o.Src) }

func (o RotateA) String() string { return o.Kind.String() + "A" }
func (o Rotate) String() string  { return fmt.Sprintf("%v %v", o.Kind, o.Dst) }

func (o Bit) String() string   { return fmt.Sprintf("BIT %d, %v", o.Index, o.Src) }
func (o Set) String() string   { return fmt.Sprintf("SET %d, %v", o.Index, o.Dst) }
func (o Reset) String() string { return fmt.Sprintf("RES %d, %v", o.Index, o.Dst) }

func (o Jump) String() string   { return fmt.Sprintf("JP %v", o.Target) }
func (o JumpIf) String() string { return fmt.Sprintf("JP %v, $%04X", o.Cond, o.Target) }

// relative renders a JR displacement as an offset from the JR opcode itself,
// so that a jump to self reads "$".
func relative(offset int8) string {
	d := int(offset) + 2
	if d == 0 {
		return "$"
	}
	return fmt.Sprintf("$%+d", d)
}

func (o JumpRelative) String() string   { return "JR " + relative(o.Offset) }
func (o JumpRelativeIf) String() string { return fmt.Sprintf("JR %v, %s", o.Cond, relative(o.Offset)) }

func (o Call) String() string     { return fmt.Sprintf("CALL $%04X", o.Target) }
func (o CallIf) String() string   { return fmt.Sprintf("CALL %v, $%04X", o.Cond, o.Target) }
func (o ReturnIf) String() string { return fmt.Sprintf("RET %v", o.Cond) }
func (o Restart) String() string  { return fmt.Sprintf("RST $%02X", o.Vector) }
func (o Push) String() string     { return fmt.Sprintf("PUSH %v", o.Src) }
func (o Pop) String() string      { return fmt.Sprintf("POP %v", o.Dst) }

func (o Unimplemented) String() string { return fmt.Sprintf("DB $%02X", o.Opcode) }
