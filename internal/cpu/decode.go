package cpu

// memAccess is the machine-cycle cost of one bus access beyond the opcode fetch.
const memAccess = 1

// Operand order of the 3-bit register field shared by the 0x40-0xBF blocks,
// the INC/DEC/LD r,d8 column of 0x00-0x3F and every CB opcode.
var regTable = [8]MutableData8{B, C, D, E, H, L, Indirect{Pair: HL}, A}

var (
	pairTable      = [4]Reg16{BC, DE, HL, SP}
	stackPairTable = [4]Reg16{BC, DE, HL, AF}
	condTable      = [4]Flag{NotZero, Zero, NotCarry, Carry}
)

// operand8 selects the operand named by the low three bits of field and
// returns the cost of one access to it.
func operand8(field byte) (MutableData8, int) {
	idx := field & 7
	if idx == 6 {
		return regTable[idx], memAccess
	}
	return regTable[idx], 0
}

// Decode decodes the instruction at the start of window. It never panics: an
// empty window, an undefined opcode, or a window too short for the operands
// all yield an Unimplemented instruction with zero size and cycles.
func Decode(window []byte) Instruction {
	if len(window) == 0 {
		return unimplemented(0x00)
	}
	op := window[0]
	switch {
	case op == 0x76:
		return newInstruction(Halt{}, 1, 1)
	case op >= 0x40 && op < 0x80:
		return decodeLoadBlock(op)
	case op >= 0x80 && op < 0xC0:
		return decodeALUBlock(op)
	case op == 0xCB:
		if len(window) < 2 {
			return unimplemented(op)
		}
		return decodeCB(window[1])
	}
	return decodeFixed(window)
}

// LD r,r' with r and r' from the register field table.
func decodeLoadBlock(op byte) Instruction {
	src, srcCost := operand8(op)
	dst, dstCost := operand8(op >> 3)
	return newInstruction(Load8{Dst: dst, Src: src}, 1, 1+srcCost+dstCost)
}

// ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,r.
func decodeALUBlock(op byte) Instruction {
	src, cost := operand8(op)
	return newInstruction(ALU{Kind: ALUKind((op - 0x80) >> 3), Src: src}, 1, 1+cost)
}

// decodeCB decodes the byte following the 0xCB prefix.
func decodeCB(op byte) Instruction {
	dst, cost := operand8(op)
	idx := (op >> 3) & 7
	switch op >> 6 {
	case 0:
		return newInstruction(Rotate{Kind: ShiftKind(idx), Dst: dst}, 2, 2+2*cost)
	case 1:
		return newInstruction(Bit{Index: idx, Src: dst}, 2, 2+cost)
	case 2:
		return newInstruction(Reset{Index: idx, Dst: dst}, 2, 2+2*cost)
	default:
		return newInstruction(Set{Index: idx, Dst: dst}, 2, 2+2*cost)
	}
}

// operandBytes is the number of immediate bytes following a base opcode.
func operandBytes(op byte) int {
	switch op {
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E,
		0x10, 0x18, 0x20, 0x28, 0x30, 0x38,
		0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE,
		0xE0, 0xF0, 0xE8, 0xF8:
		return 1
	case 0x01, 0x11, 0x21, 0x31, 0x08,
		0xC2, 0xC3, 0xC4, 0xCA, 0xCC, 0xCD,
		0xD2, 0xD4, 0xDA, 0xDC,
		0xEA, 0xFA:
		return 2
	}
	return 0
}

// decodeFixed handles the literally matched opcodes of 0x00-0x3F and 0xC0-0xFF.
func decodeFixed(w []byte) Instruction {
	op := w[0]
	size := 1 + operandBytes(op)
	if len(w) < size {
		return unimplemented(op)
	}
	var n8 byte
	var n16 uint16
	if size > 1 {
		n8 = w[1]
	}
	if size > 2 {
		n16 = uint16(w[1]) | uint16(w[2])<<8
	}

	switch op {
	case 0x00:
		return newInstruction(Nop{}, size, 1)
	case 0x10: // STOP 0
		return newInstruction(Stop{}, size, 1)

	// LD rr,d16
	case 0x01, 0x11, 0x21, 0x31:
		return newInstruction(Load16{Dst: pairTable[op>>4], Src: Imm16(n16)}, size, 3)
	case 0x08: // LD (a16),SP
		return newInstruction(Load16{Dst: Absolute(n16), Src: SP}, size, 5)
	case 0xF9: // LD SP,HL
		return newInstruction(Load16{Dst: SP, Src: HL}, size, 2)
	case 0xF8:
		return newInstruction(LoadHLSP{Offset: int8(n8)}, size, 3)

	// LD (BC),A / (DE),A / (HL+),A / (HL-),A
	case 0x02, 0x12:
		return newInstruction(Load8{Dst: Indirect{Pair: pairTable[op>>4]}, Src: A}, size, 2)
	case 0x22:
		return newInstruction(Load8{Dst: Indirect{Pair: HL, Step: StepInc}, Src: A}, size, 2)
	case 0x32:
		return newInstruction(Load8{Dst: Indirect{Pair: HL, Step: StepDec}, Src: A}, size, 2)
	// LD A,(BC) / A,(DE) / A,(HL+) / A,(HL-)
	case 0x0A, 0x1A:
		return newInstruction(Load8{Dst: A, Src: Indirect{Pair: pairTable[op>>4]}}, size, 2)
	case 0x2A:
		return newInstruction(Load8{Dst: A, Src: Indirect{Pair: HL, Step: StepInc}}, size, 2)
	case 0x3A:
		return newInstruction(Load8{Dst: A, Src: Indirect{Pair: HL, Step: StepDec}}, size, 2)

	// LD r,d8 and LD (HL),d8
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E:
		dst, cost := operand8(op >> 3)
		return newInstruction(Load8{Dst: dst, Src: Imm8(n8)}, size, 2+cost)

	// 16-bit INC/DEC and ADD HL,rr
	case 0x03, 0x13, 0x23, 0x33:
		return newInstruction(Inc16{Dst: pairTable[op>>4]}, size, 2)
	case 0x0B, 0x1B, 0x2B, 0x3B:
		return newInstruction(Dec16{Dst: pairTable[op>>4]}, size, 2)
	case 0x09, 0x19, 0x29, 0x39:
		return newInstruction(Add16{Src: pairTable[op>>4]}, size, 2)

	// INC r / DEC r, read-modify-write on (HL)
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		dst, cost := operand8(op >> 3)
		return newInstruction(Inc8{Dst: dst}, size, 1+2*cost)
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		dst, cost := operand8(op >> 3)
		return newInstruction(Dec8{Dst: dst}, size, 1+2*cost)

	// RLCA, RRCA, RLA, RRA
	case 0x07, 0x0F, 0x17, 0x1F:
		return newInstruction(RotateA{Kind: ShiftKind(op >> 3)}, size, 1)
	case 0x27:
		return newInstruction(DecimalAdjust{}, size, 1)
	case 0x2F:
		return newInstruction(Complement{}, size, 1)
	case 0x37:
		return newInstruction(SetCarry{}, size, 1)
	case 0x3F:
		return newInstruction(ComplementCarry{}, size, 1)

	// JR e / JR cc,e
	case 0x18:
		return newInstruction(JumpRelative{Offset: int8(n8)}, size, 3)
	case 0x20, 0x28, 0x30, 0x38:
		return conditional(JumpRelativeIf{Cond: condTable[(op>>3)&3], Offset: int8(n8)}, size, 2, 3)

	// JP
	case 0xC3:
		return newInstruction(Jump{Target: Imm16(n16)}, size, 4)
	case 0xE9:
		return newInstruction(Jump{Target: HL}, size, 1)
	case 0xC2, 0xCA, 0xD2, 0xDA:
		return conditional(JumpIf{Cond: condTable[(op>>3)&3], Target: n16}, size, 3, 4)

	// CALL / RET / RST
	case 0xCD:
		return newInstruction(Call{Target: n16}, size, 6)
	case 0xC4, 0xCC, 0xD4, 0xDC:
		return conditional(CallIf{Cond: condTable[(op>>3)&3], Target: n16}, size, 3, 6)
	case 0xC9:
		return newInstruction(Return{}, size, 4)
	case 0xD9:
		return newInstruction(ReturnInterrupt{}, size, 4)
	case 0xC0, 0xC8, 0xD0, 0xD8:
		return conditional(ReturnIf{Cond: condTable[(op>>3)&3]}, size, 2, 5)
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		return newInstruction(Restart{Vector: op & 0x38}, size, 4)

	// PUSH / POP
	case 0xC5, 0xD5, 0xE5, 0xF5:
		return newInstruction(Push{Src: stackPairTable[(op>>4)&3]}, size, 4)
	case 0xC1, 0xD1, 0xE1, 0xF1:
		return newInstruction(Pop{Dst: stackPairTable[(op>>4)&3]}, size, 3)

	// ALU A,d8
	case 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE:
		return newInstruction(ALU{Kind: ALUKind((op >> 3) & 7), Src: Imm8(n8)}, size, 2)
	case 0xE8:
		return newInstruction(AddSP{Offset: int8(n8)}, size, 4)

	// LDH and absolute loads
	case 0xE0:
		return newInstruction(Load8{Dst: HighPage(n8), Src: A}, size, 3)
	case 0xF0:
		return newInstruction(Load8{Dst: A, Src: HighPage(n8)}, size, 3)
	case 0xE2:
		return newInstruction(Load8{Dst: HighPageC{}, Src: A}, size, 2)
	case 0xF2:
		return newInstruction(Load8{Dst: A, Src: HighPageC{}}, size, 2)
	case 0xEA:
		return newInstruction(Load8{Dst: Absolute(n16), Src: A}, size, 4)
	case 0xFA:
		return newInstruction(Load8{Dst: A, Src: Absolute(n16)}, size, 4)

	case 0xF3:
		return newInstruction(DisableInterrupts{}, size, 1)
	case 0xFB:
		return newInstruction(EnableInterrupts{}, size, 1)
	}
	// D3 DB DD E3 E4 EB EC ED F4 FC FD
	return unimplemented(op)
}
