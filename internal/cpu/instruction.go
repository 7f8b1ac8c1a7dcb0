package cpu

// Instruction is one decoded instruction.
type Instruction struct {
	Op Op
	// Size is the encoded length in bytes, opcode and prefix included. It is
	// 0 only for Unimplemented.
	Size int
	// Cycles is the cost in machine cycles, including the extra bus accesses
	// of (HL) operands. For conditional control flow it is the cost when the
	// condition fails.
	Cycles int
	// TakenCycles is the cost of a conditional jump, call or return whose
	// condition holds. Zero for every other instruction.
	TakenCycles int
}

// ClocksPerMachineCycle is the number of clock cycles in one machine cycle.
const ClocksPerMachineCycle = 4

// ClockCycles returns Cycles in clock cycles.
func (in Instruction) ClockCycles() int { return in.Cycles * ClocksPerMachineCycle }

// Implemented reports whether the instruction can be executed.
func (in Instruction) Implemented() bool {
	_, bad := in.Op.(Unimplemented)
	return !bad && in.Size > 0
}

func (in Instruction) String() string { return in.Op.String() }

func newInstruction(op Op, size, cycles int) Instruction {
	return Instruction{Op: op, Size: size, Cycles: cycles}
}

func conditional(op Op, size, cycles, taken int) Instruction {
	return Instruction{Op: op, Size: size, Cycles: cycles, TakenCycles: taken}
}

func unimplemented(opcode byte) Instruction {
	return Instruction{Op: Unimplemented{Opcode: opcode}}
}
