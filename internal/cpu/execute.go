package cpu

// Event tells the stepping loop about state that lives outside the register
// file.
type Event uint8

const (
	EventNone Event = iota
	EventHalt
	EventStop
	EventDisableInterrupts
	// EventEnableInterrupts takes effect after the following instruction.
	EventEnableInterrupts
	// EventReturnFromInterrupt enables interrupts immediately (RETI).
	EventReturnFromInterrupt
)

// Outcome is the result of executing one instruction.
type Outcome struct {
	// Machine cycles charged, including the taken-branch cost of conditional
	// control flow.
	Cycles int
	// Taken is true when a conditional jump, call or return branched.
	Taken bool
	Event Event
}

// Execute runs in against r and m. PC is advanced past the instruction before
// the operation runs, so relative jumps and pushed return addresses see the
// address of the next instruction. Executing an Unimplemented instruction is
// refused with an *ExecError wrapping ErrUnimplemented and leaves r and m
// untouched.
func Execute(in Instruction, r *Registers, m Memory) (Outcome, error) {
	if u, bad := in.Op.(Unimplemented); bad || in.Size <= 0 {
		return Outcome{}, &ExecError{PC: r.PC, Bytes: []byte{u.Opcode}, Err: ErrUnimplemented}
	}

	out := Outcome{Cycles: in.Cycles}
	branch := func(cond Flag) bool {
		if !r.Flag(cond) {
			return false
		}
		out.Taken = true
		out.Cycles = in.TakenCycles
		return true
	}

	r.PC += uint16(in.Size)

	switch o := in.Op.(type) {
	case Nop:
	case Stop:
		out.Event = EventStop
	case Halt:
		out.Event = EventHalt
	case DisableInterrupts:
		out.Event = EventDisableInterrupts
	case EnableInterrupts:
		out.Event = EventEnableInterrupts

	case Load8:
		o.Dst.write8(r, m, o.Src.read8(r, m))
	case Load16:
		o.Dst.write16(r, m, o.Src.read16(r, m))
	case LoadHLSP:
		v, h, cy := addSigned(r.SP, o.Offset)
		r.Set16(HL, v)
		r.setZNHC(false, false, h, cy)
	case AddSP:
		v, h, cy := addSigned(r.SP, o.Offset)
		r.SP = v
		r.setZNHC(false, false, h, cy)

	case Inc8:
		old := o.Dst.read8(r, m)
		v := old + 1
		o.Dst.write8(r, m, v)
		r.setFlagTo(Zero, v == 0)
		r.ResetFlag(Negative)
		r.setFlagTo(HalfCarry, old&0x0F == 0x0F)
	case Dec8:
		old := o.Dst.read8(r, m)
		v := old - 1
		o.Dst.write8(r, m, v)
		r.setFlagTo(Zero, v == 0)
		r.SetFlag(Negative)
		r.setFlagTo(HalfCarry, old&0x0F == 0x00)
	case Inc16:
		r.IncPair(o.Dst)
	case Dec16:
		r.DecPair(o.Dst)

	case ALU:
		res, write, z, n, h, cy := alu(o.Kind, r.A, o.Src.read8(r, m), r.carryBit())
		if write {
			r.A = res
		}
		r.setZNHC(z, n, h, cy)
	case Add16:
		v, h, cy := add16(r.Get16(HL), r.Get16(o.Src))
		r.Set16(HL, v)
		r.ResetFlag(Negative)
		r.setFlagTo(HalfCarry, h)
		r.setFlagTo(Carry, cy)

	case RotateA:
		v, cy := shift(o.Kind, r.A, r.carryBit())
		r.A = v
		r.setZNHC(false, false, false, cy)
	case Rotate:
		v, cy := shift(o.Kind, o.Dst.read8(r, m), r.carryBit())
		o.Dst.write8(r, m, v)
		r.setZNHC(v == 0, false, false, cy)

	case Bit:
		r.setFlagTo(Zero, o.Src.read8(r, m)&(1<<o.Index) == 0)
		r.ResetFlag(Negative)
		r.SetFlag(HalfCarry)
	case Set:
		o.Dst.write8(r, m, o.Dst.read8(r, m)|1<<o.Index)
	case Reset:
		o.Dst.write8(r, m, o.Dst.read8(r, m)&^(1<<o.Index))

	case DecimalAdjust:
		n := r.Flag(Negative)
		v, cy := daa(r.A, n, r.Flag(HalfCarry), r.Flag(Carry))
		r.A = v
		r.setZNHC(v == 0, n, false, cy)
	case Complement:
		r.A = ^r.A
		r.SetFlag(Negative)
		r.SetFlag(HalfCarry)
	case SetCarry:
		r.ResetFlag(Negative)
		r.ResetFlag(HalfCarry)
		r.SetFlag(Carry)
	case ComplementCarry:
		r.ResetFlag(Negative)
		r.ResetFlag(HalfCarry)
		r.setFlagTo(Carry, !r.Flag(Carry))

	case Jump:
		r.PC = o.Target.read16(r, m)
	case JumpIf:
		if branch(o.Cond) {
			r.PC = o.Target
		}
	case JumpRelative:
		r.PC = relativeTarget(r.PC, o.Offset)
	case JumpRelativeIf:
		if branch(o.Cond) {
			r.PC = relativeTarget(r.PC, o.Offset)
		}
	case Call:
		push(r, m, r.PC)
		r.PC = o.Target
	case CallIf:
		if branch(o.Cond) {
			push(r, m, r.PC)
			r.PC = o.Target
		}
	case Return:
		r.PC = pop(r, m)
	case ReturnIf:
		if branch(o.Cond) {
			r.PC = pop(r, m)
		}
	case ReturnInterrupt:
		r.PC = pop(r, m)
		out.Event = EventReturnFromInterrupt
	case Restart:
		push(r, m, r.PC)
		r.PC = uint16(o.Vector)
	case Push:
		push(r, m, r.Get16(o.Src))
	case Pop:
		// Set16 masks the low nibble of F for AF.
		r.Set16(o.Dst, pop(r, m))
	}
	return out, nil
}

func relativeTarget(next uint16, offset int8) uint16 {
	return uint16(int32(next) + int32(offset))
}

func push(r *Registers, m Memory, v uint16) {
	r.SP -= 2
	m.Write16(r.SP, v)
}

func pop(r *Registers, m Memory) uint16 {
	v := m.Read16(r.SP)
	r.SP += 2
	return v
}
