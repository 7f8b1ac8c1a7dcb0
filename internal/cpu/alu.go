package cpu

func add8(a, b, carryIn byte) (res byte, z, n, h, cy bool) {
	r := uint16(a) + uint16(b) + uint16(carryIn)
	res = byte(r)
	z = res == 0
	n = false
	h = ((a & 0x0F) + (b & 0x0F) + carryIn) > 0x0F
	cy = r > 0xFF
	return
}

func sub8(a, b, carryIn byte) (res byte, z, n, h, cy bool) {
	r := int16(a) - int16(b) - int16(carryIn)
	res = byte(r)
	z = res == 0
	n = true
	h = (a & 0x0F) < ((b & 0x0F) + carryIn)
	cy = r < 0
	return
}

func and8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a & b
	return res, res == 0, false, true, false
}

func xor8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a ^ b
	return res, res == 0, false, false, false
}

func or8(a, b byte) (res byte, z, n, h, cy bool) {
	res = a | b
	return res, res == 0, false, false, false
}

// alu applies k to a and b. write is false for Compare, which only sets flags.
func alu(k ALUKind, a, b, carryIn byte) (res byte, write, z, n, h, cy bool) {
	write = true
	switch k {
	case Add:
		res, z, n, h, cy = add8(a, b, 0)
	case AddCarry:
		res, z, n, h, cy = add8(a, b, carryIn)
	case Sub:
		res, z, n, h, cy = sub8(a, b, 0)
	case SubCarry:
		res, z, n, h, cy = sub8(a, b, carryIn)
	case And:
		res, z, n, h, cy = and8(a, b)
	case Xor:
		res, z, n, h, cy = xor8(a, b)
	case Or:
		res, z, n, h, cy = or8(a, b)
	default:
		res, z, n, h, cy = sub8(a, b, 0)
		write = false
	}
	return
}

// shift applies a rotate/shift kind to v and returns the result and the bit
// shifted out into carry. carryIn feeds RL and RR only.
func shift(k ShiftKind, v, carryIn byte) (res byte, carry bool) {
	switch k {
	case RotateLeftCarry:
		out := v >> 7
		return v<<1 | out, out == 1
	case RotateRightCarry:
		out := v & 1
		return v>>1 | out<<7, out == 1
	case RotateLeft:
		return v<<1 | carryIn, v>>7 == 1
	case RotateRight:
		return v>>1 | carryIn<<7, v&1 == 1
	case ShiftLeftArithmetic:
		return v << 1, v>>7 == 1
	case ShiftRightArithmetic:
		return v>>1 | v&0x80, v&1 == 1
	case Swap:
		return v<<4 | v>>4, false
	default:
		return v >> 1, v&1 == 1
	}
}

// add16 is ADD HL,rr: half carry from bit 11, carry from bit 15.
func add16(a, b uint16) (res uint16, h, cy bool) {
	r := uint32(a) + uint32(b)
	h = ((a & 0x0FFF) + (b & 0x0FFF)) > 0x0FFF
	return uint16(r), h, r > 0xFFFF
}

// addSigned is SP+e as used by ADD SP,e and LD HL,SP+e. The flags come from
// the unsigned add of the low byte of SP and the raw offset byte.
func addSigned(sp uint16, e int8) (res uint16, h, cy bool) {
	off := byte(e)
	low := byte(sp)
	_, _, _, h, cy = add8(low, off, 0)
	return uint16(int32(sp) + int32(e)), h, cy
}

// daa adjusts a to packed BCD after an add or subtract.
func daa(a byte, n, h, cy bool) (res byte, carry bool) {
	carry = cy
	if !n {
		if cy || a > 0x99 {
			a += 0x60
			carry = true
		}
		if h || (a&0x0F) > 0x09 {
			a += 0x06
		}
	} else {
		if cy {
			a -= 0x60
		}
		if h {
			a -= 0x06
		}
	}
	return a, carry
}
