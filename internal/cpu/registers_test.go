package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisters_PairRoundTrip(t *testing.T) {
	halves := map[Reg16][2]Reg8{BC: {B, C}, DE: {D, E}, HL: {H, L}}
	for pair, hl := range halves {
		var r Registers
		for x := 0; x <= 0xFFFF; x++ {
			r.Set16(pair, uint16(x))
			if got := r.Get16(pair); got != uint16(x) {
				t.Fatalf("%v round trip got %04x want %04x", pair, got, x)
			}
			if hi, lo := r.Get8(hl[0]), r.Get8(hl[1]); hi != byte(x>>8) || lo != byte(x) {
				t.Fatalf("%v=%04x halves got %02x/%02x", pair, x, hi, lo)
			}
		}
	}
}

func TestRegisters_PairIsRecomputed(t *testing.T) {
	var r Registers
	r.Set16(HL, 0x1234)
	r.L = 0x99
	assert.Equal(t, uint16(0x1299), r.Get16(HL))
	r.Set8(H, 0xAB)
	assert.Equal(t, uint16(0xAB99), r.Get16(HL))
}

func TestRegisters_AFMasksLowNibble(t *testing.T) {
	var r Registers
	r.Set16(AF, 0x12FF)
	assert.Equal(t, byte(0x12), r.A)
	assert.Equal(t, byte(0xF0), r.F())
	assert.Equal(t, uint16(0x12F0), r.Get16(AF))

	r.SetF(0x3C)
	assert.Equal(t, byte(0x30), r.F())
}

func TestRegisters_SP(t *testing.T) {
	var r Registers
	r.Set16(SP, 0xFFFE)
	assert.Equal(t, uint16(0xFFFE), r.SP)
	assert.Equal(t, uint16(0xFFFE), r.Get16(SP))
}

func TestRegisters_IncDecPairReturnOldValue(t *testing.T) {
	var r Registers
	r.Set16(HL, 0xFFFF)
	assert.Equal(t, uint16(0xFFFF), r.IncPair(HL))
	assert.Equal(t, uint16(0x0000), r.Get16(HL))

	assert.Equal(t, uint16(0x0000), r.DecPair(HL))
	assert.Equal(t, uint16(0xFFFF), r.Get16(HL))

	r.Set16(DE, 0x00FF)
	r.IncPair(DE)
	assert.Equal(t, byte(0x01), r.D)
	assert.Equal(t, byte(0x00), r.E)
}

func TestRegisters_Flags(t *testing.T) {
	bits := map[Flag]byte{Zero: 0x80, Negative: 0x40, HalfCarry: 0x20, Carry: 0x10}
	negated := map[Flag]Flag{Zero: NotZero, Negative: NotNegative, HalfCarry: NotHalfCarry, Carry: NotCarry}

	for f, bit := range bits {
		var r Registers
		require.False(t, r.Flag(f), "%v", f)
		require.True(t, r.Flag(negated[f]), "%v", negated[f])

		r.SetFlag(f)
		assert.Equal(t, bit, r.F(), "SetFlag(%v)", f)
		assert.True(t, r.Flag(f))
		assert.False(t, r.Flag(negated[f]))

		r.SetFlag(negated[f])
		assert.Equal(t, byte(0), r.F(), "SetFlag(%v)", negated[f])

		r.ResetFlag(negated[f])
		assert.Equal(t, bit, r.F(), "ResetFlag(%v)", negated[f])

		r.ResetFlag(f)
		assert.Equal(t, byte(0), r.F(), "ResetFlag(%v)", f)
	}
}

func TestRegisters_FlagsLeaveOtherBits(t *testing.T) {
	var r Registers
	r.SetF(0xF0)
	r.ResetFlag(HalfCarry)
	assert.Equal(t, byte(0xD0), r.F())
	r.SetFlag(NotCarry)
	assert.Equal(t, byte(0xC0), r.F())
}

func TestRegisters_ResetNoBoot(t *testing.T) {
	var r Registers
	r.ResetNoBoot()
	assert.Equal(t, uint16(0x01B0), r.Get16(AF))
	assert.Equal(t, uint16(0x0013), r.Get16(BC))
	assert.Equal(t, uint16(0x00D8), r.Get16(DE))
	assert.Equal(t, uint16(0x014D), r.Get16(HL))
	assert.Equal(t, uint16(0xFFFE), r.SP)
	assert.Equal(t, uint16(0x0100), r.PC)
}

func TestRegisters_String(t *testing.T) {
	var r Registers
	r.ResetNoBoot()
	assert.Equal(t, "A=01 F=B0 B=00 C=13 D=00 E=D8 H=01 L=4D SP=FFFE PC=0100", r.String())
}

func TestEnumNames(t *testing.T) {
	tests := []struct {
		v    fmt.Stringer
		want string
	}{
		{B, "B"},
		{A, "A"},
		{Reg8(7), "Reg8(7)"},
		{HL, "HL"},
		{AF, "AF"},
		{Reg16(5), "Reg16(5)"},
		{Zero, "Z"},
		{NotZero, "NZ"},
		{NotCarry, "NC"},
		{Flag(8), "Flag(8)"},
		{AddCarry, "ADC"},
		{Or, "OR"},
		{Compare, "CP"},
		{ALUKind(8), "ALUKind(8)"},
		{RotateRight, "RR"},
		{Swap, "SWAP"},
		{ShiftRightLogical, "SRL"},
		{ShiftKind(9), "ShiftKind(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.String())
	}
}
