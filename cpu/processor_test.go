package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessorZeroState(t *testing.T) {
	p := NewProcessor()
	assert.Equal(t, byte(0), p.Accumulator)
	assert.Equal(t, byte(0), p.Carry)
	assert.Equal(t, 2, p.StackPointer)
	assert.Equal(t, 0, p.ProgramCounter)
	assert.Equal(t, WPMLeft, p.WPMCounter)
	assert.False(t, p.Pin10)
}

func TestResetDoesNotTouchMemory(t *testing.T) {
	p := NewProcessor()
	p.ROM[10] = 0xAB
	p.RAM[3] = 0xC
	p.Accumulator = 5
	p.ProgramCounter = 42

	p.Reset()

	assert.Equal(t, byte(0xAB), p.ROM[10])
	assert.Equal(t, byte(0xC), p.RAM[3])
	assert.Equal(t, byte(0), p.Accumulator)
	assert.Equal(t, 0, p.ProgramCounter)
}

func TestStackPushPopRoundTrip(t *testing.T) {
	p := NewProcessor()
	p.WriteToStack(0x123)
	got := p.ReadFromStack()
	assert.Equal(t, uint16(0x123), got)
	assert.Equal(t, 2, p.StackPointer)
}

func TestStackNestedPushPop(t *testing.T) {
	p := NewProcessor()
	p.WriteToStack(1)
	p.WriteToStack(2)
	p.WriteToStack(3)

	assert.Equal(t, uint16(3), p.ReadFromStack())
	assert.Equal(t, uint16(2), p.ReadFromStack())
	assert.Equal(t, uint16(1), p.ReadFromStack())
}

func TestStackFourthWriteOverwritesOldest(t *testing.T) {
	p := NewProcessor()
	p.WriteToStack(1)
	p.WriteToStack(2)
	p.WriteToStack(3)
	p.WriteToStack(4) // overwrites the slot holding 1

	assert.Equal(t, uint16(4), p.ReadFromStack())
	assert.Equal(t, uint16(3), p.ReadFromStack())
	assert.Equal(t, uint16(2), p.ReadFromStack())
}

func TestRegisterPairRoundTrip(t *testing.T) {
	p := NewProcessor()
	require.NoError(t, p.InsertRegisterPair(3, 0xAB))
	v, err := p.ReadRegisterPair(3)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAB), v)
	assert.Equal(t, byte(0xA), p.Registers[6])
	assert.Equal(t, byte(0xB), p.Registers[7])
}

func TestIncrementRegisterWraps(t *testing.T) {
	p := NewProcessor()
	require.NoError(t, p.InsertRegister(0, 15))
	require.NoError(t, p.IncrementRegister(0))
	assert.Equal(t, byte(0), p.Registers[0])
}

func TestInvalidRegisterIndex(t *testing.T) {
	p := NewProcessor()
	_, err := p.ReadRegister(16)
	require.ErrorIs(t, err, ErrInvalidRegister)
}

func TestCheckOverflowSubtractsSixteenAndSetsCarry(t *testing.T) {
	p := NewProcessor()
	p.Accumulator = 17
	p.CheckOverflow()
	assert.Equal(t, byte(1), p.Accumulator)
	assert.Equal(t, byte(1), p.Carry)
}

func TestCheckOverflowClearsCarryWhenNoOverflow(t *testing.T) {
	p := NewProcessor()
	p.Accumulator = 5
	p.Carry = 1
	p.CheckOverflow()
	assert.Equal(t, byte(5), p.Accumulator)
	assert.Equal(t, byte(0), p.Carry)
}

func TestDecodeCommandRegisterRejectsZero(t *testing.T) {
	_, _, _, err := DecodeCommandRegister(0, DataRAMChar)
	require.ErrorIs(t, err, ErrInvalidCommandRegisterContent)
}

func TestDecodeCommandRegisterDataRAMChar(t *testing.T) {
	chip, register, address, err := DecodeCommandRegister(0b01_10_0011, DataRAMChar)
	require.NoError(t, err)
	assert.Equal(t, 1, chip)
	assert.Equal(t, 2, register)
	assert.Equal(t, 3, address)
}

func TestConvertToAbsoluteAddress(t *testing.T) {
	addr := ConvertToAbsoluteAddress(1, 2, 3, 4)
	assert.Equal(t, RAMBankSize+2*RAMChipSize+3*CharactersPerRegister+4, addr)
}

func TestWritePin10RejectsOutOfRange(t *testing.T) {
	p := NewProcessor()
	require.ErrorIs(t, p.WritePin10(2), ErrInvalidPin10Value)
}
