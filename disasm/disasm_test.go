package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcs4/cpu"
)

func TestDisassembleSimpleProgram(t *testing.T) {
	mem := make([]byte, cpu.MemorySize)
	mem[0] = 0xD7 // ldm 7
	mem[1] = 0x40 // jun 5
	mem[2] = 0x05
	mem[3] = cpu.EndOfProgramByte

	lines, err := Disassemble(mem, 0, 4)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 0, lines[0].Address)
	assert.Equal(t, "LDM", lines[0].Mnemonic)
	assert.Equal(t, []int{7}, lines[0].Operands)

	assert.Equal(t, 1, lines[1].Address)
	assert.Equal(t, "JUN", lines[1].Mnemonic)
	assert.Equal(t, []int{5}, lines[1].Operands)
}

func TestDisassembleStopsAtUndefinedOpcode(t *testing.T) {
	mem := make([]byte, cpu.MemorySize)
	mem[0] = 0x00 // nop
	mem[1] = 0xFE // undefined

	lines, err := Disassemble(mem, 0, 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "NOP", lines[0].Mnemonic)
}

func TestDisassembleTwoWordFIM(t *testing.T) {
	mem := make([]byte, cpu.MemorySize)
	mem[0] = 0x26 // fim pair 3
	mem[1] = 200

	lines, err := Disassemble(mem, 0, 2)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, []int{3, 200}, lines[0].Operands)
}

func TestDisassembleTruncatedInstructionErrors(t *testing.T) {
	mem := make([]byte, cpu.MemorySize)
	mem[0] = 0x40 // jun, needs a second byte

	_, err := Disassemble(mem, 0, 1)
	require.ErrorIs(t, err, ErrOperandTruncated)
}

func TestFormatRendersListingLine(t *testing.T) {
	line := Line{Address: 3, Bytes: []byte{0xD7}, Mnemonic: "LDM", Operands: []int{7}}
	assert.Equal(t, "0003  D7        ldm 7", line.Format())
}
