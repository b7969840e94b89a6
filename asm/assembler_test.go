package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleSimpleProgram(t *testing.T) {
	src := `
		org 0
		ldm 7
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, byte(0xD7), prog.Memory[0])
	assert.Equal(t, byte(0xFF), prog.Memory[1])
}

func TestAssembleOrgRomSelectsLocationAndAddressZero(t *testing.T) {
	src := `
		org rom
		ldm 7
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, "rom", prog.Location)
	assert.Equal(t, byte(0xD7), prog.Memory[0])
	assert.Equal(t, byte(0xFF), prog.Memory[1])
}

func TestAssembleOrgRamSelectsLocation(t *testing.T) {
	src := `
		org ram
		nop
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, "ram", prog.Location)
}

func TestAssembleDefaultLocationIsRomForNumericOrg(t *testing.T) {
	src := `
		org 0
		nop
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, "rom", prog.Location)
}

func TestAssembleJCNAcceptsConditionLetters(t *testing.T) {
	src := `
		org rom
		jcn ac, loop
		loop, nop
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	// A=4, C=2 -> mask 6
	assert.Equal(t, byte(0x16), prog.Memory[0])
	assert.Equal(t, byte(0x02), prog.Memory[1])
}

func TestAssembleJCNRejectsUnknownConditionLetter(t *testing.T) {
	src := `
		org rom
		jcn x, 0
		end
	`
	_, err := Assemble(src)
	require.ErrorIs(t, err, ErrMalformedOperand)
}

func TestAssembleResolvesForwardLabel(t *testing.T) {
	src := `
		org 0
		jun target
		org 5
		target, ldm 3
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, 5, prog.Labels["target"])
	assert.Equal(t, byte(0x40), prog.Memory[0]) // jun page 0
	assert.Equal(t, byte(0x05), prog.Memory[1])
	assert.Equal(t, byte(0xD3), prog.Memory[5])
}

func TestAssembleTwoOperandFIM(t *testing.T) {
	src := `
		org 0
		fim 3, 200
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, byte(0x26), prog.Memory[0]) // pair 3 -> low nibble 0b0110
	assert.Equal(t, byte(200), prog.Memory[1])
}

func TestAssembleISZLoopBack(t *testing.T) {
	src := `
		org 0
		loop, isz 0, loop
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, 0, prog.Labels["loop"])
	assert.Equal(t, byte(0x70), prog.Memory[0])
	assert.Equal(t, byte(0x00), prog.Memory[1])
}

func TestAssembleDuplicateLabelErrors(t *testing.T) {
	src := `
		org 0
		here, nop
		here, nop
		end
	`
	_, err := Assemble(src)
	require.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestAssembleUndefinedLabelErrors(t *testing.T) {
	src := `
		org 0
		jun nowhere
		end
	`
	_, err := Assemble(src)
	require.ErrorIs(t, err, ErrUndefinedLabel)
}

func TestAssembleUnknownMnemonicErrors(t *testing.T) {
	src := `
		org 0
		frobnicate 1
		end
	`
	_, err := Assemble(src)
	require.ErrorIs(t, err, ErrUnknownMnemonic)
}

func TestAssemblePinDirective(t *testing.T) {
	src := `
		org 0
		pin 1
		nop
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	require.NotNil(t, prog.Pin10)
	assert.True(t, *prog.Pin10)
}

func TestAssembleMissingOrgErrors(t *testing.T) {
	src := `
		ldm 1
		end
	`
	_, err := Assemble(src)
	require.ErrorIs(t, err, ErrMissingOrg)
}

func TestAssembleCommentOnlyLinesIgnored(t *testing.T) {
	src := `
		/ this is a comment
		org 0
		/ another comment
		nop
		end
	`
	prog, err := Assemble(src)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), prog.Memory[0])
}
