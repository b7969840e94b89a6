package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadROM(p *Processor, at int, program ...byte) {
	copy(p.ROM[at:], program)
}

func TestExecuteLDMHaltsAtEndOfProgram(t *testing.T) {
	p := NewProcessor()
	loadROM(p, 0, 0xD7, EndOfProgramByte) // ldm 7; end
	err := Execute(p, 0, nil)
	require.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, byte(7), p.Accumulator)
	assert.Equal(t, byte(0), p.Carry)
	assert.Equal(t, 1, p.ProgramCounter)
}

func TestExecuteAddWithOverflowSetsCarry(t *testing.T) {
	p := NewProcessor()
	p.Registers[0] = 9
	loadROM(p, 0,
		0xD9,                 // ldm 9
		0x80,                 // add r0 (9+9=18 -> overflow)
		EndOfProgramByte,
	)
	err := Execute(p, 0, nil)
	require.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, byte(2), p.Accumulator) // 18 - 16
	assert.Equal(t, byte(1), p.Carry)
}

func TestExecuteJUNJumps(t *testing.T) {
	p := NewProcessor()
	loadROM(p, 0, 0x40, 0x05) // jun 5
	loadROM(p, 5, 0xD3, EndOfProgramByte) // ldm 3; end
	err := Execute(p, 0, nil)
	require.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, byte(3), p.Accumulator)
}

func TestExecuteJMSAndBBLRoundTrip(t *testing.T) {
	p := NewProcessor()
	// 0: jms 4
	// 2: ldm 8          (runs after the subroutine returns)
	// 3: end
	// 4: ldm 1          (subroutine body, unused result)
	// 5: bbl 9          (returns to address 2, loads acc with 9... then overwritten by ldm 8)
	loadROM(p, 0,
		0x50, 0x04, // jms 4
		0xD8,       // ldm 8
		EndOfProgramByte,
	)
	loadROM(p, 4,
		0xD1,       // ldm 1
		0xC9,       // bbl 9
	)
	err := Execute(p, 0, nil)
	require.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, byte(8), p.Accumulator)
}

func TestExecuteISZLoops(t *testing.T) {
	p := NewProcessor()
	p.Registers[0] = 14 // two increments to reach 0 (14->15->0)
	// 0: isz r0, 0   (loops back to address 0 until register wraps to 0)
	loadROM(p, 0,
		0x70, 0x00, // isz r0,0
		EndOfProgramByte,
	)
	err := Execute(p, 0, nil)
	require.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, byte(0), p.Registers[0])
	assert.Equal(t, 2, p.ProgramCounter)
}

func TestExecuteJCNTakesBranchOnZero(t *testing.T) {
	p := NewProcessor()
	// accumulator starts at 0, so jcn with the A (ACC==0) bit jumps.
	loadROM(p, 0,
		0x14, 0x04, // jcn 4 (A: ACC==0 test), addr 4
		EndOfProgramByte,
	)
	loadROM(p, 4, 0xD5, EndOfProgramByte) // ldm 5; end
	err := Execute(p, 0, nil)
	require.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, byte(5), p.Accumulator)
}

func TestExecuteFinAtEndOfPageFetchesNextPage(t *testing.T) {
	p := NewProcessor()
	p.Registers[0], p.Registers[1] = 0x0, 0x5 // pair 0 holds 0x05
	loadROM(p, 0xFF, 0x30)                    // fin p0, at the last address of page 0
	p.ROM[0x105] = 0x27                       // page 1's byte at offset 0x05
	loadROM(p, 0x100, EndOfProgramByte)

	err := Execute(p, 0xFF, nil)
	require.ErrorIs(t, err, ErrHalted)
	assert.Equal(t, byte(0x2), p.Registers[0])
	assert.Equal(t, byte(0x7), p.Registers[1])
}

func TestExecuteUnknownOpcodeErrors(t *testing.T) {
	p := NewProcessor()
	loadROM(p, 0, 0xFE) // undefined opcode
	err := Execute(p, 0, nil)
	require.ErrorIs(t, err, ErrUnknownOpcode)
}

type stepCountingMonitor struct {
	steps int
	stop  int
}

func (m *stepCountingMonitor) BeforeStep(*Processor, int, OpcodeInfo) (bool, error) {
	m.steps++
	return m.steps <= m.stop, nil
}

func TestExecuteMonitorCanHaltEarly(t *testing.T) {
	p := NewProcessor()
	loadROM(p, 0, 0xD1, 0xD2, 0xD3, EndOfProgramByte)
	mon := &stepCountingMonitor{stop: 1}
	err := Execute(p, 0, mon)
	require.NoError(t, err)
	assert.Equal(t, byte(1), p.Accumulator)
}
