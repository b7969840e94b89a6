// Package monitor provides cpu.Monitor implementations: a headless
// Recorder for scripted breakpoint-driven sessions and an Interactive
// bubbletea TUI for stepping through a program by hand.
package monitor

import "mcs4/cpu"

// Recorder is a headless cpu.Monitor: it tracks every program counter
// visited, optionally stops at a set of breakpoint addresses, and caps
// the number of instructions executed so a runaway program can't loop
// forever under test.
type Recorder struct {
	Breakpoints map[int]bool
	MaxSteps    int // 0 means unlimited

	Trace []Snapshot
	steps int
}

// Snapshot captures the state the monitor contract promises to expose:
// the program counter and opcode about to execute, plus enough register
// state for a test or a listing to assert against.
type Snapshot struct {
	PC          int
	Opcode      cpu.OpcodeInfo
	Accumulator byte
	Carry       byte
	Registers   [cpu.NumRegisters]byte
}

// NewRecorder returns a Recorder with no breakpoints and no step limit.
func NewRecorder() *Recorder {
	return &Recorder{Breakpoints: map[int]bool{}}
}

// BeforeStep records a snapshot of processor state, then decides whether
// to continue: it stops at a breakpoint address or once MaxSteps
// instructions have been executed. A breakpoint on the very first
// instruction this Recorder traces does not stop it.
func (r *Recorder) BeforeStep(p *cpu.Processor, pc int, opcode cpu.OpcodeInfo) (bool, error) {
	r.Trace = append(r.Trace, Snapshot{
		PC:          pc,
		Opcode:      opcode,
		Accumulator: p.Accumulator,
		Carry:       p.Carry,
		Registers:   p.Registers,
	})
	r.steps++

	if r.Breakpoints[pc] && r.steps > 1 {
		return false, nil
	}
	if r.MaxSteps > 0 && r.steps > r.MaxSteps {
		return false, nil
	}
	return true, nil
}
