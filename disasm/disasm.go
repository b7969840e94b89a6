// Package disasm linearly disassembles a 4004 memory image back into
// mnemonic form, reusing cpu.OpcodeTable so its notion of instruction
// shape never drifts from the engine that executes the same bytes.
package disasm

import (
	"errors"
	"fmt"

	"mcs4/cpu"
)

// ErrOperandTruncated is returned when a two-word instruction's second
// byte falls outside the disassembled range.
var ErrOperandTruncated = errors.New("two-word instruction truncated at end of range")

// Line is one disassembled instruction: its address, the raw bytes it
// occupies, its mnemonic, and its operand(s) resolved to plain numbers
// (never label names — disasm has no label table to consult).
type Line struct {
	Address  int
	Bytes    []byte
	Mnemonic string
	Operands []int
}

// Disassemble walks mem[start:start+limit] and decodes every
// instruction it finds, stopping early at cpu.EndOfProgramByte or an
// undefined opcode.
func Disassemble(mem []byte, start, limit int) ([]Line, error) {
	end := start + limit
	if end > len(mem) {
		end = len(mem)
	}

	var lines []Line
	addr := start
	for addr < end {
		opcode := mem[addr]
		if opcode == cpu.EndOfProgramByte {
			break
		}
		info, ok := cpu.Lookup(opcode)
		if !ok {
			break
		}

		if addr+info.Words > end {
			return lines, fmt.Errorf("%w: at address %d", ErrOperandTruncated, addr)
		}

		line := Line{
			Address:  addr,
			Mnemonic: info.Mnemonic,
			Bytes:    append([]byte(nil), mem[addr:addr+info.Words]...),
		}
		line.Operands = operandsOf(info, mem, addr)
		lines = append(lines, line)

		addr += info.Words
	}
	return lines, nil
}

// operandsOf resolves an instruction's operand bytes into the plain
// integers a disassembly listing shows: register/pair/data numbers, or
// addresses — never symbolic, since disasm works purely off bytes.
func operandsOf(info cpu.OpcodeInfo, mem []byte, addr int) []int {
	switch info.Operand {
	case cpu.OperandNone:
		return nil
	case cpu.OperandRegister, cpu.OperandData4:
		return []int{int(info.LowNibble)}
	case cpu.OperandRegisterPair:
		return []int{int(info.LowNibble >> 1)}
	case cpu.OperandRegisterPairData8:
		return []int{int(info.LowNibble >> 1), int(mem[addr+1])}
	case cpu.OperandConditionAddr8, cpu.OperandRegisterAddr8:
		return []int{int(info.LowNibble), int(mem[addr+1])}
	case cpu.OperandAddr12:
		return []int{int(info.LowNibble)<<8 | int(mem[addr+1])}
	default:
		return nil
	}
}

// Format renders a Line the way a listing would: "0003  D7        ldm 7".
func (l Line) Format() string {
	hex := ""
	for _, b := range l.Bytes {
		hex += fmt.Sprintf("%02X", b)
	}
	operandText := ""
	for i, op := range l.Operands {
		if i > 0 {
			operandText += ","
		}
		operandText += fmt.Sprintf(" %d", op)
	}
	return fmt.Sprintf("%04d  %-8s  %s%s", l.Address, hex, lower(l.Mnemonic), operandText)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
