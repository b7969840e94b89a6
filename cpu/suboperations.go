package cpu

import (
	"fmt"

	"mcs4/bits"
)

// Suboperations are the small, reusable pieces of processor state
// manipulation that instruction handlers compose: carry flag access, the
// address stack, register/register-pair access, program counter
// arithmetic, command register decoding, and the few numeric corrections
// (overflow, ones-complement, wrap) the accumulator group needs.

// SetCarry forces the carry flag to 1.
func (p *Processor) SetCarry() { p.Carry = 1 }

// ResetCarry forces the carry flag to 0.
func (p *Processor) ResetCarry() { p.Carry = 0 }

// ReadCarry returns the carry flag.
func (p *Processor) ReadCarry() byte { return p.Carry }

// ReadComplementCarry returns the one's complement of the carry flag (a
// single bit, so complement is just 1-Carry).
func (p *Processor) ReadComplementCarry() byte {
	if p.Carry == 0 {
		return 1
	}
	return 0
}

// WriteToStack pushes a 12-bit return address onto the 3-level address
// stack. The pointer is decremented after the write and wraps from -1
// back to 2, so a 4th consecutive push (with no intervening pop)
// overwrites the oldest entry — the documented hardware behavior.
func (p *Processor) WriteToStack(value uint16) {
	p.Stack[p.StackPointer] = value
	p.StackPointer--
	if p.StackPointer == -1 {
		p.StackPointer = 2
	}
}

// ReadFromStack pops the most recently pushed return address. The
// pointer is incremented before the read, undoing WriteToStack's
// post-write decrement so that a push immediately followed by a pop
// retrieves exactly what was pushed.
func (p *Processor) ReadFromStack() uint16 {
	p.StackPointer++
	if p.StackPointer == 3 {
		p.StackPointer = 0
	}
	return p.Stack[p.StackPointer]
}

// InsertRegister sets a single 4-bit index register.
func (p *Processor) InsertRegister(register int, value byte) error {
	if register < 0 || register >= NumRegisters {
		return fmt.Errorf("%w: %d", ErrInvalidRegister, register)
	}
	if value > MaxNibble {
		return fmt.Errorf("%w: %d", ErrValueTooLargeForRegister, value)
	}
	p.Registers[register] = value
	return nil
}

// ReadRegister reads a single 4-bit index register.
func (p *Processor) ReadRegister(register int) (byte, error) {
	if register < 0 || register >= NumRegisters {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRegister, register)
	}
	return p.Registers[register], nil
}

// InsertRegisterPair sets two adjacent registers from a single byte: the
// high nibble goes to the even register, the low nibble to the odd one.
func (p *Processor) InsertRegisterPair(pair int, value byte) error {
	if pair < 0 || pair >= NumRegisterPairs {
		return fmt.Errorf("%w: %d", ErrInvalidRegisterPair, pair)
	}
	if int(value) > 0xFF {
		return fmt.Errorf("%w: %d", ErrValueTooLargeForRegisterPair, value)
	}
	p.Registers[pair*2] = bits.HighNibble(value)
	p.Registers[pair*2+1] = bits.LowNibble(value)
	return nil
}

// ReadRegisterPair reads two adjacent registers as a single byte: the
// even register's nibble becomes the high nibble.
func (p *Processor) ReadRegisterPair(pair int) (byte, error) {
	if pair < 0 || pair >= NumRegisterPairs {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRegisterPair, pair)
	}
	return bits.JoinNibbles(p.Registers[pair*2], p.Registers[pair*2+1]), nil
}

// IncrementRegister adds one to a register, wrapping 15 back to 0.
func (p *Processor) IncrementRegister(register int) error {
	v, err := p.ReadRegister(register)
	if err != nil {
		return err
	}
	v++
	if v > MaxNibble {
		v = 0
	}
	return p.InsertRegister(register, v)
}

// IncrementPC advances the program counter by the given number of words,
// failing if that would run past the end of memory.
func (p *Processor) IncrementPC(words int) error {
	if p.ProgramCounter+words > MemorySize {
		return fmt.Errorf("%w: pc %d + %d words", ErrProgramCounterOutOfBounds, p.ProgramCounter, words)
	}
	p.ProgramCounter += words
	return nil
}

// IncPCByPage returns the address at the end of the page containing pc,
// without mutating the program counter — FIN uses this to find the start
// of the next page when the data sheet's page-boundary exception applies.
func IncPCByPage(pc int) int {
	return pageOf(pc) + PageSize - 1
}

// IsEndOfPage reports whether address plus the word count of the next
// instruction would cross out of the current 256-word page.
func IsEndOfPage(address, words int) bool {
	return (address/PageSize) != ((address + words) / PageSize)
}

// DecodeCommandRegister slices an 8-bit command register (set by a prior
// SRC) according to the shape the consuming instruction expects.
// DataRAMChar and DataRAMStatusChar yield chip/register/address;
// RAMPort and ROMPort yield only a chip/port number.
func DecodeCommandRegister(cr byte, shape CRShape) (chip, register, address int, err error) {
	if cr == 0 {
		return 0, 0, 0, fmt.Errorf("%w: command register is 0", ErrInvalidCommandRegisterContent)
	}
	binary, convErr := bits.DecimalToBinary(8, int(cr))
	if convErr != nil {
		return 0, 0, 0, convErr
	}
	switch shape {
	case DataRAMChar:
		chipBits, _ := bits.BinaryToDecimal(binary[0:2])
		regBits, _ := bits.BinaryToDecimal(binary[2:4])
		addrBits, _ := bits.BinaryToDecimal(binary[4:8])
		return chipBits, regBits, addrBits, nil
	case DataRAMStatusChar:
		chipBits, _ := bits.BinaryToDecimal(binary[0:2])
		regBits, _ := bits.BinaryToDecimal(binary[2:4])
		return chipBits, regBits, 0, nil
	case RAMPort:
		chipBits, _ := bits.BinaryToDecimal(binary[0:2])
		return chipBits, 0, 0, nil
	case ROMPort:
		chipBits, _ := bits.BinaryToDecimal(binary[0:4])
		return chipBits, 0, 0, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrInvalidCommandRegisterFormat, shape)
	}
}

// ConvertToAbsoluteAddress folds a data-RAM bank/chip/register/address
// quadruple into a single index into Processor.RAM.
func ConvertToAbsoluteAddress(bank, chip, register, address int) int {
	return bank*RAMBankSize + chip*RAMChipSize + register*CharactersPerRegister + address
}

// WritePin10 sets the TEST pin. Only 0 and 1 are meaningful values.
func (p *Processor) WritePin10(value int) error {
	if value != 0 && value != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPin10Value, value)
	}
	p.Pin10 = value == 1
	return nil
}

// CheckOverflow applies the MCS-4 data sheet's accumulator-overflow rule:
// if the accumulator exceeds 15, subtract 16 and set carry; otherwise
// leave it alone and clear carry.
func (p *Processor) CheckOverflow() {
	if p.Accumulator > MaxNibble {
		p.Accumulator -= 16
		p.SetCarry()
		return
	}
	p.ResetCarry()
}

// SetAccumulator assigns the accumulator, rejecting any value a 4-bit
// register cannot hold.
func (p *Processor) SetAccumulator(value byte) error {
	if value > MaxNibble {
		return fmt.Errorf("%w: %d", ErrValueTooLargeForAccumulator, value)
	}
	p.Accumulator = value
	return nil
}

// FlipWPMCounter toggles which half of the ROM word the next WPM targets.
func (p *Processor) FlipWPMCounter() {
	if p.WPMCounter == WPMLeft {
		p.WPMCounter = WPMRight
	} else {
		p.WPMCounter = WPMLeft
	}
}
