package cpu

// Subroutine and control-flow group: unconditional and conditional
// jumps, subroutine call, and increment-skip-if-zero.

// jcnConditionMet evaluates a JCN condition nibble, packed (I,A,C,T) from
// bit 3 down to bit 0: bit 2 (A) selects ACC==0, bit 1 (C) selects carry
// set, bit 0 (T) selects pin 10 low, and the OR of whichever of those are
// selected is the result, inverted if bit 3 (I) is set.
func (p *Processor) jcnConditionMet(condition byte) bool {
	met := false
	if condition&0x4 != 0 && p.Accumulator == 0 {
		met = true
	}
	if condition&0x2 != 0 && p.Carry == 1 {
		met = true
	}
	if condition&0x1 != 0 && !p.Pin10 {
		met = true
	}
	if condition&0x8 != 0 {
		met = !met
	}
	return met
}

// Jcn jumps to (page | addr8), within the page containing the JCN
// instruction, if the condition nibble is satisfied. It returns whether
// the jump was taken, so the engine knows whether to apply the normal
// fetch-advance instead.
func (p *Processor) Jcn(condition byte, addr8 int, page int) (jumped bool) {
	if !p.jcnConditionMet(condition) {
		return false
	}
	p.ProgramCounter = page | addr8
	return true
}

// Jun jumps unconditionally to a 12-bit absolute address.
func (p *Processor) Jun(addr12 int) error {
	p.ProgramCounter = addr12
	return nil
}

// Jms pushes the return address (the instruction after the JMS) onto
// the address stack, then jumps to a 12-bit absolute address.
func (p *Processor) Jms(addr12 int, returnAddr int) error {
	p.WriteToStack(uint16(returnAddr))
	p.ProgramCounter = addr12
	return nil
}

// Isz increments a register, then jumps to (page | addr8) if the
// result is nonzero. It returns whether the jump was taken.
func (p *Processor) Isz(register int, addr8 int, page int) (jumped bool, err error) {
	if err := p.IncrementRegister(register); err != nil {
		return false, err
	}
	v, err := p.ReadRegister(register)
	if err != nil {
		return false, err
	}
	if v == 0 {
		return false, nil
	}
	p.ProgramCounter = page | addr8
	return true, nil
}
