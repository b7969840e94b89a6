package cpu

// Index register and ROM-fetch group: INC, the register-pair pointer
// instructions (FIM, SRC), and the two ROM-indirect instructions that
// read through a register pair (FIN, JIN).

// Inc increments a register by one, wrapping 15 back to 0.
func (p *Processor) Inc(register int) error {
	return p.IncrementRegister(register)
}

// Fim loads a register pair with an immediate 8-bit value (high nibble
// to the even register, low nibble to the odd one).
func (p *Processor) Fim(pair int, data8 byte) error {
	return p.InsertRegisterPair(pair, data8)
}

// Src latches a register pair's value into the command register, ready
// for the RAM/ROM instruction that follows.
func (p *Processor) Src(pair int) error {
	v, err := p.ReadRegisterPair(pair)
	if err != nil {
		return err
	}
	p.CommandRegister = v
	return nil
}

// Fin fetches the ROM byte at (page | register-pair value) and loads it
// into the same register pair. The page is normally the one containing
// the FIN instruction itself, but the data sheet's exception (b) applies:
// when FIN sits at the last address of a page, the fetch uses the next
// page instead.
func (p *Processor) Fin(pair int, pc int) error {
	v, err := p.ReadRegisterPair(pair)
	if err != nil {
		return err
	}
	page := pageOf(pc)
	if IsEndOfPage(pc, 1) {
		page = IncPCByPage(pc) + 1
	}
	addr := page | int(v)
	return p.InsertRegisterPair(pair, p.ROM[addr])
}

// Jin jumps to the address formed by (page | register-pair value),
// within the page the JIN instruction occupies.
func (p *Processor) Jin(pair int, page int) error {
	v, err := p.ReadRegisterPair(pair)
	if err != nil {
		return err
	}
	p.ProgramCounter = page | int(v)
	return nil
}
