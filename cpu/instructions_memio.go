package cpu

// Memory and I/O group: the RAM-bank selector (DCL), the RAM character
// read/write/arithmetic instructions, the RAM and ROM output ports, and
// WPM (the only instruction that writes program memory at run time).

// Dcl selects the data-RAM bank the accumulator's low 3 bits name.
func (p *Processor) Dcl() error {
	return p.SelectBank(int(p.Accumulator & 0x7))
}

// Wrm writes the accumulator into the addressed data-RAM character.
func (p *Processor) Wrm() error {
	return p.WriteRAMCharacter(p.Accumulator)
}

// Wmp writes the accumulator to the addressed RAM chip's output port.
func (p *Processor) Wmp() error {
	return p.WriteRAMPort(p.Accumulator)
}

// Wrr writes the accumulator to the addressed ROM output port.
func (p *Processor) Wrr() error {
	return p.WriteROMPort(p.Accumulator)
}

// Wpm writes the accumulator into one half of the ROM word the current
// register pair 6/7 (by convention) addresses, alternating halves on
// successive calls via the WPM flip-flop.
func (p *Processor) Wpm(romAddr int) error {
	if p.WPMCounter == WPMLeft {
		p.ROM[romAddr] = (p.ROM[romAddr] & 0x0F) | (p.Accumulator << 4)
	} else {
		p.ROM[romAddr] = (p.ROM[romAddr] & 0xF0) | p.Accumulator
	}
	p.FlipWPMCounter()
	return nil
}

// Wr0 writes the accumulator into status character 0 of the addressed
// register.
func (p *Processor) Wr0() error { return p.WriteRAMStatus(0, p.Accumulator) }

// Wr1 writes the accumulator into status character 1.
func (p *Processor) Wr1() error { return p.WriteRAMStatus(1, p.Accumulator) }

// Wr2 writes the accumulator into status character 2.
func (p *Processor) Wr2() error { return p.WriteRAMStatus(2, p.Accumulator) }

// Wr3 writes the accumulator into status character 3.
func (p *Processor) Wr3() error { return p.WriteRAMStatus(3, p.Accumulator) }

// Sbm subtracts the addressed data-RAM character (plus borrow-in) from
// the accumulator, applying overflow correction.
func (p *Processor) Sbm() error {
	v, err := p.ReadRAMCharacter()
	if err != nil {
		return err
	}
	complement := (^v) & 0xF
	p.Accumulator += complement + p.ReadComplementCarry()
	p.CheckOverflow()
	return nil
}

// Rdm loads the accumulator from the addressed data-RAM character.
func (p *Processor) Rdm() error {
	v, err := p.ReadRAMCharacter()
	if err != nil {
		return err
	}
	p.Accumulator = v
	return nil
}

// Rdr loads the accumulator from the addressed ROM input port.
func (p *Processor) Rdr() error {
	port, _, _, err := DecodeCommandRegister(p.CommandRegister, ROMPort)
	if err != nil {
		return err
	}
	p.Accumulator = p.ROMPorts[port]
	return nil
}

// Adm adds the addressed data-RAM character (plus carry-in) to the
// accumulator, applying overflow correction.
func (p *Processor) Adm() error {
	v, err := p.ReadRAMCharacter()
	if err != nil {
		return err
	}
	p.Accumulator += v + p.Carry
	p.CheckOverflow()
	return nil
}

// Rd0 loads the accumulator from status character 0.
func (p *Processor) Rd0() error { return p.readStatus(0) }

// Rd1 loads the accumulator from status character 1.
func (p *Processor) Rd1() error { return p.readStatus(1) }

// Rd2 loads the accumulator from status character 2.
func (p *Processor) Rd2() error { return p.readStatus(2) }

// Rd3 loads the accumulator from status character 3.
func (p *Processor) Rd3() error { return p.readStatus(3) }

func (p *Processor) readStatus(index int) error {
	v, err := p.ReadRAMStatus(index)
	if err != nil {
		return err
	}
	p.Accumulator = v
	return nil
}
