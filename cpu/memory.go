package cpu

import "fmt"

// Memory-access helpers layered on top of ConvertToAbsoluteAddress and
// DecodeCommandRegister: reading/writing the addressed data-RAM
// character, its status characters, and the RAM/ROM output ports.

// SelectBank changes the current data-RAM bank (DCL's effect).
func (p *Processor) SelectBank(bank int) error {
	if bank < 0 || bank >= NumRAMBanks {
		return fmt.Errorf("%w: %d", ErrInvalidRAMBank, bank)
	}
	p.CurrentBank = bank
	return nil
}

// addressedChar resolves the command register (shape DataRAMChar) to an
// absolute index into Processor.RAM.
func (p *Processor) addressedChar() (int, error) {
	chip, register, address, err := DecodeCommandRegister(p.CommandRegister, DataRAMChar)
	if err != nil {
		return 0, err
	}
	return ConvertToAbsoluteAddress(p.CurrentBank, chip, register, address), nil
}

// ReadRAMCharacter returns the data-RAM character the current command
// register addresses.
func (p *Processor) ReadRAMCharacter() (byte, error) {
	idx, err := p.addressedChar()
	if err != nil {
		return 0, err
	}
	return p.RAM[idx], nil
}

// WriteRAMCharacter writes the data-RAM character the current command
// register addresses.
func (p *Processor) WriteRAMCharacter(value byte) error {
	idx, err := p.addressedChar()
	if err != nil {
		return err
	}
	p.RAM[idx] = value & 0xF
	return nil
}

// addressedStatusChar resolves the command register (shape
// DataRAMStatusChar) plus an explicit status-character index (0..3, the
// low 2 bits of the instruction selecting which of the 4 status
// characters) to its slot in StatusCharacters.
func (p *Processor) addressedStatusChar(statusIndex int) (bank, chip, register int, err error) {
	chip, register, _, err = DecodeCommandRegister(p.CommandRegister, DataRAMStatusChar)
	if err != nil {
		return 0, 0, 0, err
	}
	if statusIndex < 0 || statusIndex >= StatusCharacters {
		return 0, 0, 0, fmt.Errorf("%w: status index %d", ErrInvalidCommandRegisterContent, statusIndex)
	}
	return p.CurrentBank, chip, register, nil
}

// ReadRAMStatus returns one of the 4 status characters of the currently
// addressed register.
func (p *Processor) ReadRAMStatus(statusIndex int) (byte, error) {
	bank, chip, register, err := p.addressedStatusChar(statusIndex)
	if err != nil {
		return 0, err
	}
	return p.StatusCharacters[bank][chip][register][statusIndex], nil
}

// WriteRAMStatus writes one of the 4 status characters of the currently
// addressed register.
func (p *Processor) WriteRAMStatus(statusIndex int, value byte) error {
	bank, chip, register, err := p.addressedStatusChar(statusIndex)
	if err != nil {
		return err
	}
	p.StatusCharacters[bank][chip][register][statusIndex] = value & 0xF
	return nil
}

// WriteRAMPort writes the output port of the RAM chip the command
// register addresses (shape RAMPort), in the current bank.
func (p *Processor) WriteRAMPort(value byte) error {
	chip, _, _, err := DecodeCommandRegister(p.CommandRegister, RAMPort)
	if err != nil {
		return err
	}
	p.RAMPorts[chip][p.CurrentBank] = value & 0xF
	return nil
}

// ReadRAMPort reads the output port of the RAM chip the command register
// addresses (shape RAMPort), in the current bank.
func (p *Processor) ReadRAMPort() (byte, error) {
	chip, _, _, err := DecodeCommandRegister(p.CommandRegister, RAMPort)
	if err != nil {
		return 0, err
	}
	return p.RAMPorts[chip][p.CurrentBank], nil
}

// WriteROMPort writes the output port the command register addresses
// (shape ROMPort).
func (p *Processor) WriteROMPort(value byte) error {
	port, _, _, err := DecodeCommandRegister(p.CommandRegister, ROMPort)
	if err != nil {
		return err
	}
	p.ROMPorts[port] = value & 0xF
	return nil
}

// PRAM exposes the same underlying ROM array under the program-RAM name
// the monitor's command surface uses. The 4004 writes WPM output
// directly into ROM, so there is no second physical array to keep in
// sync; this is a read-only view for introspection.
func (p *Processor) PRAM() [MemorySize]byte {
	return p.ROM
}
