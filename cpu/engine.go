package cpu

import (
	"errors"
	"fmt"
)

// ErrHalted is returned by Execute when the fetch step hits the
// end-of-program marker. It is not a failure; callers that want to
// distinguish a clean halt from every other error should check for it
// with errors.Is.
var ErrHalted = errors.New("end of program")

// pageOf returns the 256-word page containing address.
func pageOf(address int) int {
	return (address / PageSize) * PageSize
}

// Execute runs the fetch-decode-dispatch loop starting at pc, using
// p.ROM as instruction memory, until it hits EndOfProgramByte, an
// instruction handler returns an error, or the monitor asks it to stop.
// It calls mon.BeforeStep once per instruction boundary, never mid
// instruction.
func Execute(p *Processor, pc int, mon Monitor) error {
	if mon == nil {
		mon = NullMonitor{}
	}
	p.ProgramCounter = pc

	for {
		opcodeByte := p.ROM[p.ProgramCounter]
		if opcodeByte == EndOfProgramByte {
			return ErrHalted
		}

		info, ok := Lookup(opcodeByte)
		if !ok {
			return fmt.Errorf("%w: 0x%02X at address %d", ErrUnknownOpcode, opcodeByte, p.ProgramCounter)
		}

		cont, err := mon.BeforeStep(p, p.ProgramCounter, info)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}

		if err := step(p, info); err != nil {
			return fmt.Errorf("at address %d (%s): %w", p.ProgramCounter, info.Mnemonic, err)
		}
	}
}

// step dispatches one already-fetched instruction and advances the
// program counter, unless the instruction set it explicitly (a jump,
// call, return, or a taken conditional branch).
func step(p *Processor, info OpcodeInfo) error {
	pc := p.ProgramCounter
	page := pageOf(pc)

	switch info.Mnemonic {
	case "NOP":
		return afterFixed(p, info, p.Nop())
	case "JCN":
		addr8 := int(p.ROM[pc+1])
		condition := info.LowNibble
		if p.Jcn(condition, addr8, page) {
			return nil
		}
		return p.IncrementPC(info.Words)
	case "FIM":
		pair := int(info.LowNibble >> 1)
		data8 := p.ROM[pc+1]
		return afterFixed(p, info, p.Fim(pair, data8))
	case "SRC":
		pair := int(info.LowNibble >> 1)
		return afterFixed(p, info, p.Src(pair))
	case "FIN":
		pair := int(info.LowNibble >> 1)
		return afterFixed(p, info, p.Fin(pair, pc))
	case "JIN":
		pair := int(info.LowNibble >> 1)
		return p.Jin(pair, page)
	case "JUN":
		addr12 := int(info.LowNibble)<<8 | int(p.ROM[pc+1])
		return p.Jun(addr12)
	case "JMS":
		addr12 := int(info.LowNibble)<<8 | int(p.ROM[pc+1])
		return p.Jms(addr12, pc+info.Words)
	case "INC":
		return afterFixed(p, info, p.Inc(int(info.LowNibble)))
	case "ISZ":
		addr8 := int(p.ROM[pc+1])
		jumped, err := p.Isz(int(info.LowNibble), addr8, page)
		if err != nil {
			return err
		}
		if jumped {
			return nil
		}
		return p.IncrementPC(info.Words)
	case "ADD":
		return afterFixed(p, info, p.Add(int(info.LowNibble)))
	case "SUB":
		return afterFixed(p, info, p.Sub(int(info.LowNibble)))
	case "LD":
		return afterFixed(p, info, p.Ld(int(info.LowNibble)))
	case "XCH":
		return afterFixed(p, info, p.Xch(int(info.LowNibble)))
	case "BBL":
		return p.Bbl(int(info.LowNibble))
	case "LDM":
		return afterFixed(p, info, p.Ldm(int(info.LowNibble)))
	case "WRM":
		return afterFixed(p, info, p.Wrm())
	case "WMP":
		return afterFixed(p, info, p.Wmp())
	case "WRR":
		return afterFixed(p, info, p.Wrr())
	case "WPM":
		romPair, err := p.ReadRegisterPair(3) // registers 6/7 address program memory
		if err != nil {
			return err
		}
		return afterFixed(p, info, p.Wpm(int(romPair)))
	case "WR0":
		return afterFixed(p, info, p.Wr0())
	case "WR1":
		return afterFixed(p, info, p.Wr1())
	case "WR2":
		return afterFixed(p, info, p.Wr2())
	case "WR3":
		return afterFixed(p, info, p.Wr3())
	case "SBM":
		return afterFixed(p, info, p.Sbm())
	case "RDM":
		return afterFixed(p, info, p.Rdm())
	case "RDR":
		return afterFixed(p, info, p.Rdr())
	case "ADM":
		return afterFixed(p, info, p.Adm())
	case "RD0":
		return afterFixed(p, info, p.Rd0())
	case "RD1":
		return afterFixed(p, info, p.Rd1())
	case "RD2":
		return afterFixed(p, info, p.Rd2())
	case "RD3":
		return afterFixed(p, info, p.Rd3())
	case "CLB":
		return afterFixed(p, info, p.Clb())
	case "CLC":
		return afterFixed(p, info, p.Clc())
	case "IAC":
		return afterFixed(p, info, p.Iac())
	case "CMC":
		return afterFixed(p, info, p.Cmc())
	case "CMA":
		return afterFixed(p, info, p.Cma())
	case "RAL":
		return afterFixed(p, info, p.Ral())
	case "RAR":
		return afterFixed(p, info, p.Rar())
	case "TCC":
		return afterFixed(p, info, p.Tcc())
	case "DAC":
		return afterFixed(p, info, p.Dac())
	case "TCS":
		return afterFixed(p, info, p.Tcs())
	case "STC":
		return afterFixed(p, info, p.Stc())
	case "DAA":
		return afterFixed(p, info, p.Daa())
	case "KBP":
		return afterFixed(p, info, p.Kbp())
	case "DCL":
		return afterFixed(p, info, p.Dcl())
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMnemonic, info.Mnemonic)
	}
}

// afterFixed advances the PC by the instruction's word count once its
// handler has run without error. Only instructions that never redirect
// control flow go through this path.
func afterFixed(p *Processor, info OpcodeInfo, err error) error {
	if err != nil {
		return err
	}
	return p.IncrementPC(info.Words)
}
