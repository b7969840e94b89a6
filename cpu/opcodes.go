package cpu

// OperandKind names how an instruction's operand(s) are packed into its
// opcode byte (and, for two-word instructions, the byte that follows).
type OperandKind int

const (
	OperandNone              OperandKind = iota
	OperandRegister                      // r: low nibble of the opcode byte
	OperandRegisterPair                  // p: bits 1..3 of the opcode byte
	OperandData4                         // d: low nibble of the opcode byte (LDM, BBL)
	OperandRegisterPairData8             // FIM: pair from opcode byte, 8-bit data from 2nd byte
	OperandConditionAddr8                // JCN: condition mask low nibble, 8-bit address 2nd byte
	OperandRegisterAddr8                 // ISZ: register low nibble, 8-bit address 2nd byte
	OperandAddr12                        // JUN/JMS: low nibble of opcode | 2nd byte
)

// OpcodeInfo describes one opcode's place in the table: its mnemonic, how
// many machine words and microseconds it costs, the shape of its operand,
// and the high/low nibble split of the opcode byte itself.
type OpcodeInfo struct {
	Opcode     byte
	Mnemonic   string
	Defined    bool
	Words      int
	Micros     float64
	Operand    OperandKind
	HighNibble byte
	LowNibble  byte
}

// OpcodeTable has exactly 256 entries, one per possible opcode byte.
// Entries the 4004 ISA leaves undefined have Defined == false.
var OpcodeTable [256]OpcodeInfo

func init() {
	for i := range OpcodeTable {
		OpcodeTable[i] = OpcodeInfo{
			Opcode:     byte(i),
			HighNibble: byte(i >> 4),
			LowNibble:  byte(i & 0xF),
		}
	}

	define := func(opcode byte, mnemonic string, words int, micros float64, operand OperandKind) {
		OpcodeTable[opcode].Mnemonic = mnemonic
		OpcodeTable[opcode].Defined = true
		OpcodeTable[opcode].Words = words
		OpcodeTable[opcode].Micros = micros
		OpcodeTable[opcode].Operand = operand
	}

	// One-cycle (10.8us), one-word instruction with no operand.
	define(0x00, "NOP", 1, 10.8, OperandNone)

	// 0x1_: JCN condition,addr8 — two words.
	for lo := 0; lo <= 0xF; lo++ {
		define(byte(0x10|lo), "JCN", 2, 21.6, OperandConditionAddr8)
	}

	// 0x2_: even low nibble is FIM pair,data8 (two words); odd is SRC
	// pair (one word, but still addresses a chip so costs two cycles).
	for pair := 0; pair < NumRegisterPairs; pair++ {
		define(byte(0x20|(pair<<1)), "FIM", 2, 21.6, OperandRegisterPairData8)
		define(byte(0x20|(pair<<1)|1), "SRC", 1, 21.6, OperandRegisterPair)
	}

	// 0x3_: even low nibble is FIN pair (one word, two cycles); odd is
	// JIN pair (one word, two cycles).
	for pair := 0; pair < NumRegisterPairs; pair++ {
		define(byte(0x30|(pair<<1)), "FIN", 1, 21.6, OperandRegisterPair)
		define(byte(0x30|(pair<<1)|1), "JIN", 1, 21.6, OperandRegisterPair)
	}

	// 0x4_: JUN addr12 — two words.
	for lo := 0; lo <= 0xF; lo++ {
		define(byte(0x40|lo), "JUN", 2, 21.6, OperandAddr12)
	}

	// 0x5_: JMS addr12 — two words.
	for lo := 0; lo <= 0xF; lo++ {
		define(byte(0x50|lo), "JMS", 2, 21.6, OperandAddr12)
	}

	// 0x6_: INC register — one word.
	for r := 0; r < NumRegisters; r++ {
		define(byte(0x60|r), "INC", 1, 10.8, OperandRegister)
	}

	// 0x7_: ISZ register,addr8 — two words.
	for r := 0; r < NumRegisters; r++ {
		define(byte(0x70|r), "ISZ", 2, 21.6, OperandRegisterAddr8)
	}

	// 0x8_..0xB_: ADD/SUB/LD/XCH register — one word each.
	for r := 0; r < NumRegisters; r++ {
		define(byte(0x80|r), "ADD", 1, 10.8, OperandRegister)
		define(byte(0x90|r), "SUB", 1, 10.8, OperandRegister)
		define(byte(0xA0|r), "LD", 1, 10.8, OperandRegister)
		define(byte(0xB0|r), "XCH", 1, 10.8, OperandRegister)
	}

	// 0xC_: BBL data4 — one word.
	for d := 0; d <= 0xF; d++ {
		define(byte(0xC0|d), "BBL", 1, 10.8, OperandData4)
	}

	// 0xD_: LDM data4 — one word.
	for d := 0; d <= 0xF; d++ {
		define(byte(0xD0|d), "LDM", 1, 10.8, OperandData4)
	}

	// 0xE_: RAM/ROM I/O, one word each, no operand (chip/register comes
	// from the command register latched by a prior SRC).
	ioMnemonics := []string{"WRM", "WMP", "WRR", "WPM", "WR0", "WR1", "WR2", "WR3",
		"SBM", "RDM", "RDR", "ADM", "RD0", "RD1", "RD2", "RD3"}
	for i, m := range ioMnemonics {
		define(byte(0xE0|i), m, 1, 10.8, OperandNone)
	}

	// 0xF_: accumulator-group single-word instructions, no operand.
	accMnemonics := []string{"CLB", "CLC", "IAC", "CMC", "CMA", "RAL", "RAR", "TCC",
		"DAC", "TCS", "STC", "DAA", "KBP", "DCL"}
	for i, m := range accMnemonics {
		define(byte(0xF0|i), m, 1, 10.8, OperandNone)
	}
	// 0xFE and 0xFF are left undefined; 0xFF doubles as EndOfProgramByte.
}

// Lookup returns the table entry for opcode, and whether it is defined.
func Lookup(opcode byte) (OpcodeInfo, bool) {
	info := OpcodeTable[opcode]
	return info, info.Defined
}

// ByMnemonic finds the first table entry matching the given mnemonic
// (case-sensitive, canonical uppercase), used by the assembler to go
// from name to base opcode byte.
func ByMnemonic(mnemonic string) (OpcodeInfo, bool) {
	for _, info := range OpcodeTable {
		if info.Defined && info.Mnemonic == mnemonic {
			return info, true
		}
	}
	return OpcodeInfo{}, false
}
