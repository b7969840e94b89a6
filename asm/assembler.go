package asm

import (
	"fmt"
	"strconv"
	"strings"

	"mcs4/cpu"
)

// Program is the result of assembling a source listing: the memory image,
// which memory space org selected it for, the resolved label table, and
// whatever pin directive the source requested.
type Program struct {
	// Location is "rom" or "ram", selected by the org directive. The
	// caller copies Memory into the matching half of a cpu.Processor.
	Location string
	Memory   []byte
	Labels   map[string]int

	// Pin10 is nil if the source had no pin directive, otherwise the
	// requested initial TEST pin state.
	Pin10 *bool
}

type sourceLine struct {
	number int
	label  string // "" if none
	body   string // directive/mnemonic + operands, comment and label stripped
}

// Assemble runs the two-pass assembler over source: pass one builds the
// label table by walking instruction word counts, pass two resolves
// labels and emits the memory image.
func Assemble(source string) (*Program, error) {
	lines, err := splitLines(source)
	if err != nil {
		return nil, err
	}

	labels, err := firstPass(lines)
	if err != nil {
		return nil, err
	}

	return secondPass(lines, labels)
}

// splitLines strips comments and blank lines, and peels off a leading
// "label," from each remaining line.
func splitLines(source string) ([]sourceLine, error) {
	var out []sourceLine
	for i, raw := range strings.Split(source, "\n") {
		lineNo := i + 1
		text := strings.TrimSpace(stripComment(raw))
		if text == "" {
			continue
		}

		label := ""
		if comma := strings.IndexByte(text, ','); comma >= 0 {
			candidate, rest := getName(text)
			trimmedRest := skipSpace(rest)
			if candidate != "" && strings.HasPrefix(trimmedRest, ",") {
				label = candidate
				text = strings.TrimSpace(trimmedRest[1:])
			}
		}

		if text == "" && label == "" {
			continue
		}
		out = append(out, sourceLine{number: lineNo, label: label, body: text})
	}
	return out, nil
}

// firstPass computes every label's address by walking the source in
// order, advancing a running address counter by each instruction's word
// count (org resets the counter; end stops the walk).
func firstPass(lines []sourceLine) (map[string]int, error) {
	labels := map[string]int{}
	address := 0
	sawOrg := false

	for _, ln := range lines {
		if ln.label != "" {
			if _, dup := labels[ln.label]; dup {
				return nil, lineErr(ln.number, fmt.Errorf("%w: %s", ErrDuplicateLabel, ln.label))
			}
			labels[ln.label] = address
		}
		if ln.body == "" {
			continue
		}

		name, rest := getName(ln.body)
		directive := strings.ToLower(name)
		switch directive {
		case "org":
			v, _, err := parseOrgOperand(rest)
			if err != nil {
				return nil, lineErr(ln.number, err)
			}
			address = v
			sawOrg = true
			continue
		case "end":
			return labels, nil
		case "pin":
			continue
		}

		if !sawOrg {
			return nil, lineErr(ln.number, ErrMissingOrg)
		}
		info, ok := cpu.ByMnemonic(strings.ToUpper(name))
		if !ok {
			return nil, lineErr(ln.number, fmt.Errorf("%w: %s", ErrUnknownMnemonic, name))
		}
		address += info.Words
	}
	return labels, nil
}

// secondPass walks the source again, this time resolving labels and
// writing bytes into the memory image.
func secondPass(lines []sourceLine, labels map[string]int) (*Program, error) {
	prog := &Program{
		Location: "rom",
		Memory:   make([]byte, cpu.MemorySize),
		Labels:   labels,
	}
	address := 0
	sawOrg := false

	for _, ln := range lines {
		if ln.body == "" {
			continue
		}

		name, rest := getName(ln.body)
		directive := strings.ToLower(name)
		switch directive {
		case "org":
			v, location, err := parseOrgOperand(rest)
			if err != nil {
				return nil, lineErr(ln.number, err)
			}
			address = v
			if location != "" {
				prog.Location = location
			}
			sawOrg = true
			continue
		case "end":
			if address >= len(prog.Memory) {
				return nil, lineErr(ln.number, ErrAddressOutOfRange)
			}
			prog.Memory[address] = cpu.EndOfProgramByte
			return prog, nil
		case "pin":
			v, _, ok := getNumber(rest)
			if !ok || (v != 0 && v != 1) {
				return nil, lineErr(ln.number, fmt.Errorf("%w: pin takes 0 or 1", ErrMalformedOperand))
			}
			b := v == 1
			prog.Pin10 = &b
			continue
		}

		if !sawOrg {
			return nil, lineErr(ln.number, ErrMissingOrg)
		}

		info, ok := cpu.ByMnemonic(strings.ToUpper(name))
		if !ok {
			return nil, lineErr(ln.number, fmt.Errorf("%w: %s", ErrUnknownMnemonic, name))
		}

		words, err := encode(info, rest, labels, address)
		if err != nil {
			return nil, lineErr(ln.number, err)
		}
		if address+len(words) > len(prog.Memory) {
			return nil, lineErr(ln.number, ErrAddressOutOfRange)
		}
		copy(prog.Memory[address:], words)
		address += info.Words
	}
	return prog, nil
}

// parseOrgOperand interprets an org directive's operand. The keywords
// "rom" and "ram" select a memory space and reset the running address to
// 0 (location is returned non-empty); a bare decimal instead sets the
// running address without changing whichever space org last selected
// (location is returned empty, meaning "unchanged").
func parseOrgOperand(rest string) (address int, location string, err error) {
	name, nameRest := getName(rest)
	switch strings.ToLower(name) {
	case "rom":
		if skipSpace(nameRest) != "" {
			return 0, "", fmt.Errorf("%w: org rom takes no address", ErrMalformedOperand)
		}
		return 0, "rom", nil
	case "ram":
		if skipSpace(nameRest) != "" {
			return 0, "", fmt.Errorf("%w: org ram takes no address", ErrMalformedOperand)
		}
		return 0, "ram", nil
	}
	v, _, ok := getNumber(rest)
	if !ok {
		return 0, "", fmt.Errorf("%w: org needs \"rom\", \"ram\", or a numeric address", ErrMalformedOperand)
	}
	return v, "", nil
}

// parseCondition parses a JCN condition operand: either a bare decimal
// mask or one or more of the letters I, A, C, T in any order, encoded
// most-significant-first into a 4-bit mask (I=8, A=4, C=2, T=1).
func parseCondition(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: empty condition", ErrMalformedOperand)
	}
	if v, err := strconv.Atoi(text); err == nil {
		if v < 0 || v > 15 {
			return 0, fmt.Errorf("%w: %d", ErrOperandOutOfRange, v)
		}
		return v, nil
	}

	mask := 0
	seen := map[byte]bool{}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		var bit int
		switch c {
		case 'I':
			bit = 0x8
		case 'A':
			bit = 0x4
		case 'C':
			bit = 0x2
		case 'T':
			bit = 0x1
		default:
			return 0, fmt.Errorf("%w: unknown condition letter %q", ErrMalformedOperand, c)
		}
		if seen[c] {
			return 0, fmt.Errorf("%w: repeated condition letter %q", ErrMalformedOperand, c)
		}
		seen[c] = true
		mask |= bit
	}
	return mask, nil
}

// resolveOperand parses a decimal literal or looks the text up as a
// label, returning its address.
func resolveOperand(text string, labels map[string]int) (int, error) {
	text = strings.TrimSpace(text)
	if v, err := strconv.Atoi(text); err == nil {
		return v, nil
	}
	addr, ok := labels[text]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedLabel, text)
	}
	return addr, nil
}

// encode assembles one instruction's operand text into its opcode byte
// (and, for two-word instructions, its second byte).
func encode(info cpu.OpcodeInfo, operandText string, labels map[string]int, address int) ([]byte, error) {
	ops := splitOperands(operandText)

	need := func(n int) error {
		if len(ops) != n {
			return fmt.Errorf("%w: %s wants %d operand(s), got %d", ErrWrongOperandCount, info.Mnemonic, n, len(ops))
		}
		return nil
	}

	switch info.Operand {
	case cpu.OperandNone:
		if err := need(0); err != nil {
			return nil, err
		}
		return []byte{info.Opcode}, nil

	case cpu.OperandRegister, cpu.OperandData4:
		if err := need(1); err != nil {
			return nil, err
		}
		v, err := resolveOperand(ops[0], labels)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 15 {
			return nil, fmt.Errorf("%w: %d", ErrOperandOutOfRange, v)
		}
		return []byte{(info.Opcode & 0xF0) | byte(v)}, nil

	case cpu.OperandRegisterPair:
		if err := need(1); err != nil {
			return nil, err
		}
		v, err := resolveOperand(ops[0], labels)
		if err != nil {
			return nil, err
		}
		if v < 0 || v > 7 {
			return nil, fmt.Errorf("%w: %d", ErrOperandOutOfRange, v)
		}
		return []byte{(info.Opcode & 0xF0) | (byte(v) << 1) | (info.Opcode & 1)}, nil

	case cpu.OperandRegisterPairData8:
		if err := need(2); err != nil {
			return nil, err
		}
		pair, err := resolveOperand(ops[0], labels)
		if err != nil {
			return nil, err
		}
		if pair < 0 || pair > 7 {
			return nil, fmt.Errorf("%w: %d", ErrOperandOutOfRange, pair)
		}
		data, err := resolveOperand(ops[1], labels)
		if err != nil {
			return nil, err
		}
		if data < 0 || data > 255 {
			return nil, fmt.Errorf("%w: %d", ErrOperandOutOfRange, data)
		}
		return []byte{(info.Opcode & 0xF0) | (byte(pair) << 1), byte(data)}, nil

	case cpu.OperandConditionAddr8:
		if err := need(2); err != nil {
			return nil, err
		}
		condition, err := parseCondition(ops[0])
		if err != nil {
			return nil, err
		}
		target, err := resolveOperand(ops[1], labels)
		if err != nil {
			return nil, err
		}
		if target>>8 != address>>8 {
			return nil, fmt.Errorf("%w: target %d from address %d", ErrPageCrossing, target, address)
		}
		return []byte{(info.Opcode & 0xF0) | byte(condition), byte(target & 0xFF)}, nil

	case cpu.OperandRegisterAddr8:
		if err := need(2); err != nil {
			return nil, err
		}
		first, err := resolveOperand(ops[0], labels)
		if err != nil {
			return nil, err
		}
		if first < 0 || first > 15 {
			return nil, fmt.Errorf("%w: %d", ErrOperandOutOfRange, first)
		}
		target, err := resolveOperand(ops[1], labels)
		if err != nil {
			return nil, err
		}
		if target>>8 != address>>8 {
			return nil, fmt.Errorf("%w: target %d from address %d", ErrPageCrossing, target, address)
		}
		return []byte{(info.Opcode & 0xF0) | byte(first), byte(target & 0xFF)}, nil

	case cpu.OperandAddr12:
		if err := need(1); err != nil {
			return nil, err
		}
		target, err := resolveOperand(ops[0], labels)
		if err != nil {
			return nil, err
		}
		if target < 0 || target >= cpu.MemorySize {
			return nil, fmt.Errorf("%w: %d", ErrAddressOutOfRange, target)
		}
		return []byte{(info.Opcode & 0xF0) | byte(target>>8), byte(target & 0xFF)}, nil

	default:
		return nil, fmt.Errorf("%w: unhandled operand kind for %s", ErrMalformedOperand, info.Mnemonic)
	}
}
