package asm

import (
	"strconv"
	"strings"
)

// Tokenizing helpers in the style of a single-pass-over-the-line
// assembler lexer: each takes the remaining text and returns the token
// plus whatever text is left after it.

// skipSpace advances past leading whitespace.
func skipSpace(str string) string {
	return strings.TrimLeft(str, " \t")
}

// stripComment removes a trailing "/ ..." comment from a line.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '/'); i >= 0 {
		return line[:i]
	}
	return line
}

// getName reads a leading identifier (letters, digits, underscore) and
// returns it along with the unconsumed remainder.
func getName(str string) (name, rest string) {
	str = skipSpace(str)
	i := 0
	for i < len(str) && isNameByte(str[i]) {
		i++
	}
	return str[:i], str[i:]
}

func isNameByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// getNumber reads a leading decimal number and returns it along with the
// unconsumed remainder.
func getNumber(str string) (value int, rest string, ok bool) {
	str = skipSpace(str)
	i := 0
	for i < len(str) && str[i] >= '0' && str[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, str, false
	}
	v, err := strconv.Atoi(str[:i])
	if err != nil {
		return 0, str, false
	}
	return v, str[i:], true
}

// splitOperands splits a comma-separated operand list into trimmed
// fields, dropping every empty field.
func splitOperands(str string) []string {
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	parts := strings.Split(str, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
