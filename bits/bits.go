package bits

// Nibble-range helpers over a plain int. The 4004 deals in 4/8/12-bit
// quantities that don't fit one byte, so these operate on int and take an
// explicit width rather than assuming a single byte.

// Last returns the last n bits of v (the low-order n bits).
func Last(v int, n uint) int {
	return v & ((1 << n) - 1)
}

// First returns the first n bits of a value that is width bits wide (the
// high-order n bits).
func First(v int, width, n uint) int {
	return Last(v>>(width-n), n)
}

// HighNibble returns the top 4 bits of an 8-bit value.
func HighNibble(v byte) byte {
	return byte(v>>4) & 0xF
}

// LowNibble returns the bottom 4 bits of an 8-bit value.
func LowNibble(v byte) byte {
	return v & 0xF
}

// JoinNibbles combines a high and low nibble into a byte.
func JoinNibbles(hi, lo byte) byte {
	return (hi&0xF)<<4 | (lo & 0xF)
}
