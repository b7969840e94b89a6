// Package bits provides the fixed-width binary/decimal conversions and
// nibble-range bit operations the rest of the module uses instead of
// reaching for ad hoc shifting at every call site.
package bits

import "errors"

// Sentinel errors for the bit-width helpers. Each is wrapped with the
// offending value via fmt.Errorf("%w: ...") at the call site.
var (
	ErrInvalidBitValue          = errors.New("invalid bit width")
	ErrInvalidChunkValue        = errors.New("invalid chunk width")
	ErrIncompatibleChunkBit     = errors.New("chunk width does not evenly divide bit width")
	ErrValueOutOfRangeForBits   = errors.New("value out of range for requested bit width")
	ErrNotABinaryNumber         = errors.New("not a binary number")
	ErrAddressOutOf8BitRange    = errors.New("address out of 8-bit range")
)
