package cpu

import "errors"

// Sentinel errors for every invalid-state condition a suboperation or
// instruction handler can hit. Each is wrapped with fmt.Errorf("%w: ...")
// at the call site to attach the offending value.
var (
	ErrInvalidRegister              = errors.New("invalid register index")
	ErrValueTooLargeForRegister     = errors.New("value too large for a 4-bit register")
	ErrInvalidRegisterPair          = errors.New("invalid register pair index")
	ErrValueTooLargeForRegisterPair = errors.New("value too large for a register pair")
	ErrValueTooLargeForAccumulator  = errors.New("value too large for the accumulator")
	ErrProgramCounterOutOfBounds    = errors.New("program counter out of bounds")
	ErrInvalidPin10Value            = errors.New("pin 10 only accepts 0 or 1")
	ErrInvalidRAMBank               = errors.New("invalid data RAM bank")
	ErrInvalidCommandRegisterContent = errors.New("command register content is invalid for this shape")
	ErrInvalidCommandRegisterFormat  = errors.New("unrecognised command register shape")
	ErrValueOutOfRangeForStack      = errors.New("stack pointer out of range")
	ErrUnknownOpcode                = errors.New("opcode has no table entry")
	ErrUnknownMnemonic              = errors.New("unrecognised mnemonic")
)
