package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrUnmappedOpcode is returned when the fetched word decodes to no instruction.
	ErrUnmappedOpcode = errors.New("unmapped opcode")
	// ErrNotImplemented is returned for decoded instructions that only have a stub handler.
	ErrNotImplemented = errors.New("instruction not implemented")
	// ErrBreakpointsFull is returned when every breakpoint slot is taken.
	ErrBreakpointsFull = errors.New("no free breakpoint slot")
	// ErrNoInstruction is returned when disassembling an unmapped opcode.
	ErrNoInstruction = errors.New("no instruction at address")
)

// InternalError reports a defect in the decoder tables or a handler, such as
// an operand that was asked for a size it cannot have. The core panics with it.
type InternalError struct {
	Opcode   uint16
	Mnemonic string
	Msg      string
}

func (e *InternalError) Error() string {
	if e.Mnemonic == "" {
		return "m68k internal error: " + e.Msg
	}
	return fmt.Sprintf("m68k internal error in %s (%04X): %s", e.Mnemonic, e.Opcode, e.Msg)
}

func internalErrorf(format string, args ...any) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}
