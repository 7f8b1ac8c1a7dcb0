package cpu

import (
	"errors"

	"github.com/FabianRolfMatthiasNoll/sm83/internal/translate"
)

var f = translate.From

var (
	// ErrUnimplemented is returned when asked to execute an instruction that
	// Decode classified as Unimplemented.
	ErrUnimplemented = errors.New(f("unimplemented instruction"))
	// ErrNoMemory is returned by Step on a CPU built without Memory.
	ErrNoMemory = errors.New(f("no memory attached"))
)

// ExecError reports a failed step with the address and raw bytes of the
// offending instruction.
type ExecError struct {
	PC    uint16
	Bytes []byte
	Err   error
}

func (e *ExecError) Error() string {
	return f("pc 0x%04x [% x]: %v", e.PC, e.Bytes, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
