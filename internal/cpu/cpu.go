package cpu

import (
	"context"
	"errors"
	"log"
)

// CPU steps an SM83 core: it owns the register file, the interrupt master
// enable latch and the halt state, and borrows Memory for every step.
// Interrupt dispatch is left to an external controller, which reads IME and
// calls Wake.
type CPU struct {
	Registers

	IME bool
	// EI enables IME after the following instruction
	eiPending bool
	halted    bool
	stopped   bool
	// fault is sticky: a failed step stops the machine until Reset
	fault error

	mem    Memory
	trace  *log.Logger
	window [3]byte
}

// New creates a CPU attached to m and resets it according to cfg.
func New(m Memory, cfg Config) *CPU {
	c := &CPU{mem: m}
	c.Reset(cfg)
	return c
}

// Reset restores the register file and the execution state.
func (c *CPU) Reset(cfg Config) {
	cfg.Defaults()
	c.Registers = Registers{}
	if cfg.PostBoot {
		c.ResetNoBoot()
	} else {
		c.SP = *cfg.StackPointer
	}
	c.PC = cfg.EntryPoint
	c.IME = false
	c.eiPending = false
	c.halted = false
	c.stopped = false
	c.fault = nil
	c.trace = nil
	if cfg.Trace != nil {
		c.trace = log.New(cfg.Trace, "", 0)
	}
}

// SetPC allows tests or a loader to set the program counter.
func (c *CPU) SetPC(pc uint16) { c.PC = pc }

// Memory exposes the attached memory for tests and tools.
func (c *CPU) Memory() Memory { return c.mem }

// Halted reports whether HALT has suspended execution.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether STOP has suspended execution.
func (c *CPU) Stopped() bool { return c.stopped }

// Wake resumes execution after HALT or STOP.
func (c *CPU) Wake() {
	c.halted = false
	c.stopped = false
}

// Fault returns the error that stopped the machine, if any.
func (c *CPU) Fault() error { return c.fault }

// Fetch decodes the instruction at PC without executing it.
func (c *CPU) Fetch() Instruction {
	for i := range c.window {
		c.window[i] = c.mem.Read(c.PC + uint16(i))
	}
	return Decode(c.window[:])
}

// Step executes one instruction and returns the clock cycles it took. While
// halted or stopped, Step idles for one machine cycle.
func (c *CPU) Step() (int, error) {
	if c.fault != nil {
		return 0, c.fault
	}
	if c.mem == nil {
		return 0, ErrNoMemory
	}
	if c.halted || c.stopped {
		return ClocksPerMachineCycle, nil
	}

	pc := c.PC
	in := c.Fetch()
	out, err := Execute(in, &c.Registers, c.mem)
	if err != nil {
		var ee *ExecError
		if errors.As(err, &ee) {
			ee.PC = pc
			ee.Bytes = append([]byte(nil), c.window[:]...)
		}
		c.fault = err
		return 0, err
	}

	// EI from a previous step takes effect once this instruction is done
	if c.eiPending {
		c.IME = true
		c.eiPending = false
	}
	switch out.Event {
	case EventHalt:
		c.halted = true
	case EventStop:
		c.stopped = true
	case EventDisableInterrupts:
		c.IME = false
		c.eiPending = false
	case EventEnableInterrupts:
		c.eiPending = true
	case EventReturnFromInterrupt:
		c.IME = true
	}

	cycles := out.Cycles * ClocksPerMachineCycle
	if c.trace != nil {
		c.trace.Printf("PC=%04X OP=%02X cyc=%d %-20v %v", pc, c.window[0], cycles, in.Op, &c.Registers)
	}
	return cycles, nil
}

// Run steps until maxSteps instructions have run, the CPU halts or stops, a
// step fails, or ctx is cancelled. maxSteps <= 0 means no limit. cycles is in
// clock cycles, like Step.
func (c *CPU) Run(ctx context.Context, maxSteps int) (steps, cycles int, err error) {
	for maxSteps <= 0 || steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return steps, cycles, err
		}
		if c.halted || c.stopped {
			return steps, cycles, nil
		}
		cyc, err := c.Step()
		if err != nil {
			return steps, cycles, err
		}
		steps++
		cycles += cyc
	}
	return steps, cycles, nil
}
