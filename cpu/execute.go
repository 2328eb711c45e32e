package cpu

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Status describes how a step ended.
type Status int

const (
	// StepOK means an instruction executed.
	StepOK Status = iota
	// StepUnmapped means the opcode decodes to no instruction. It was skipped.
	StepUnmapped
	// StepStub means the instruction decoded but its behaviour is not emulated.
	StepStub
	// StepBreakpoint means an armed breakpoint halted execution before the
	// instruction at PC.
	StepBreakpoint
	// StepStopped means the CPU is idle after STOP, waiting for an interrupt.
	StepStopped
)

func (s Status) String() string {
	switch s {
	case StepOK:
		return "ok"
	case StepUnmapped:
		return "unmapped"
	case StepStub:
		return "stub"
	case StepBreakpoint:
		return "breakpoint"
	case StepStopped:
		return "stopped"
	}
	return "unknown"
}

// Result of one step.
type Result struct {
	Status Status
	// Address of the instruction, or of the breakpoint.
	Address uint32
	Opcode  uint16
	// Instruction is nil unless an instruction was decoded.
	Instruction *Instruction
	Cycles      int
	// Interrupt is the level delivered at the end of the step, or -1.
	Interrupt int
}

// Cycles charged for an opcode that does nothing, so that a run loop over
// garbage still makes progress.
const (
	unmappedCycles = 4
	stoppedCycles  = 4
)

// fetch returns the word at PC and advances PC, refilling the two-word
// prefetch queue. A jump leaves PC away from the queue and forces a reload.
func (c *CPU) fetch() uint16 {
	var w uint16
	if c.PC != c.prefetchAddr {
		w = c.read16(c.PC)
		c.PC = (c.PC + 2) & AddressMask
		c.prefetch[0] = c.read16(c.PC)
	} else {
		w = c.prefetch[0]
		c.PC = (c.PC + 2) & AddressMask
		c.prefetch[0] = c.prefetch[1]
	}
	c.prefetchAddr = c.PC
	c.prefetch[1] = c.read16(c.PC + 2)
	return w
}

// Step executes one instruction, or halts on a breakpoint, and returns what
// happened and how many cycles it took.
func (c *CPU) Step() Result {
	if b := c.breakpointAt(c.PC); b >= 0 {
		if b == c.active {
			c.active = -1
		} else {
			c.active = b
			c.Running = false
			Log.WithField("pc", fmt.Sprintf("%06X", c.PC)).Info("Breakpoint hit")
			return Result{Status: StepBreakpoint, Address: c.PC, Interrupt: -1}
		}
	}

	if c.stopped {
		r := Result{Status: StepStopped, Address: c.PC, Cycles: stoppedCycles, Interrupt: -1}
		if c.pending >= 0 {
			r.Interrupt = c.pending
			r.Cycles += c.deliverInterrupt()
		}
		c.Cycles += uint64(r.Cycles)
		return r
	}

	c.IRAddr = c.PC
	c.IR = c.fetch()
	r := Result{Address: c.IRAddr, Opcode: c.IR, Interrupt: -1}

	if Log.IsLevelEnabled(logrus.TraceLevel) {
		c.trace()
	}

	inst := c.table[c.IR]
	switch {
	case inst == nil:
		Log.WithFields(c.logFields()).Warn("Unmapped opcode")
		r.Status = StepUnmapped
		r.Cycles = unmappedCycles
	case inst.Stub:
		Log.WithFields(c.logFields()).WithField("instruction", inst.String()).Debug("Instruction not implemented")
		r.Status = StepStub
		r.Instruction = inst
		r.Cycles = inst.BaseCycles + c.execute(inst)
	default:
		r.Instruction = inst
		r.Cycles = inst.BaseCycles + c.execute(inst)
	}
	c.Instructions++

	if c.pending >= 0 {
		r.Interrupt = c.pending
		r.Cycles += c.deliverInterrupt()
	}
	c.Cycles += uint64(r.Cycles)
	return r
}

// execute runs a handler, attaching the instruction to internal errors.
func (c *CPU) execute(inst *Instruction) int {
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok && ie.Mnemonic == "" {
				ie.Opcode = inst.Opcode
				ie.Mnemonic = inst.String()
			}
			panic(r)
		}
	}()
	return inst.Handler(c, inst)
}

// RunFor steps until at least cycles have been spent or the CPU stops
// running. It returns what is left of the budget, which is zero or negative
// unless execution was halted. Carry the remainder into the next call to
// keep long-run timing exact.
func (c *CPU) RunFor(cycles int) int {
	for cycles > 0 && c.Running {
		cycles -= c.Step().Cycles
	}
	return cycles
}

// Execute runs a single instruction and reports unmapped and unimplemented
// opcodes as errors.
func (c *CPU) Execute() error {
	r := c.Step()
	switch r.Status {
	case StepUnmapped:
		return fmt.Errorf("opcode %04X at %06X: %w", r.Opcode, r.Address, ErrUnmappedOpcode)
	case StepStub:
		return fmt.Errorf("%s at %06X: %w", r.Instruction, r.Address, ErrNotImplemented)
	}
	return nil
}

func (c *CPU) trace() {
	d, err := c.Disassemble(c.IRAddr)
	if err != nil {
		return
	}
	Log.WithFields(logrus.Fields{
		"pc":  fmt.Sprintf("%06X", c.IRAddr),
		"sr":  fmt.Sprintf("%04X", c.SR),
		"a7":  fmt.Sprintf("%08X", c.A[7]),
		"dis": d.String(),
	}).Trace("Step")
}
