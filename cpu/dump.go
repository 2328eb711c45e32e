package cpu

import (
	"fmt"
	"io"
	"strings"
)

// State is a snapshot of the programmer-visible registers and counters.
type State struct {
	D            [8]uint32
	A            [8]uint32
	PC           uint32
	SR           uint16
	USP          uint32
	SSP          uint32
	Stopped      bool
	Pending      int
	Cycles       uint64
	Instructions uint64
	Breakpoints  [BreakpointCount]Breakpoint
}

// State returns a snapshot of the CPU.
func (c *CPU) State() State {
	s := State{
		D:            c.D,
		A:            c.A,
		PC:           c.PC,
		SR:           c.SR,
		USP:          c.USP,
		SSP:          c.SSP,
		Stopped:      c.stopped,
		Pending:      c.pending,
		Cycles:       c.Cycles,
		Instructions: c.Instructions,
		Breakpoints:  c.breakpoints,
	}
	// The shadow of the active stack pointer is stale; report A7 instead.
	if c.Supervisor() {
		s.SSP = c.A[7]
	} else {
		s.USP = c.A[7]
	}
	return s
}

// Restore puts the CPU back into a state taken with State. The prefetch
// queue is refilled from the bus on the next step.
func (c *CPU) Restore(s State) {
	c.D = s.D
	c.A = s.A
	c.PC = s.PC & AddressMask
	c.SR = s.SR & SRMask
	c.USP = s.USP
	c.SSP = s.SSP
	c.stopped = s.Stopped
	c.pending = s.Pending
	c.Cycles = s.Cycles
	c.Instructions = s.Instructions
	c.breakpoints = s.Breakpoints
	c.active = -1
	c.prefetchAddr = ^uint32(0)
}

// Flags renders the condition codes as XNZVC, with '-' for clear bits.
func (s State) Flags() string {
	var b strings.Builder
	for n, ch := range "XNZVC" {
		if s.SR&(1<<(4-n)) != 0 {
			b.WriteRune(ch)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// DumpRegisters writes the registers in a compact table.
func (c *CPU) DumpRegisters(w io.Writer) {
	s := c.State()
	for n := 0; n < 8; n++ {
		fmt.Fprintf(w, "D%d=%08X  A%d=%08X\n", n, s.D[n], n, s.A[n])
	}
	fmt.Fprintf(w, "PC=%06X  SR=%04X [%s]  USP=%08X  SSP=%08X\n", s.PC, s.SR, s.Flags(), s.USP, s.SSP)
	fmt.Fprintf(w, "Cycles=%d  Instructions=%d\n", s.Cycles, s.Instructions)
}
