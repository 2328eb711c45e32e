package cpu

import "fmt"

// BreakpointCount is the number of breakpoint slots.
const BreakpointCount = 3

// Breakpoint halts execution before the instruction at Address.
type Breakpoint struct {
	Address uint32
	Enabled bool
}

// ToggleBreakpoint disables an armed breakpoint at addr, re-arms a disabled
// one, or arms a free slot.
func (c *CPU) ToggleBreakpoint(addr uint32) error {
	addr &= AddressMask
	for n := range c.breakpoints {
		b := &c.breakpoints[n]
		if b.Address == addr {
			b.Enabled = !b.Enabled
			if !b.Enabled && c.active == n {
				c.active = -1
			}
			return nil
		}
	}
	n := c.firstFree()
	if n < 0 {
		Log.WithField("address", fmt.Sprintf("%06X", addr)).Warn("All breakpoints are in use")
		return ErrBreakpointsFull
	}
	c.breakpoints[n] = Breakpoint{Address: addr, Enabled: true}
	return nil
}

func (c *CPU) firstFree() int {
	for n, b := range c.breakpoints {
		if !b.Enabled {
			return n
		}
	}
	return -1
}

// breakpointAt returns the slot of an armed breakpoint at addr, or -1.
func (c *CPU) breakpointAt(addr uint32) int {
	for n, b := range c.breakpoints {
		if b.Enabled && b.Address == addr {
			return n
		}
	}
	return -1
}

// Breakpoints returns a copy of the breakpoint slots.
func (c *CPU) Breakpoints() [BreakpointCount]Breakpoint {
	return c.breakpoints
}

// ClearBreakpoints disarms every breakpoint.
func (c *CPU) ClearBreakpoints() {
	c.breakpoints = [BreakpointCount]Breakpoint{}
	c.active = -1
}
