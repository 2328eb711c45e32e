package cpu

// CPU registers and execution state.
type CPU struct {
	// D is for data registers.
	D [8]uint32
	// A is for address registers. A7 is the current stack pointer.
	A [8]uint32
	// PC is the program counter.
	PC uint32
	// USP holds the user stack pointer while in supervisor mode.
	USP uint32
	// SSP holds the supervisor stack pointer while in user mode.
	SSP uint32
	// SR is the status register.
	SR uint16

	// IR is the opcode word of the instruction being executed.
	IR uint16
	// IRAddr is the address IR was fetched from.
	IRAddr uint32

	bus   Bus
	words WordBus
	table *[65536]*Instruction

	prefetch     [2]uint16
	prefetchAddr uint32

	pending int
	stopped bool

	breakpoints [BreakpointCount]Breakpoint
	active      int

	// Cycles count.
	Cycles uint64
	// Instructions is the number of instructions executed.
	Instructions uint64
	// Running or not. A breakpoint hit clears it.
	Running bool
}

// Status register flags.
const (
	// SRC is carry
	SRC = 1 << 0
	// SRV is overflow
	SRV = 1 << 1
	// SRZ is zero
	SRZ = 1 << 2
	// SRN is negative
	SRN = 1 << 3
	// SRX is extend
	SRX = 1 << 4
	// SRI0 is interrupt level 0
	SRI0 = 1 << 8
	// SRI1 is interrupt level 1
	SRI1 = 1 << 9
	// SRI2 is interrupt level 2
	SRI2 = 1 << 10
	// SRS is supervisor state
	SRS = 1 << 13
	// SRT is trace mode
	SRT = 1 << 15

	// SRMask covers the implemented status register bits.
	SRMask = SRT | SRS | SRI2 | SRI1 | SRI0 | CCRMask
	// CCRMask covers the condition codes.
	CCRMask = SRX | SRN | SRZ | SRV | SRC
)

// New creates a CPU attached to a bus. Registers are zeroed; call Reset to
// load the initial stack pointer and program counter from the vector table.
func New(bus Bus) *CPU {
	c := &CPU{
		bus:     bus,
		table:   OpcodeTable(),
		pending: -1,
		active:  -1,
		SR:      SRS | SRI2 | SRI1 | SRI0,
	}
	c.words, _ = bus.(WordBus)
	c.prefetchAddr = ^uint32(0)
	return c
}

// Reset puts the CPU into its power-on state: supervisor mode with all
// interrupts masked, SSP from address 0 and PC from address 4.
func (c *CPU) Reset() {
	c.D = [8]uint32{}
	c.A = [8]uint32{}
	c.USP = 0
	c.SR = SRS | SRI2 | SRI1 | SRI0
	c.A[7] = c.read32(0)
	c.SSP = c.A[7]
	c.PC = c.read32(4) & AddressMask
	c.prefetchAddr = ^uint32(0)
	c.pending = -1
	c.stopped = false
	c.active = -1
	c.Cycles = 0
	c.Instructions = 0
}

// LoadCode to specified address and point PC at it.
func (c *CPU) LoadCode(addr uint32, code []byte) {
	for i, b := range code {
		c.write8(addr+uint32(i), b)
	}
	c.PC = addr & AddressMask
	c.prefetchAddr = ^uint32(0)
}

// SetPC moves execution to addr and discards the prefetch queue.
func (c *CPU) SetPC(addr uint32) {
	c.PC = addr & AddressMask
	c.prefetchAddr = ^uint32(0)
	c.stopped = false
}

// Supervisor reports whether the CPU is in supervisor mode.
func (c *CPU) Supervisor() bool {
	return c.SR&SRS != 0
}

// Stopped reports whether a STOP instruction is waiting for an interrupt.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// SetSR writes the status register, swapping stack pointers when the
// supervisor bit changes.
func (c *CPU) SetSR(v uint16) {
	v &= SRMask
	if (c.SR^v)&SRS != 0 {
		if v&SRS != 0 {
			c.USP = c.A[7]
			c.A[7] = c.SSP
		} else {
			c.SSP = c.A[7]
			c.A[7] = c.USP
		}
	}
	c.SR = v
}

func (c *CPU) setCCR(v uint16) {
	c.SR = c.SR&^CCRMask | v&CCRMask
}

func (c *CPU) flag(f uint16) bool {
	return c.SR&f != 0
}

func (c *CPU) setFlag(f uint16, on bool) {
	if on {
		c.SR |= f
	} else {
		c.SR &^= f
	}
}

func (c *CPU) extend() uint32 {
	if c.SR&SRX != 0 {
		return 1
	}
	return 0
}

// setNZ sets N and Z from a result and leaves the other flags alone.
func (c *CPU) setNZ(v uint32, size Size) {
	c.setFlag(SRN, size.negative(v))
	c.setFlag(SRZ, size.zero(v))
}

// setLogic sets N and Z and clears V and C, as the logical and move families do.
func (c *CPU) setLogic(v uint32, size Size) {
	c.setNZ(v, size)
	c.SR &^= SRV | SRC
}

// setAdd sets X, N, Z, V and C for r = a + b.
func (c *CPU) setAdd(a, b, r uint32, size Size) {
	carry := size.addCarry(a, b, r)
	c.setNZ(r, size)
	c.setFlag(SRV, size.addOverflow(a, b, r))
	c.setFlag(SRC, carry)
	c.setFlag(SRX, carry)
}

// setSub sets N, Z, V and C for r = a - b. X is left to the caller since
// the compare family does not touch it.
func (c *CPU) setSub(a, b, r uint32, size Size) {
	c.setNZ(r, size)
	c.setFlag(SRV, size.subOverflow(a, b, r))
	c.setFlag(SRC, size.subBorrow(a, b, r))
}

// setExtendedZ clears Z on a nonzero result and leaves it alone otherwise,
// for the multi-precision instructions.
func (c *CPU) setExtendedZ(v uint32, size Size) {
	if !size.zero(v) {
		c.SR &^= SRZ
	}
}

func (c *CPU) push16(v uint16) {
	c.A[7] -= 2
	c.write16(c.A[7], v)
}

func (c *CPU) push32(v uint32) {
	c.A[7] -= 4
	c.write32(c.A[7], v)
}

func (c *CPU) pop16() uint16 {
	v := c.read16(c.A[7])
	c.A[7] += 2
	return v
}

func (c *CPU) pop32() uint32 {
	v := c.read32(c.A[7])
	c.A[7] += 4
	return v
}
