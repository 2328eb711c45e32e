package cpu

// Branch displacements are relative to the word following the opcode.
func (c *CPU) branchTarget(disp uint32) uint32 {
	return (c.IRAddr + 2 + disp) & AddressMask
}

// opBcc branches when the condition holds.
func (c *CPU) opBcc(i *Instruction) int {
	disp := c.FetchGet(i.Src, SizeNone)
	if i.Condition.Test(c.SR) {
		c.PC = c.branchTarget(disp)
		return 10
	}
	if i.Src.Size == SizeByte {
		return 8
	}
	return 12
}

func (c *CPU) opBRA(i *Instruction) int {
	disp := c.FetchGet(i.Src, SizeNone)
	c.PC = c.branchTarget(disp)
	return 0
}

func (c *CPU) opBSR(i *Instruction) int {
	disp := c.FetchGet(i.Src, SizeNone)
	c.push32(c.PC)
	c.PC = c.branchTarget(disp)
	return 0
}

// opDBcc is a loop primitive: unless the condition holds, decrement the low
// word of the counter and branch while it has not reached -1.
func (c *CPU) opDBcc(i *Instruction) int {
	disp := c.FetchGet(i.Dst, SizeNone)
	if i.Condition.Test(c.SR) {
		return 12
	}
	n := i.Src.N
	count := uint16(c.D[n]) - 1
	c.D[n] = SizeWord.merge(c.D[n], uint32(count))
	if count == 0xFFFF {
		return 14
	}
	c.PC = c.branchTarget(disp)
	return 10
}

func (c *CPU) opJMP(i *Instruction) int {
	c.PC = c.EffectiveAddress(i.Src, SizeLong) & AddressMask
	return 0
}

func (c *CPU) opJSR(i *Instruction) int {
	target := c.EffectiveAddress(i.Src, SizeLong)
	c.push32(c.PC)
	c.PC = target & AddressMask
	return 0
}

func (c *CPU) opRTS(i *Instruction) int {
	c.PC = c.pop32() & AddressMask
	return 0
}

func (c *CPU) opRTR(i *Instruction) int {
	c.setCCR(c.pop16())
	c.PC = c.pop32() & AddressMask
	return 0
}

// opRTE restores SR and PC from the supervisor stack. Both are popped before
// SR is written, since a return to user mode switches stacks.
func (c *CPU) opRTE(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	sr := c.pop16()
	pc := c.pop32()
	c.SetSR(sr)
	c.PC = pc & AddressMask
	return 0
}

func (c *CPU) opNOP(i *Instruction) int {
	return 0
}
