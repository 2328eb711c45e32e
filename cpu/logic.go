package cpu

func (c *CPU) logical(i *Instruction, op func(a, b uint32) uint32) {
	src := c.FetchGet(i.Src, i.Size)
	dst := c.resolve(i.Dst, i.Size)
	r := op(dst.get(), src)
	dst.set(r)
	c.setLogic(r, i.Size)
}

func and(a, b uint32) uint32 { return a & b }
func or(a, b uint32) uint32  { return a | b }
func eor(a, b uint32) uint32 { return a ^ b }

// opAND handles AND and ANDI.
func (c *CPU) opAND(i *Instruction) int {
	c.logical(i, and)
	return 0
}

// opOR handles OR and ORI.
func (c *CPU) opOR(i *Instruction) int {
	c.logical(i, or)
	return 0
}

// opEOR handles EOR and EORI.
func (c *CPU) opEOR(i *Instruction) int {
	c.logical(i, eor)
	return 0
}

func (c *CPU) opNOT(i *Instruction) int {
	dst := c.resolve(i.Dst, i.Size)
	r := ^dst.get()
	dst.set(r)
	c.setLogic(r, i.Size)
	return 0
}

func (c *CPU) toCCR(i *Instruction, op func(a, b uint32) uint32) {
	imm := c.FetchGet(i.Src, SizeByte)
	c.setCCR(uint16(op(uint32(c.SR&CCRMask), imm)))
}

func (c *CPU) toSR(i *Instruction, op func(a, b uint32) uint32) {
	imm := c.FetchGet(i.Src, SizeWord)
	c.SetSR(uint16(op(uint32(c.SR), imm)))
}

func (c *CPU) opANDItoCCR(i *Instruction) int {
	c.toCCR(i, and)
	return 0
}

func (c *CPU) opORItoCCR(i *Instruction) int {
	c.toCCR(i, or)
	return 0
}

func (c *CPU) opEORItoCCR(i *Instruction) int {
	c.toCCR(i, eor)
	return 0
}

func (c *CPU) opANDItoSR(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	c.toSR(i, and)
	return 0
}

func (c *CPU) opORItoSR(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	c.toSR(i, or)
	return 0
}

func (c *CPU) opEORItoSR(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	c.toSR(i, eor)
	return 0
}

func (c *CPU) opTST(i *Instruction) int {
	c.setLogic(c.FetchGet(i.Src, i.Size), i.Size)
	return 0
}

// opScc sets a byte to all ones when the condition holds and to zero otherwise.
func (c *CPU) opScc(i *Instruction) int {
	if i.Condition.Test(c.SR) {
		c.FetchSet(i.Dst, SizeByte, 0xFF)
		if i.Dst.Mode == DataRegister {
			return 2
		}
		return 0
	}
	c.FetchSet(i.Dst, SizeByte, 0)
	return 0
}

// opTAS tests a byte and sets its top bit. The Genesis bus does not complete
// the write cycle of TAS to memory, so only register operands are modified.
func (c *CPU) opTAS(i *Instruction) int {
	dst := c.resolve(i.Dst, SizeByte)
	v := dst.get()
	c.setLogic(v, SizeByte)
	if i.Dst.Mode == DataRegister {
		dst.set(v | 0x80)
	}
	return 0
}
