package cpu

// bitOperand resolves the bit number and target of a bit instruction. Data
// registers are 32 bits wide; memory operands are single bytes.
func (c *CPU) bitOperand(i *Instruction) (ref, uint32) {
	n := c.FetchGet(i.Src, SizeByte)
	dst := c.resolve(i.Dst, i.Size)
	if i.Dst.Mode == DataRegister {
		return dst, 1 << (n & 31)
	}
	return dst, 1 << (n & 7)
}

func (c *CPU) opBTST(i *Instruction) int {
	dst, mask := c.bitOperand(i)
	c.setFlag(SRZ, dst.get()&mask == 0)
	return 0
}

func (c *CPU) opBCHG(i *Instruction) int {
	dst, mask := c.bitOperand(i)
	v := dst.get()
	c.setFlag(SRZ, v&mask == 0)
	dst.set(v ^ mask)
	return 0
}

func (c *CPU) opBCLR(i *Instruction) int {
	dst, mask := c.bitOperand(i)
	v := dst.get()
	c.setFlag(SRZ, v&mask == 0)
	dst.set(v &^ mask)
	return 0
}

func (c *CPU) opBSET(i *Instruction) int {
	dst, mask := c.bitOperand(i)
	v := dst.get()
	c.setFlag(SRZ, v&mask == 0)
	dst.set(v | mask)
	return 0
}
