package cpu

// Packed BCD arithmetic on bytes. X is used and set as a decimal carry, Z is
// only cleared on a nonzero result, and N and V are left as they were.

func bcdAdd(a, b, x uint32) (uint32, bool) {
	r := a&0x0F + b&0x0F + x
	if r > 9 {
		r += 6
	}
	r += a&0xF0 + b&0xF0
	carry := r > 0x99
	if carry {
		r -= 0xA0
	}
	return r & 0xFF, carry
}

// bcdSub computes a - b - x.
func bcdSub(a, b, x uint32) (uint32, bool) {
	r := a&0x0F - b&0x0F - x
	if r > 9 {
		r -= 6
	}
	r += a&0xF0 - b&0xF0
	borrow := r > 0x99
	if borrow {
		r += 0xA0
	}
	return r & 0xFF, borrow
}

func (c *CPU) setBCD(r uint32, carry bool) {
	c.setFlag(SRC, carry)
	c.setFlag(SRX, carry)
	c.setExtendedZ(r, SizeByte)
}

func (c *CPU) opABCD(i *Instruction) int {
	src := c.FetchGet(i.Src, SizeByte)
	dst := c.resolve(i.Dst, SizeByte)
	r, carry := bcdAdd(dst.get(), src, c.extend())
	dst.set(r)
	c.setBCD(r, carry)
	return 0
}

func (c *CPU) opSBCD(i *Instruction) int {
	src := c.FetchGet(i.Src, SizeByte)
	dst := c.resolve(i.Dst, SizeByte)
	r, borrow := bcdSub(dst.get(), src, c.extend())
	dst.set(r)
	c.setBCD(r, borrow)
	return 0
}

func (c *CPU) opNBCD(i *Instruction) int {
	dst := c.resolve(i.Dst, SizeByte)
	r, borrow := bcdSub(0, dst.get(), c.extend())
	dst.set(r)
	c.setBCD(r, borrow)
	return 0
}
