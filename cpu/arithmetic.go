package cpu

import "math/bits"

// opADD handles ADD and ADDI: dst = dst + src.
func (c *CPU) opADD(i *Instruction) int {
	src := c.FetchGet(i.Src, i.Size)
	dst := c.resolve(i.Dst, i.Size)
	a := dst.get()
	r := a + src
	dst.set(r)
	c.setAdd(a, src, r, i.Size)
	return 0
}

// opADDQ adds a 3-bit literal. Into an address register the whole register
// is used and the flags are not touched.
func (c *CPU) opADDQ(i *Instruction) int {
	if i.Dst.Mode == AddressRegister {
		c.A[i.Dst.N] += i.Src.N
		return 0
	}
	return c.opADD(i)
}

// opADDA adds a sign-extended source to an address register. Flags are unaffected.
func (c *CPU) opADDA(i *Instruction) int {
	src := i.Size.Extend(c.FetchGet(i.Src, i.Size))
	c.A[i.Dst.N] += src
	return 0
}

// opADDX adds with extend. Z is only ever cleared so that multi-precision
// results test zero across all their parts.
func (c *CPU) opADDX(i *Instruction) int {
	src := c.FetchGet(i.Src, i.Size)
	dst := c.resolve(i.Dst, i.Size)
	a := dst.get()
	r := a + src + c.extend()
	dst.set(r)
	z := c.SR & SRZ
	c.setAdd(a, src, r, i.Size)
	c.SR = c.SR&^SRZ | z
	c.setExtendedZ(r, i.Size)
	return 0
}

// opSUB handles SUB and SUBI: dst = dst - src.
func (c *CPU) opSUB(i *Instruction) int {
	src := c.FetchGet(i.Src, i.Size)
	dst := c.resolve(i.Dst, i.Size)
	a := dst.get()
	r := a - src
	dst.set(r)
	c.setSub(a, src, r, i.Size)
	c.setFlag(SRX, c.flag(SRC))
	return 0
}

func (c *CPU) opSUBQ(i *Instruction) int {
	if i.Dst.Mode == AddressRegister {
		c.A[i.Dst.N] -= i.Src.N
		return 0
	}
	return c.opSUB(i)
}

func (c *CPU) opSUBA(i *Instruction) int {
	src := i.Size.Extend(c.FetchGet(i.Src, i.Size))
	c.A[i.Dst.N] -= src
	return 0
}

func (c *CPU) opSUBX(i *Instruction) int {
	src := c.FetchGet(i.Src, i.Size)
	dst := c.resolve(i.Dst, i.Size)
	a := dst.get()
	r := a - src - c.extend()
	dst.set(r)
	z := c.SR & SRZ
	c.setSub(a, src, r, i.Size)
	c.setFlag(SRX, c.flag(SRC))
	c.SR = c.SR&^SRZ | z
	c.setExtendedZ(r, i.Size)
	return 0
}

// opCMP handles CMP, CMPI and CMPM. X is not affected.
func (c *CPU) opCMP(i *Instruction) int {
	src := c.FetchGet(i.Src, i.Size)
	a := c.FetchGet(i.Dst, i.Size)
	c.setSub(a, src, a-src, i.Size)
	return 0
}

// opCMPA compares a sign-extended source against a whole address register.
func (c *CPU) opCMPA(i *Instruction) int {
	src := i.Size.Extend(c.FetchGet(i.Src, i.Size))
	a := c.A[i.Dst.N]
	c.setSub(a, src, a-src, SizeLong)
	return 0
}

func (c *CPU) opNEG(i *Instruction) int {
	dst := c.resolve(i.Dst, i.Size)
	v := dst.get()
	r := -v
	dst.set(r)
	c.setSub(0, v, r, i.Size)
	c.setFlag(SRX, c.flag(SRC))
	return 0
}

func (c *CPU) opNEGX(i *Instruction) int {
	dst := c.resolve(i.Dst, i.Size)
	v := dst.get()
	r := -v - c.extend()
	dst.set(r)
	z := c.SR & SRZ
	c.setSub(0, v, r, i.Size)
	c.setFlag(SRX, c.flag(SRC))
	c.SR = c.SR&^SRZ | z
	c.setExtendedZ(r, i.Size)
	return 0
}

func (c *CPU) opCLR(i *Instruction) int {
	c.FetchSet(i.Dst, i.Size, 0)
	c.SR = c.SR&^(SRN|SRV|SRC) | SRZ
	return 0
}

// opEXT sign-extends byte to word or word to long in a data register.
func (c *CPU) opEXT(i *Instruction) int {
	n := i.Dst.N
	var r uint32
	if i.Size == SizeWord {
		r = SizeByte.Extend(c.D[n]) & 0xFFFF
	} else {
		r = SizeWord.Extend(c.D[n])
	}
	c.D[n] = i.Size.merge(c.D[n], r)
	c.setLogic(r, i.Size)
	return 0
}

// opMULU multiplies two unsigned words into a long. The multiply takes two
// cycles for every set bit of the source.
func (c *CPU) opMULU(i *Instruction) int {
	src := c.FetchGet(i.Src, SizeWord)
	r := src * (c.D[i.Dst.N] & 0xFFFF)
	c.D[i.Dst.N] = r
	c.setLogic(r, SizeLong)
	return 2 * bits.OnesCount32(src)
}

// opMULS multiplies two signed words into a long. The multiply takes two
// cycles for every 01 or 10 bit pair in the source with a zero appended.
func (c *CPU) opMULS(i *Instruction) int {
	src := c.FetchGet(i.Src, SizeWord)
	r := uint32(int32(int16(src)) * int32(int16(c.D[i.Dst.N])))
	c.D[i.Dst.N] = r
	c.setLogic(r, SizeLong)
	x := src << 1
	return 2 * bits.OnesCount32((x^(x>>1))&0xFFFF)
}

// opDIVU divides a long by an unsigned word, leaving the remainder in the
// upper word and the quotient in the lower. On overflow V is set and the
// register is left alone. Division by zero leaves everything unchanged.
func (c *CPU) opDIVU(i *Instruction) int {
	div := c.FetchGet(i.Src, SizeWord)
	if div == 0 {
		Log.WithFields(c.logFields()).Debug("Division by zero")
		return 0
	}
	n := c.D[i.Dst.N]
	q := n / div
	if q > 0xFFFF {
		c.SR = c.SR&^SRC | SRV
		return 0
	}
	c.D[i.Dst.N] = (n%div)<<16 | q
	c.setLogic(q, SizeWord)
	return 0
}

func (c *CPU) opDIVS(i *Instruction) int {
	div := int64(int16(c.FetchGet(i.Src, SizeWord)))
	if div == 0 {
		Log.WithFields(c.logFields()).Debug("Division by zero")
		return 0
	}
	n := int64(int32(c.D[i.Dst.N]))
	q := n / div
	if q < -0x8000 || q > 0x7FFF {
		c.SR = c.SR&^SRC | SRV
		return 0
	}
	r := n % div
	c.D[i.Dst.N] = uint32(r)<<16 | uint32(q)&0xFFFF
	c.setLogic(uint32(q), SizeWord)
	return 0
}
