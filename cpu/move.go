package cpu

import "math/bits"

// opMOVE copies src to dst. The source is fully read, extension words
// included, before the destination address is computed.
func (c *CPU) opMOVE(i *Instruction) int {
	v := c.FetchGet(i.Src, i.Size)
	c.FetchSet(i.Dst, i.Size, v)
	c.setLogic(v, i.Size)
	return 0
}

// opMOVEA loads an address register with a sign-extended source. Flags are unaffected.
func (c *CPU) opMOVEA(i *Instruction) int {
	c.A[i.Dst.N] = i.Size.Extend(c.FetchGet(i.Src, i.Size))
	return 0
}

// opMOVEQ loads a data register with a sign-extended 8-bit literal.
func (c *CPU) opMOVEQ(i *Instruction) int {
	v := SizeByte.Extend(i.Src.N)
	c.D[i.Dst.N] = v
	c.setLogic(v, SizeLong)
	return 0
}

func (c *CPU) opMOVEtoCCR(i *Instruction) int {
	c.setCCR(uint16(c.FetchGet(i.Src, SizeWord)))
	return 0
}

func (c *CPU) opMOVEtoSR(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	c.SetSR(uint16(c.FetchGet(i.Src, SizeWord)))
	return 0
}

func (c *CPU) opMOVEfromSR(i *Instruction) int {
	c.FetchSet(i.Dst, SizeWord, uint32(c.SR))
	return 0
}

// opMOVEUSP copies between an address register and the user stack pointer.
func (c *CPU) opMOVEUSP(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	if i.Src != nil {
		c.USP = c.A[i.Src.N]
	} else {
		c.A[i.Dst.N] = c.USP
	}
	return 0
}

// movemRegister returns D0-D7 for 0-7 and A0-A7 for 8-15.
func (c *CPU) movemRegister(n int) *uint32 {
	if n < 8 {
		return &c.D[n]
	}
	return &c.A[n-8]
}

// movemCost is the per-register transfer time.
func movemCost(size Size, mask uint32) int {
	n := bits.OnesCount32(mask)
	if size == SizeLong {
		return 8 * n
	}
	return 4 * n
}

// opMOVEMtoMemory stores registers. With -(An) the mask is reversed (bit 0
// is A7) and registers are stored from A7 down to D0; the register holds its
// original value if it is in the list.
func (c *CPU) opMOVEMtoMemory(i *Instruction) int {
	mask := c.FetchGet(i.Src, SizeWord)
	step := i.Size.Bytes()
	if i.Dst.Mode == PreDecrement {
		addr := c.A[i.Dst.N]
		for b := 0; b < 16; b++ {
			if mask&(1<<b) != 0 {
				addr -= step
				c.write(i.Size, addr, *c.movemRegister(15 - b))
			}
		}
		c.A[i.Dst.N] = addr
		return movemCost(i.Size, mask)
	}
	addr := c.EffectiveAddress(i.Dst, i.Size)
	for b := 0; b < 16; b++ {
		if mask&(1<<b) != 0 {
			c.write(i.Size, addr, *c.movemRegister(b))
			addr += step
		}
	}
	return movemCost(i.Size, mask)
}

// opMOVEMtoRegisters loads registers, D0 first. Words are sign-extended to
// the whole register. With (An)+ the final address is written back last.
func (c *CPU) opMOVEMtoRegisters(i *Instruction) int {
	mask := c.FetchGet(i.Dst, SizeWord)
	step := i.Size.Bytes()
	var addr uint32
	if i.Src.Mode == PostIncrement {
		addr = c.A[i.Src.N]
	} else {
		addr = c.EffectiveAddress(i.Src, i.Size)
	}
	for b := 0; b < 16; b++ {
		if mask&(1<<b) != 0 {
			*c.movemRegister(b) = i.Size.Extend(c.read(i.Size, addr))
			addr += step
		}
	}
	if i.Src.Mode == PostIncrement {
		c.A[i.Src.N] = addr
	}
	return movemCost(i.Size, mask)
}

// opMOVEP transfers a data register to or from alternate bytes of memory,
// high byte first.
func (c *CPU) opMOVEP(i *Instruction) int {
	n := int(i.Size.Bytes())
	if i.Src.Mode == DataRegister {
		v := c.D[i.Src.N]
		addr := c.EffectiveAddress(i.Dst, i.Size)
		for k := n - 1; k >= 0; k-- {
			c.write8(addr, uint8(v>>(8*k)))
			addr += 2
		}
		return 0
	}
	addr := c.EffectiveAddress(i.Src, i.Size)
	var v uint32
	for k := 0; k < n; k++ {
		v = v<<8 | uint32(c.read8(addr))
		addr += 2
	}
	c.D[i.Dst.N] = i.Size.merge(c.D[i.Dst.N], v)
	return 0
}

func (c *CPU) opLEA(i *Instruction) int {
	c.A[i.Dst.N] = c.EffectiveAddress(i.Src, SizeLong)
	return 0
}

func (c *CPU) opPEA(i *Instruction) int {
	c.push32(c.EffectiveAddress(i.Src, SizeLong))
	return 0
}

// opLINK pushes An, points it at the new frame and reserves space on the stack.
func (c *CPU) opLINK(i *Instruction) int {
	n := i.Src.N
	c.push32(c.A[n])
	c.A[n] = c.A[7]
	c.A[7] += SizeWord.Extend(c.FetchGet(i.Dst, SizeWord))
	return 0
}

func (c *CPU) opUNLK(i *Instruction) int {
	n := i.Dst.N
	c.A[7] = c.A[n]
	c.A[n] = c.pop32()
	return 0
}

// opEXG exchanges two whole registers.
func (c *CPU) opEXG(i *Instruction) int {
	x := c.register(i.Src)
	y := c.register(i.Dst)
	*x, *y = *y, *x
	return 0
}

func (c *CPU) register(o *Operand) *uint32 {
	if o.Mode == AddressRegister {
		return &c.A[o.N]
	}
	return &c.D[o.N]
}

func (c *CPU) opSWAP(i *Instruction) int {
	n := i.Dst.N
	c.D[n] = c.D[n]<<16 | c.D[n]>>16
	c.setLogic(c.D[n], SizeLong)
	return 0
}
