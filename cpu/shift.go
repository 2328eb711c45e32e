package cpu

// shiftCount returns the count for a shift or rotate. Immediate counts were
// already mapped from 0 to 8 by the decoder; register counts are modulo 64.
func (c *CPU) shiftCount(i *Instruction) uint32 {
	if i.Src.Mode == Quick {
		return i.Src.N
	}
	return c.D[i.Src.N] & 63
}

// shift reads the destination, applies op and writes the result back. Only
// register forms cost extra, two cycles per bit shifted.
func (c *CPU) shift(i *Instruction, op func(v, count uint32, size Size) uint32) int {
	count := c.shiftCount(i)
	dst := c.resolve(i.Dst, i.Size)
	r := op(dst.get(), count, i.Size) & i.Size.Mask()
	dst.set(r)
	c.setNZ(r, i.Size)
	if i.Dst.Mode == DataRegister {
		return 2 * int(count)
	}
	return 0
}

func bitAt(v, n uint32) bool {
	return n < 32 && v>>n&1 != 0
}

// setShiftCarry sets C and X to the last bit shifted out. A zero count
// clears C and leaves X alone.
func (c *CPU) setShiftCarry(count uint32, carry bool) {
	if count == 0 {
		c.SR &^= SRC
		return
	}
	c.setFlag(SRC, carry)
	c.setFlag(SRX, carry)
}

func (c *CPU) lsl(v, count uint32, size Size) uint32 {
	w := size.Bits()
	v &= size.Mask()
	c.SR &^= SRV
	c.setShiftCarry(count, count <= w && bitAt(v, w-count))
	if count >= w {
		return 0
	}
	return v << count
}

func (c *CPU) lsr(v, count uint32, size Size) uint32 {
	w := size.Bits()
	v &= size.Mask()
	c.SR &^= SRV
	c.setShiftCarry(count, count >= 1 && count <= w && bitAt(v, count-1))
	if count >= w {
		return 0
	}
	return v >> count
}

// asl is lsl with V set when the sign bit changes at any point of the shift.
func (c *CPU) asl(v, count uint32, size Size) uint32 {
	r := c.lsl(v, count, size)
	w := size.Bits()
	v &= size.Mask()
	var changed bool
	switch {
	case count == 0:
	case count >= w:
		changed = v != 0
	default:
		// The top count+1 bits must all be equal.
		top := size.Mask() &^ (size.Mask() >> (count + 1))
		changed = v&top != 0 && v&top != top
	}
	c.setFlag(SRV, changed)
	return r
}

func (c *CPU) asr(v, count uint32, size Size) uint32 {
	w := size.Bits()
	v &= size.Mask()
	neg := size.negative(v)
	c.SR &^= SRV
	if count >= w {
		c.setShiftCarry(count, neg)
		if neg {
			return size.Mask()
		}
		return 0
	}
	c.setShiftCarry(count, count >= 1 && bitAt(v, count-1))
	return uint32(int32(size.Extend(v)) >> count)
}

func (c *CPU) rol(v, count uint32, size Size) uint32 {
	w := size.Bits()
	v &= size.Mask()
	c.SR &^= SRV | SRC
	if count == 0 {
		return v
	}
	n := count % w
	r := (v<<n | v>>(w-n)) & size.Mask()
	c.setFlag(SRC, r&1 != 0)
	return r
}

func (c *CPU) ror(v, count uint32, size Size) uint32 {
	w := size.Bits()
	v &= size.Mask()
	c.SR &^= SRV | SRC
	if count == 0 {
		return v
	}
	n := count % w
	r := (v>>n | v<<(w-n)) & size.Mask()
	c.setFlag(SRC, size.negative(r))
	return r
}

// roxl rotates through X, which acts as a bit above the operand. With a
// zero count C is set to X.
func (c *CPU) roxl(v, count uint32, size Size) uint32 {
	w := size.Bits()
	v &= size.Mask()
	x := c.extend()
	for n := count % (w + 1); n > 0; n-- {
		out := v >> (w - 1) & 1
		v = (v<<1 | x) & size.Mask()
		x = out
	}
	c.SR &^= SRV
	c.setFlag(SRX, x != 0)
	c.setFlag(SRC, x != 0)
	return v
}

func (c *CPU) roxr(v, count uint32, size Size) uint32 {
	w := size.Bits()
	v &= size.Mask()
	x := c.extend()
	for n := count % (w + 1); n > 0; n-- {
		out := v & 1
		v = v>>1 | x<<(w-1)
		x = out
	}
	c.SR &^= SRV
	c.setFlag(SRX, x != 0)
	c.setFlag(SRC, x != 0)
	return v
}

func (c *CPU) opASL(i *Instruction) int  { return c.shift(i, c.asl) }
func (c *CPU) opASR(i *Instruction) int  { return c.shift(i, c.asr) }
func (c *CPU) opLSL(i *Instruction) int  { return c.shift(i, c.lsl) }
func (c *CPU) opLSR(i *Instruction) int  { return c.shift(i, c.lsr) }
func (c *CPU) opROL(i *Instruction) int  { return c.shift(i, c.rol) }
func (c *CPU) opROR(i *Instruction) int  { return c.shift(i, c.ror) }
func (c *CPU) opROXL(i *Instruction) int { return c.shift(i, c.roxl) }
func (c *CPU) opROXR(i *Instruction) int { return c.shift(i, c.roxr) }
