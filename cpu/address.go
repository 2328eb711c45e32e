package cpu

// Operand is one decoded instruction operand.
type Operand struct {
	Mode Mode
	// N is the register number, or the literal value for Quick operands.
	N uint32
	// Size overrides the instruction size for operands with a fixed width,
	// such as the bit number of BTST #n or the mask word of MOVEM.
	Size Size
}

func reg(m Mode, n uint16) *Operand {
	return &Operand{Mode: m, N: uint32(n & 7)}
}

func quick(v uint32) *Operand {
	return &Operand{Mode: Quick, N: v}
}

func immediate(size Size) *Operand {
	return &Operand{Mode: Immediate, Size: size}
}

// ea decodes a 6-bit mode/register field. Reserved encodings return nil.
func ea(field uint16) *Operand {
	mode := (field >> 3) & 7
	r := field & 7
	switch mode {
	case fieldData:
		return reg(DataRegister, r)
	case fieldAddr:
		return reg(AddressRegister, r)
	case fieldAddrInd:
		return reg(AddressIndirect, r)
	case fieldAddrPostInc:
		return reg(PostIncrement, r)
	case fieldAddrPreDec:
		return reg(PreDecrement, r)
	case fieldAddrDisp:
		return reg(Displacement, r)
	case fieldAddrIndex:
		return reg(Indexed, r)
	}
	switch r {
	case regAbsShort:
		return &Operand{Mode: AbsoluteShort}
	case regAbsLong:
		return &Operand{Mode: AbsoluteLong}
	case regPCDisp:
		return &Operand{Mode: PCDisplacement}
	case regPCIndex:
		return &Operand{Mode: PCIndexed}
	case regImmediate:
		return &Operand{Mode: Immediate}
	}
	return nil
}

// sizeFor returns the width the operand is accessed at.
func (o *Operand) sizeFor(size Size) Size {
	if o.Size != SizeNone {
		return o.Size
	}
	return size
}

// step is the (An)+ and -(An) adjustment. A7 stays word aligned.
func (o *Operand) step(size Size) uint32 {
	if size == SizeByte && o.N == 7 {
		return 2
	}
	return size.Bytes()
}

// EffectiveAddress computes the operand's address, consuming any extension
// words and applying the (An)+ and -(An) register updates. It must be called
// exactly once per operand per execution. For Immediate, Quick, BranchOffset
// and RegisterList operands the returned value is the literal itself.
func (c *CPU) EffectiveAddress(o *Operand, size Size) uint32 {
	size = o.sizeFor(size)
	switch o.Mode {
	case DataRegister, AddressRegister:
		return 0
	case AddressIndirect:
		return c.A[o.N]
	case PostIncrement:
		addr := c.A[o.N]
		c.A[o.N] += o.step(size)
		return addr
	case PreDecrement:
		c.A[o.N] -= o.step(size)
		return c.A[o.N]
	case Displacement:
		return c.A[o.N] + SizeWord.Extend(uint32(c.fetch()))
	case Indexed:
		return c.indexed(c.A[o.N])
	case AbsoluteShort:
		return SizeWord.Extend(uint32(c.fetch()))
	case AbsoluteLong:
		hi := uint32(c.fetch())
		return hi<<16 | uint32(c.fetch())
	case PCDisplacement:
		base := c.PC
		return base + SizeWord.Extend(uint32(c.fetch()))
	case PCIndexed:
		return c.indexed(c.PC)
	case Immediate:
		if size == SizeLong {
			hi := uint32(c.fetch())
			return hi<<16 | uint32(c.fetch())
		}
		v := uint32(c.fetch())
		if size == SizeByte {
			v &= 0xFF
		}
		return v
	case Quick:
		return o.N
	case BranchOffset:
		if size == SizeByte {
			return SizeByte.Extend(uint32(c.IR))
		}
		return SizeWord.Extend(uint32(c.fetch()))
	case RegisterList:
		return uint32(c.fetch())
	}
	panic(internalErrorf("no effective address for mode %s", o.Mode))
}

// indexed reads a brief extension word and adds its displacement and index
// register to base.
func (c *CPU) indexed(base uint32) uint32 {
	ext := c.fetch()
	r := (ext >> 12) & 7
	idx := c.D[r]
	if ext&0x8000 != 0 {
		idx = c.A[r]
	}
	if ext&0x0800 == 0 {
		idx = SizeWord.Extend(idx)
	}
	return base + SizeByte.Extend(uint32(ext)) + idx
}

// GetOperand reads an operand using an effective address computed earlier.
func (c *CPU) GetOperand(o *Operand, size Size, ea uint32) uint32 {
	size = o.sizeFor(size)
	switch o.Mode {
	case DataRegister:
		return c.D[o.N] & size.Mask()
	case AddressRegister:
		return c.A[o.N] & size.Mask()
	case Immediate, Quick, BranchOffset, RegisterList:
		return ea
	}
	return c.read(size, ea)
}

// PutOperand writes an operand using an effective address computed earlier.
// Data register writes keep the bits above the size. Address register
// writes are sign-extended to 32 bits.
func (c *CPU) PutOperand(o *Operand, size Size, ea uint32, v uint32) {
	size = o.sizeFor(size)
	switch o.Mode {
	case DataRegister:
		c.D[o.N] = size.merge(c.D[o.N], v)
	case AddressRegister:
		c.A[o.N] = size.Extend(v & size.Mask())
	case Immediate, Quick, BranchOffset, RegisterList:
		panic(internalErrorf("write to read-only operand %s", o.Mode))
	default:
		c.write(size, ea, v)
	}
}

// ref is an operand bound to the address it resolved to for one execution.
type ref struct {
	c    *CPU
	op   *Operand
	size Size
	ea   uint32
}

func (c *CPU) resolve(o *Operand, size Size) ref {
	size = o.sizeFor(size)
	return ref{c: c, op: o, size: size, ea: c.EffectiveAddress(o, size)}
}

func (r ref) get() uint32 {
	return r.c.GetOperand(r.op, r.size, r.ea)
}

func (r ref) set(v uint32) {
	r.c.PutOperand(r.op, r.size, r.ea, v)
}

// FetchGet resolves an operand and reads it.
func (c *CPU) FetchGet(o *Operand, size Size) uint32 {
	return c.resolve(o, size).get()
}

// FetchSet resolves an operand and writes it.
func (c *CPU) FetchSet(o *Operand, size Size, v uint32) {
	c.resolve(o, size).set(v)
}
