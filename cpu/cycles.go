package cpu

// Effective address calculation time, indexed by [long][mode] for the
// modes up to Immediate.
var eaCycles = [2][12]int{
	{0, 0, 4, 4, 6, 8, 10, 8, 12, 8, 10, 4},   // byte, word
	{0, 0, 8, 8, 10, 12, 14, 12, 16, 12, 14, 8}, // long
}

// MOVE timing indexed by [long][source mode][destination mode]. The
// destination columns stop at (xxx).l, the last alterable mode.
var moveCycles = [2][12][9]int{
	{
		{4, 4, 8, 8, 8, 12, 14, 12, 16},
		{4, 4, 8, 8, 8, 12, 14, 12, 16},
		{8, 8, 12, 12, 12, 16, 18, 16, 20},
		{8, 8, 12, 12, 12, 16, 18, 16, 20},
		{10, 10, 14, 14, 14, 18, 20, 18, 22},
		{12, 12, 16, 16, 16, 20, 22, 20, 24},
		{14, 14, 18, 18, 18, 22, 24, 22, 26},
		{12, 12, 16, 16, 16, 20, 22, 20, 24},
		{16, 16, 20, 20, 20, 24, 26, 24, 28},
		{12, 12, 16, 16, 16, 20, 22, 20, 24},
		{14, 14, 18, 18, 18, 22, 24, 22, 26},
		{8, 8, 12, 12, 12, 16, 18, 16, 20},
	},
	{
		{4, 4, 12, 12, 12, 16, 18, 16, 20},
		{4, 4, 12, 12, 12, 16, 18, 16, 20},
		{12, 12, 20, 20, 20, 24, 26, 24, 28},
		{12, 12, 20, 20, 20, 24, 26, 24, 28},
		{14, 14, 22, 22, 22, 26, 28, 26, 30},
		{16, 16, 24, 24, 24, 28, 30, 28, 32},
		{18, 18, 26, 26, 26, 30, 32, 30, 34},
		{16, 16, 24, 24, 24, 28, 30, 28, 32},
		{20, 20, 28, 28, 28, 32, 34, 32, 36},
		{16, 16, 24, 24, 24, 28, 30, 28, 32},
		{18, 18, 26, 26, 26, 30, 32, 30, 34},
		{12, 12, 20, 20, 20, 24, 26, 24, 28},
	},
}

// Control instruction timing (JMP, JSR, LEA, PEA, MOVEM) is indexed by
// controlIndexOf: (An), (d16,An), (d8,An,Xn), (xxx).w, (xxx).l, (d16,PC), (d8,PC,Xn).
var (
	jmpCycles        = [7]int{8, 10, 14, 10, 12, 10, 14}
	jsrCycles        = [7]int{16, 18, 22, 18, 20, 18, 22}
	leaCycles        = [7]int{4, 8, 12, 8, 12, 8, 12}
	peaCycles        = [7]int{12, 16, 20, 16, 20, 16, 20}
	movemLoadCycles  = [7]int{12, 16, 18, 16, 20, 16, 18}
	movemStoreCycles = [7]int{8, 12, 14, 12, 16, 0, 0}
	controlIndexOf   = map[Mode]int{
		AddressIndirect: 0, PostIncrement: 0, PreDecrement: 0,
		Displacement: 1, Indexed: 2, AbsoluteShort: 3, AbsoluteLong: 4,
		PCDisplacement: 5, PCIndexed: 6,
	}
)

func isLong(size Size) int {
	switch size {
	case SizeByte, SizeWord:
		return 0
	case SizeLong:
		return 1
	}
	panic(internalErrorf("no timing for size %s", size))
}

// eaTime is the effective address calculation time of an operand.
func eaTime(size Size, o *Operand) int {
	if o == nil || o.Mode > Immediate {
		return 0
	}
	return eaCycles[isLong(o.sizeFor(size))][o.Mode]
}

func controlTime(table *[7]int, o *Operand) int {
	idx, ok := controlIndexOf[o.Mode]
	if !ok {
		panic(internalErrorf("no control timing for mode %s", o.Mode))
	}
	return table[idx]
}

// standardCycles times the two-operand arithmetic and logic instructions by
// destination: into An, into Dn, or from Dn into memory. Effective address
// time for both operands is added.
func standardCycles(i *Instruction, toAn, toDn, toMemory int) int {
	var n int
	switch {
	case i.Dst.Mode == AddressRegister:
		n = toAn
	case i.Dst.Mode == DataRegister:
		n = toDn
	default:
		n = toMemory
	}
	return n + eaTime(i.Size, i.Src) + eaTime(i.Size, i.Dst)
}

// arithmeticCycles is standardCycles with the long-size rule for ADD, SUB,
// AND, OR, ADDA and SUBA: a register destination costs two more cycles when
// the source is a register or immediate.
func arithmeticCycles(i *Instruction, toAn, toDn, toMemory int) int {
	n := standardCycles(i, toAn, toDn, toMemory)
	if i.Size == SizeLong && (i.Dst.Mode == DataRegister || i.Dst.Mode == AddressRegister) {
		switch i.Src.Mode {
		case DataRegister, AddressRegister, Immediate:
			n += 2
		}
	}
	return n
}

// immediateCycles times the immediate and quick instructions. The
// immediate fetch is part of the given numbers.
func immediateCycles(i *Instruction, dn, an, memory int) int {
	switch i.Dst.Mode {
	case DataRegister:
		return dn
	case AddressRegister:
		return an
	}
	return memory + eaTime(i.Size, i.Dst)
}

// singleOperandCycles times the one-operand instructions.
func singleOperandCycles(i *Instruction, register, memory int) int {
	o := i.Dst
	if o == nil {
		o = i.Src
	}
	if o.Mode == DataRegister || o.Mode == AddressRegister {
		return register
	}
	return memory + eaTime(i.Size, o)
}

// bitCycles times the bit manipulation instructions.
func bitCycles(i *Instruction, register, memory int) int {
	if i.Dst.Mode == DataRegister {
		return register
	}
	return memory + eaTime(i.Size, i.Dst)
}

// moveTime looks up MOVE and MOVEA timing.
func moveTime(i *Instruction) int {
	return moveCycles[isLong(i.Size)][i.Src.Mode][i.Dst.Mode]
}
