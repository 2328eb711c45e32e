package cpu

// Field extraction.
func eaField(op uint16) *Operand { return ea(op & 0x3F) }
func regHigh(op uint16) uint16   { return (op >> 9) & 7 }
func moveDst(op uint16) *Operand { return ea((op>>3)&0x38 | (op>>9)&7) }
func quickData(op uint16) uint32 {
	if n := uint32(regHigh(op)); n != 0 {
		return n
	}
	return 8
}

func instruction(mn string, size Size, src, dst *Operand, h Handler) *Instruction {
	return &Instruction{Mnemonic: mn, Size: size, Src: src, Dst: dst, Handler: h}
}

func fixed(mn string, h Handler) func(uint16) *Instruction {
	return func(uint16) *Instruction {
		return instruction(mn, SizeNone, nil, nil, h)
	}
}

func constant(n int) func(*Instruction) int {
	return func(*Instruction) int { return n }
}

// Generators for the common encodings.

// immediateEA: op #imm,<ea> with the size in bits 7-6.
func immediateEA(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, sizeField(op>>6), immediate(SizeNone), eaField(op), h)
	}
}

// toStatus: op #imm,ccr or op #imm,sr.
func toStatus(mn string, size Size, h Handler) func(uint16) *Instruction {
	return func(uint16) *Instruction {
		i := instruction(mn, size, immediate(size), nil, h)
		i.Implicit = "sr"
		if size == SizeByte {
			i.Implicit = "ccr"
		}
		return i
	}
}

// bitSize is long for data registers and byte for memory.
func bitSize(dst *Operand) Size {
	if dst != nil && dst.Mode == DataRegister {
		return SizeLong
	}
	return SizeByte
}

func bitImmediate(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		dst := eaField(op)
		return instruction(mn, bitSize(dst), immediate(SizeWord), dst, h)
	}
}

func bitDynamic(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		dst := eaField(op)
		return instruction(mn, bitSize(dst), reg(DataRegister, regHigh(op)), dst, h)
	}
}

// single: op <ea> with the size in bits 7-6.
func single(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, sizeField(op>>6), nil, eaField(op), h)
	}
}

// eaToDn: op <ea>,Dn with the size in bits 7-6.
func eaToDn(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, sizeField(op>>6), eaField(op), reg(DataRegister, regHigh(op)), h)
	}
}

// dnToEA: op Dn,<ea> with the size in bits 7-6.
func dnToEA(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, sizeField(op>>6), reg(DataRegister, regHigh(op)), eaField(op), h)
	}
}

// eaToAn: op <ea>,An with the size in bit 8.
func eaToAn(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, wordOrLong(op>>8), eaField(op), reg(AddressRegister, regHigh(op)), h)
	}
}

// wordToDn: op <ea>,Dn on words, for MUL, DIV and CHK.
func wordToDn(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, SizeWord, eaField(op), reg(DataRegister, regHigh(op)), h)
	}
}

// extended: op Dy,Dx or op -(Ay),-(Ax), selected by bit 3.
func extended(mn string, size func(uint16) Size, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		m := DataRegister
		if op&8 != 0 {
			m = PreDecrement
		}
		return instruction(mn, size(op), reg(m, op), reg(m, regHigh(op)), h)
	}
}

func byteSize(uint16) Size            { return SizeByte }
func sizeBits76(op uint16) Size       { return sizeField(op >> 6) }
func quickOperand(op uint16) *Operand { return quick(quickData(op)) }

func quickEA(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, sizeField(op>>6), quickOperand(op), eaField(op), h)
	}
}

func move(op uint16) *Instruction {
	return instruction("move", moveSizeField(op>>12), eaField(op), moveDst(op), (*CPU).opMOVE)
}

func movea(op uint16) *Instruction {
	return instruction("movea", moveSizeField(op>>12), eaField(op), moveDst(op), (*CPU).opMOVEA)
}

func movep(op uint16) *Instruction {
	size := wordOrLong(op >> 6)
	d := reg(DataRegister, regHigh(op))
	m := reg(Displacement, op)
	if op&0x80 != 0 {
		return instruction("movep", size, d, m, (*CPU).opMOVEP)
	}
	return instruction("movep", size, m, d, (*CPU).opMOVEP)
}

func moveFromSR(op uint16) *Instruction {
	i := instruction("move", SizeWord, nil, eaField(op), (*CPU).opMOVEfromSR)
	i.Implicit = "sr"
	return i
}

func moveToStatus(implicit string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		i := instruction("move", SizeWord, eaField(op), nil, h)
		i.Implicit = implicit
		return i
	}
}

func moveToUSP(op uint16) *Instruction {
	i := instruction("move", SizeLong, reg(AddressRegister, op), nil, (*CPU).opMOVEUSP)
	i.Implicit = "usp"
	return i
}

func moveFromUSP(op uint16) *Instruction {
	i := instruction("move", SizeLong, nil, reg(AddressRegister, op), (*CPU).opMOVEUSP)
	i.Implicit = "usp"
	return i
}

// registerList is the MOVEM mask. N is 1 when the mask is in -(An) order.
func registerList(dst *Operand) *Operand {
	o := &Operand{Mode: RegisterList, Size: SizeWord}
	if dst != nil && dst.Mode == PreDecrement {
		o.N = 1
	}
	return o
}

func movemToMemory(op uint16) *Instruction {
	dst := eaField(op)
	return instruction("movem", wordOrLong(op>>6), registerList(dst), dst, (*CPU).opMOVEMtoMemory)
}

func movemToRegisters(op uint16) *Instruction {
	return instruction("movem", wordOrLong(op>>6), eaField(op), registerList(nil), (*CPU).opMOVEMtoRegisters)
}

func ext(op uint16) *Instruction {
	return instruction("ext", wordOrLong(op>>6), nil, reg(DataRegister, op), (*CPU).opEXT)
}

func swap(op uint16) *Instruction {
	return instruction("swap", SizeLong, nil, reg(DataRegister, op), (*CPU).opSWAP)
}

func lea(op uint16) *Instruction {
	return instruction("lea", SizeLong, eaField(op), reg(AddressRegister, regHigh(op)), (*CPU).opLEA)
}

func control(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, SizeLong, eaField(op), nil, h)
	}
}

func trap(op uint16) *Instruction {
	return instruction("trap", SizeNone, quick(uint32(op&0xF)), nil, (*CPU).opTRAP)
}

func link(op uint16) *Instruction {
	return instruction("link", SizeWord, reg(AddressRegister, op), immediate(SizeWord), (*CPU).opLINK)
}

func unlk(op uint16) *Instruction {
	return instruction("unlk", SizeLong, nil, reg(AddressRegister, op), (*CPU).opUNLK)
}

func stop(uint16) *Instruction {
	return instruction("stop", SizeWord, immediate(SizeWord), nil, (*CPU).opSTOP)
}

func reset(uint16) *Instruction {
	i := instruction("reset", SizeNone, nil, nil, (*CPU).opRESET)
	i.Stub = true
	return i
}

func tst(op uint16) *Instruction {
	return instruction("tst", sizeField(op>>6), eaField(op), nil, (*CPU).opTST)
}

func byteEA(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, SizeByte, nil, eaField(op), h)
	}
}

// branchOffset is an 8-bit displacement in the opcode, or a 16-bit one in
// the next word when the opcode's is zero.
func branchOffset(op uint16) *Operand {
	if op&0xFF == 0 {
		return &Operand{Mode: BranchOffset, Size: SizeWord}
	}
	return &Operand{Mode: BranchOffset, Size: SizeByte}
}

func branch(mn string, h Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction(mn, SizeNone, branchOffset(op), nil, h)
	}
}

func bcc(op uint16) *Instruction {
	cond := condition(op)
	i := instruction("b"+cond.Mnemonic, SizeNone, branchOffset(op), nil, (*CPU).opBcc)
	i.Condition = cond
	return i
}

func dbcc(op uint16) *Instruction {
	cond := condition(op)
	i := instruction("db"+cond.Mnemonic, SizeWord, reg(DataRegister, op),
		&Operand{Mode: BranchOffset, Size: SizeWord}, (*CPU).opDBcc)
	i.Condition = cond
	return i
}

func scc(op uint16) *Instruction {
	cond := condition(op)
	i := instruction("s"+cond.Mnemonic, SizeByte, nil, eaField(op), (*CPU).opScc)
	i.Condition = cond
	return i
}

func moveq(op uint16) *Instruction {
	return instruction("moveq", SizeLong, quick(uint32(op&0xFF)), reg(DataRegister, regHigh(op)), (*CPU).opMOVEQ)
}

func exg(src, dst Mode) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		return instruction("exg", SizeLong, reg(src, regHigh(op)), reg(dst, op), (*CPU).opEXG)
	}
}

func cmpm(op uint16) *Instruction {
	return instruction("cmpm", sizeField(op>>6), reg(PostIncrement, op), reg(PostIncrement, regHigh(op)), (*CPU).opCMP)
}

// shiftMemory: shift or rotate a word in memory by one bit.
func shiftMemory(left, right string, l, r Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		if op&0x100 != 0 {
			return instruction(left, SizeWord, quick(1), eaField(op), l)
		}
		return instruction(right, SizeWord, quick(1), eaField(op), r)
	}
}

// shiftRegister: shift or rotate a data register by an immediate count
// (bit 5 clear) or by a count in a data register.
func shiftRegister(left, right string, l, r Handler) func(uint16) *Instruction {
	return func(op uint16) *Instruction {
		src := quickOperand(op)
		if op&0x20 != 0 {
			src = reg(DataRegister, regHigh(op))
		}
		dst := reg(DataRegister, op)
		if op&0x100 != 0 {
			return instruction(left, sizeField(op>>6), src, dst, l)
		}
		return instruction(right, sizeField(op>>6), src, dst, r)
	}
}

// Timing.

func byLong(short, long func(*Instruction) int) func(*Instruction) int {
	return func(i *Instruction) int {
		if i.Size == SizeLong {
			return long(i)
		}
		return short(i)
	}
}

func arithmetic(toAn, toDn, toMemory, longAn, longDn, longMemory int) func(*Instruction) int {
	return func(i *Instruction) int {
		if i.Size == SizeLong {
			return arithmeticCycles(i, longAn, longDn, longMemory)
		}
		return arithmeticCycles(i, toAn, toDn, toMemory)
	}
}

func standard(toAn, toDn, toMemory, longAn, longDn, longMemory int) func(*Instruction) int {
	return func(i *Instruction) int {
		if i.Size == SizeLong {
			return standardCycles(i, longAn, longDn, longMemory)
		}
		return standardCycles(i, toAn, toDn, toMemory)
	}
}

func immediateTiming(dn, an, memory, longDn, longAn, longMemory int) func(*Instruction) int {
	return func(i *Instruction) int {
		if i.Size == SizeLong {
			return immediateCycles(i, longDn, longAn, longMemory)
		}
		return immediateCycles(i, dn, an, memory)
	}
}

func singleTiming(register, memory, longRegister, longMemory int) func(*Instruction) int {
	return func(i *Instruction) int {
		if i.Size == SizeLong {
			return singleOperandCycles(i, longRegister, longMemory)
		}
		return singleOperandCycles(i, register, memory)
	}
}

func bitTiming(register, memory int) func(*Instruction) int {
	return func(i *Instruction) int { return bitCycles(i, register, memory) }
}

func srcPlus(n int) func(*Instruction) int {
	return func(i *Instruction) int { return n + eaTime(i.Size, i.Src) }
}

func controlTiming(t *[7]int) func(*Instruction) int {
	return func(i *Instruction) int { return controlTime(t, i.Src) }
}

func extendedTiming(register, memory, longRegister, longMemory int) func(*Instruction) int {
	return func(i *Instruction) int {
		reg, mem := register, memory
		if i.Size == SizeLong {
			reg, mem = longRegister, longMemory
		}
		if i.Src.Mode == DataRegister {
			return reg
		}
		return mem
	}
}

func shiftTiming(i *Instruction) int {
	if i.Dst.Mode != DataRegister {
		return 8 + eaTime(i.Size, i.Dst)
	}
	if i.Size == SizeLong {
		return 8
	}
	return 6
}

// Operand sets used only by a few patterns.
var (
	setMovep       = modes(DataRegister, Displacement)
	setExtended    = modes(DataRegister, PreDecrement)
	setMovemStore  = modes(AddressIndirect, PreDecrement, Displacement, Indexed, AbsoluteShort, AbsoluteLong)
	setMovemLoad   = modes(AddressIndirect, PostIncrement, Displacement, Indexed, AbsoluteShort, AbsoluteLong, PCDisplacement, PCIndexed)
	setBitSource   = setData &^ setImm
	setShiftSource = setQuick | setDn
)

// patterns is searched in order; the first pattern that matches an opcode
// and accepts the generated instruction decodes it.
var patterns = []Pattern{
	// Immediate and bit manipulation
	newPattern("0000 0000 0011 1100", setImm, 0, toStatus("ori", SizeByte, (*CPU).opORItoCCR), constant(20)),
	newPattern("0000 0000 0111 1100", setImm, 0, toStatus("ori", SizeWord, (*CPU).opORItoSR), constant(20)),
	newPattern("0000 0000 ssmm mxxx", setImm, setDataAlt, immediateEA("ori", (*CPU).opOR), immediateTiming(8, 0, 12, 16, 0, 20)),
	newPattern("0000 0010 0011 1100", setImm, 0, toStatus("andi", SizeByte, (*CPU).opANDItoCCR), constant(20)),
	newPattern("0000 0010 0111 1100", setImm, 0, toStatus("andi", SizeWord, (*CPU).opANDItoSR), constant(20)),
	newPattern("0000 0010 ssmm mxxx", setImm, setDataAlt, immediateEA("andi", (*CPU).opAND), immediateTiming(8, 0, 12, 14, 0, 20)),
	newPattern("0000 0100 ssmm mxxx", setImm, setDataAlt, immediateEA("subi", (*CPU).opSUB), immediateTiming(8, 0, 12, 16, 0, 20)),
	newPattern("0000 0110 ssmm mxxx", setImm, setDataAlt, immediateEA("addi", (*CPU).opADD), immediateTiming(8, 0, 12, 16, 0, 20)),
	newPattern("0000 1010 0011 1100", setImm, 0, toStatus("eori", SizeByte, (*CPU).opEORItoCCR), constant(20)),
	newPattern("0000 1010 0111 1100", setImm, 0, toStatus("eori", SizeWord, (*CPU).opEORItoSR), constant(20)),
	newPattern("0000 1010 ssmm mxxx", setImm, setDataAlt, immediateEA("eori", (*CPU).opEOR), immediateTiming(8, 0, 12, 16, 0, 20)),
	newPattern("0000 1100 ssmm mxxx", setImm, setDataAlt, immediateEA("cmpi", (*CPU).opCMP), immediateTiming(8, 0, 8, 14, 0, 12)),
	newPattern("0000 1000 00mm mxxx", setImm, setBitSource, bitImmediate("btst", (*CPU).opBTST), bitTiming(10, 8)),
	newPattern("0000 1000 01mm mxxx", setImm, setDataAlt, bitImmediate("bchg", (*CPU).opBCHG), bitTiming(12, 12)),
	newPattern("0000 1000 10mm mxxx", setImm, setDataAlt, bitImmediate("bclr", (*CPU).opBCLR), bitTiming(14, 12)),
	newPattern("0000 1000 11mm mxxx", setImm, setDataAlt, bitImmediate("bset", (*CPU).opBSET), bitTiming(12, 12)),
	newPattern("0000 rrr1 00mm mxxx", setDn, setData, bitDynamic("btst", (*CPU).opBTST), bitTiming(6, 4)),
	newPattern("0000 rrr1 01mm mxxx", setDn, setDataAlt, bitDynamic("bchg", (*CPU).opBCHG), bitTiming(8, 8)),
	newPattern("0000 rrr1 10mm mxxx", setDn, setDataAlt, bitDynamic("bclr", (*CPU).opBCLR), bitTiming(10, 8)),
	newPattern("0000 rrr1 11mm mxxx", setDn, setDataAlt, bitDynamic("bset", (*CPU).opBSET), bitTiming(8, 8)),
	newPattern("0000 rrr1 ss00 1xxx", setMovep, setMovep, movep, byLong(constant(16), constant(24))),

	// Moves
	newPattern("0011 rrr0 01mm mxxx", setAll, setAn, movea, moveTime),
	newPattern("0010 rrr0 01mm mxxx", setAll, setAn, movea, moveTime),
	newPattern("0001 rrrm mmmm mxxx", setData, setDataAlt, move, moveTime),
	newPattern("0011 rrrm mmmm mxxx", setAll, setDataAlt, move, moveTime),
	newPattern("0010 rrrm mmmm mxxx", setAll, setDataAlt, move, moveTime),

	// Miscellaneous
	newPattern("0100 0000 11mm mxxx", 0, setDataAlt, moveFromSR, singleTiming(6, 8, 6, 8)),
	newPattern("0100 0100 11mm mxxx", setData, 0, moveToStatus("ccr", (*CPU).opMOVEtoCCR), srcPlus(12)),
	newPattern("0100 0110 11mm mxxx", setData, 0, moveToStatus("sr", (*CPU).opMOVEtoSR), srcPlus(12)),
	newPattern("0100 0000 ssmm mxxx", 0, setDataAlt, single("negx", (*CPU).opNEGX), singleTiming(4, 8, 6, 12)),
	newPattern("0100 0010 ssmm mxxx", 0, setDataAlt, single("clr", (*CPU).opCLR), singleTiming(4, 8, 6, 12)),
	newPattern("0100 0100 ssmm mxxx", 0, setDataAlt, single("neg", (*CPU).opNEG), singleTiming(4, 8, 6, 12)),
	newPattern("0100 0110 ssmm mxxx", 0, setDataAlt, single("not", (*CPU).opNOT), singleTiming(4, 8, 6, 12)),
	newPattern("0100 1000 1s00 0xxx", 0, setDn, ext, constant(4)),
	newPattern("0100 1000 00mm mxxx", 0, setDataAlt, byteEA("nbcd", (*CPU).opNBCD), singleTiming(6, 8, 6, 8)),
	newPattern("0100 1000 0100 0xxx", 0, setDn, swap, constant(4)),
	newPattern("0100 1000 01mm mxxx", setControl, 0, control("pea", (*CPU).opPEA), controlTiming(&peaCycles)),
	newPattern("0100 1010 1111 1100", 0, 0, fixed("illegal", (*CPU).opILLEGAL), constant(trapCycles)),
	newPattern("0100 1010 11mm mxxx", 0, setDataAlt, byteEA("tas", (*CPU).opTAS), singleTiming(4, 10, 4, 10)),
	newPattern("0100 1010 ssmm mxxx", setDataAlt, 0, tst, singleTiming(4, 4, 4, 4)),
	newPattern("0100 1110 0100 vvvv", setQuick, 0, trap, constant(trapCycles)),
	newPattern("0100 1110 0101 0xxx", setAn, setImm, link, constant(16)),
	newPattern("0100 1110 0101 1xxx", 0, setAn, unlk, constant(12)),
	newPattern("0100 1110 0110 0xxx", setAn, 0, moveToUSP, constant(4)),
	newPattern("0100 1110 0110 1xxx", 0, setAn, moveFromUSP, constant(4)),
	newPattern("0100 1110 0111 0000", 0, 0, reset, constant(132)),
	newPattern("0100 1110 0111 0001", 0, 0, fixed("nop", (*CPU).opNOP), constant(4)),
	newPattern("0100 1110 0111 0010", setImm, 0, stop, constant(4)),
	newPattern("0100 1110 0111 0011", 0, 0, fixed("rte", (*CPU).opRTE), constant(20)),
	newPattern("0100 1110 0111 0101", 0, 0, fixed("rts", (*CPU).opRTS), constant(16)),
	newPattern("0100 1110 0111 0110", 0, 0, fixed("trapv", (*CPU).opTRAPV), constant(4)),
	newPattern("0100 1110 0111 0111", 0, 0, fixed("rtr", (*CPU).opRTR), constant(20)),
	newPattern("0100 1110 10mm mxxx", setControl, 0, control("jsr", (*CPU).opJSR), controlTiming(&jsrCycles)),
	newPattern("0100 1110 11mm mxxx", setControl, 0, control("jmp", (*CPU).opJMP), controlTiming(&jmpCycles)),
	newPattern("0100 1000 1smm mxxx", setList, setMovemStore, movemToMemory, func(i *Instruction) int { return controlTime(&movemStoreCycles, i.Dst) }),
	newPattern("0100 1100 1smm mxxx", setMovemLoad, setList, movemToRegisters, func(i *Instruction) int { return controlTime(&movemLoadCycles, i.Src) }),
	newPattern("0100 rrr1 11mm mxxx", setControl, setAn, lea, controlTiming(&leaCycles)),
	newPattern("0100 rrr1 10mm mxxx", setData, setDn, wordToDn("chk", (*CPU).opCHK), srcPlus(10)),

	// Quick arithmetic, conditionals
	newPattern("0101 ddd0 00mm mxxx", setQuick, setDataAlt, quickEA("addq", (*CPU).opADDQ), immediateTiming(4, 0, 8, 8, 8, 12)),
	newPattern("0101 ddd0 01mm mxxx", setQuick, setAlt, quickEA("addq", (*CPU).opADDQ), immediateTiming(4, 8, 8, 8, 8, 12)),
	newPattern("0101 ddd0 10mm mxxx", setQuick, setAlt, quickEA("addq", (*CPU).opADDQ), immediateTiming(4, 8, 8, 8, 8, 12)),
	newPattern("0101 ddd1 00mm mxxx", setQuick, setDataAlt, quickEA("subq", (*CPU).opSUBQ), immediateTiming(4, 0, 8, 8, 8, 12)),
	newPattern("0101 ddd1 01mm mxxx", setQuick, setAlt, quickEA("subq", (*CPU).opSUBQ), immediateTiming(4, 8, 8, 8, 8, 12)),
	newPattern("0101 ddd1 10mm mxxx", setQuick, setAlt, quickEA("subq", (*CPU).opSUBQ), immediateTiming(4, 8, 8, 8, 8, 12)),
	newPattern("0101 cccc 1100 1xxx", setDn, setBranch, dbcc, constant(0)),
	newPattern("0101 cccc 11mm mxxx", 0, setDataAlt, scc, singleTiming(4, 8, 4, 8)),
	newPattern("0110 0000 dddd dddd", setBranch, 0, branch("bra", (*CPU).opBRA), constant(10)),
	newPattern("0110 0001 dddd dddd", setBranch, 0, branch("bsr", (*CPU).opBSR), constant(18)),
	newPattern("0110 cccc dddd dddd", setBranch, 0, bcc, constant(0)),
	newPattern("0111 rrr0 dddd dddd", setQuick, setDn, moveq, constant(4)),

	// OR, DIV, SBCD
	newPattern("1000 rrr0 11mm mxxx", setData, setDn, wordToDn("divu", (*CPU).opDIVU), srcPlus(140)),
	newPattern("1000 rrr1 11mm mxxx", setData, setDn, wordToDn("divs", (*CPU).opDIVS), srcPlus(158)),
	newPattern("1000 rrr1 0000 ryyy", setExtended, setExtended, extended("sbcd", byteSize, (*CPU).opSBCD), extendedTiming(6, 18, 6, 18)),
	newPattern("1000 rrr0 ssmm mxxx", setData, setDn, eaToDn("or", (*CPU).opOR), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1000 rrr1 ssmm mxxx", setDn, setMemAlt, dnToEA("or", (*CPU).opOR), arithmetic(0, 0, 8, 0, 0, 12)),

	// SUB
	newPattern("1001 rrr0 00mm mxxx", setData, setDn, eaToDn("sub", (*CPU).opSUB), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1001 rrr0 01mm mxxx", setAll, setDn, eaToDn("sub", (*CPU).opSUB), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1001 rrr0 10mm mxxx", setAll, setDn, eaToDn("sub", (*CPU).opSUB), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1001 rrr1 ss00 ryyy", setExtended, setExtended, extended("subx", sizeBits76, (*CPU).opSUBX), extendedTiming(4, 18, 8, 30)),
	newPattern("1001 rrr1 ssmm mxxx", setDn, setMemAlt, dnToEA("sub", (*CPU).opSUB), arithmetic(0, 0, 8, 0, 0, 12)),
	newPattern("1001 rrrs 11mm mxxx", setAll, setAn, eaToAn("suba", (*CPU).opSUBA), arithmetic(8, 0, 0, 6, 0, 0)),

	// CMP, EOR
	newPattern("1011 rrr1 ss00 1yyy", setPostInc, setPostInc, cmpm, byLong(constant(12), constant(20))),
	newPattern("1011 rrr1 ssmm mxxx", setDn, setDataAlt, dnToEA("eor", (*CPU).opEOR), standard(0, 4, 8, 0, 8, 12)),
	newPattern("1011 rrr0 00mm mxxx", setData, setDn, eaToDn("cmp", (*CPU).opCMP), standard(0, 4, 0, 0, 6, 0)),
	newPattern("1011 rrr0 01mm mxxx", setAll, setDn, eaToDn("cmp", (*CPU).opCMP), standard(0, 4, 0, 0, 6, 0)),
	newPattern("1011 rrr0 10mm mxxx", setAll, setDn, eaToDn("cmp", (*CPU).opCMP), standard(0, 4, 0, 0, 6, 0)),
	newPattern("1011 rrrs 11mm mxxx", setAll, setAn, eaToAn("cmpa", (*CPU).opCMPA), standard(6, 0, 0, 6, 0, 0)),

	// AND, MUL, ABCD, EXG
	newPattern("1100 rrr0 11mm mxxx", setData, setDn, wordToDn("mulu", (*CPU).opMULU), srcPlus(38)),
	newPattern("1100 rrr1 11mm mxxx", setData, setDn, wordToDn("muls", (*CPU).opMULS), srcPlus(38)),
	newPattern("1100 rrr1 0000 ryyy", setExtended, setExtended, extended("abcd", byteSize, (*CPU).opABCD), extendedTiming(6, 18, 6, 18)),
	newPattern("1100 xxx1 0100 0yyy", setDn, setDn, exg(DataRegister, DataRegister), constant(6)),
	newPattern("1100 xxx1 0100 1yyy", setAn, setAn, exg(AddressRegister, AddressRegister), constant(6)),
	newPattern("1100 xxx1 1000 1yyy", setDn, setAn, exg(DataRegister, AddressRegister), constant(6)),
	newPattern("1100 rrr0 ssmm mxxx", setData, setDn, eaToDn("and", (*CPU).opAND), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1100 rrr1 ssmm mxxx", setDn, setMemAlt, dnToEA("and", (*CPU).opAND), arithmetic(0, 0, 8, 0, 0, 12)),

	// ADD
	newPattern("1101 rrr0 00mm mxxx", setData, setDn, eaToDn("add", (*CPU).opADD), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1101 rrr0 01mm mxxx", setAll, setDn, eaToDn("add", (*CPU).opADD), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1101 rrr0 10mm mxxx", setAll, setDn, eaToDn("add", (*CPU).opADD), arithmetic(0, 4, 0, 0, 6, 0)),
	newPattern("1101 rrr1 ss00 ryyy", setExtended, setExtended, extended("addx", sizeBits76, (*CPU).opADDX), extendedTiming(4, 18, 8, 30)),
	newPattern("1101 rrr1 ssmm mxxx", setDn, setMemAlt, dnToEA("add", (*CPU).opADD), arithmetic(0, 0, 8, 0, 0, 12)),
	newPattern("1101 rrrs 11mm mxxx", setAll, setAn, eaToAn("adda", (*CPU).opADDA), arithmetic(8, 0, 0, 6, 0, 0)),

	// Shifts and rotates
	newPattern("1110 000d 11mm mxxx", setQuick, setMemAlt, shiftMemory("asl", "asr", (*CPU).opASL, (*CPU).opASR), shiftTiming),
	newPattern("1110 001d 11mm mxxx", setQuick, setMemAlt, shiftMemory("lsl", "lsr", (*CPU).opLSL, (*CPU).opLSR), shiftTiming),
	newPattern("1110 010d 11mm mxxx", setQuick, setMemAlt, shiftMemory("roxl", "roxr", (*CPU).opROXL, (*CPU).opROXR), shiftTiming),
	newPattern("1110 011d 11mm mxxx", setQuick, setMemAlt, shiftMemory("rol", "ror", (*CPU).opROL, (*CPU).opROR), shiftTiming),
	newPattern("1110 cccd ssi0 0yyy", setShiftSource, setDn, shiftRegister("asl", "asr", (*CPU).opASL, (*CPU).opASR), shiftTiming),
	newPattern("1110 cccd ssi0 1yyy", setShiftSource, setDn, shiftRegister("lsl", "lsr", (*CPU).opLSL, (*CPU).opLSR), shiftTiming),
	newPattern("1110 cccd ssi1 0yyy", setShiftSource, setDn, shiftRegister("roxl", "roxr", (*CPU).opROXL, (*CPU).opROXR), shiftTiming),
	newPattern("1110 cccd ssi1 1yyy", setShiftSource, setDn, shiftRegister("rol", "ror", (*CPU).opROL, (*CPU).opROR), shiftTiming),
}
