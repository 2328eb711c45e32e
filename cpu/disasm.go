package cpu

import (
	"fmt"
	"strings"
)

// Disassembly is the text form of one instruction.
type Disassembly struct {
	Address     uint32
	Opcode      uint16
	Instruction *Instruction
	Operands    []string
	// Length in bytes, extension words included.
	Length uint32
	// Target is where a branch, jump or call goes, when known without
	// executing it. HasTarget reports whether it is set.
	Target    uint32
	HasTarget bool
}

// Mnemonic includes the size suffix, e.g. "move.w".
func (d Disassembly) Mnemonic() string {
	if d.Instruction == nil {
		return "dc.w"
	}
	return d.Instruction.String()
}

func (d Disassembly) String() string {
	if len(d.Operands) == 0 {
		return d.Mnemonic()
	}
	return d.Mnemonic() + " " + strings.Join(d.Operands, ",")
}

// Disassemble decodes the instruction at addr without executing it. CPU
// registers and the prefetch queue are left untouched; extension words are
// read straight from the bus.
func (c *CPU) Disassemble(addr uint32) (Disassembly, error) {
	addr &= AddressMask
	op := c.read16(addr)
	d := Disassembly{Address: addr, Opcode: op, Length: 2}
	inst := c.table[op]
	if inst == nil {
		d.Operands = []string{fmt.Sprintf("$%04x", op)}
		return d, fmt.Errorf("%06X: %04X: %w", addr, op, ErrNoInstruction)
	}
	d.Instruction = inst

	f := formatter{c: c, inst: inst, addr: addr, pc: addr + 2}
	var src, dst string
	// Extension words come in encoding order, where the MOVEM mask is first.
	if inst.Dst != nil && inst.Dst.Mode == RegisterList {
		dst = f.operand(inst.Dst)
		src = f.operand(inst.Src)
	} else {
		src = f.operand(inst.Src)
		dst = f.operand(inst.Dst)
	}
	switch {
	case inst.Implicit != "" && inst.Src == nil:
		src = inst.Implicit
	case inst.Implicit != "" && inst.Dst == nil:
		dst = inst.Implicit
	}
	for _, s := range []string{src, dst} {
		if s != "" {
			d.Operands = append(d.Operands, s)
		}
	}
	d.Length = f.pc - addr
	if inst.Mnemonic == "jmp" || inst.Mnemonic == "jsr" || isBranch(inst) {
		d.Target, d.HasTarget = f.target, f.hasTarget
	}
	return d, nil
}

func isBranch(i *Instruction) bool {
	return (i.Src != nil && i.Src.Mode == BranchOffset) || (i.Dst != nil && i.Dst.Mode == BranchOffset)
}

// formatter renders operands, reading extension words from its own cursor.
type formatter struct {
	c    *CPU
	inst *Instruction
	addr uint32
	pc   uint32

	target    uint32
	hasTarget bool
}

func (f *formatter) word() uint16 {
	w := f.c.read16(f.pc)
	f.pc += 2
	return w
}

func (f *formatter) setTarget(t uint32) {
	f.target = t & AddressMask
	f.hasTarget = true
}

func (f *formatter) operand(o *Operand) string {
	if o == nil {
		return ""
	}
	size := o.sizeFor(f.inst.Size)
	switch o.Mode {
	case DataRegister:
		return fmt.Sprintf("d%d", o.N)
	case AddressRegister:
		return fmt.Sprintf("a%d", o.N)
	case AddressIndirect:
		return fmt.Sprintf("(a%d)", o.N)
	case PostIncrement:
		return fmt.Sprintf("(a%d)+", o.N)
	case PreDecrement:
		return fmt.Sprintf("-(a%d)", o.N)
	case Displacement:
		return fmt.Sprintf("(%s,a%d)", formatDisp16(int16(f.word())), o.N)
	case Indexed:
		ext := f.word()
		return fmt.Sprintf("(%s,a%d,%s)", formatDisp8(int8(ext)), o.N, indexRegister(ext))
	case AbsoluteShort:
		w := f.word()
		f.setTarget(SizeWord.Extend(uint32(w)))
		return fmt.Sprintf("$%x.w", w)
	case AbsoluteLong:
		hi := uint32(f.word())
		v := hi<<16 | uint32(f.word())
		f.setTarget(v)
		return fmt.Sprintf("$%x.l", v)
	case PCDisplacement:
		base := f.pc
		d := int16(f.word())
		f.setTarget(base + uint32(int32(d)))
		return fmt.Sprintf("(%s,pc)", formatDisp16(d))
	case PCIndexed:
		ext := f.word()
		return fmt.Sprintf("(%s,pc,%s)", formatDisp8(int8(ext)), indexRegister(ext))
	case Immediate:
		return f.immediate(size)
	case Quick:
		if f.inst.Mnemonic == "moveq" {
			return fmt.Sprintf("#%d", int8(o.N))
		}
		return fmt.Sprintf("#%d", o.N)
	case BranchOffset:
		var disp uint32
		if size == SizeByte {
			disp = SizeByte.Extend(uint32(f.inst.Opcode))
		} else {
			disp = SizeWord.Extend(uint32(f.word()))
		}
		f.setTarget(f.addr + 2 + disp)
		return fmt.Sprintf("$%x", f.target)
	case RegisterList:
		mask := f.word()
		if o.N == 1 {
			mask = reverse16(mask)
		}
		return movemMaskToList(mask)
	}
	return "?"
}

func (f *formatter) immediate(size Size) string {
	switch size {
	case SizeByte:
		return fmt.Sprintf("#%d", int8(f.word()))
	case SizeWord:
		w := int16(f.word())
		if w >= 0 && w <= 255 {
			return fmt.Sprintf("#%d", w)
		}
		return fmt.Sprintf("#$%x", uint16(w))
	}
	hi := uint32(f.word())
	return fmt.Sprintf("#$%x", hi<<16|uint32(f.word()))
}

func indexRegister(ext uint16) string {
	kind := "d"
	if ext&0x8000 != 0 {
		kind = "a"
	}
	size := "w"
	if ext&0x0800 != 0 {
		size = "l"
	}
	return fmt.Sprintf("%s%d.%s", kind, (ext>>12)&7, size)
}

func formatDisp8(v int8) string {
	if v >= -9 && v <= 9 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("$%x", uint8(v))
}

func formatDisp16(v int16) string {
	if v >= -9 && v <= 9 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("$%x", uint16(v))
}

func reverse16(v uint16) uint16 {
	var r uint16
	for n := 0; n < 16; n++ {
		r = r<<1 | v&1
		v >>= 1
	}
	return r
}

// movemMaskToList turns a register mask (bit 0 = d0, bit 15 = a7) into a
// list such as "d0-d3/a0/a6".
func movemMaskToList(mask uint16) string {
	var parts []string
	for _, bank := range []struct {
		prefix string
		shift  int
	}{{"d", 0}, {"a", 8}} {
		for n := 0; n < 8; n++ {
			if mask&(1<<(bank.shift+n)) == 0 {
				continue
			}
			end := n
			for end+1 < 8 && mask&(1<<(bank.shift+end+1)) != 0 {
				end++
			}
			if end == n {
				parts = append(parts, fmt.Sprintf("%s%d", bank.prefix, n))
			} else {
				parts = append(parts, fmt.Sprintf("%s%d-%s%d", bank.prefix, n, bank.prefix, end))
			}
			n = end
		}
	}
	return strings.Join(parts, "/")
}
