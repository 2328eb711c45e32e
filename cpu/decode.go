package cpu

import (
	"strings"
	"sync"
)

// Pattern matches a family of opcodes and builds instructions for them.
type Pattern struct {
	// Bits and Mask select the opcodes the pattern applies to:
	// opcode&Mask == Bits.
	Bits uint16
	Mask uint16
	// Src and Dst are the operand variants the pattern accepts. An empty
	// set means the operand must be absent.
	Src ModeSet
	Dst ModeSet

	generate func(opcode uint16) *Instruction
	cycles   func(*Instruction) int
}

// newPattern parses a 16 character bit pattern, most significant bit first.
// 0 and 1 are fixed bits, anything else is a field. Spaces are ignored.
func newPattern(bits string, src, dst ModeSet, generate func(uint16) *Instruction, cycles func(*Instruction) int) Pattern {
	bits = strings.ReplaceAll(bits, " ", "")
	if len(bits) != 16 {
		panic(internalErrorf("bad pattern %q", bits))
	}
	p := Pattern{Src: src, Dst: dst, generate: generate, cycles: cycles}
	for _, ch := range bits {
		p.Bits <<= 1
		p.Mask <<= 1
		switch ch {
		case '0':
			p.Mask |= 1
		case '1':
			p.Mask |= 1
			p.Bits |= 1
		}
	}
	return p
}

// Match reports whether the opcode has the pattern's fixed bits.
func (p *Pattern) Match(opcode uint16) bool {
	return opcode&p.Mask == p.Bits
}

// accepts validates a generated instruction against the pattern's size and
// operand constraints.
func (p *Pattern) accepts(i *Instruction) bool {
	if i == nil || i.Size == SizeInvalid {
		return false
	}
	return p.Src.admits(i.Src) && p.Dst.admits(i.Dst)
}

// Generate decodes an opcode with the first pattern that matches it and
// accepts the resulting instruction. It returns nil for opcodes that encode
// no instruction.
func Generate(opcode uint16) *Instruction {
	for n := range patterns {
		p := &patterns[n]
		if !p.Match(opcode) {
			continue
		}
		i := p.generate(opcode)
		if !p.accepts(i) {
			continue
		}
		i.Opcode = opcode
		if p.cycles != nil {
			i.BaseCycles = p.cycles(i)
		}
		return i
	}
	return nil
}

var (
	tableOnce sync.Once
	table     [65536]*Instruction
)

// OpcodeTable returns the instruction for every opcode, nil where none is
// encoded. It is built on first use and never modified afterwards.
func OpcodeTable() *[65536]*Instruction {
	tableOnce.Do(func() {
		for op := range table {
			table[op] = Generate(uint16(op))
		}
		Log.Debug("Opcode table built")
	})
	return &table
}

// Lookup returns the instruction for an opcode, or nil.
func Lookup(opcode uint16) *Instruction {
	return OpcodeTable()[opcode]
}
