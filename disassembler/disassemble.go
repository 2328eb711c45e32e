package disassembler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Urethramancer/m68kcore/cpu"
	"github.com/Urethramancer/m68kcore/memory"
)

// ErrTooLarge is returned when the image does not fit in the address space
// at the requested origin.
var ErrTooLarge = errors.New("image does not fit in the 24-bit address space")

// LabelType defines the context of a label.
type LabelType int

const (
	// JumpTarget is for a simple branch (BRA, BNE, etc.).
	JumpTarget LabelType = iota
	// SubroutineEntry is for a JSR or BSR target.
	SubroutineEntry
)

// Instruction represents a single decoded instruction at a specific address.
type Instruction struct {
	cpu.Disassembly
	// Valid is false for words that do not decode.
	Valid bool
	// IsCode marks instructions reachable from an entry point.
	IsCode bool
}

// Options controls where the image lives and where execution starts.
type Options struct {
	// Origin is the address of the first byte of the image.
	Origin uint32
	// Entries are the addresses reachability analysis starts from. Origin is
	// used when there are none.
	Entries []uint32
}

// Listing is the result of analysing an image.
type Listing struct {
	Origin       uint32
	Code         []byte
	Instructions map[uint32]*Instruction
	Labels       map[uint32]LabelType
}

// Disassemble lists code loaded at address 0, following control flow from
// the first word.
func Disassemble(code []byte) (string, error) {
	return DisassembleWith(code, Options{})
}

// DisassembleWith lists code with the given origin and entry points.
func DisassembleWith(code []byte, opt Options) (string, error) {
	l, err := Analyse(code, opt)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}

// Analyse decodes every word of the image and marks what is reachable.
func Analyse(code []byte, opt Options) (*Listing, error) {
	if uint64(opt.Origin)+uint64(len(code)) > memory.Size {
		return nil, fmt.Errorf("%d bytes at %06X: %w", len(code), opt.Origin, ErrTooLarge)
	}

	l := &Listing{
		Origin:       opt.Origin,
		Code:         code,
		Instructions: make(map[uint32]*Instruction),
		Labels:       make(map[uint32]LabelType),
	}
	if len(code) == 0 {
		return l, nil
	}

	ram := memory.NewRAM()
	ram.Load(opt.Origin, code)
	c := cpu.New(ram)
	end := opt.Origin + uint32(len(code))

	// Linear sweep: every even address gets a decode, overlapping or not.
	for addr := opt.Origin; addr+1 < end; addr += 2 {
		d, err := c.Disassemble(addr)
		inst := &Instruction{Disassembly: d, Valid: err == nil}
		if addr+d.Length > end {
			inst.Valid = false
		}
		l.Instructions[addr] = inst
	}

	// Control flow from the entry points.
	q := newQueue()
	entries := opt.Entries
	if len(entries) == 0 {
		entries = []uint32{opt.Origin}
	}
	for _, e := range entries {
		q.push(e)
	}
	for {
		addr, ok := q.pop()
		if !ok {
			break
		}
		inst, exists := l.Instructions[addr]
		if !exists || inst.IsCode || !inst.Valid {
			continue
		}
		inst.IsCode = true
		if !isTerminal(inst.Instruction.Mnemonic) {
			q.push(addr + inst.Length)
		}
		if !inst.HasTarget {
			continue
		}
		q.push(inst.Target)
		if isCall(inst.Instruction.Mnemonic) {
			l.Labels[inst.Target] = SubroutineEntry
		} else if _, seen := l.Labels[inst.Target]; !seen {
			l.Labels[inst.Target] = JumpTarget
		}
	}
	return l, nil
}

// String renders the listing with labels, and dc.b blocks for bytes that
// were never reached.
func (l *Listing) String() string {
	var out strings.Builder
	end := l.Origin + uint32(len(l.Code))
	for pc := l.Origin; pc < end; {
		if !l.isCode(pc) {
			dataEnd := pc
			for dataEnd < end && !l.isCode(dataEnd) {
				dataEnd++
			}
			out.WriteString(formatData(l.Code[pc-l.Origin:dataEnd-l.Origin], pc))
			pc = dataEnd
			continue
		}

		if lt, ok := l.Labels[pc]; ok {
			fmt.Fprintf(&out, "%s:\n", labelName(pc, lt))
		}
		inst := l.Instructions[pc]
		ops := inst.Operands
		if inst.HasTarget && len(ops) > 0 {
			if lt, ok := l.Labels[inst.Target]; ok {
				ops = append(ops[:len(ops)-1:len(ops)-1], labelName(inst.Target, lt))
			}
		}
		if len(ops) > 0 {
			fmt.Fprintf(&out, "    %-8s %s\n", inst.Mnemonic(), strings.Join(ops, ","))
		} else {
			fmt.Fprintf(&out, "    %s\n", inst.Mnemonic())
		}
		pc += inst.Length
	}
	return out.String()
}

func (l *Listing) isCode(addr uint32) bool {
	inst, ok := l.Instructions[addr]
	return ok && inst.IsCode
}

// isTerminal checks if an instruction unconditionally stops linear execution.
func isTerminal(mn string) bool {
	switch mn {
	case "rts", "rte", "rtr", "jmp", "bra", "illegal":
		return true
	}
	return false
}

func isCall(mn string) bool {
	return mn == "jsr" || mn == "bsr"
}

// labelName generates a label string based on the address and its context.
func labelName(addr uint32, labelType LabelType) string {
	prefix := "loc_"
	if labelType == SubroutineEntry {
		prefix = "sub_"
	}
	return fmt.Sprintf("%s%04X", prefix, addr)
}

// addrQueue is a simple worklist queue for addresses to decode.
type addrQueue struct {
	items []uint32
	seen  map[uint32]bool
}

func newQueue() *addrQueue {
	return &addrQueue{seen: make(map[uint32]bool)}
}

func (q *addrQueue) push(addr uint32) {
	addr &^= 1
	if !q.seen[addr] {
		q.items = append(q.items, addr)
		q.seen[addr] = true
	}
}

func (q *addrQueue) pop() (uint32, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	a := q.items[0]
	q.items = q.items[1:]
	return a, true
}
