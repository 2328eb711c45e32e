package cpu

import (
	"errors"
	"testing"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		code   []uint16
		want   string
		length uint32
	}{
		{[]uint16{OPNOP}, "nop", 2},
		{[]uint16{0x7010}, "moveq #16,d0", 2},
		{[]uint16{0x70FF}, "moveq #-1,d0", 2},
		{[]uint16{0x303C, 0x1234}, "move.w #$1234,d0", 4},
		{[]uint16{0x303C, 0x0010}, "move.w #16,d0", 4},
		{[]uint16{0xD040}, "add.w d0,d0", 2},
		{[]uint16{0x9441}, "sub.w d1,d2", 2},
		{[]uint16{0x43E8, 0x0008}, "lea (8,a0),a1", 4},
		{[]uint16{0x43E8, 0xFF00}, "lea ($ff00,a0),a1", 4},
		{[]uint16{0x43F0, 0x1804}, "lea (4,a0,d1.l),a1", 4},
		{[]uint16{0x41FA, 0x0006}, "lea (6,pc),a0", 4},
		{[]uint16{0x30FC, 0x1234}, "move.w #$1234,(a0)+", 4},
		{[]uint16{0x1F00}, "move.b d0,-(a7)", 2},
		{[]uint16{0x48E7, 0xC080}, "movem.l d0-d1/a0,-(a7)", 4},
		{[]uint16{0x4CDF, 0x0103}, "movem.l (a7)+,d0-d1/a0", 4},
		{[]uint16{0x4CDF, 0x7FFF}, "movem.l (a7)+,d0-d7/a0-a6", 4},
		{[]uint16{OPORItoCCR, 0x001F}, "ori.b #31,ccr", 4},
		{[]uint16{OPANDItoSR, 0xF8FF}, "andi.w #$f8ff,sr", 4},
		{[]uint16{0x40C1}, "move.w sr,d1", 2},
		{[]uint16{0x44C0}, "move.w d0,ccr", 2},
		{[]uint16{0x4E60}, "move.l a0,usp", 2},
		{[]uint16{0x4E69}, "move.l usp,a1", 2},
		{[]uint16{0x4EB9, 0x0000, 0x2000}, "jsr $2000.l", 6},
		{[]uint16{0x6002}, "bra $1004", 2},
		{[]uint16{0x6700, 0x0010}, "beq $1012", 4},
		{[]uint16{0x51C8, 0xFFFC}, "dbf d0,$ffe", 4},
		{[]uint16{0x0800, 0x0003}, "btst.l #3,d0", 4},
		{[]uint16{0x4E43}, "trap #3", 2},
		{[]uint16{0x4E56, 0xFFF8}, "link a6,#$fff8", 4},
		{[]uint16{0x5083}, "addq.l #8,d3", 2},
		{[]uint16{0xE3A8}, "lsl.l d1,d0", 2},
		{[]uint16{0xE1D0}, "asl.w #1,(a0)", 2},
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.code...)
		d, err := c.Disassemble(codeAt)
		if err != nil {
			t.Errorf("%04X: %v", tt.code[0], err)
			continue
		}
		if got := d.String(); got != tt.want {
			t.Errorf("%04X: got %q, want %q", tt.code[0], got, tt.want)
		}
		if d.Length != tt.length {
			t.Errorf("%s: length %d, want %d", tt.want, d.Length, tt.length)
		}
	}
}

func TestDisassembleTargets(t *testing.T) {
	tests := []struct {
		code   []uint16
		target uint32
		has    bool
	}{
		{[]uint16{0x6002}, codeAt + 4, true},
		{[]uint16{0x6100, 0x0100}, codeAt + 0x102, true},
		{[]uint16{0x4EB9, 0x0001, 0x0000}, 0x10000, true},
		{[]uint16{0x4EFA, 0x0010}, codeAt + 0x12, true},
		{[]uint16{0x4E90}, 0, false},
		{[]uint16{0x2039, 0x0001, 0x0000}, 0, false}, // move.l $10000.l,d0 is not a jump
		{[]uint16{0x50F9, 0x0001, 0x0000}, 0, false}, // st $10000.l
		{[]uint16{0x51C8, 0xFFFE}, codeAt, true},
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.code...)
		d, err := c.Disassemble(codeAt)
		if err != nil {
			t.Fatal(err)
		}
		if d.HasTarget != tt.has || d.Target != tt.target {
			t.Errorf("%s: target %06X (%v), want %06X (%v)", d, d.Target, d.HasTarget, tt.target, tt.has)
		}
	}
}

func TestDisassembleUnmapped(t *testing.T) {
	c, _ := setup(t, 0xFFFF)
	d, err := c.Disassemble(codeAt)
	if !errors.Is(err, ErrNoInstruction) {
		t.Errorf("err = %v", err)
	}
	if d.String() != "dc.w $ffff" || d.Length != 2 {
		t.Errorf("got %q, length %d", d.String(), d.Length)
	}
}

func TestDisassembleLeavesStateAlone(t *testing.T) {
	c, _ := setup(t, OPNOP, 0x303C, 0x1234, OPNOP)
	step(t, c)
	before := c.State()
	ir, irAddr := c.IR, c.IRAddr
	if _, err := c.Disassemble(codeAt + 2); err != nil {
		t.Fatal(err)
	}
	if c.State() != before || c.IR != ir || c.IRAddr != irAddr {
		t.Errorf("disassembly changed the CPU")
	}
	step(t, c)
	if c.D[0] != 0x1234 {
		t.Errorf("D0 = %08X after disassembly", c.D[0])
	}
}

func TestMaskList(t *testing.T) {
	tests := []struct {
		mask uint16
		want string
	}{
		{0x0001, "d0"},
		{0x00FF, "d0-d7"},
		{0x8001, "d0/a7"},
		{0x0505, "d0/d2/a0/a2"},
		{0x0000, ""},
	}
	for _, tt := range tests {
		if got := movemMaskToList(tt.mask); got != tt.want {
			t.Errorf("%04X: got %q, want %q", tt.mask, got, tt.want)
		}
	}
	if reverse16(0x8001) != 0x8001 || reverse16(0x0001) != 0x8000 {
		t.Errorf("reverse16 wrong")
	}
}
