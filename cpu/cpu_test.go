package cpu

import (
	"io"
	"testing"

	"github.com/Urethramancer/m68kcore/memory"
)

const (
	codeAt  = 0x1000
	stackAt = 0x8000
)

// setup returns a CPU after reset with code at codeAt and the supervisor
// stack at stackAt.
func setup(t *testing.T, code ...uint16) (*CPU, *memory.RAM) {
	t.Helper()
	Log.SetOutput(io.Discard)
	ram := memory.NewRAM()
	ram.Write32(0, stackAt)
	ram.Write32(4, codeAt)
	ram.LoadWords(codeAt, code...)
	c := New(ram)
	c.Reset()
	c.Running = true
	return c, ram
}

func step(t *testing.T, c *CPU) Result {
	t.Helper()
	r := c.Step()
	if r.Status != StepOK {
		t.Fatalf("step at %06X: status %s", r.Address, r.Status)
	}
	return r
}

// ccr renders the condition codes for comparisons.
func ccr(c *CPU) string {
	return State{SR: c.SR}.Flags()
}

// bin parses an opcode written in binary, with spaces between fields.
func bin(s string) uint16 {
	var v uint16
	for _, ch := range s {
		switch ch {
		case '0', '1':
			v = v<<1 | uint16(ch-'0')
		case ' ':
		default:
			panic("bad binary digit in " + s)
		}
	}
	return v
}

func TestBin(t *testing.T) {
	if got := bin("1100 011 1 01000 110"); got != 0xC746 {
		t.Errorf("got %04X", got)
	}
}

func TestReset(t *testing.T) {
	c, _ := setup(t)
	if c.PC != codeAt {
		t.Errorf("PC = %06X", c.PC)
	}
	if c.A[7] != stackAt {
		t.Errorf("A7 = %08X", c.A[7])
	}
	if c.SR != 0x2700 || !c.Supervisor() {
		t.Errorf("SR = %04X", c.SR)
	}
	if c.InterruptMask() != 7 {
		t.Errorf("mask = %d", c.InterruptMask())
	}
}

func TestDocumentedExamples(t *testing.T) {
	tests := []struct {
		name   string
		op     uint16
		before func(c *CPU)
		check  func(c *CPU) bool
		flags  string
		cycles int
	}{
		{
			"clr.b d3", bin("0100 0010 00 000 011"),
			func(c *CPU) { c.D[3] = 0x1234ABCD },
			func(c *CPU) bool { return c.D[3] == 0x1234AB00 },
			"--Z--", 4,
		},
		{
			"and.w d2,d3", bin("1100 011 0 01 000 010"),
			func(c *CPU) { c.D[2], c.D[3] = 0xFE800174, 0x25CFB7DD },
			func(c *CPU) bool { return c.D[3] == 0x25CF0154 && c.D[2] == 0xFE800174 },
			"-----", 4,
		},
		{
			"ext.w d7", bin("0100 100 010 000 111"),
			func(c *CPU) { c.D[7] = 0xAC },
			func(c *CPU) bool { return c.D[7] == 0xFFAC },
			"-N---", 4,
		},
		{
			"swap d4", bin("0100 1000 0100 0 100"),
			func(c *CPU) { c.D[4] = 0x1234ABCD },
			func(c *CPU) bool { return c.D[4] == 0xABCD1234 },
			"-N---", 4,
		},
		{
			"exg d3,d6", bin("1100 011 1 01000 110"),
			func(c *CPU) { c.D[3], c.D[6] = 0x12345678, 0xA0A0A0A0 },
			func(c *CPU) bool { return c.D[3] == 0xA0A0A0A0 && c.D[6] == 0x12345678 },
			"-----", 6,
		},
		{
			"bchg d1,d5", bin("0000 001 101 000 101"),
			func(c *CPU) { c.D[1], c.D[5] = 2, 0xFFFFFFFF },
			func(c *CPU) bool { return c.D[5] == 0xFFFFFFFB },
			"-----", 8,
		},
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.op)
		tt.before(c)
		r := step(t, c)
		if !tt.check(c) {
			t.Errorf("%s: wrong result, D=%08X", tt.name, c.D)
		}
		if got := ccr(c); got != tt.flags {
			t.Errorf("%s: flags %s, want %s", tt.name, got, tt.flags)
		}
		if r.Cycles != tt.cycles {
			t.Errorf("%s: %d cycles, want %d", tt.name, r.Cycles, tt.cycles)
		}
		if c.PC != codeAt+2 {
			t.Errorf("%s: PC = %06X", tt.name, c.PC)
		}
	}
}

func TestBCHGTwiceRestores(t *testing.T) {
	c, _ := setup(t, 0x0345, 0x0345)
	c.D[1], c.D[5] = 2, 0xFFFFFFFF
	step(t, c)
	step(t, c)
	if c.D[5] != 0xFFFFFFFF {
		t.Errorf("D5 = %08X", c.D[5])
	}
	if ccr(c) != "--Z--" {
		t.Errorf("flags %s", ccr(c))
	}
}

func TestRegisterWritesKeepHighBits(t *testing.T) {
	tests := []struct {
		op   uint16
		want uint32
	}{
		{0x1200, 0x123456AB}, // move.b d0,d1
		{0x3200, 0x123480AB}, // move.w d0,d1
		{0x2200, 0x000080AB}, // move.l d0,d1
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.op)
		c.D[0] = 0x80AB
		c.D[1] = 0x12345678
		step(t, c)
		if c.D[1] != tt.want {
			t.Errorf("%04X: D1 = %08X, want %08X", tt.op, c.D[1], tt.want)
		}
	}
}

func TestArithmeticFlags(t *testing.T) {
	tests := []struct {
		name   string
		op     uint16
		d0, d1 uint32
		x      bool
		want   uint32
		flags  string
	}{
		{"add.b overflow", 0xD200, 0x7F, 0xFFFFFF01, false, 0xFFFFFF80, "-N-V-"},
		{"add.b carry", 0xD200, 0xFF, 0x01, false, 0x00, "X-Z-C"},
		{"add.l", 0xD280, 0x10000000, 0x20000000, false, 0x30000000, "-----"},
		{"sub.w borrow", 0x9240, 0x01, 0x00, false, 0xFFFF, "XN--C"},
		{"cmp.w keeps x", 0xB240, 0x01, 0x01, true, 0x01, "X-Z--"},
		{"addx.b uses x", 0xD300, 0x01, 0x01, true, 0x03, "-----"},
		{"subx.b uses x", 0x9300, 0x01, 0x01, true, 0xFF, "XN--C"},
		{"neg.b", 0x4400, 0x80, 0x00, false, 0x00, "XN-VC"},
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.op)
		c.D[0], c.D[1] = tt.d0, tt.d1
		c.setFlag(SRX, tt.x)
		step(t, c)
		got := c.D[1]
		if tt.op == 0x4400 {
			got = c.D[0] ^ 0x80
		}
		if got != tt.want {
			t.Errorf("%s: result %08X, want %08X", tt.name, got, tt.want)
		}
		if ccr(c) != tt.flags {
			t.Errorf("%s: flags %s, want %s", tt.name, ccr(c), tt.flags)
		}
	}
}

func TestExtendedZeroIsSticky(t *testing.T) {
	// addx.b d0,d1 with a zero result leaves Z as it was.
	c, _ := setup(t, 0xD300, 0xD300)
	c.SR |= SRZ
	step(t, c)
	if !c.flag(SRZ) {
		t.Errorf("Z cleared by zero result")
	}
	c.D[0] = 1
	step(t, c)
	if c.flag(SRZ) {
		t.Errorf("Z kept on nonzero result")
	}
}

func TestQuickAndAddress(t *testing.T) {
	// addq.w #8,a0 works on the whole register and leaves flags alone.
	c, _ := setup(t, 0x5048, 0x70FF)
	c.A[0] = 0xFFFF
	c.SR |= SRC
	step(t, c)
	if c.A[0] != 0x10007 {
		t.Errorf("A0 = %08X", c.A[0])
	}
	if ccr(c) != "----C" {
		t.Errorf("flags %s", ccr(c))
	}
	// moveq #-1,d0
	step(t, c)
	if c.D[0] != 0xFFFFFFFF || ccr(c) != "-N---" {
		t.Errorf("moveq: D0 = %08X, flags %s", c.D[0], ccr(c))
	}
}

func TestMultiply(t *testing.T) {
	c, _ := setup(t, 0xC2C0, 0xC3C0)
	c.D[0], c.D[1] = 0xFFFF, 0xFFFF
	r := step(t, c)
	if c.D[1] != 0xFFFE0001 {
		t.Errorf("mulu: D1 = %08X", c.D[1])
	}
	if r.Cycles != 38+2*16 {
		t.Errorf("mulu: %d cycles", r.Cycles)
	}
	c.D[0], c.D[1] = 0xFFFF, 5
	step(t, c)
	if c.D[1] != 0xFFFFFFFB || ccr(c) != "-N---" {
		t.Errorf("muls: D1 = %08X, flags %s", c.D[1], ccr(c))
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		name   string
		op     uint16
		d0, d1 uint32
		want   uint32
		v      bool
	}{
		{"divu", 0x82C0, 7, 100, 0x0002000E, false},
		{"divu overflow", 0x82C0, 1, 0x10000, 0x10000, true},
		{"divu by zero", 0x82C0, 0, 1234, 1234, false},
		{"divs", 0x83C0, 2, 0xFFFFFFF9, 0xFFFFFFFD, false},
		{"divs overflow", 0x83C0, 1, 0x8000, 0x8000, true},
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.op)
		c.D[0], c.D[1] = tt.d0, tt.d1
		step(t, c)
		if c.D[1] != tt.want {
			t.Errorf("%s: D1 = %08X, want %08X", tt.name, c.D[1], tt.want)
		}
		if c.flag(SRV) != tt.v {
			t.Errorf("%s: V = %v", tt.name, c.flag(SRV))
		}
	}
}

// byteBus hides the RAM's word accessors.
type byteBus struct{ ram *memory.RAM }

func (b byteBus) Read8(addr uint32) uint8     { return b.ram.Read8(addr) }
func (b byteBus) Write8(addr uint32, v uint8) { b.ram.Write8(addr, v) }

func TestByteOnlyBus(t *testing.T) {
	Log.SetOutput(io.Discard)
	ram := memory.NewRAM()
	ram.Write32(0, stackAt)
	ram.Write32(4, codeAt)
	ram.LoadWords(codeAt, 0x2010, 0x2080) // move.l (a0),d0; move.l d0,(a0)
	ram.Write32(0x2000, 0xDEADBEEF)
	c := New(byteBus{ram})
	c.Reset()
	c.A[0] = 0x2000
	step(t, c)
	if c.D[0] != 0xDEADBEEF {
		t.Errorf("D0 = %08X", c.D[0])
	}
	c.D[0] = 0x01020304
	step(t, c)
	if got := ram.Read32(0x2000); got != 0x01020304 {
		t.Errorf("memory = %08X", got)
	}
}
