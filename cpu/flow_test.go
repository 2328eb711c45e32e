package cpu

import "testing"

func TestBranches(t *testing.T) {
	tests := []struct {
		name   string
		code   []uint16
		z      bool
		pc     uint32
		cycles int
	}{
		{"bra.s", []uint16{0x6002}, false, codeAt + 4, 10},
		{"beq.s not taken", []uint16{0x6702}, false, codeAt + 2, 8},
		{"beq.s taken", []uint16{0x6702}, true, codeAt + 4, 10},
		{"beq.w not taken", []uint16{0x6700, 0x0010}, false, codeAt + 4, 12},
		{"beq.w taken", []uint16{0x6700, 0x0010}, true, codeAt + 0x12, 10},
		{"bne.s backwards", []uint16{0x66FE}, false, codeAt, 10},
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.code...)
		c.setFlag(SRZ, tt.z)
		r := step(t, c)
		if c.PC != tt.pc {
			t.Errorf("%s: PC = %06X, want %06X", tt.name, c.PC, tt.pc)
		}
		if r.Cycles != tt.cycles {
			t.Errorf("%s: %d cycles, want %d", tt.name, r.Cycles, tt.cycles)
		}
	}
}

func TestSubroutines(t *testing.T) {
	// bsr.w +$10; at $1012: jsr (a0); at $2000: rts
	c, ram := setup(t, 0x6100, 0x0010)
	ram.LoadWords(codeAt+0x12, 0x4E90)
	ram.LoadWords(0x2000, 0x4E75)
	c.A[0] = 0x2000

	r := step(t, c)
	if c.PC != codeAt+0x12 || c.A[7] != stackAt-4 {
		t.Fatalf("bsr: PC = %06X, A7 = %08X", c.PC, c.A[7])
	}
	if got := ram.Read32(stackAt - 4); got != codeAt+4 {
		t.Errorf("bsr pushed %08X", got)
	}
	if r.Cycles != 18 {
		t.Errorf("bsr: %d cycles", r.Cycles)
	}

	r = step(t, c)
	if c.PC != 0x2000 || ram.Read32(c.A[7]) != codeAt+0x14 {
		t.Errorf("jsr: PC = %06X, return %08X", c.PC, ram.Read32(c.A[7]))
	}
	if r.Cycles != 16 {
		t.Errorf("jsr: %d cycles", r.Cycles)
	}

	step(t, c)
	if c.PC != codeAt+0x14 || c.A[7] != stackAt-4 {
		t.Errorf("rts: PC = %06X, A7 = %08X", c.PC, c.A[7])
	}
}

func TestJumpAbsolute(t *testing.T) {
	// jmp $00012345.l
	c, _ := setup(t, 0x4EF9, 0x0001, 0x2345)
	r := step(t, c)
	if c.PC != 0x12345 {
		t.Errorf("PC = %06X", c.PC)
	}
	if r.Cycles != 12 {
		t.Errorf("%d cycles", r.Cycles)
	}
}

func TestDBcc(t *testing.T) {
	// moveq #2,d0; loop: addq.l #1,d1; dbf d0,loop
	c, _ := setup(t, 0x7002, 0x5281, 0x51C8, 0xFFFC)
	for n := 0; n < 7; n++ {
		step(t, c)
	}
	if c.D[1] != 3 {
		t.Errorf("loop ran %d times", c.D[1])
	}
	if c.D[0] != 0xFFFF {
		t.Errorf("D0 = %08X", c.D[0])
	}
	if c.PC != codeAt+8 {
		t.Errorf("PC = %06X", c.PC)
	}
}

func TestDBccConditionTrue(t *testing.T) {
	// dbeq d0,* with Z set falls through without touching d0.
	c, _ := setup(t, 0x57C8, 0xFFFE)
	c.D[0] = 5
	c.SR |= SRZ
	r := step(t, c)
	if c.D[0] != 5 || c.PC != codeAt+4 {
		t.Errorf("D0 = %d, PC = %06X", c.D[0], c.PC)
	}
	if r.Cycles != 12 {
		t.Errorf("%d cycles", r.Cycles)
	}
}

func TestLEA(t *testing.T) {
	tests := []struct {
		name string
		code []uint16
		want uint32
	}{
		{"(8,a0)", []uint16{0x43E8, 0x0008}, 0x2008},
		{"(4,a0,d1.w)", []uint16{0x43F0, 0x1004}, 0x2002},
		{"(4,a0,d1.l)", []uint16{0x43F0, 0x1804}, 0x22002},
		{"$8000.w", []uint16{0x43F8, 0x8000}, 0xFFFF8000},
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.code...)
		c.A[0] = 0x2000
		c.D[1] = 0x0001FFFE
		step(t, c)
		if c.A[1] != tt.want {
			t.Errorf("lea %s: A1 = %08X, want %08X", tt.name, c.A[1], tt.want)
		}
	}
}

func TestPCRelative(t *testing.T) {
	// lea (6,pc),a0: the base is the address of the extension word.
	c, _ := setup(t, 0x41FA, 0x0006)
	step(t, c)
	if c.A[0] != codeAt+8 {
		t.Errorf("A0 = %08X", c.A[0])
	}
}

func TestLinkUnlink(t *testing.T) {
	// link a6,#-8; unlk a6
	c, ram := setup(t, 0x4E56, 0xFFF8, 0x4E5E)
	c.A[6] = 0x1234
	step(t, c)
	if got := ram.Read32(stackAt - 4); got != 0x1234 {
		t.Errorf("saved frame = %08X", got)
	}
	if c.A[6] != stackAt-4 || c.A[7] != stackAt-12 {
		t.Errorf("link: A6 = %08X, A7 = %08X", c.A[6], c.A[7])
	}
	step(t, c)
	if c.A[6] != 0x1234 || c.A[7] != stackAt {
		t.Errorf("unlk: A6 = %08X, A7 = %08X", c.A[6], c.A[7])
	}
}
