package cpu

import "testing"

func TestMoveAddressing(t *testing.T) {
	// move.w #$1234,(a0)+; move.b d0,-(a7)
	c, ram := setup(t, 0x30FC, 0x1234, 0x1F00)
	c.A[0] = 0x2000
	c.D[0] = 0x55
	step(t, c)
	if got := ram.Read16(0x2000); got != 0x1234 {
		t.Errorf("(a0) = %04X", got)
	}
	if c.A[0] != 0x2002 {
		t.Errorf("A0 = %08X", c.A[0])
	}
	step(t, c)
	if c.A[7] != stackAt-2 {
		t.Errorf("byte push moved A7 to %08X", c.A[7])
	}
	if got := ram.Read8(stackAt - 2); got != 0x55 {
		t.Errorf("pushed %02X", got)
	}
}

func TestMoveTiming(t *testing.T) {
	tests := []struct {
		op     uint16
		cycles int
	}{
		{0x2010, 12}, // move.l (a0),d0
		{0x3280, 8},  // move.w d0,(a1)
		{0x2200, 4},  // move.l d0,d1
	}
	for _, tt := range tests {
		c, _ := setup(t, tt.op)
		c.A[0], c.A[1] = 0x2000, 0x3000
		r := step(t, c)
		if r.Cycles != tt.cycles {
			t.Errorf("%04X: %d cycles, want %d", tt.op, r.Cycles, tt.cycles)
		}
	}
}

func TestMoveA(t *testing.T) {
	// movea.w d0,a0 sign-extends and leaves flags alone.
	c, _ := setup(t, 0x3040)
	c.D[0] = 0x8000
	c.SR |= SRZ
	step(t, c)
	if c.A[0] != 0xFFFF8000 {
		t.Errorf("A0 = %08X", c.A[0])
	}
	if ccr(c) != "--Z--" {
		t.Errorf("flags %s", ccr(c))
	}
}

func TestMOVEM(t *testing.T) {
	// movem.l d0-d1/a0,-(a7); clear; movem.l (a7)+,d0-d1/a0
	c, ram := setup(t, 0x48E7, 0xC080, 0x4CDF, 0x0103)
	c.D[0], c.D[1], c.A[0] = 0x11111111, 0x22222222, 0x33333333
	r := step(t, c)
	if c.A[7] != stackAt-12 {
		t.Fatalf("A7 = %08X", c.A[7])
	}
	want := []uint32{0x11111111, 0x22222222, 0x33333333}
	for n, w := range want {
		if got := ram.Read32(stackAt - 12 + uint32(4*n)); got != w {
			t.Errorf("slot %d = %08X, want %08X", n, got, w)
		}
	}
	if r.Cycles != 8+3*8 {
		t.Errorf("store: %d cycles", r.Cycles)
	}

	c.D[0], c.D[1], c.A[0] = 0, 0, 0
	r = step(t, c)
	if c.D[0] != 0x11111111 || c.D[1] != 0x22222222 || c.A[0] != 0x33333333 {
		t.Errorf("restored D0=%08X D1=%08X A0=%08X", c.D[0], c.D[1], c.A[0])
	}
	if c.A[7] != stackAt {
		t.Errorf("A7 = %08X", c.A[7])
	}
	if r.Cycles != 12+3*8 {
		t.Errorf("load: %d cycles", r.Cycles)
	}
}

func TestMOVEMWordSignExtends(t *testing.T) {
	// movem.w (a0),d2
	c, ram := setup(t, 0x4C90, 0x0004)
	c.A[0] = 0x2000
	ram.Write16(0x2000, 0x8000)
	step(t, c)
	if c.D[2] != 0xFFFF8000 {
		t.Errorf("D2 = %08X", c.D[2])
	}
}

func TestMOVEP(t *testing.T) {
	// movep.l d0,(0,a0); movep.w (0,a0),d1
	c, ram := setup(t, 0x01C8, 0x0000, 0x0308, 0x0000)
	c.A[0] = 0x2000
	c.D[0] = 0x11223344
	step(t, c)
	for n, b := range []uint8{0x11, 0x22, 0x33, 0x44} {
		if got := ram.Read8(0x2000 + uint32(2*n)); got != b {
			t.Errorf("byte %d = %02X", n, got)
		}
	}
	c.D[1] = 0xAAAAAAAA
	step(t, c)
	if c.D[1] != 0xAAAA1122 {
		t.Errorf("D1 = %08X", c.D[1])
	}
}

func TestStatusMoves(t *testing.T) {
	// move.w d0,ccr; move.w sr,d1
	c, _ := setup(t, 0x44C0, 0x40C1)
	c.D[0] = 0xFF15
	step(t, c)
	if ccr(c) != "X-Z-C" {
		t.Errorf("flags %s", ccr(c))
	}
	if c.SR&^CCRMask != 0x2700 {
		t.Errorf("move to ccr changed the system byte: %04X", c.SR)
	}
	step(t, c)
	if c.D[1] != 0x2715 {
		t.Errorf("D1 = %08X", c.D[1])
	}
}

func TestMoveToSRSwapsStacks(t *testing.T) {
	// move.w d0,sr into user mode; move.w d0,sr again is privileged.
	c, ram := setup(t, 0x46C0, 0x46C0)
	ram.Write32(VectorPrivilege*4, 0x3000)
	c.USP = 0x6000
	c.D[0] = 0x0000
	step(t, c)
	if c.Supervisor() || c.A[7] != 0x6000 || c.SSP != stackAt {
		t.Fatalf("SR = %04X, A7 = %08X, SSP = %08X", c.SR, c.A[7], c.SSP)
	}
	r := step(t, c)
	if !c.Supervisor() || c.PC != 0x3000 {
		t.Errorf("no privilege violation: SR = %04X, PC = %06X", c.SR, c.PC)
	}
	if r.Cycles != 34 {
		t.Errorf("%d cycles", r.Cycles)
	}
}

func TestMoveUSP(t *testing.T) {
	// move a0,usp; move usp,a1
	c, _ := setup(t, 0x4E60, 0x4E69)
	c.A[0] = 0x4000
	step(t, c)
	if c.USP != 0x4000 {
		t.Errorf("USP = %08X", c.USP)
	}
	step(t, c)
	if c.A[1] != 0x4000 {
		t.Errorf("A1 = %08X", c.A[1])
	}
}

func TestPEA(t *testing.T) {
	// pea (16,a0)
	c, ram := setup(t, 0x4868, 0x0010)
	c.A[0] = 0x2000
	step(t, c)
	if c.A[7] != stackAt-4 || ram.Read32(stackAt-4) != 0x2010 {
		t.Errorf("A7 = %08X, pushed %08X", c.A[7], ram.Read32(stackAt-4))
	}
}
