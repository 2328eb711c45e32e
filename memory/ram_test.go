package memory

import "testing"

func TestRAMWords(t *testing.T) {
	r := NewRAM()
	r.Write16(0x1000, 0xBEEF)
	if r.Read8(0x1000) != 0xBE || r.Read8(0x1001) != 0xEF {
		t.Errorf("big-endian layout wrong: %02X %02X", r.Read8(0x1000), r.Read8(0x1001))
	}
	r.Write32(0x2000, 0x12345678)
	if got := r.Read32(0x2000); got != 0x12345678 {
		t.Errorf("Read32 = %08X", got)
	}
	if got := r.Read16(0x2002); got != 0x5678 {
		t.Errorf("Read16 low half = %04X", got)
	}
}

func TestRAMMasksAddress(t *testing.T) {
	r := NewRAM()
	r.Write8(0xFF000010, 0x42)
	if got := r.Read8(0x10); got != 0x42 {
		t.Errorf("upper address bits not ignored: %02X", got)
	}
	r.Write16(Size-1, 0xA55A)
	if r.Read8(Size-1) != 0xA5 || r.Read8(0) != 0x5A {
		t.Errorf("word at end of address space did not wrap")
	}
	if got := r.Read16(Size - 1); got != 0xA55A {
		t.Errorf("wrapped Read16 = %04X", got)
	}
}

func TestLoadWords(t *testing.T) {
	r := NewRAM()
	r.LoadWords(0x400, 0x4E71, 0x4E75)
	if got := r.Read32(0x400); got != 0x4E714E75 {
		t.Errorf("LoadWords = %08X", got)
	}
}

func TestWordConversions(t *testing.T) {
	b := WordsToBytes([]uint16{0x0102, 0x0304})
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("WordsToBytes = % X", b)
		}
	}
	w := BytesToWords([]byte{0xAB, 0xCD, 0xEF})
	if len(w) != 2 || w[0] != 0xABCD || w[1] != 0xEF00 {
		t.Errorf("BytesToWords = %04X", w)
	}
}
