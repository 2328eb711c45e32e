// Package memory provides buses for the 68000 core: flat RAM for tests and
// tools, and the Genesis memory map.
package memory

import "encoding/binary"

// Size of the 24-bit address space.
const Size = 1 << 24

// RAM is a flat, fully writable 16 MiB address space.
type RAM struct {
	Mem []byte
}

// NewRAM returns zeroed RAM covering the whole address space.
func NewRAM() *RAM {
	return &RAM{Mem: make([]byte, Size)}
}

// Read8 reads a byte.
func (r *RAM) Read8(addr uint32) uint8 {
	return r.Mem[addr&(Size-1)]
}

// Write8 writes a byte.
func (r *RAM) Write8(addr uint32, v uint8) {
	r.Mem[addr&(Size-1)] = v
}

// Read16 reads a big-endian word. The last byte of the address space wraps
// around to the first.
func (r *RAM) Read16(addr uint32) uint16 {
	addr &= Size - 1
	if addr == Size-1 {
		return uint16(r.Mem[addr])<<8 | uint16(r.Mem[0])
	}
	return binary.BigEndian.Uint16(r.Mem[addr:])
}

// Write16 writes a big-endian word.
func (r *RAM) Write16(addr uint32, v uint16) {
	addr &= Size - 1
	if addr == Size-1 {
		r.Mem[addr] = uint8(v >> 8)
		r.Mem[0] = uint8(v)
		return
	}
	binary.BigEndian.PutUint16(r.Mem[addr:], v)
}

// Read32 reads a big-endian long.
func (r *RAM) Read32(addr uint32) uint32 {
	return uint32(r.Read16(addr))<<16 | uint32(r.Read16(addr+2))
}

// Write32 writes a big-endian long.
func (r *RAM) Write32(addr uint32, v uint32) {
	r.Write16(addr, uint16(v>>16))
	r.Write16(addr+2, uint16(v))
}

// Load copies data to addr.
func (r *RAM) Load(addr uint32, data []byte) {
	for i, b := range data {
		r.Write8(addr+uint32(i), b)
	}
}

// LoadWords stores big-endian words from addr on.
func (r *RAM) LoadWords(addr uint32, words ...uint16) {
	r.Load(addr, WordsToBytes(words))
}

// WordsToBytes converts a slice of 16-bit words to a big-endian byte slice.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(out[i*2:], w)
	}
	return out
}

// BytesToWords interprets bytes as big-endian 16-bit words.
// If an odd number of bytes is passed, the final byte is padded with 0.
func BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return out
}
