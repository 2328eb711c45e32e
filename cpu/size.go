package cpu

// Size defines the data size for an instruction's operation.
type Size int

const (
	// SizeNone is used by instructions that carry no operation size (NOP, RTS, JMP).
	SizeNone Size = iota
	// SizeByte is 8 bits.
	SizeByte
	// SizeWord is 16 bits.
	SizeWord
	// SizeLong is 32 bits.
	SizeLong
	// SizeInvalid marks a size field that encodes no size. Instructions
	// carrying it never make it into the opcode table.
	SizeInvalid
)

// Bytes returns the operand width in bytes.
func (s Size) Bytes() uint32 {
	switch s {
	case SizeByte:
		return 1
	case SizeWord:
		return 2
	case SizeLong:
		return 4
	}
	panic(internalErrorf("size %s has no width", s))
}

// Bits returns the operand width in bits.
func (s Size) Bits() uint32 {
	return s.Bytes() * 8
}

// Mask covers all bits of the size.
func (s Size) Mask() uint32 {
	switch s {
	case SizeByte:
		return 0xFF
	case SizeWord:
		return 0xFFFF
	case SizeLong:
		return 0xFFFFFFFF
	}
	panic(internalErrorf("size %s has no mask", s))
}

// SignBit returns the most significant bit of the size.
func (s Size) SignBit() uint32 {
	switch s {
	case SizeByte:
		return 0x80
	case SizeWord:
		return 0x8000
	case SizeLong:
		return 0x80000000
	}
	panic(internalErrorf("size %s has no sign bit", s))
}

// Suffix is the assembler size suffix.
func (s Size) Suffix() string {
	switch s {
	case SizeByte:
		return ".b"
	case SizeWord:
		return ".w"
	case SizeLong:
		return ".l"
	}
	return ""
}

func (s Size) String() string {
	switch s {
	case SizeNone:
		return "none"
	case SizeByte:
		return "byte"
	case SizeWord:
		return "word"
	case SizeLong:
		return "long"
	}
	return "invalid"
}

// Extend sign-extends the low bits of v to 32 bits.
func (s Size) Extend(v uint32) uint32 {
	switch s {
	case SizeByte:
		return uint32(int32(int8(v)))
	case SizeWord:
		return uint32(int32(int16(v)))
	}
	return v
}

func (s Size) negative(v uint32) bool {
	return v&s.SignBit() != 0
}

func (s Size) zero(v uint32) bool {
	return v&s.Mask() == 0
}

// merge replaces the low bits of old with v, keeping everything above the size.
func (s Size) merge(old, v uint32) uint32 {
	m := s.Mask()
	return old&^m | v&m
}

// Carry and overflow predicates for r = a + b and r = a - b at a given size.
// For subtraction a is the minuend (destination) and b the subtrahend (source).

func (s Size) addCarry(a, b, r uint32) bool {
	return ((a&b)|(^r&(a|b)))&s.SignBit() != 0
}

func (s Size) addOverflow(a, b, r uint32) bool {
	return ((a^r)&(b^r))&s.SignBit() != 0
}

func (s Size) subBorrow(a, b, r uint32) bool {
	return ((b&^a)|(r&^a)|(r&b))&s.SignBit() != 0
}

func (s Size) subOverflow(a, b, r uint32) bool {
	return ((a^b)&(a^r))&s.SignBit() != 0
}

// sizeField decodes the common two-bit size field: 00 byte, 01 word, 10 long.
func sizeField(bits uint16) Size {
	switch bits & 3 {
	case 0:
		return SizeByte
	case 1:
		return SizeWord
	case 2:
		return SizeLong
	}
	return SizeInvalid
}

// moveSizeField decodes the MOVE size field: 01 byte, 11 word, 10 long.
func moveSizeField(bits uint16) Size {
	switch bits & 3 {
	case 1:
		return SizeByte
	case 3:
		return SizeWord
	case 2:
		return SizeLong
	}
	return SizeInvalid
}

// wordOrLong decodes a single size bit: 0 word, 1 long.
func wordOrLong(bit uint16) Size {
	if bit&1 == 0 {
		return SizeWord
	}
	return SizeLong
}
