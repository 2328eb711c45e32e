package cpu

// AddressMask limits addresses to the 24 bits the 68000 drives.
const AddressMask = 0xFFFFFF

// Bus is the byte-addressed memory the CPU is attached to. Addresses passed
// in are already masked to 24 bits.
type Bus interface {
	Read8(addr uint32) uint8
	Write8(addr uint32, v uint8)
}

// WordBus is implemented by buses that handle 16-bit accesses natively, such
// as memory-mapped ports where a word access is not two byte accesses.
// Without it, words are transferred as two byte accesses, high byte first.
type WordBus interface {
	Bus
	Read16(addr uint32) uint16
	Write16(addr uint32, v uint16)
}

func (c *CPU) read8(addr uint32) uint8 {
	return c.bus.Read8(addr & AddressMask)
}

func (c *CPU) write8(addr uint32, v uint8) {
	c.bus.Write8(addr&AddressMask, v)
}

func (c *CPU) read16(addr uint32) uint16 {
	addr &= AddressMask
	if c.words != nil {
		return c.words.Read16(addr)
	}
	return uint16(c.bus.Read8(addr))<<8 | uint16(c.bus.Read8((addr+1)&AddressMask))
}

func (c *CPU) write16(addr uint32, v uint16) {
	addr &= AddressMask
	if c.words != nil {
		c.words.Write16(addr, v)
		return
	}
	c.bus.Write8(addr, uint8(v>>8))
	c.bus.Write8((addr+1)&AddressMask, uint8(v))
}

func (c *CPU) read32(addr uint32) uint32 {
	return uint32(c.read16(addr))<<16 | uint32(c.read16(addr+2))
}

func (c *CPU) write32(addr uint32, v uint32) {
	c.write16(addr, uint16(v>>16))
	c.write16(addr+2, uint16(v))
}

func (c *CPU) read(size Size, addr uint32) uint32 {
	switch size {
	case SizeByte:
		return uint32(c.read8(addr))
	case SizeWord:
		return uint32(c.read16(addr))
	case SizeLong:
		return c.read32(addr)
	}
	panic(internalErrorf("read of size %s", size))
}

func (c *CPU) write(size Size, addr uint32, v uint32) {
	switch size {
	case SizeByte:
		c.write8(addr, uint8(v))
	case SizeWord:
		c.write16(addr, uint16(v))
	case SizeLong:
		c.write32(addr, v)
	default:
		panic(internalErrorf("write of size %s", size))
	}
}

// ReadU8 reads a byte from the bus.
func (c *CPU) ReadU8(addr uint32) uint8 { return c.read8(addr) }

// ReadU16 reads a big-endian word from the bus.
func (c *CPU) ReadU16(addr uint32) uint16 { return c.read16(addr) }

// ReadU32 reads a big-endian long from the bus.
func (c *CPU) ReadU32(addr uint32) uint32 { return c.read32(addr) }

// WriteU8 writes a byte to the bus.
func (c *CPU) WriteU8(addr uint32, v uint8) { c.write8(addr, v) }

// WriteU16 writes a big-endian word to the bus.
func (c *CPU) WriteU16(addr uint32, v uint16) { c.write16(addr, v) }

// WriteU32 writes a big-endian long to the bus.
func (c *CPU) WriteU32(addr uint32, v uint32) { c.write32(addr, v) }
