package memory

import (
	"errors"
	"strings"
)

// HeaderEnd is the first byte after the cartridge header.
const HeaderEnd = 0x200

// ErrShortImage is returned for images too small to hold a header.
var ErrShortImage = errors.New("image too short for a cartridge header")

// Header is the cartridge information block at $100.
type Header struct {
	Console       string
	Copyright     string
	DomesticName  string
	OverseasName  string
	Serial        string
	Checksum      uint16
	ROMStart      uint32
	ROMEnd        uint32
	SRAMStart     uint32
	SRAMEnd       uint32
	Country       string
	InitialSSP    uint32
	InitialPC     uint32
	ComputedCheck uint16
}

func text(rom []byte, at, n int) string {
	return strings.TrimSpace(strings.TrimRight(string(rom[at:at+n]), "\x00"))
}

func long(rom []byte, at int) uint32 {
	return uint32(rom[at])<<24 | uint32(rom[at+1])<<16 | uint32(rom[at+2])<<8 | uint32(rom[at+3])
}

// ParseHeader reads the header of a cartridge image.
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < HeaderEnd {
		return Header{}, ErrShortImage
	}
	h := Header{
		InitialSSP:    long(rom, 0),
		InitialPC:     long(rom, 4),
		Console:       text(rom, 0x100, 16),
		Copyright:     text(rom, 0x110, 16),
		DomesticName:  text(rom, 0x120, 48),
		OverseasName:  text(rom, 0x150, 48),
		Serial:        text(rom, 0x180, 14),
		Checksum:      uint16(rom[0x18E])<<8 | uint16(rom[0x18F]),
		ROMStart:      long(rom, 0x1A0),
		ROMEnd:        long(rom, 0x1A4),
		SRAMStart:     long(rom, 0x1B4),
		SRAMEnd:       long(rom, 0x1B8),
		Country:       text(rom, 0x1F0, 8),
		ComputedCheck: Checksum(rom),
	}
	return h, nil
}

// Checksum sums the big-endian words after the header, as the boot code of
// most cartridges does. A trailing odd byte counts as a high byte.
func Checksum(rom []byte) uint16 {
	var sum uint16
	for i := HeaderEnd; i < len(rom); i += 2 {
		w := uint16(rom[i]) << 8
		if i+1 < len(rom) {
			w |= uint16(rom[i+1])
		}
		sum += w
	}
	return sum
}

// Region picks the console region from the first country code. Letter
// codes name one region. Later cartridges use a hex digit where bit 0 is
// Japan, bit 2 is USA and bits 1 and 3 are Europe, checked in that order.
// Anything else is treated as Japan.
func (h Header) Region() Region {
	if h.Country == "" {
		return RegionJapan
	}
	c := h.Country[0]
	switch c {
	case 'J':
		return RegionJapan
	case 'U':
		return RegionUSA
	case 'E':
		return RegionEurope
	}
	var v byte
	switch {
	case c >= '0' && c <= '9':
		v = c - '0'
	case c >= 'A' && c <= 'F':
		v = c - 'A' + 10
	case c >= 'a' && c <= 'f':
		v = c - 'a' + 10
	}
	switch {
	case v&1 != 0:
		return RegionJapan
	case v&4 != 0:
		return RegionUSA
	case v&0xA != 0:
		return RegionEurope
	}
	return RegionJapan
}

// Valid reports whether the stored checksum matches the computed one.
func (h Header) Valid() bool {
	return h.Checksum == h.ComputedCheck
}
