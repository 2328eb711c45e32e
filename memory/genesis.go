package memory

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Genesis memory map.
const (
	ROMEnd      = 0x3FFFFF
	Z80Start    = 0xA00000
	Z80End      = 0xA0FFFF
	VersionPort = 0xA10000
	Joypad1Port = 0xA10002
	Joypad2Port = 0xA10004
	Z80BusReq   = 0xA11100
	Z80Reset    = 0xA11200
	VDPData     = 0xC00000
	VDPControl  = 0xC00004
	VDPHVCount  = 0xC00008
	RAMStart    = 0xE00000
	RAMSize     = 0x10000
	ROMSize     = 0x400000
)

// Region of the console.
type Region int

const (
	RegionJapan Region = iota
	RegionUSA
	RegionEurope
)

func (r Region) String() string {
	switch r {
	case RegionUSA:
		return "USA"
	case RegionEurope:
		return "Europe"
	}
	return "Japan"
}

// Z80 is the sound CPU as seen from the 68000.
type Z80 interface {
	Read(addr uint16) uint8
	Write(addr uint16, v uint8)
	// BusAck returns 0 when the 68000 owns the Z80 bus.
	BusAck() uint8
	BusRequest(v uint8)
	Reset(v uint8)
}

// VDP is the video display processor's port interface.
type VDP interface {
	ReadData() uint16
	ReadControl() uint16
	HVCounter() uint16
	WriteData(v uint16)
	WriteControl(v uint16)
}

// Joypad is a controller port.
type Joypad interface {
	Read() uint8
	Write(v uint8)
}

// Genesis is the 68000's view of the console: cartridge ROM, work RAM, the
// Z80 window and the I/O and VDP ports. Devices left nil read as zero and
// ignore writes.
type Genesis struct {
	ROM    []byte
	RAM    [RAMSize]byte
	Region Region

	Z80  Z80
	VDP  VDP
	Pad1 Joypad
	Pad2 Joypad

	Log *logrus.Entry
}

// NewGenesis returns a Genesis bus with the given cartridge image, which is
// padded or truncated to the 4 MiB ROM window.
func NewGenesis(rom []byte) *Genesis {
	g := &Genesis{
		ROM: make([]byte, ROMSize),
		Log: logrus.WithField("bus", "genesis"),
	}
	copy(g.ROM, rom)
	if h, err := ParseHeader(g.ROM); err == nil {
		g.Region = h.Region()
	}
	return g
}

func (g *Genesis) version() uint8 {
	var v uint8
	if g.Region != RegionJapan {
		v |= 1 << 7
	}
	if g.Region == RegionEurope {
		v |= 1 << 6
	}
	return v
}

func hi(v uint16) uint8 { return uint8(v >> 8) }
func lo(v uint16) uint8 { return uint8(v) }

// Read8 reads a byte.
func (g *Genesis) Read8(addr uint32) uint8 {
	addr &= Size - 1
	switch {
	case addr <= ROMEnd:
		return g.ROM[addr]
	case addr >= RAMStart:
		return g.RAM[addr&(RAMSize-1)]
	case addr >= Z80Start && addr <= Z80End:
		if g.Z80 == nil {
			return 0
		}
		return g.Z80.Read(uint16(addr))
	}

	switch addr {
	case VersionPort, VersionPort + 1:
		return g.version()
	case Joypad1Port, Joypad1Port + 1:
		return readPad(g.Pad1)
	case Joypad2Port, Joypad2Port + 1:
		return readPad(g.Pad2)
	case Z80BusReq:
		if g.Z80 == nil {
			return 0
		}
		return g.Z80.BusAck()
	case Z80Reset:
		return 0
	}

	if addr >= VDPData && addr <= VDPHVCount+1 {
		v := g.read16VDP(addr &^ 1)
		if addr&1 == 0 {
			return hi(v)
		}
		return lo(v)
	}

	g.Log.WithField("address", fmt.Sprintf("%06X", addr)).Warn("Read from unmapped address")
	return 0
}

func readPad(p Joypad) uint8 {
	if p == nil {
		return 0
	}
	return p.Read()
}

func (g *Genesis) read16VDP(addr uint32) uint16 {
	if g.VDP == nil {
		return 0
	}
	switch addr {
	case VDPData, VDPData + 2:
		return g.VDP.ReadData()
	case VDPControl, VDPControl + 2:
		return g.VDP.ReadControl()
	}
	return g.VDP.HVCounter()
}

// Write8 writes a byte. ROM writes are dropped. Byte writes to the VDP
// ports become word writes with the byte in both halves.
func (g *Genesis) Write8(addr uint32, v uint8) {
	addr &= Size - 1
	switch {
	case addr <= ROMEnd:
		g.Log.WithFields(logrus.Fields{
			"address": fmt.Sprintf("%06X", addr),
			"value":   fmt.Sprintf("%02X", v),
		}).Warn("Write to ROM")
		return
	case addr >= RAMStart:
		g.RAM[addr&(RAMSize-1)] = v
		return
	case addr >= Z80Start && addr <= Z80End:
		if g.Z80 != nil {
			g.Z80.Write(uint16(addr), v)
		}
		return
	}

	switch addr {
	case Joypad1Port, Joypad1Port + 1:
		writePad(g.Pad1, v)
	case Joypad2Port, Joypad2Port + 1:
		writePad(g.Pad2, v)
	case Z80BusReq:
		if g.Z80 != nil {
			g.Z80.BusRequest(v)
		}
	case Z80Reset:
		if g.Z80 != nil {
			g.Z80.Reset(v)
		}
	case VDPData, VDPData + 1, VDPData + 2, VDPData + 3,
		VDPControl, VDPControl + 1, VDPControl + 2, VDPControl + 3:
		g.write16VDP(addr&^1, uint16(v)<<8|uint16(v))
	default:
		g.Log.WithFields(logrus.Fields{
			"address": fmt.Sprintf("%06X", addr),
			"value":   fmt.Sprintf("%02X", v),
		}).Warn("Write to unmapped address")
	}
}

func writePad(p Joypad, v uint8) {
	if p != nil {
		p.Write(v)
	}
}

func (g *Genesis) write16VDP(addr uint32, v uint16) {
	if g.VDP == nil {
		return
	}
	if addr < VDPControl {
		g.VDP.WriteData(v)
	} else {
		g.VDP.WriteControl(v)
	}
}

// Read16 reads a word. The VDP ports are read as whole words so that a
// word access reaches the VDP once.
func (g *Genesis) Read16(addr uint32) uint16 {
	addr &= Size - 1
	if addr&^1 >= VDPData && addr <= VDPHVCount+1 && addr&1 == 0 {
		return g.read16VDP(addr)
	}
	return uint16(g.Read8(addr))<<8 | uint16(g.Read8((addr+1)&(Size-1)))
}

// Write16 writes a word. The Z80 control registers take the high byte.
func (g *Genesis) Write16(addr uint32, v uint16) {
	addr &= Size - 1
	switch addr {
	case Z80BusReq:
		if g.Z80 != nil {
			g.Z80.BusRequest(hi(v))
		}
	case Z80Reset:
		if g.Z80 != nil {
			g.Z80.Reset(hi(v))
		}
	case VDPData, VDPData + 2, VDPControl, VDPControl + 2:
		g.write16VDP(addr, v)
	default:
		g.Write8(addr, hi(v))
		g.Write8((addr+1)&(Size-1), lo(v))
	}
}
