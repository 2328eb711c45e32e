package cpu

import "github.com/sirupsen/logrus"

// Exception timing.
const (
	interruptCycles = 44
	trapCycles      = 34
	// Extra cost of CHK and TRAPV when they do trap.
	conditionalTrapCycles = 30
)

// exception enters supervisor mode, stacks the return address and the old
// status register, and jumps through the vector.
func (c *CPU) exception(vector int, returnPC uint32) {
	old := c.SR
	c.SetSR((c.SR | SRS) &^ SRT)
	c.push32(returnPC)
	c.push16(old)
	c.PC = c.read32(uint32(vector)*4) & AddressMask
	Log.WithFields(logrus.Fields{
		"vector": vector,
		"return": returnPC,
	}).Debug("Exception")
}

// privileged checks for supervisor mode and raises a privilege violation
// when the CPU is in user mode. The stacked PC is the offending instruction.
func (c *CPU) privileged() bool {
	if c.SR&SRS != 0 {
		return true
	}
	c.exception(VectorPrivilege, c.IRAddr)
	return false
}

// InterruptMask returns the current interrupt priority mask.
func (c *CPU) InterruptMask() int {
	return int(c.SR>>8) & 7
}

// RequestInterrupt raises an interrupt at level 1-7. It is taken at the end
// of the next step. Levels at or below the mask are ignored, except level 7
// which cannot be masked.
func (c *CPU) RequestInterrupt(level int) {
	if level < 1 || level > 7 {
		Log.WithField("level", level).Warn("Invalid interrupt level")
		return
	}
	if level <= c.InterruptMask() && level != 7 {
		Log.WithFields(logrus.Fields{
			"level": level,
			"mask":  c.InterruptMask(),
		}).Debug("Interrupt masked")
		return
	}
	c.pending = level
}

// PendingInterrupt returns the requested interrupt level, or -1.
func (c *CPU) PendingInterrupt() int {
	return c.pending
}

// deliverInterrupt takes the pending interrupt through its autovector and
// raises the mask to its level.
func (c *CPU) deliverInterrupt() int {
	level := c.pending
	c.pending = -1
	c.stopped = false
	c.exception(VectorAutovector+level, c.PC)
	c.SR = c.SR&^(SRI2|SRI1|SRI0) | uint16(level)<<8
	return interruptCycles
}

func (c *CPU) opTRAP(i *Instruction) int {
	c.exception(VectorTrap+int(i.Src.N), c.PC)
	return 0
}

func (c *CPU) opTRAPV(i *Instruction) int {
	if c.SR&SRV == 0 {
		return 0
	}
	c.exception(VectorTRAPV, c.PC)
	return conditionalTrapCycles
}

func (c *CPU) opCHK(i *Instruction) int {
	bound := int16(c.FetchGet(i.Src, SizeWord))
	v := int16(c.D[i.Dst.N])
	switch {
	case v < 0:
		c.SR |= SRN
	case v > bound:
		c.SR &^= SRN
	default:
		return 0
	}
	c.exception(VectorCHK, c.PC)
	return conditionalTrapCycles
}

func (c *CPU) opILLEGAL(i *Instruction) int {
	c.exception(VectorIllegal, c.IRAddr)
	return 0
}
