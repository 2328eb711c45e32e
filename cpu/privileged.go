package cpu

// opSTOP loads SR and idles until an interrupt is taken.
func (c *CPU) opSTOP(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	c.SetSR(uint16(c.FetchGet(i.Src, SizeWord)))
	c.stopped = true
	return 0
}

// opRESET would assert the external reset line. Peripherals are not reset
// by the core, so past the privilege check the instruction is a stub.
func (c *CPU) opRESET(i *Instruction) int {
	if !c.privileged() {
		return trapCycles - i.BaseCycles
	}
	return 0
}
