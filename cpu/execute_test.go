package cpu

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

func nops(n int) []uint16 {
	code := make([]uint16, n)
	for i := range code {
		code[i] = OPNOP
	}
	return code
}

func TestRunForRemainder(t *testing.T) {
	c, _ := setup(t, nops(32)...)
	left := c.RunFor(10)
	if left != -2 {
		t.Errorf("remainder = %d, want -2", left)
	}
	if int(c.Cycles)+left != 10 {
		t.Errorf("consumed %d with remainder %d for a budget of 10", c.Cycles, left)
	}
	left = c.RunFor(10 + left)
	if left != 0 || c.Cycles != 20 {
		t.Errorf("second run: remainder %d, total %d", left, c.Cycles)
	}
	if c.Instructions != 5 {
		t.Errorf("instructions = %d", c.Instructions)
	}
}

func TestRunForNotRunning(t *testing.T) {
	c, _ := setup(t, nops(4)...)
	c.Running = false
	if left := c.RunFor(100); left != 100 || c.PC != codeAt {
		t.Errorf("remainder %d, PC %06X", left, c.PC)
	}
}

func TestUnmappedOpcode(t *testing.T) {
	c, _ := setup(t, 0xFFFF, 0xA000)
	r := c.Step()
	if r.Status != StepUnmapped || r.Cycles != 4 || r.Instruction != nil {
		t.Errorf("status %s, %d cycles", r.Status, r.Cycles)
	}
	if r.Opcode != 0xFFFF || c.PC != codeAt+2 {
		t.Errorf("opcode %04X, PC %06X", r.Opcode, c.PC)
	}
	err := c.Execute()
	if !errors.Is(err, ErrUnmappedOpcode) {
		t.Errorf("Execute: %v", err)
	}
}

func TestStubInstruction(t *testing.T) {
	c, _ := setup(t, OPRESET)
	r := c.Step()
	if r.Status != StepStub || r.Cycles != 132 {
		t.Errorf("status %s, %d cycles", r.Status, r.Cycles)
	}
	if r.Instruction == nil || r.Instruction.Mnemonic != "reset" {
		t.Errorf("instruction %v", r.Instruction)
	}

	c, _ = setup(t, OPRESET)
	if err := c.Execute(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Execute: %v", err)
	}
}

func TestExecuteOK(t *testing.T) {
	c, _ := setup(t, OPNOP)
	if err := c.Execute(); err != nil {
		t.Error(err)
	}
}

func TestPrefetchFollowsSelfModifiedCode(t *testing.T) {
	// The queue holds two words past PC. A store into the word after next
	// is not seen until the queue is refilled by a jump.
	c, ram := setup(t, OPNOP, OPNOP, OPNOP, OPNOP)
	step(t, c)
	ram.Write16(codeAt+4, 0x7001) // moveq #1,d0, hidden behind the queue
	step(t, c)
	step(t, c)
	if c.D[0] != 0 {
		t.Errorf("queued word was refetched: D0 = %d", c.D[0])
	}
	c.SetPC(codeAt + 4)
	step(t, c)
	if c.D[0] != 1 {
		t.Errorf("SetPC did not refill the queue")
	}
}

func TestInternalErrorCarriesInstruction(t *testing.T) {
	c, _ := setup(t)
	inst := &Instruction{
		Opcode:   0x1234,
		Mnemonic: "bad",
		Size:     SizeWord,
		Handler:  func(*CPU, *Instruction) int { panic(internalErrorf("boom")) },
	}
	defer func() {
		ie, ok := recover().(*InternalError)
		if !ok {
			t.Fatal("no internal error")
		}
		if ie.Opcode != 0x1234 || ie.Mnemonic != "bad.w" {
			t.Errorf("error = %v", ie)
		}
	}()
	c.execute(inst)
}

func TestTraceLogging(t *testing.T) {
	c, _ := setup(t, OPNOP)
	Log.SetLevel(logrus.TraceLevel)
	defer Log.SetLevel(logrus.WarnLevel)
	step(t, c)
}

func TestBreakpoints(t *testing.T) {
	c, _ := setup(t, nops(8)...)
	if err := c.ToggleBreakpoint(codeAt + 2); err != nil {
		t.Fatal(err)
	}
	step(t, c)
	r := c.Step()
	if r.Status != StepBreakpoint || r.Address != codeAt+2 || r.Cycles != 0 {
		t.Fatalf("status %s at %06X", r.Status, r.Address)
	}
	if c.Running || c.PC != codeAt+2 {
		t.Errorf("running %v, PC %06X", c.Running, c.PC)
	}
	// Resuming runs the instruction under the breakpoint.
	c.Running = true
	step(t, c)
	step(t, c)
	if c.PC != codeAt+6 {
		t.Errorf("PC = %06X", c.PC)
	}
	// The breakpoint fires again when execution comes back.
	c.SetPC(codeAt + 2)
	if r := c.Step(); r.Status != StepBreakpoint {
		t.Errorf("second visit: %s", r.Status)
	}
}

func TestBreakpointStopsRunFor(t *testing.T) {
	c, _ := setup(t, nops(16)...)
	c.ToggleBreakpoint(codeAt + 6)
	left := c.RunFor(1000)
	if left != 1000-12 {
		t.Errorf("remainder %d", left)
	}
	if c.Running || c.PC != codeAt+6 {
		t.Errorf("running %v, PC %06X", c.Running, c.PC)
	}
}

func TestToggleBreakpoint(t *testing.T) {
	c, _ := setup(t)
	for n := uint32(0); n < BreakpointCount; n++ {
		if err := c.ToggleBreakpoint(0x100 + n*2); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.ToggleBreakpoint(0x200); !errors.Is(err, ErrBreakpointsFull) {
		t.Errorf("fourth breakpoint: %v", err)
	}
	// Disabling frees the slot.
	c.ToggleBreakpoint(0x102)
	if b := c.Breakpoints()[1]; b.Enabled {
		t.Errorf("slot 1 still armed: %+v", b)
	}
	if err := c.ToggleBreakpoint(0x200); err != nil {
		t.Error(err)
	}
	if b := c.Breakpoints()[1]; !b.Enabled || b.Address != 0x200 {
		t.Errorf("slot 1 = %+v", b)
	}
	c.ClearBreakpoints()
	for _, b := range c.Breakpoints() {
		if b.Enabled {
			t.Errorf("armed after clear: %+v", b)
		}
	}
}
