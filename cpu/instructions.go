package cpu

// Handler executes a decoded instruction and returns the cycles it took on
// top of the instruction's base cost.
type Handler func(*CPU, *Instruction) int

// Instruction is a decoded opcode. Instructions live in the opcode table and
// are shared by every CPU, so handlers must not modify them.
type Instruction struct {
	Opcode   uint16
	Mnemonic string
	Size     Size
	Src      *Operand
	Dst      *Operand
	// Condition is set for Bcc, DBcc and Scc.
	Condition *Condition
	// Implicit names a register the opcode refers to without an operand
	// (ccr, sr, usp). It takes the place of whichever operand is absent.
	Implicit string

	Handler    Handler
	BaseCycles int
	// Stub marks decoded instructions whose behaviour is not emulated.
	Stub bool
}

// Fixed opcodes.
const (
	OPORItoCCR  = 0x003C // ORI to CCR
	OPORItoSR   = 0x007C // ORI to SR (privileged)
	OPANDItoCCR = 0x023C // ANDI to CCR
	OPANDItoSR  = 0x027C // ANDI to SR (privileged)
	OPEORItoCCR = 0x0A3C // EORI to CCR
	OPEORItoSR  = 0x0A7C // EORI to SR (privileged)
	OPILLEGAL   = 0x4AFC // ILLEGAL
	OPRESET     = 0x4E70 // RESET (privileged)
	OPNOP       = 0x4E71 // NOP
	OPSTOP      = 0x4E72 // STOP (privileged)
	OPRTE       = 0x4E73 // RTE (privileged)
	OPRTS       = 0x4E75 // RTS
	OPTRAPV     = 0x4E76 // TRAPV
	OPRTR       = 0x4E77 // RTR
)

// Exception vectors.
const (
	VectorResetSSP        = 0
	VectorResetPC         = 1
	VectorBusError        = 2
	VectorAddressError    = 3
	VectorIllegal         = 4
	VectorZeroDivide      = 5
	VectorCHK             = 6
	VectorTRAPV           = 7
	VectorPrivilege       = 8
	VectorTrace           = 9
	VectorLineA           = 10
	VectorLineF           = 11
	VectorSpurious        = 24
	VectorAutovector      = 24 // plus the interrupt level
	VectorTrap            = 32 // plus the trap number
	InterruptVectorOffset = VectorAutovector * 4
)

func (i *Instruction) String() string {
	return i.Mnemonic + i.sizeSuffix()
}

func (i *Instruction) sizeSuffix() string {
	switch i.Mnemonic {
	case "moveq", "exg", "lea", "pea", "swap", "link", "unlk", "trap", "stop",
		"jmp", "jsr", "rts", "rte", "rtr", "nop", "reset", "trapv", "illegal",
		"tas", "nbcd", "abcd", "sbcd":
		return ""
	}
	if i.Condition != nil {
		return ""
	}
	return i.Size.Suffix()
}
