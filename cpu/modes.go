package cpu

// Addressing mode field values (3-bit mode field + 3-bit register field).
const (
	// 000 Data Register Direct: Dn
	fieldData uint16 = 0
	// 001 Address Register Direct: An
	fieldAddr uint16 = 1
	// 010 Address Register Indirect: (An)
	fieldAddrInd uint16 = 2
	// 011 Address Register Indirect with Postincrement: (An)+
	fieldAddrPostInc uint16 = 3
	// 100 Address Register Indirect with Predecrement: -(An)
	fieldAddrPreDec uint16 = 4
	// 101 Address Register Indirect with Displacement: (d16,An)
	fieldAddrDisp uint16 = 5
	// 110 Address Register Indirect with Index: (d8,An,Xn)
	fieldAddrIndex uint16 = 6
	// 111 Miscellaneous modes, selected by the register field
	fieldOther uint16 = 7
)

// Register field values under fieldOther.
const (
	regAbsShort  uint16 = 0
	regAbsLong   uint16 = 1
	regPCDisp    uint16 = 2
	regPCIndex   uint16 = 3
	regImmediate uint16 = 4
)

// Mode identifies an operand variant.
type Mode uint8

const (
	// DataRegister is Dn.
	DataRegister Mode = iota
	// AddressRegister is An.
	AddressRegister
	// AddressIndirect is (An).
	AddressIndirect
	// PostIncrement is (An)+.
	PostIncrement
	// PreDecrement is -(An).
	PreDecrement
	// Displacement is (d16,An).
	Displacement
	// Indexed is (d8,An,Xn).
	Indexed
	// AbsoluteShort is (xxx).w, sign-extended.
	AbsoluteShort
	// AbsoluteLong is (xxx).l.
	AbsoluteLong
	// PCDisplacement is (d16,PC).
	PCDisplacement
	// PCIndexed is (d8,PC,Xn).
	PCIndexed
	// Immediate is #data read from the instruction stream.
	Immediate
	// Quick is a literal embedded in the opcode (ADDQ, MOVEQ, TRAP, shift counts).
	Quick
	// BranchOffset is a branch displacement, embedded in the opcode or in the
	// following word.
	BranchOffset
	// RegisterList is the MOVEM register mask extension word.
	RegisterList

	modeCount
)

var modeNames = [modeCount]string{
	"Dn", "An", "(An)", "(An)+", "-(An)", "(d16,An)", "(d8,An,Xn)",
	"(xxx).w", "(xxx).l", "(d16,PC)", "(d8,PC,Xn)", "#imm", "quick",
	"branch", "reglist",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "invalid"
}

// ModeSet is a set of operand variants.
type ModeSet uint16

// Has reports whether m is in the set.
func (s ModeSet) Has(m Mode) bool {
	return s&(1<<m) != 0
}

// admits reports whether an operand is acceptable for a pattern slot. An
// empty set requires the operand to be absent; otherwise it must be present
// and of an allowed variant.
func (s ModeSet) admits(o *Operand) bool {
	if o == nil {
		return s == 0
	}
	return s.Has(o.Mode)
}

func modes(ms ...Mode) ModeSet {
	var s ModeSet
	for _, m := range ms {
		s |= 1 << m
	}
	return s
}

// Common addressing mode categories.
var (
	setDn      = modes(DataRegister)
	setAn      = modes(AddressRegister)
	setPostInc = modes(PostIncrement)
	setQuick   = modes(Quick)
	setImm     = modes(Immediate)
	setBranch  = modes(BranchOffset)
	setList    = modes(RegisterList)

	// Memory alterable.
	setMemAlt = modes(AddressIndirect, PostIncrement, PreDecrement, Displacement,
		Indexed, AbsoluteShort, AbsoluteLong)
	// Data alterable.
	setDataAlt = setDn | setMemAlt
	// Alterable, including An.
	setAlt = setDataAlt | setAn
	// Data: everything but An.
	setData = setDataAlt | modes(PCDisplacement, PCIndexed, Immediate)
	// Everything.
	setAll = setData | setAn
	// Control: addressing modes with an address but no side effects.
	setControl = modes(AddressIndirect, Displacement, Indexed, AbsoluteShort,
		AbsoluteLong, PCDisplacement, PCIndexed)
)
