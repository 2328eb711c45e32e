package cpu

// Condition is one of the 16 condition codes used by Bcc, DBcc and Scc.
type Condition struct {
	Mnemonic string
	// Test evaluates the condition against the status register.
	Test func(sr uint16) bool
}

func bit(sr uint16, f uint16) bool { return sr&f != 0 }

// Conditions is indexed by the 4-bit condition field.
var Conditions = [16]Condition{
	{"t", func(uint16) bool { return true }},
	{"f", func(uint16) bool { return false }},
	{"hi", func(sr uint16) bool { return !bit(sr, SRC) && !bit(sr, SRZ) }},
	{"ls", func(sr uint16) bool { return bit(sr, SRC) || bit(sr, SRZ) }},
	{"cc", func(sr uint16) bool { return !bit(sr, SRC) }},
	{"cs", func(sr uint16) bool { return bit(sr, SRC) }},
	{"ne", func(sr uint16) bool { return !bit(sr, SRZ) }},
	{"eq", func(sr uint16) bool { return bit(sr, SRZ) }},
	{"vc", func(sr uint16) bool { return !bit(sr, SRV) }},
	{"vs", func(sr uint16) bool { return bit(sr, SRV) }},
	{"pl", func(sr uint16) bool { return !bit(sr, SRN) }},
	{"mi", func(sr uint16) bool { return bit(sr, SRN) }},
	{"ge", func(sr uint16) bool { return bit(sr, SRN) == bit(sr, SRV) }},
	{"lt", func(sr uint16) bool { return bit(sr, SRN) != bit(sr, SRV) }},
	{"gt", func(sr uint16) bool { return !bit(sr, SRZ) && bit(sr, SRN) == bit(sr, SRV) }},
	{"le", func(sr uint16) bool { return bit(sr, SRZ) || bit(sr, SRN) != bit(sr, SRV) }},
}

// condition returns the condition selected by bits 11-8 of an opcode.
func condition(opcode uint16) *Condition {
	return &Conditions[(opcode>>8)&0xF]
}
