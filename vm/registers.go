package vm

// General purpose registers. R7 also holds return addresses for JSR and TRAP.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
)

// Condition flags. Exactly one is set at any time.
const (
	FlagPos uint16 = 1 << 0
	FlagZro uint16 = 1 << 1
	FlagNeg uint16 = 1 << 2
)

// Registers is the machine's register file: eight general purpose
// registers, the program counter and the condition flags.
type Registers struct {
	Gen  [8]uint16
	PC   uint16
	Cond uint16
}

// updateFlags records the sign of register r's current value. It must be
// called after the register is written, with the register that changed.
func (reg *Registers) updateFlags(r uint16) {
	switch v := reg.Gen[r]; {
	case v == 0:
		reg.Cond = FlagZro
	case v>>15 != 0:
		reg.Cond = FlagNeg
	default:
		reg.Cond = FlagPos
	}
}
