package vm

// Opcodes, bits 15-12 of the instruction word.
const (
	OpBR uint16 = iota
	OpADD
	OpLD
	OpST
	OpJSR
	OpAND
	OpLDR
	OpSTR
	OpRTI
	OpNOT
	OpLDI
	OpSTI
	OpJMP
	OpRES
	OpLEA
	OpTRAP
)

// Instruction field extractors. Each one names a bit slice of the
// instruction word so the handlers never shift inline. Offsets and
// immediates come back already sign extended.

func opcodeOf(instr uint16) uint16 { return instr >> 12 }

// drOf is the destination register of the value-producing instructions.
// The store instructions read their source from the same slice.
func drOf(instr uint16) uint16 { return (instr >> 9) & 0x7 }
func srOf(instr uint16) uint16 { return (instr >> 9) & 0x7 }

// sr1Of doubles as the base register slice for LDR/STR/JMP/JSRR.
func sr1Of(instr uint16) uint16  { return (instr >> 6) & 0x7 }
func baseOf(instr uint16) uint16 { return (instr >> 6) & 0x7 }
func sr2Of(instr uint16) uint16  { return instr & 0x7 }

// condOf is the nzp mask of a BR instruction.
func condOf(instr uint16) uint16 { return (instr >> 9) & 0x7 }

// immFlag selects immediate mode in ADD/AND; longFlag selects the
// PC-relative form of JSR over the register form.
func immFlag(instr uint16) bool  { return (instr>>5)&1 != 0 }
func longFlag(instr uint16) bool { return (instr>>11)&1 != 0 }

func imm5Of(instr uint16) uint16  { return signExtend(instr&0x1F, 5) }
func off6Of(instr uint16) uint16  { return signExtend(instr&0x3F, 6) }
func off9Of(instr uint16) uint16  { return signExtend(instr&0x1FF, 9) }
func off11Of(instr uint16) uint16 { return signExtend(instr&0x7FF, 11) }

// vectorOf is the trap vector of a TRAP instruction.
func vectorOf(instr uint16) uint16 { return instr & 0xFF }
