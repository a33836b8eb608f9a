package vm

import "fmt"

// CPU drives the fetch-decode-execute loop over one Memory and register
// file. One handler per opcode keeps every instruction's locals isolated.
type CPU struct {
	Reg     Registers
	Mem     *Memory
	console Console
	running bool

	// Trace, when set, is called with the address and raw word of every
	// instruction before it executes.
	Trace func(pc, instr uint16)
}

func newCPU(mem *Memory, console Console) *CPU {
	return &CPU{
		Mem:     mem,
		console: console,
		Reg:     Registers{PC: UserSpaceStart, Cond: FlagZro},
	}
}

// Run executes instructions until the HALT trap or a fatal decode error.
func (c *CPU) Run() error {
	c.running = true
	for c.running {
		if err := c.Step(); err != nil {
			c.running = false
			return err
		}
	}
	return nil
}

// Step fetches, decodes and executes a single instruction.
func (c *CPU) Step() error {
	pc := c.Reg.PC
	instr := c.Mem.Read(pc)
	c.Reg.PC++

	if c.Trace != nil {
		c.Trace(pc, instr)
	}

	switch op := opcodeOf(instr); op {
	case OpBR:
		c.opBR(instr)
	case OpADD:
		c.opADD(instr)
	case OpLD:
		c.opLD(instr)
	case OpST:
		c.opST(instr)
	case OpJSR:
		c.opJSR(instr)
	case OpAND:
		c.opAND(instr)
	case OpLDR:
		c.opLDR(instr)
	case OpSTR:
		c.opSTR(instr)
	case OpNOT:
		c.opNOT(instr)
	case OpLDI:
		c.opLDI(instr)
	case OpSTI:
		c.opSTI(instr)
	case OpJMP:
		c.opJMP(instr)
	case OpLEA:
		c.opLEA(instr)
	case OpTRAP:
		return c.opTRAP(instr, pc)
	case OpRTI, OpRES:
		// Unused opcodes are a fatal decode error, never a no-op.
		return fmt.Errorf("reserved opcode %04b at %#04x", op, pc)
	default:
		return fmt.Errorf("unknown opcode %04b at %#04x", op, pc)
	}
	return nil
}

func (c *CPU) opBR(instr uint16) {
	if condOf(instr)&c.Reg.Cond != 0 {
		c.Reg.PC += off9Of(instr)
	}
}

func (c *CPU) opADD(instr uint16) {
	dr := drOf(instr)
	v := c.Reg.Gen[sr1Of(instr)]
	if immFlag(instr) {
		v += imm5Of(instr)
	} else {
		v += c.Reg.Gen[sr2Of(instr)]
	}
	c.Reg.Gen[dr] = v
	c.Reg.updateFlags(dr)
}

func (c *CPU) opAND(instr uint16) {
	dr := drOf(instr)
	v := c.Reg.Gen[sr1Of(instr)]
	if immFlag(instr) {
		v &= imm5Of(instr)
	} else {
		v &= c.Reg.Gen[sr2Of(instr)]
	}
	c.Reg.Gen[dr] = v
	c.Reg.updateFlags(dr)
}

func (c *CPU) opNOT(instr uint16) {
	dr := drOf(instr)
	c.Reg.Gen[dr] = ^c.Reg.Gen[sr1Of(instr)]
	c.Reg.updateFlags(dr)
}

func (c *CPU) opLD(instr uint16) {
	dr := drOf(instr)
	c.Reg.Gen[dr] = c.Mem.Read(c.Reg.PC + off9Of(instr))
	c.Reg.updateFlags(dr)
}

func (c *CPU) opLDI(instr uint16) {
	dr := drOf(instr)
	c.Reg.Gen[dr] = c.Mem.Read(c.Mem.Read(c.Reg.PC + off9Of(instr)))
	c.Reg.updateFlags(dr)
}

func (c *CPU) opLDR(instr uint16) {
	dr := drOf(instr)
	c.Reg.Gen[dr] = c.Mem.Read(c.Reg.Gen[baseOf(instr)] + off6Of(instr))
	c.Reg.updateFlags(dr)
}

func (c *CPU) opLEA(instr uint16) {
	dr := drOf(instr)
	c.Reg.Gen[dr] = c.Reg.PC + off9Of(instr)
	c.Reg.updateFlags(dr)
}

func (c *CPU) opST(instr uint16) {
	c.Mem.Write(c.Reg.PC+off9Of(instr), c.Reg.Gen[srOf(instr)])
}

func (c *CPU) opSTI(instr uint16) {
	c.Mem.Write(c.Mem.Read(c.Reg.PC+off9Of(instr)), c.Reg.Gen[srOf(instr)])
}

func (c *CPU) opSTR(instr uint16) {
	c.Mem.Write(c.Reg.Gen[baseOf(instr)]+off6Of(instr), c.Reg.Gen[srOf(instr)])
}

func (c *CPU) opJMP(instr uint16) {
	c.Reg.PC = c.Reg.Gen[baseOf(instr)]
}

func (c *CPU) opJSR(instr uint16) {
	// The return address is saved before the jump.
	c.Reg.Gen[R7] = c.Reg.PC
	if longFlag(instr) {
		c.Reg.PC += off11Of(instr)
	} else {
		c.Reg.PC = c.Reg.Gen[baseOf(instr)]
	}
}
