package vm

import "fmt"

// Trap vectors.
const (
	TrapGetc  uint16 = 0x20 /* get character from keyboard, not echoed onto the terminal */
	TrapOut   uint16 = 0x21 /* output a character */
	TrapPuts  uint16 = 0x22 /* output a word string */
	TrapIn    uint16 = 0x23 /* get character from keyboard, echoed onto the terminal */
	TrapPutsp uint16 = 0x24 /* output a byte string */
	TrapHalt  uint16 = 0x25 /* halt the program */
)

// opTRAP saves the return address in R7 and dispatches on the trap vector.
// The trap routines never touch the condition flags.
func (c *CPU) opTRAP(instr, pc uint16) error {
	c.Reg.Gen[R7] = c.Reg.PC

	switch vec := vectorOf(instr); vec {
	case TrapGetc:
		return c.trapGetc()
	case TrapOut:
		return c.trapOut()
	case TrapPuts:
		return c.trapPuts()
	case TrapIn:
		return c.trapIn()
	case TrapPutsp:
		return c.trapPutsp()
	case TrapHalt:
		c.running = false
		return c.console.Flush()
	default:
		return fmt.Errorf("unknown trap vector %#02x at %#04x", vec, pc)
	}
}

func (c *CPU) trapGetc() error {
	// Flush pending output so a prompt never trails its read.
	if err := c.console.Flush(); err != nil {
		return err
	}
	b, err := c.console.ReadByte()
	if err != nil {
		return fmt.Errorf("trap GETC: %w", err)
	}
	c.Reg.Gen[R0] = uint16(b)
	return nil
}

func (c *CPU) trapOut() error {
	return c.console.WriteByte(byte(c.Reg.Gen[R0]))
}

// trapPuts writes the null-terminated string at R0, one character per word.
func (c *CPU) trapPuts() error {
	for addr := c.Reg.Gen[R0]; ; addr++ {
		w := c.Mem.Read(addr)
		if w == 0 {
			return nil
		}
		if err := c.console.WriteByte(byte(w)); err != nil {
			return err
		}
	}
}

func (c *CPU) trapIn() error {
	if err := c.writeString("Enter a character: "); err != nil {
		return err
	}
	if err := c.console.Flush(); err != nil {
		return err
	}
	b, err := c.console.ReadByte()
	if err != nil {
		return fmt.Errorf("trap IN: %w", err)
	}
	if err := c.console.WriteByte(b); err != nil {
		return err
	}
	if err := c.console.WriteByte('\n'); err != nil {
		return err
	}
	c.Reg.Gen[R0] = uint16(b)
	return nil
}

// trapPutsp writes the string at R0 with two characters packed per word,
// low byte first. The first zero byte ends the string.
func (c *CPU) trapPutsp() error {
	for addr := c.Reg.Gen[R0]; ; addr++ {
		w := c.Mem.Read(addr)
		lo, hi := byte(w), byte(w>>8)
		if lo == 0 {
			return nil
		}
		if err := c.console.WriteByte(lo); err != nil {
			return err
		}
		if hi == 0 {
			return nil
		}
		if err := c.console.WriteByte(hi); err != nil {
			return err
		}
	}
}

func (c *CPU) writeString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := c.console.WriteByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}
