package vm

import (
	"bytes"
	"io"
)

// Console is the machine's teletype. The blocking traps read through
// ReadByte; the keyboard status register checks for pending input with
// Poll. Implementations buffer output until Flush.
type Console interface {
	// ReadByte blocks until one input byte is available.
	ReadByte() (byte, error)
	WriteByte(b byte) error
	// Flush pushes buffered output to the terminal. The traps call it
	// before every blocking read and on HALT.
	Flush() error
	// Poll consumes and returns one input byte if one is already
	// available, without blocking.
	Poll() (byte, bool)
}

// BufConsole is an in-memory console backed by a byte queue and a buffer.
// It serves the tests and any embedding that scripts the machine's I/O.
type BufConsole struct {
	in  []byte
	out bytes.Buffer
}

func NewBufConsole(input string) *BufConsole {
	return &BufConsole{in: []byte(input)}
}

func (c *BufConsole) ReadByte() (byte, error) {
	if len(c.in) == 0 {
		return 0, io.EOF
	}
	b := c.in[0]
	c.in = c.in[1:]
	return b, nil
}

func (c *BufConsole) WriteByte(b byte) error {
	return c.out.WriteByte(b)
}

func (c *BufConsole) Flush() error { return nil }

func (c *BufConsole) Poll() (byte, bool) {
	if len(c.in) == 0 {
		return 0, false
	}
	b := c.in[0]
	c.in = c.in[1:]
	return b, true
}

// Output returns everything the machine has written so far.
func (c *BufConsole) Output() string { return c.out.String() }
