package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermConsole is the interactive console over the process's stdin and
// stdout. A reader goroutine feeds keystrokes into a buffered channel so
// both the blocking traps and the keyboard status register see pending
// input from the same stream.
type TermConsole struct {
	out  *bufio.Writer
	keys chan byte

	raw      bool
	savedCfg unix.Termios
}

func NewTermConsole() *TermConsole {
	c := &TermConsole{
		out:  bufio.NewWriter(os.Stdout),
		keys: make(chan byte, 8),
	}
	go c.readKeys()
	return c
}

func (c *TermConsole) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			c.keys <- buf[0]
		}
		if err != nil {
			close(c.keys)
			return
		}
	}
}

func (c *TermConsole) ReadByte() (byte, error) {
	b, ok := <-c.keys
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

func (c *TermConsole) WriteByte(b byte) error { return c.out.WriteByte(b) }

func (c *TermConsole) Flush() error { return c.out.Flush() }

func (c *TermConsole) Poll() (byte, bool) {
	select {
	case b, ok := <-c.keys:
		if !ok {
			return 0, false
		}
		return b, true
	default:
		return 0, false
	}
}

// EnableRawMode turns off line buffering and echo on stdin so single
// keystrokes reach the machine. It is a no-op when stdin is not a
// terminal, which keeps piped input working unmodified.
func (c *TermConsole) EnableRawMode() error {
	fd := os.Stdin.Fd()
	if !term.IsTerminal(int(fd)) {
		return nil
	}
	if err := termios.Tcgetattr(fd, &c.savedCfg); err != nil {
		return err
	}
	cfg := c.savedCfg
	cfg.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(fd, termios.TCSANOW, &cfg); err != nil {
		return err
	}
	c.raw = true
	return nil
}

// RestoreMode puts the terminal back the way EnableRawMode found it. Safe
// to call more than once.
func (c *TermConsole) RestoreMode() error {
	if !c.raw {
		return nil
	}
	c.raw = false
	return termios.Tcsetattr(os.Stdin.Fd(), termios.TCSANOW, &c.savedCfg)
}
