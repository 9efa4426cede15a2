// Package console is a minimal single-keypress debug console built on
// "github.com/pkg/term/termios" raw-mode switching, with no terminal
// geometry tracking since nothing here draws to a fixed-size grid.
package console

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/Justin-Credible/galaga-emulator/debugger"
)

// Console reads single keypresses from stdin in raw mode and turns them
// into debugger.Command values.
type Console struct {
	input   *os.File
	canAttr unix.Termios
	rawAttr unix.Termios
}

// Open puts stdin into raw mode so keypresses are available one at a
// time without waiting for Enter. Close must be called to restore the
// terminal's original mode.
func Open() (*Console, error) {
	c := &Console{input: os.Stdin}

	if err := termios.Tcgetattr(c.input.Fd(), &c.canAttr); err != nil {
		return nil, err
	}
	c.rawAttr = c.canAttr
	termios.Cfmakeraw(&c.rawAttr)

	if err := termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.rawAttr); err != nil {
		return nil, err
	}

	return c, nil
}

// Close restores the terminal's original (canonical) mode.
func (c *Console) Close() error {
	return termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.canAttr)
}

// ReadKey blocks for a single keypress and returns it raw; err is
// non-nil only if the underlying read fails (e.g. stdin closed).
func (c *Console) ReadKey() (byte, error) {
	buf := make([]byte, 1)
	if _, err := c.input.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// CommandForKey maps a keypress to the debug command it requests: 'c'
// continue, 's' single-step. Any other key has no mapping (ok is
// false), leaving keys like 'q' for the caller to interpret as quit.
func CommandForKey(key byte) (debugger.Command, bool) {
	switch key {
	case 'c':
		return debugger.Command{Kind: debugger.CommandContinue}, true
	case 's':
		return debugger.Command{Kind: debugger.CommandSingleStep}, true
	}
	return debugger.Command{}, false
}
