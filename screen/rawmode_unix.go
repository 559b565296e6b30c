//go:build !windows

package screen

import (
	"golang.org/x/term"

	"github.com/coreterm/coreterm/platformhandle"
)

// acquireRawMode hands termios manipulation to golang.org/x/term, which
// implements exactly the ICANON/ECHO/ISIG/IEXTEN/BRKINT/ICRNL/INPCK/
// ISTRIP/IXON/OPOST/CSIZE|PARENB/CS8/VMIN=1/VTIME=0 transform this
// package's raw mode contract calls for, without pinning this file to one
// BSD's ioctl constants.
func acquireRawMode() (func() error, error) {
	h, err := platformhandle.StdInput()
	if err != nil {
		return nil, err
	}
	fd := int(h.Fd())

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	return func() error {
		return term.Restore(fd, state)
	}, nil
}
