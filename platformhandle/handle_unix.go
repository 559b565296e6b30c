//go:build !windows

package platformhandle

import (
	"os"

	"golang.org/x/term"
)

// invalidFd is the sentinel this package uses on POSIX to mean "no
// descriptor" — negative fds are never valid.
const invalidFd = ^uintptr(0)

func isValidFd(fd uintptr) bool {
	return fd != invalidFd && int(fd) >= 0
}

// StdOutput returns a non-owning Handle over the process's stdout.
func StdOutput() (Handle, error) {
	return Handle{fd: os.Stdout.Fd(), owned: false}, nil
}

// StdInput returns a non-owning Handle over the process's stdin.
func StdInput() (Handle, error) {
	return Handle{fd: os.Stdin.Fd(), owned: false}, nil
}

// CurrentOutput returns the current controlling terminal's output device,
// obtained either from stdout (if it is a tty) or by opening /dev/tty. The
// returned Handle owns the descriptor it opened, if any, and must be
// closed.
func CurrentOutput() (Handle, error) {
	return currentTTY(os.O_WRONLY)
}

// CurrentInput returns the current controlling terminal's input device,
// analogous to CurrentOutput.
func CurrentInput() (Handle, error) {
	return currentTTY(os.O_RDONLY)
}

func currentTTY(flag int) (Handle, error) {
	if flag == os.O_WRONLY && term.IsTerminal(int(os.Stdout.Fd())) {
		return Handle{fd: os.Stdout.Fd(), owned: false}, nil
	}
	if flag == os.O_RDONLY && term.IsTerminal(int(os.Stdin.Fd())) {
		return Handle{fd: os.Stdin.Fd(), owned: false}, nil
	}

	f, err := os.OpenFile("/dev/tty", flag, 0)
	if err != nil {
		return Handle{}, err
	}
	return Handle{
		fd:    f.Fd(),
		owned: true,
		close: f.Close,
	}, nil
}
