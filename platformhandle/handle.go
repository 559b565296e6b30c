// Package platformhandle abstracts over a console/tty file descriptor on
// POSIX or a Windows console HANDLE, providing the four acquisitions
// coreterm needs: the process's stdout/stdin handles, and "current output"/
// "current input" (opened by device name, used when the process has been
// daemonized or its standard streams redirected).
package platformhandle

import "errors"

// ErrInvalidHandle is returned when a platform handle acquisition yields the
// platform's invalid-handle sentinel (INVALID_HANDLE_VALUE on Windows, a
// negative fd on POSIX).
var ErrInvalidHandle = errors.New("platformhandle: invalid handle")

// Handle is an owning wrapper around a platform I/O handle. Close releases
// the underlying resource only if this Handle owns it — a Handle wrapping
// os.Stdin/os.Stdout never closes the process's standard streams.
type Handle struct {
	fd    uintptr
	owned bool
	close func() error
}

// Fd returns the raw platform descriptor/handle value. On POSIX this is a
// file descriptor; on Windows it is a HANDLE.
func (h Handle) Fd() uintptr { return h.fd }

// Owned reports whether this Handle is responsible for closing the
// underlying resource.
func (h Handle) Owned() bool { return h.owned }

// Close releases the handle if it is owned; otherwise it is a no-op. Safe
// to call multiple times.
func (h *Handle) Close() error {
	if !h.owned || h.close == nil {
		return nil
	}
	closeFn := h.close
	h.close = nil
	h.owned = false
	return closeFn()
}

// Valid reports whether fd is not the platform's invalid-handle sentinel.
func Valid(fd uintptr) bool {
	return isValidFd(fd)
}
