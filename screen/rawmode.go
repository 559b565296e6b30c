package screen

import (
	"errors"
	"sync"
)

// ErrNotEnabled is returned by Disable when the refcount is already zero,
// i.e. the caller is disabling more times than it enabled.
var ErrNotEnabled = errors.New("screen: mode not enabled")

// refGuard is the process-wide nested-enable primitive every scoped
// terminal mode in this package is built from: enabling twice increments
// a refcount and is otherwise a no-op; only the disable that brings the
// count back to zero actually reverts the OS-level state, via restore.
type refGuard struct {
	mu      sync.Mutex
	count   int
	restore func() error
}

// enable runs acquire only on the transition from 0 to 1 references;
// acquire must return the function that restores the pre-enable state.
func (g *refGuard) enable(acquire func() (func() error, error)) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.count > 0 {
		g.count++
		return nil
	}
	restore, err := acquire()
	if err != nil {
		return err
	}
	g.restore = restore
	g.count = 1
	return nil
}

// disable decrements the refcount and, on reaching zero, invokes the
// restore function captured at first enable. Disabling past zero returns
// ErrNotEnabled.
func (g *refGuard) disable() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.count == 0 {
		return ErrNotEnabled
	}
	g.count--
	if g.count > 0 {
		return nil
	}
	restore := g.restore
	g.restore = nil
	if restore == nil {
		return nil
	}
	return restore()
}

func (g *refGuard) enabled() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.count > 0
}

var rawModeGuard refGuard

// EnableRawMode puts the terminal into raw (uncooked) mode: line
// buffering, echo, and signal generation are disabled so bytes pass
// through as typed. Nested calls increment a refcount; only the matching
// number of DisableRawMode calls restores the terminal.
func EnableRawMode() error {
	return rawModeGuard.enable(acquireRawMode)
}

// DisableRawMode reverses one EnableRawMode call. Once the refcount
// returns to zero, the terminal attributes captured at first enable are
// restored. Calling this more times than EnableRawMode was called
// returns ErrNotEnabled.
func DisableRawMode() error {
	return rawModeGuard.disable()
}

// IsRawModeEnabled reports whether the refcount is currently above zero.
func IsRawModeEnabled() bool {
	return rawModeGuard.enabled()
}
