//go:build !windows

package screen

import (
	"golang.org/x/term"

	"github.com/coreterm/coreterm/platformhandle"
)

// Size returns the terminal's current dimensions in character cells,
// querying the controlling terminal even when stdout is redirected.
func Size() (columns, rows int, err error) {
	h, err := platformhandle.CurrentOutput()
	if err != nil {
		return 0, 0, err
	}
	defer h.Close()
	return term.GetSize(int(h.Fd()))
}
