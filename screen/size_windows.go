//go:build windows

package screen

import "github.com/coreterm/coreterm/platformhandle"

// Size returns the console window's current dimensions in character
// cells (the visible window, not the full screen buffer).
func Size() (columns, rows int, err error) {
	h, err := platformhandle.StdOutput()
	if err != nil {
		return 0, 0, err
	}
	rect, err := platformhandle.WindowRect(h)
	if err != nil {
		return 0, 0, err
	}
	return rect.Width(), rect.Height(), nil
}
