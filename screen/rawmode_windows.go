//go:build windows

package screen

import (
	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/platformhandle"
)

func acquireRawMode() (func() error, error) {
	ensureVirtualTerminal()

	h, err := platformhandle.StdInput()
	if err != nil {
		return nil, err
	}
	handle := windows.Handle(h.Fd())

	var original uint32
	if err := windows.GetConsoleMode(handle, &original); err != nil {
		return nil, err
	}

	raw := original &^ (windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT | windows.ENABLE_ECHO_INPUT)
	if mouseCaptureGuard.enabled() {
		raw |= windows.ENABLE_WINDOW_INPUT | windows.ENABLE_MOUSE_INPUT
	}
	if err := windows.SetConsoleMode(handle, raw); err != nil {
		return nil, err
	}

	return func() error {
		return windows.SetConsoleMode(handle, original)
	}, nil
}
