//go:build windows

package command

import "sync/atomic"

// windowsVTEnabled tracks whether ENABLE_VIRTUAL_TERMINAL_PROCESSING has
// been turned on for the process's console output handle. It starts false:
// until something probes (or enables) virtual-terminal processing, commands
// are dispatched through the legacy Win32 console API.
var windowsVTEnabled atomic.Bool

// SetWindowsVirtualTerminal records whether virtual-terminal processing is
// active on the current output handle. The screen package calls this after
// probing/enabling ENABLE_VIRTUAL_TERMINAL_PROCESSING so that Queue/Execute
// route commands correctly.
func SetWindowsVirtualTerminal(enabled bool) {
	windowsVTEnabled.Store(enabled)
}

func defaultAnsiSupported() bool {
	return windowsVTEnabled.Load()
}
