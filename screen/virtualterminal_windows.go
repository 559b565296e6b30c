//go:build windows

package screen

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/command"
	"github.com/coreterm/coreterm/platformhandle"
)

var virtualTerminalOnce sync.Once

// ensureVirtualTerminal probes/enables ENABLE_VIRTUAL_TERMINAL_PROCESSING
// on the process's console output handle exactly once. Modern Windows
// consoles (Windows Terminal, recent conhost) understand ANSI sequences
// once this flag is set; legacy conhost rejects the flag, in which case
// command.AnsiSupported keeps routing through the WinAPI path.
func ensureVirtualTerminal() {
	virtualTerminalOnce.Do(func() {
		h, err := platformhandle.StdOutput()
		if err != nil {
			return
		}
		handle := windows.Handle(h.Fd())

		var mode uint32
		if err := windows.GetConsoleMode(handle, &mode); err != nil {
			return
		}
		if windows.SetConsoleMode(handle, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil {
			command.SetWindowsVirtualTerminal(true)
		}
	})
}
