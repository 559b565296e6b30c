//go:build !windows

package screen

// ensureVirtualTerminal is a no-op on POSIX: command.AnsiSupported is
// unconditionally true there, so there is nothing to probe or enable.
func ensureVirtualTerminal() {}
