//go:build !windows

package command

// defaultAnsiSupported is true unconditionally on non-Windows platforms:
// every POSIX terminal emulator coreterm targets understands ANSI/VT
// sequences, so there is no WinAPI fallback path to probe for.
func defaultAnsiSupported() bool {
	return true
}
