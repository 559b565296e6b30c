//go:build !windows

package cursor

import "github.com/coreterm/coreterm/command"

// On POSIX there is no console API distinct from ANSI, so every WinAPI hook
// is unsupported; Queue/Execute never calls these paths because
// command.AnsiSupported() is always true on this platform (see
// command.defaultAnsiSupported in command_unix.go).

func winSetCursorPosition(_, _ int) error { return command.ErrUnsupported }
func winMoveToColumn(_ int) error { return command.ErrUnsupported }
func winMoveToRow(_ int) error { return command.ErrUnsupported }
func winMoveToNextLine(_ int) error { return command.ErrUnsupported }
func winMoveToPreviousLine(_ int) error { return command.ErrUnsupported }
func winMoveRelative(_, _ int) error { return command.ErrUnsupported }
func winSavePosition() error { return command.ErrUnsupported }
func winRestorePosition() error { return command.ErrUnsupported }
func winSetCursorVisible(_ bool) error { return command.ErrUnsupported }
