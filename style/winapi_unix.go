//go:build !windows

package style

import "github.com/coreterm/coreterm/command"

func winSetForeground(_ Color) error { return command.ErrUnsupported }
func winSetBackground(_ Color) error { return command.ErrUnsupported }
func winResetColor() error { return command.ErrUnsupported }
func winWriteConsole(_ []byte) (int, error) { return 0, command.ErrUnsupported }
