//go:build !windows

package screen

import "github.com/coreterm/coreterm/command"

func winClear(_ ClearType) error { return command.ErrUnsupported }
func winScroll(_ int) error { return command.ErrUnsupported }
func winSetSize(_, _ int) error { return command.ErrUnsupported }
func winSetTitle(_ string) error { return command.ErrUnsupported }
func winEnterAlternateScreen() error { return command.ErrUnsupported }
func winLeaveAlternateScreen() error { return command.ErrUnsupported }
