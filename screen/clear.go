// Package screen implements the terminal-mode lifecycle: scoped,
// refcounted acquisition of raw mode, the alternate screen buffer, mouse
// capture, bracketed paste, focus reporting, and the keyboard-enhancement
// flag stack, plus the screen/buffer Commands (clear, scroll, resize,
// title, line wrap, synchronized update).
package screen

import (
	"fmt"
	"io"

	"github.com/coreterm/coreterm/command"
)

// ClearType selects how much of the screen buffer Clear erases.
type ClearType int

const (
	All ClearType = iota
	Purge
	FromCursorDown
	FromCursorUp
	CurrentLine
	UntilNewLine
)

// Clear erases part or all of the screen buffer. Purge additionally
// discards the scrollback history where the platform supports it.
type Clear struct {
	Type ClearType
}

func (c Clear) WriteANSI(w io.Writer) error {
	var seq string
	switch c.Type {
	case All:
		seq = "\x1b[2J"
	case Purge:
		seq = "\x1b[2J\x1b[3J"
	case FromCursorDown:
		seq = "\x1b[J"
	case FromCursorUp:
		seq = "\x1b[1J"
	case CurrentLine:
		seq = "\x1b[2K"
	case UntilNewLine:
		seq = "\x1b[K"
	}
	_, err := io.WriteString(w, seq)
	return err
}

func (c Clear) ExecuteWinAPI() error { return winClear(c.Type) }

// ScrollUp scrolls the visible screen up by n lines, revealing n blank
// lines at the bottom.
type ScrollUp struct{ N int }

func (c ScrollUp) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dS", c.N)
	return err
}
func (c ScrollUp) ExecuteWinAPI() error { return winScroll(c.N) }

// ScrollDown scrolls the visible screen down by n lines.
type ScrollDown struct{ N int }

func (c ScrollDown) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dT", c.N)
	return err
}
func (c ScrollDown) ExecuteWinAPI() error { return winScroll(-c.N) }

// SetSize resizes the console/terminal window to cols x rows.
type SetSize struct{ Columns, Rows int }

func (c SetSize) WriteANSI(w io.Writer) error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return command.ErrInvalidArgument
	}
	_, err := fmt.Fprintf(w, "\x1b[8;%d;%dt", c.Rows, c.Columns)
	return err
}
func (c SetSize) ExecuteWinAPI() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return command.ErrInvalidArgument
	}
	return winSetSize(c.Columns, c.Rows)
}

// SetTitle sets the terminal/console window title.
type SetTitle struct{ Title string }

func (c SetTitle) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b]0;%s\x07", c.Title)
	return err
}
func (c SetTitle) ExecuteWinAPI() error { return winSetTitle(c.Title) }

// DisableLineWrap turns off automatic line wrapping at the right margin.
type DisableLineWrap struct{}

func (DisableLineWrap) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?7l")
	return err
}
func (DisableLineWrap) ExecuteWinAPI() error { return command.ErrUnsupported }

// EnableLineWrap reverses DisableLineWrap.
type EnableLineWrap struct{}

func (EnableLineWrap) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?7h")
	return err
}
func (EnableLineWrap) ExecuteWinAPI() error { return command.ErrUnsupported }

// EnterAlternateScreen switches to the secondary screen buffer, whose
// contents are discarded on LeaveAlternateScreen.
type EnterAlternateScreen struct{}

func (EnterAlternateScreen) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?1049h")
	return err
}
func (EnterAlternateScreen) ExecuteWinAPI() error { return winEnterAlternateScreen() }

// LeaveAlternateScreen restores the primary screen buffer.
type LeaveAlternateScreen struct{}

func (LeaveAlternateScreen) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?1049l")
	return err
}
func (LeaveAlternateScreen) ExecuteWinAPI() error { return winLeaveAlternateScreen() }

// BeginSynchronizedUpdate suppresses intermediate repaints until
// EndSynchronizedUpdate, so a terminal that supports it renders a frame
// atomically.
type BeginSynchronizedUpdate struct{}

func (BeginSynchronizedUpdate) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?2026h")
	return err
}
func (BeginSynchronizedUpdate) ExecuteWinAPI() error { return command.ErrUnsupported }

// EndSynchronizedUpdate closes a BeginSynchronizedUpdate span.
type EndSynchronizedUpdate struct{}

func (EndSynchronizedUpdate) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?2026l")
	return err
}
func (EndSynchronizedUpdate) ExecuteWinAPI() error { return command.ErrUnsupported }

var (
	_ command.Command = Clear{}
	_ command.Command = ScrollUp{}
	_ command.Command = ScrollDown{}
	_ command.Command = SetSize{}
	_ command.Command = SetTitle{}
	_ command.Command = DisableLineWrap{}
	_ command.Command = EnableLineWrap{}
	_ command.Command = EnterAlternateScreen{}
	_ command.Command = LeaveAlternateScreen{}
	_ command.Command = BeginSynchronizedUpdate{}
	_ command.Command = EndSynchronizedUpdate{}
)
