// Package cursor provides Command implementations that move, save/restore,
// show/hide, and restyle the terminal cursor.
//
// All coordinates are 0-based, matching the rest of coreterm's data model;
// ANSI emission converts to the 1-based coordinates the terminal expects.
package cursor

import (
	"fmt"
	"io"
	"math"

	"github.com/coreterm/coreterm/command"
)

// Style is the visual appearance of the terminal cursor, set via
// SetCursorStyle.
type Style int

// Cursor style constants. Blinking/steady pairs follow DECSCUSR numbering.
const (
	DefaultUserShape Style = iota
	BlinkingBlock
	SteadyBlock
	BlinkingUnderScore
	SteadyUnderScore
	BlinkingBar
	SteadyBar
)

func (s Style) decscusrCode() int {
	switch s {
	case DefaultUserShape:
		return 0
	case BlinkingBlock:
		return 1
	case SteadyBlock:
		return 2
	case BlinkingUnderScore:
		return 3
	case SteadyUnderScore:
		return 4
	case BlinkingBar:
		return 5
	case SteadyBar:
		return 6
	default:
		return 0
	}
}

// MoveTo moves the cursor to an absolute, 0-based (column, row) position.
type MoveTo struct{ Column, Row int }

func (c MoveTo) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%d;%dH", c.Row+1, c.Column+1)
	return err
}
func (c MoveTo) ExecuteWinAPI() error {
	if c.Column > math.MaxInt16 || c.Row > math.MaxInt16 {
		return command.ErrInvalidArgument
	}
	return winSetCursorPosition(c.Column, c.Row)
}

// MoveToColumn moves the cursor to an absolute 0-based column on the current
// row, leaving the row unchanged.
type MoveToColumn struct{ Column int }

func (c MoveToColumn) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%dG", c.Column+1)
	return err
}
func (c MoveToColumn) ExecuteWinAPI() error { return winMoveToColumn(c.Column) }

// MoveToRow moves the cursor to an absolute 0-based row, leaving the column
// unchanged. This is expressed as the vertical position absolute (VPA)
// sequence, CSI n d.
type MoveToRow struct{ Row int }

func (c MoveToRow) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%dd", c.Row+1)
	return err
}
func (c MoveToRow) ExecuteWinAPI() error { return winMoveToRow(c.Row) }

// MoveToNextLine moves the cursor to the start of the Nth line below the
// current one.
type MoveToNextLine struct{ N int }

func (c MoveToNextLine) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dE", c.N)
	return err
}
func (c MoveToNextLine) ExecuteWinAPI() error { return winMoveToNextLine(c.N) }

// MoveToPreviousLine moves the cursor to the start of the Nth line above
// the current one.
type MoveToPreviousLine struct{ N int }

func (c MoveToPreviousLine) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dF", c.N)
	return err
}
func (c MoveToPreviousLine) ExecuteWinAPI() error { return winMoveToPreviousLine(c.N) }

// MoveUp moves the cursor up N rows (relative movement, clamped at the top).
type MoveUp struct{ N int }

func (c MoveUp) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dA", c.N)
	return err
}
func (c MoveUp) ExecuteWinAPI() error { return winMoveRelative(0, -c.N) }

// MoveDown moves the cursor down N rows.
type MoveDown struct{ N int }

func (c MoveDown) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dB", c.N)
	return err
}
func (c MoveDown) ExecuteWinAPI() error { return winMoveRelative(0, c.N) }

// MoveRight moves the cursor right N columns.
type MoveRight struct{ N int }

func (c MoveRight) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dC", c.N)
	return err
}
func (c MoveRight) ExecuteWinAPI() error { return winMoveRelative(c.N, 0) }

// MoveLeft moves the cursor left N columns.
type MoveLeft struct{ N int }

func (c MoveLeft) WriteANSI(w io.Writer) error {
	if c.N == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\x1b[%dD", c.N)
	return err
}
func (c MoveLeft) ExecuteWinAPI() error { return winMoveRelative(-c.N, 0) }

// SavePosition saves the current cursor position to the terminal's one-slot
// position stack. Must be paired with RestorePosition.
type SavePosition struct{}

func (SavePosition) WriteANSI(w io.Writer) error { _, err := io.WriteString(w, "\x1b7"); return err }
func (SavePosition) ExecuteWinAPI() error { return winSavePosition() }

// RestorePosition restores the cursor position previously saved by
// SavePosition.
type RestorePosition struct{}

func (RestorePosition) WriteANSI(w io.Writer) error { _, err := io.WriteString(w, "\x1b8"); return err }
func (RestorePosition) ExecuteWinAPI() error { return winRestorePosition() }

// Hide makes the cursor invisible. Always pair with Show.
type Hide struct{}

func (Hide) WriteANSI(w io.Writer) error { _, err := io.WriteString(w, "\x1b[?25l"); return err }
func (Hide) ExecuteWinAPI() error { return winSetCursorVisible(false) }

// Show makes the cursor visible.
type Show struct{}

func (Show) WriteANSI(w io.Writer) error { _, err := io.WriteString(w, "\x1b[?25h"); return err }
func (Show) ExecuteWinAPI() error { return winSetCursorVisible(true) }

// EnableBlinking turns on cursor blinking.
type EnableBlinking struct{}

func (EnableBlinking) WriteANSI(w io.Writer) error { _, err := io.WriteString(w, "\x1b[?12h"); return err }
func (EnableBlinking) ExecuteWinAPI() error { return command.ErrUnsupported }

// DisableBlinking turns off cursor blinking.
type DisableBlinking struct{}

func (DisableBlinking) WriteANSI(w io.Writer) error { _, err := io.WriteString(w, "\x1b[?12l"); return err }
func (DisableBlinking) ExecuteWinAPI() error { return command.ErrUnsupported }

// SetCursorStyle changes the cursor's visual appearance.
type SetCursorStyle struct{ Style Style }

func (c SetCursorStyle) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%d q", c.Style.decscusrCode())
	return err
}
func (c SetCursorStyle) ExecuteWinAPI() error { return command.ErrUnsupported }

var (
	_ command.Command = MoveTo{}
	_ command.Command = MoveToColumn{}
	_ command.Command = MoveToRow{}
	_ command.Command = MoveToNextLine{}
	_ command.Command = MoveToPreviousLine{}
	_ command.Command = MoveUp{}
	_ command.Command = MoveDown{}
	_ command.Command = MoveLeft{}
	_ command.Command = MoveRight{}
	_ command.Command = SavePosition{}
	_ command.Command = RestorePosition{}
	_ command.Command = Hide{}
	_ command.Command = Show{}
	_ command.Command = EnableBlinking{}
	_ command.Command = DisableBlinking{}
	_ command.Command = SetCursorStyle{}
)
