// Package style provides Color and Attribute, plus the Command
// implementations that apply them (SetForegroundColor, SetAttribute, Print,
// PrintStyledContent, ...).
package style

import (
	"fmt"
	"io"

	"github.com/coreterm/coreterm/command"
)

// SetForegroundColor sets the text color.
type SetForegroundColor struct{ Color Color }

func (c SetForegroundColor) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%sm", c.Color.sgrForeground())
	return err
}
func (c SetForegroundColor) ExecuteWinAPI() error { return winSetForeground(c.Color) }

// SetBackgroundColor sets the background color.
type SetBackgroundColor struct{ Color Color }

func (c SetBackgroundColor) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%sm", c.Color.sgrBackground())
	return err
}
func (c SetBackgroundColor) ExecuteWinAPI() error { return winSetBackground(c.Color) }

// SetUnderlineColor sets the color used for underlines, independent of the
// foreground color. Not supported on the legacy Windows console API.
type SetUnderlineColor struct{ Color Color }

func (c SetUnderlineColor) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%sm", c.Color.sgrUnderline())
	return err
}
func (c SetUnderlineColor) ExecuteWinAPI() error { return command.ErrUnsupported }

// SetColors sets the foreground and background color together in a single
// write.
type SetColors struct{ Foreground, Background Color }

func (c SetColors) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%s;%sm", c.Foreground.sgrForeground(), c.Background.sgrBackground())
	return err
}
func (c SetColors) ExecuteWinAPI() error {
	if err := winSetForeground(c.Foreground); err != nil {
		return err
	}
	return winSetBackground(c.Background)
}

// SetAttribute applies a single text attribute.
type SetAttribute struct{ Attribute Attribute }

func (c SetAttribute) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[%sm", c.Attribute.String())
	return err
}
func (c SetAttribute) ExecuteWinAPI() error { return command.ErrUnsupported }

// SetAttributes applies a bitset of attributes in one sequence.
type SetAttributes struct{ Attributes Attributes }

func (c SetAttributes) WriteANSI(w io.Writer) error {
	codes := c.Attributes.SGRCodes()
	if len(codes) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\x1b["); err != nil {
		return err
	}
	for i, code := range codes {
		if i > 0 {
			if _, err := io.WriteString(w, ";"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%d", code); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "m")
	return err
}
func (c SetAttributes) ExecuteWinAPI() error { return command.ErrUnsupported }

// ResetColor resets foreground, background, and underline color and all
// attributes to the terminal default.
type ResetColor struct{}

func (ResetColor) WriteANSI(w io.Writer) error { _, err := io.WriteString(w, "\x1b[0m"); return err }
func (ResetColor) ExecuteWinAPI() error { return winResetColor() }

// Print writes arbitrary content with no styling applied, rendering it with
// fmt.Fprint: a string or a value with a String() method prints as text,
// while a []byte prints in fmt's default slice form.
type Print[T any] struct{ Content T }

func (c Print[T]) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprint(w, c.Content)
	return err
}
func (c Print[T]) ExecuteWinAPI() error {
	_, err := fmt.Fprint(winWriter{}, c.Content)
	return err
}

// ContentStyle bundles the color/attribute state PrintStyledContent applies
// before writing its payload and undoes afterward.
type ContentStyle struct {
	Foreground, Background, Underline *Color
	Attributes                        Attributes
}

// StyledContent pairs a displayable value with the ContentStyle it should
// be rendered with.
type StyledContent[T any] struct {
	Style   ContentStyle
	Content T
}

// Stylize wraps content with an empty ContentStyle, ready for the
// Foreground/Background/Attribute builder methods.
func Stylize[T any](content T) StyledContent[T] {
	return StyledContent[T]{Content: content}
}

// Foreground returns a copy of s with the foreground color set to c.
func (s StyledContent[T]) Foreground(c Color) StyledContent[T] {
	s.Style.Foreground = &c
	return s
}

// Background returns a copy of s with the background color set to c.
func (s StyledContent[T]) Background(c Color) StyledContent[T] {
	s.Style.Background = &c
	return s
}

// Attribute returns a copy of s with attr added to its attribute set.
func (s StyledContent[T]) Attribute(attr Attributes) StyledContent[T] {
	s.Style.Attributes |= attr
	return s
}

// PrintStyledContent applies the wrapped ContentStyle's SGR codes, writes
// the content, then resets. Implemented as a single Command so Queue/Execute
// treat style+content+reset as one atomic write.
type PrintStyledContent[T any] struct{ Content StyledContent[T] }

func (c PrintStyledContent[T]) WriteANSI(w io.Writer) error {
	s := c.Content.Style
	if s.Foreground != nil {
		if err := (SetForegroundColor{*s.Foreground}).WriteANSI(w); err != nil {
			return err
		}
	}
	if s.Background != nil {
		if err := (SetBackgroundColor{*s.Background}).WriteANSI(w); err != nil {
			return err
		}
	}
	if s.Underline != nil {
		if err := (SetUnderlineColor{*s.Underline}).WriteANSI(w); err != nil {
			return err
		}
	}
	if s.Attributes != 0 {
		if err := (SetAttributes{s.Attributes}).WriteANSI(w); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(w, c.Content.Content); err != nil {
		return err
	}
	return (ResetColor{}).WriteANSI(w)
}

func (c PrintStyledContent[T]) ExecuteWinAPI() error { return command.ErrUnsupported }

// winWriter adapts fmt.Fprint's io.Writer requirement to the WinAPI path,
// which has no byte stream of its own — content printed through the legacy
// console API goes through WriteConsoleW directly.
type winWriter struct{}

func (winWriter) Write(p []byte) (int, error) { return winWriteConsole(p) }

var (
	_ command.Command = SetForegroundColor{}
	_ command.Command = SetBackgroundColor{}
	_ command.Command = SetUnderlineColor{}
	_ command.Command = SetColors{}
	_ command.Command = SetAttribute{}
	_ command.Command = SetAttributes{}
	_ command.Command = ResetColor{}
	_ command.Command = Print[string]{}
	_ command.Command = PrintStyledContent[string]{}
)
