// Package event defines the top-level Event sum type delivered by the
// input subsystem, and the Commands that toggle the terminal modes
// which gate which event variants can occur.
package event

import (
	"fmt"
	"io"

	"github.com/coreterm/coreterm/command"
	"github.com/coreterm/coreterm/kbevent"
	"github.com/coreterm/coreterm/mouseevent"
)

// Kind discriminates the Event tagged union.
type Kind int

const (
	KindFocusGained Kind = iota
	KindFocusLost
	KindKey
	KindMouse
	KindPaste
	KindResize
)

// Event is the single vocabulary every input source normalizes into:
// ANSI/CSI parsing on POSIX, console-record translation on Windows.
// Exactly the fields relevant to Kind are populated; the rest are zero.
type Event struct {
	Kind    Kind
	Key     kbevent.Event
	Mouse   mouseevent.Event
	Paste   string
	Columns int
	Rows    int
}

func FocusGained() Event { return Event{Kind: KindFocusGained} }
func FocusLost() Event { return Event{Kind: KindFocusLost} }
func Key(k kbevent.Event) Event { return Event{Kind: KindKey, Key: k} }
func Mouse(m mouseevent.Event) Event { return Event{Kind: KindMouse, Mouse: m} }
func Paste(s string) Event { return Event{Kind: KindPaste, Paste: s} }
func Resize(cols, rows int) Event { return Event{Kind: KindResize, Columns: cols, Rows: rows} }

// KeyboardEnhancementFlags is a bitset requested via
// PushKeyboardEnhancementFlags, mirroring the kitty keyboard protocol's
// progressive-enhancement bits.
type KeyboardEnhancementFlags uint8

const (
	DisambiguateEscapeCodes KeyboardEnhancementFlags = 1 << iota
	ReportEventTypes
	ReportAlternateKeys
	ReportAllKeysAsEscapeCodes
	ReportAssociatedText
)

// EnableMouseCapture turns on SGR/button/any-motion mouse reporting.
type EnableMouseCapture struct{}

func (EnableMouseCapture) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?1000h\x1b[?1002h\x1b[?1003h\x1b[?1006h")
	return err
}
func (EnableMouseCapture) ExecuteWinAPI() error { return command.ErrUnsupported }

// DisableMouseCapture reverses EnableMouseCapture.
type DisableMouseCapture struct{}

func (DisableMouseCapture) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?1006l\x1b[?1003l\x1b[?1002l\x1b[?1000l")
	return err
}
func (DisableMouseCapture) ExecuteWinAPI() error { return command.ErrUnsupported }

// EnableBracketedPaste wraps pasted input in CSI 200~ / 201~ markers.
type EnableBracketedPaste struct{}

func (EnableBracketedPaste) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?2004h")
	return err
}
func (EnableBracketedPaste) ExecuteWinAPI() error { return command.ErrUnsupported }

// DisableBracketedPaste reverses EnableBracketedPaste.
type DisableBracketedPaste struct{}

func (DisableBracketedPaste) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?2004l")
	return err
}
func (DisableBracketedPaste) ExecuteWinAPI() error { return command.ErrUnsupported }

// EnableFocusChange turns on FocusGained/FocusLost reporting.
type EnableFocusChange struct{}

func (EnableFocusChange) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?1004h")
	return err
}
func (EnableFocusChange) ExecuteWinAPI() error { return command.ErrUnsupported }

// DisableFocusChange reverses EnableFocusChange.
type DisableFocusChange struct{}

func (DisableFocusChange) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[?1004l")
	return err
}
func (DisableFocusChange) ExecuteWinAPI() error { return command.ErrUnsupported }

// PushKeyboardEnhancementFlags pushes a new set of flags onto the
// terminal's keyboard-enhancement stack.
type PushKeyboardEnhancementFlags struct {
	Flags KeyboardEnhancementFlags
}

func (c PushKeyboardEnhancementFlags) WriteANSI(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\x1b[>%du", c.Flags)
	return err
}
func (PushKeyboardEnhancementFlags) ExecuteWinAPI() error { return command.ErrUnsupported }

// PopKeyboardEnhancementFlags pops the most recently pushed flag set.
type PopKeyboardEnhancementFlags struct{}

func (PopKeyboardEnhancementFlags) WriteANSI(w io.Writer) error {
	_, err := io.WriteString(w, "\x1b[<1u")
	return err
}
func (PopKeyboardEnhancementFlags) ExecuteWinAPI() error { return command.ErrUnsupported }

var (
	_ command.Command = EnableMouseCapture{}
	_ command.Command = DisableMouseCapture{}
	_ command.Command = EnableBracketedPaste{}
	_ command.Command = DisableBracketedPaste{}
	_ command.Command = EnableFocusChange{}
	_ command.Command = DisableFocusChange{}
	_ command.Command = PushKeyboardEnhancementFlags{}
	_ command.Command = PopKeyboardEnhancementFlags{}
)
