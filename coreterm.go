// Package coreterm is a cross-platform terminal-control library: cursor
// movement, styling, screen and raw-mode control, and a unified keyboard/
// mouse/resize event stream, all driven by a single Command abstraction
// that picks ANSI escape sequences or the Windows Console API depending
// on what the destination terminal actually supports.
//
// # Architecture
//
// coreterm is organized as a set of focused packages that can be used
// directly or through the thin re-exports on this root package:
//
//   - github.com/coreterm/coreterm/cursor      - cursor movement and visibility
//   - github.com/coreterm/coreterm/style       - colors, attributes, styled printing
//   - github.com/coreterm/coreterm/screen      - clearing, scrolling, alt screen, raw mode
//   - github.com/coreterm/coreterm/event       - event vocabulary and terminal-mode commands
//   - github.com/coreterm/coreterm/kbevent      - keyboard event/key-code model
//   - github.com/coreterm/coreterm/mouseevent  - mouse event model
//   - github.com/coreterm/coreterm/clipboard    - OSC 52 clipboard access
//   - github.com/coreterm/coreterm/input        - the process-wide EventReader
//   - github.com/coreterm/coreterm/command      - the Command contract and queue/execute pipeline
//
// # Quick start
//
//	if err := coreterm.EnableRawMode(); err != nil {
//		log.Fatal(err)
//	}
//	defer coreterm.DisableRawMode()
//
//	err := command.Execute(os.Stdout,
//		cursor.MoveTo{Column: 0, Row: 0},
//		style.SetForegroundColor{Color: style.Green},
//		style.Print[string]{Content: "ready"},
//	)
//
//	ev, err := coreterm.Read(input.KeyEvent)
package coreterm

import (
	"io"
	"time"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/input"
	"github.com/coreterm/coreterm/screen"
)

// EnableRawMode puts the controlling terminal into raw mode: input is
// delivered byte-by-byte, unechoed, without line buffering or signal
// generation. Nested calls are reference-counted; the terminal is only
// actually restored once every EnableRawMode has a matching
// DisableRawMode.
func EnableRawMode() error { return screen.EnableRawMode() }

// DisableRawMode reverses one EnableRawMode call. Returns
// screen.ErrNotEnabled if raw mode is not currently enabled.
func DisableRawMode() error { return screen.DisableRawMode() }

// IsRawModeEnabled reports whether raw mode is currently active.
func IsRawModeEnabled() bool { return screen.IsRawModeEnabled() }

// EnterAlternateScreen switches to the terminal's alternate screen
// buffer, nested and reference-counted like EnableRawMode.
func EnterAlternateScreen(w io.Writer) error { return screen.EnterAlternateScreenMode(w) }

// LeaveAlternateScreen reverses one EnterAlternateScreen call.
func LeaveAlternateScreen(w io.Writer) error { return screen.LeaveAlternateScreenMode(w) }

// EnableMouseCapture turns on mouse reporting (click, drag, and wheel
// events arrive through Poll/Read as MouseEvent items).
func EnableMouseCapture(w io.Writer) error { return screen.EnableMouseCaptureMode(w) }

// DisableMouseCapture reverses one EnableMouseCapture call.
func DisableMouseCapture(w io.Writer) error { return screen.DisableMouseCaptureMode(w) }

// EnableBracketedPaste turns on bracketed-paste reporting: pasted text
// arrives as a single Paste event instead of a flood of Key events.
func EnableBracketedPaste(w io.Writer) error { return screen.EnableBracketedPasteMode(w) }

// DisableBracketedPaste reverses one EnableBracketedPaste call.
func DisableBracketedPaste(w io.Writer) error { return screen.DisableBracketedPasteMode(w) }

// EnableFocusChange turns on focus reporting: the terminal sends
// FocusGained/FocusLost events when its window gains or loses focus.
func EnableFocusChange(w io.Writer) error { return screen.EnableFocusChangeMode(w) }

// DisableFocusChange reverses one EnableFocusChange call.
func DisableFocusChange(w io.Writer) error { return screen.DisableFocusChangeMode(w) }

// PushKeyboardEnhancementFlags requests the kitty keyboard protocol with
// the given flags, enabling disambiguated escape codes, key-release
// events, and similar enhancements on terminals that support it.
func PushKeyboardEnhancementFlags(w io.Writer, flags event.KeyboardEnhancementFlags) error {
	return screen.PushKeyboardEnhancement(w, flags)
}

// PopKeyboardEnhancementFlags reverses one PushKeyboardEnhancementFlags
// call.
func PopKeyboardEnhancementFlags(w io.Writer) error { return screen.PopKeyboardEnhancement(w) }

// Poll reports whether an event matching filter is already available,
// waiting up to timeout (nil waits indefinitely). It never consumes the
// event.
func Poll(timeout *time.Duration, filter input.Filter) (bool, error) {
	return input.Poll(timeout, filter)
}

// Read blocks until an event matching filter arrives, then removes and
// returns it. Unmatched events stay buffered, in order, for a later
// Read(input.AnyEvent).
func Read(filter input.Filter) (input.Item, error) { return input.Read(filter) }

// Wake interrupts an in-flight Poll, which then reports false; a blocked
// Read keeps waiting for a matching event.
func Wake() { input.Wake() }

// Size returns the terminal's current dimensions in character cells.
func Size() (columns, rows int, err error) { return screen.Size() }

// CursorPosition queries the terminal for the cursor's current 0-based
// position. Requires raw mode, since the reply arrives on the input
// stream.
func CursorPosition(w io.Writer) (column, row int, err error) {
	return input.QueryCursorPosition(w)
}

// SupportsKeyboardEnhancement probes whether the terminal implements the
// kitty keyboard protocol. Requires raw mode, like CursorPosition.
func SupportsKeyboardEnhancement(w io.Writer) (bool, error) {
	return input.SupportsKeyboardEnhancement(w)
}
