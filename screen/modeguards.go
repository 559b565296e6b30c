package screen

import (
	"io"
	"sync"

	"github.com/coreterm/coreterm/command"
	"github.com/coreterm/coreterm/event"
)

// Each of the guards below follows the same shape as raw mode: a process-
// wide refGuard makes enabling idempotent (nested enables just increment)
// and guarantees the matching ANSI disable sequence is written exactly
// once, when the last nested enable is undone.

var alternateScreenGuard refGuard

// EnterAlternateScreenMode switches w's terminal to the secondary screen
// buffer. Nested calls increment a refcount; LeaveAlternateScreenMode
// must be called the same number of times to restore the primary buffer.
func EnterAlternateScreenMode(w io.Writer) error {
	ensureVirtualTerminal()
	return alternateScreenGuard.enable(func() (func() error, error) {
		if err := command.Execute(w, EnterAlternateScreen{}); err != nil {
			return nil, err
		}
		return func() error { return command.Execute(w, LeaveAlternateScreen{}) }, nil
	})
}

// LeaveAlternateScreenMode reverses one EnterAlternateScreenMode call.
func LeaveAlternateScreenMode(w io.Writer) error {
	return alternateScreenGuard.disable()
}

var mouseCaptureGuard refGuard

// EnableMouseCaptureMode turns on mouse reporting on w. On Windows this
// also arms ENABLE_WINDOW_INPUT|ENABLE_MOUSE_INPUT the next time
// EnableRawMode captures console mode.
func EnableMouseCaptureMode(w io.Writer) error {
	ensureVirtualTerminal()
	return mouseCaptureGuard.enable(func() (func() error, error) {
		if err := command.Execute(w, event.EnableMouseCapture{}); err != nil {
			return nil, err
		}
		return func() error { return command.Execute(w, event.DisableMouseCapture{}) }, nil
	})
}

// DisableMouseCaptureMode reverses one EnableMouseCaptureMode call.
func DisableMouseCaptureMode(w io.Writer) error {
	return mouseCaptureGuard.disable()
}

// IsMouseCaptureEnabled reports whether mouse capture is currently on.
func IsMouseCaptureEnabled() bool { return mouseCaptureGuard.enabled() }

var bracketedPasteGuard refGuard

// EnableBracketedPasteMode wraps pasted input in CSI 200~/201~ markers.
func EnableBracketedPasteMode(w io.Writer) error {
	return bracketedPasteGuard.enable(func() (func() error, error) {
		if err := command.Execute(w, event.EnableBracketedPaste{}); err != nil {
			return nil, err
		}
		return func() error { return command.Execute(w, event.DisableBracketedPaste{}) }, nil
	})
}

// DisableBracketedPasteMode reverses one EnableBracketedPasteMode call.
func DisableBracketedPasteMode(w io.Writer) error {
	return bracketedPasteGuard.disable()
}

// IsBracketedPasteEnabled reports whether bracketed paste is currently on.
// The event source consults this to decide whether to surface Paste events.
func IsBracketedPasteEnabled() bool { return bracketedPasteGuard.enabled() }

var focusChangeGuard refGuard

// EnableFocusChangeMode turns on FocusGained/FocusLost event reporting.
func EnableFocusChangeMode(w io.Writer) error {
	return focusChangeGuard.enable(func() (func() error, error) {
		if err := command.Execute(w, event.EnableFocusChange{}); err != nil {
			return nil, err
		}
		return func() error { return command.Execute(w, event.DisableFocusChange{}) }, nil
	})
}

// DisableFocusChangeMode reverses one EnableFocusChangeMode call.
func DisableFocusChangeMode(w io.Writer) error {
	return focusChangeGuard.disable()
}

// IsFocusChangeEnabled reports whether focus-change reporting is
// currently on. The Windows event source consults this to decide whether
// focus records become events.
func IsFocusChangeEnabled() bool { return focusChangeGuard.enabled() }

// Unlike the boolean modes above, keyboard enhancement is a real stack
// on the terminal side: every push emits its own CSI > sequence and
// every pop emits a CSI < sequence. The parallel bookkeeping here tells
// the event sources which flags are active. SupportsKeyboardEnhancement
// does not consult it; it probes the terminal on every call.
var kbEnhancement struct {
	mu    sync.Mutex
	stack []event.KeyboardEnhancementFlags
}

// PushKeyboardEnhancement pushes flags onto the terminal's keyboard
// enhancement stack. Each push must be matched by a PopKeyboardEnhancement.
func PushKeyboardEnhancement(w io.Writer, flags event.KeyboardEnhancementFlags) error {
	kbEnhancement.mu.Lock()
	defer kbEnhancement.mu.Unlock()
	if err := command.Execute(w, event.PushKeyboardEnhancementFlags{Flags: flags}); err != nil {
		return err
	}
	kbEnhancement.stack = append(kbEnhancement.stack, flags)
	return nil
}

// PopKeyboardEnhancement reverses one PushKeyboardEnhancement call.
// Popping an empty stack returns ErrNotEnabled without writing anything.
func PopKeyboardEnhancement(w io.Writer) error {
	kbEnhancement.mu.Lock()
	defer kbEnhancement.mu.Unlock()
	if len(kbEnhancement.stack) == 0 {
		return ErrNotEnabled
	}
	if err := command.Execute(w, event.PopKeyboardEnhancementFlags{}); err != nil {
		return err
	}
	kbEnhancement.stack = kbEnhancement.stack[:len(kbEnhancement.stack)-1]
	return nil
}

// ActiveKeyboardEnhancementFlags returns the flag set on top of the push
// stack; ok is false when nothing has been pushed.
func ActiveKeyboardEnhancementFlags() (flags event.KeyboardEnhancementFlags, ok bool) {
	kbEnhancement.mu.Lock()
	defer kbEnhancement.mu.Unlock()
	if len(kbEnhancement.stack) == 0 {
		return 0, false
	}
	return kbEnhancement.stack[len(kbEnhancement.stack)-1], true
}
