//go:build windows

// Package wininput translates Windows console input records into the
// same Event vocabulary the ANSI parser produces, so EventReader callers
// never need to know which platform produced an event.
package wininput

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/kbevent"
	"github.com/coreterm/coreterm/mouseevent"
)

const (
	leftAltPressed    = 0x0002
	rightAltPressed   = 0x0001
	leftCtrlPressed   = 0x0008
	rightCtrlPressed  = 0x0004
	shiftPressed      = 0x0010
)

// Translator holds the small amount of state a record-by-record
// translation needs to carry across calls: the window's current top row
// (to convert absolute mouse coordinates to window-relative ones), whether
// key-up records are reported as Release events (keyboard enhancement),
// and whether focus records become events. Repeat events are reported
// regardless of these flags.
type Translator struct {
	WindowTop                int16
	ReportKeyReleases        bool
	ReportFocusChange        bool
}

// Translate converts one console input record into zero or one Events;
// menu records and ignored key-up records return ok=false.
func (t *Translator) Translate(r windows.InputRecord) (event.Event, bool) {
	switch r.EventType {
	case windows.KEY_EVENT:
		return t.translateKey(*(*windows.KeyEventRecord)(unsafe.Pointer(&r.Event[0])))
	case windows.MOUSE_EVENT:
		return t.translateMouse(*(*windows.MouseEventRecord)(unsafe.Pointer(&r.Event[0])))
	case windows.WINDOW_BUFFER_SIZE_EVENT:
		rec := *(*windows.WindowBufferSizeRecord)(unsafe.Pointer(&r.Event[0]))
		return event.Resize(int(rec.Size.X), int(rec.Size.Y)), true
	case windows.FOCUS_EVENT:
		rec := *(*windows.FocusEventRecord)(unsafe.Pointer(&r.Event[0]))
		if !t.ReportFocusChange {
			return event.Event{}, false
		}
		if rec.SetFocus != 0 {
			return event.FocusGained(), true
		}
		return event.FocusLost(), true
	default:
		return event.Event{}, false
	}
}

func (t *Translator) translateKey(rec windows.KeyEventRecord) (event.Event, bool) {
	if rec.KeyDown == 0 && !t.ReportKeyReleases {
		return event.Event{}, false
	}

	code, ok := vkToKeyCode(rec.VirtualKeyCode)
	mods := controlKeyStateModifiers(rec.ControlKeyState)

	if !ok {
		c := rune(rec.UnicodeChar)
		switch {
		case mods.Has(kbevent.Alt) && isAlpha(rec.VirtualKeyCode):
			c = rune(rec.VirtualKeyCode)
			if !mods.Has(kbevent.Shift) {
				c = toLowerASCII(c)
			}
		case mods.Has(kbevent.Control) && (c >= 0x01 && c <= 0x1a):
			c = rune('a' + c - 1)
		case mods.Has(kbevent.Control) && (c >= 0x1c && c <= 0x1f):
			c = rune('4' + c - 0x1c)
		case c == 0:
			return event.Event{}, false
		}
		code = kbevent.Char(c)
	}

	kind := kbevent.Press
	if rec.KeyDown == 0 {
		kind = kbevent.Release
	} else if rec.RepeatCount > 1 {
		kind = kbevent.Repeat
	}

	k := kbevent.Event{Code: code, Modifiers: mods, Kind: kind}
	return event.Key(k), true
}

func isAlpha(vk uint16) bool { return vk >= 'A' && vk <= 'Z' }
func toLowerASCII(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func controlKeyStateModifiers(state uint32) kbevent.Modifiers {
	var m kbevent.Modifiers
	if state&(leftAltPressed|rightAltPressed) != 0 {
		m |= kbevent.Alt
	}
	if state&(leftCtrlPressed|rightCtrlPressed) != 0 {
		m |= kbevent.Control
	}
	if state&shiftPressed != 0 {
		m |= kbevent.Shift
	}
	return m
}

func (t *Translator) translateMouse(rec windows.MouseEventRecord) (event.Event, bool) {
	mods := controlKeyStateModifiers(rec.ControlKeyState)
	column := int(rec.MousePosition.X)
	row := int(rec.MousePosition.Y) - int(t.WindowTop)

	const (
		mouseMoved     = 0x0001
		mouseWheeled   = 0x0004
		mouseHwheeled  = 0x0008
		doubleClick    = 0x0002
	)

	if rec.EventFlags&doubleClick != 0 {
		return event.Event{}, false
	}

	if rec.EventFlags&mouseWheeled != 0 {
		kind := mouseevent.ScrollUp
		if int16(rec.ButtonState>>16) < 0 {
			kind = mouseevent.ScrollDown
		}
		return event.Mouse(mouseevent.Event{Kind: kind, Column: column, Row: row, Modifiers: mods}), true
	}
	if rec.EventFlags&mouseHwheeled != 0 {
		kind := mouseevent.ScrollRight
		if int16(rec.ButtonState>>16) < 0 {
			kind = mouseevent.ScrollLeft
		}
		return event.Mouse(mouseevent.Event{Kind: kind, Column: column, Row: row, Modifiers: mods}), true
	}

	button := buttonFromState(rec.ButtonState)

	if rec.EventFlags&mouseMoved != 0 {
		if rec.ButtonState == 0 {
			return event.Mouse(mouseevent.Event{Kind: mouseevent.Moved, Column: column, Row: row, Modifiers: mods}), true
		}
		return event.Mouse(mouseevent.Event{Kind: mouseevent.Drag(button), Column: column, Row: row, Modifiers: mods}), true
	}

	// PressOrRelease (EventFlags == 0): the Windows Console API does not
	// say which button was released, only that the overall button mask
	// changed. All buttons up is reported as Up(Left) to match the same
	// lossy convention POSIX terminals use.
	if rec.ButtonState == 0 {
		return event.Mouse(mouseevent.Event{Kind: mouseevent.Up(mouseevent.Left), Column: column, Row: row, Modifiers: mods}), true
	}
	return event.Mouse(mouseevent.Event{Kind: mouseevent.Down(button), Column: column, Row: row, Modifiers: mods}), true
}

func buttonFromState(state uint32) mouseevent.Button {
	switch {
	case state&0x0002 != 0:
		return mouseevent.Right
	case state&0x0004 != 0:
		return mouseevent.Middle
	default:
		return mouseevent.Left
	}
}
