// Package input implements the process-wide EventReader and its
// platform EventSource: the single point every caller polls or reads
// terminal events from.
package input

import (
	"github.com/coreterm/coreterm/ansiparse"
	"github.com/coreterm/coreterm/event"
)

// Filter selects which events a poll/read call is interested in; events
// that don't match are left buffered for a later call.
type Filter func(Item) bool

// Item is either a user-visible Event or an Internal reply the library
// consumes itself (cursor-position query, keyboard-enhancement probe).
type Item struct {
	IsInternal bool
	Event      event.Event
	Internal   ansiparse.Internal
}

// AnyEvent matches every user-visible event. Internal replies (cursor
// position, keyboard-enhancement probe) never match it, so they are never
// surfaced by a user Read call.
func AnyEvent(it Item) bool { return !it.IsInternal }

// KeyEvent matches only Key events.
func KeyEvent(it Item) bool { return !it.IsInternal && it.Event.Kind == event.KindKey }

// MouseEvent matches only Mouse events.
func MouseEvent(it Item) bool { return !it.IsInternal && it.Event.Kind == event.KindMouse }

// CursorPosition matches the internal cursor-position query reply.
func CursorPosition(it Item) bool {
	return it.IsInternal && it.Internal.Kind == ansiparse.InternalCursorPosition
}

// KeyboardEnhancementFlags matches the internal keyboard-enhancement
// probe reply.
func KeyboardEnhancementFlags(it Item) bool {
	return it.IsInternal && it.Internal.Kind == ansiparse.InternalKeyboardEnhancementFlags
}

// PrimaryDeviceAttributes matches the internal device-attributes probe
// reply used to detect keyboard-enhancement support.
func PrimaryDeviceAttributes(it Item) bool {
	return it.IsInternal && it.Internal.Kind == ansiparse.InternalPrimaryDeviceAttributes
}

// Internal matches any internal item; user code never needs this filter,
// it exists for symmetry with the library's own internal poll calls.
func Internal(it Item) bool { return it.IsInternal }
