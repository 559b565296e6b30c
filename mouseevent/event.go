// Package mouseevent defines the mouse-event vocabulary shared by the
// ANSI parser and the Windows console-record translator.
package mouseevent

import "github.com/coreterm/coreterm/kbevent"

// Button identifies which physical mouse button a Down/Up/Drag event
// concerns.
type Button int

const (
	Left Button = iota
	Right
	Middle
)

// Kind discriminates the MouseEvent tagged union.
type Kind int

const (
	KindDown Kind = iota
	KindUp
	KindDrag
	KindMoved
	KindScrollDown
	KindScrollUp
	KindScrollLeft
	KindScrollRight
)

// EventKind is the (Kind, Button) pair carried by a MouseEvent; Button is
// meaningful only for Down/Up/Drag.
type EventKind struct {
	Kind   Kind
	Button Button
}

func Down(b Button) EventKind { return EventKind{Kind: KindDown, Button: b} }
func Up(b Button) EventKind { return EventKind{Kind: KindUp, Button: b} }
func Drag(b Button) EventKind { return EventKind{Kind: KindDrag, Button: b} }

var (
	Moved       = EventKind{Kind: KindMoved}
	ScrollDown  = EventKind{Kind: KindScrollDown}
	ScrollUp    = EventKind{Kind: KindScrollUp}
	ScrollLeft  = EventKind{Kind: KindScrollLeft}
	ScrollRight = EventKind{Kind: KindScrollRight}
)

// Event is a single mouse event: what happened, where (0-based column and
// row), and which modifier keys were held.
type Event struct {
	Kind      EventKind
	Column    int
	Row       int
	Modifiers kbevent.Modifiers
}
