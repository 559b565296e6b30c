package ansiparse

import (
	"strconv"
	"strings"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/kbevent"
	"github.com/coreterm/coreterm/mouseevent"
)

// decodeButtonCode decodes the button code shared by the X10, SGR, and
// rxvt mouse encodings (X10 and rxvt carry it with a +32 wire offset the
// caller has already removed). Bits 0-1 plus bits 6-7 (shifted down)
// select the button number, bit 5 marks motion, and bits 2-4 carry
// SHIFT/ALT/CTRL. Button numbers 4-7 are the four scroll directions.
func decodeButtonCode(code int) (kind mouseevent.EventKind, mods kbevent.Modifiers, ok bool) {
	if code&4 != 0 {
		mods |= kbevent.Shift
	}
	if code&8 != 0 {
		mods |= kbevent.Alt
	}
	if code&16 != 0 {
		mods |= kbevent.Control
	}
	button := (code & 0x3) | ((code & 0xc0) >> 4)
	motion := code&32 != 0

	switch {
	case !motion && button == 0:
		kind = mouseevent.Down(mouseevent.Left)
	case !motion && button == 1:
		kind = mouseevent.Down(mouseevent.Middle)
	case !motion && button == 2:
		kind = mouseevent.Down(mouseevent.Right)
	case !motion && button == 3:
		// The wire says "a button came up" without naming it.
		kind = mouseevent.Up(mouseevent.Left)
	case motion && button == 0:
		kind = mouseevent.Drag(mouseevent.Left)
	case motion && button == 1:
		kind = mouseevent.Drag(mouseevent.Middle)
	case motion && button == 2:
		kind = mouseevent.Drag(mouseevent.Right)
	case motion && button >= 3 && button <= 5:
		kind = mouseevent.Moved
	case !motion && button == 4:
		kind = mouseevent.ScrollUp
	case !motion && button == 5:
		kind = mouseevent.ScrollDown
	case !motion && button == 6:
		kind = mouseevent.ScrollLeft
	case !motion && button == 7:
		kind = mouseevent.ScrollRight
	default:
		return kind, mods, false
	}
	return kind, mods, true
}

// emitSGRMouse decodes the "Cb;Cx;Cy" portion of an SGR (1006) mouse
// sequence; isPress distinguishes the 'M' (press/drag) and 'm' (release)
// final bytes. SGR is the only encoding that names the released button,
// so a release rewrites the decoded Down into an Up of the same button.
func (p *Parser) emitSGRMouse(params string, isPress bool) {
	parts := strings.Split(params, ";")
	if len(parts) != 3 {
		return
	}
	code, err1 := strconv.Atoi(parts[0])
	cx, err2 := strconv.Atoi(parts[1])
	cy, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return
	}
	column, row := cx-1, cy-1

	kind, mods, ok := decodeButtonCode(code)
	if !ok {
		return
	}
	if !isPress && kind.Kind == mouseevent.KindDown {
		kind = mouseevent.Up(kind.Button)
	}
	p.emit(event.Mouse(mouseevent.Event{Kind: kind, Column: column, Row: row, Modifiers: mods}))
}

// emitRxvtMouse decodes the rxvt (1015) form "ESC [ Cb;Cx;Cy M", where
// Cb carries the same +32 offset as the X10 byte form.
func (p *Parser) emitRxvtMouse(params string) {
	parts := strings.Split(params, ";")
	if len(parts) != 3 {
		return
	}
	cb, err1 := strconv.Atoi(parts[0])
	cx, err2 := strconv.Atoi(parts[1])
	cy, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil || cb < 32 {
		return
	}
	kind, mods, ok := decodeButtonCode(cb - 32)
	if !ok {
		return
	}
	p.emit(event.Mouse(mouseevent.Event{Kind: kind, Column: cx - 1, Row: cy - 1, Modifiers: mods}))
}

// EncodeSGR renders a mouse event back into its SGR (1006) wire form,
// the inverse of emitSGRMouse; used by tests and by callers that want to
// synthesize mouse input for another process.
func EncodeSGR(e mouseevent.Event, isPress bool) string {
	code := 0
	switch e.Kind.Kind {
	case mouseevent.KindDown, mouseevent.KindUp, mouseevent.KindDrag:
		switch e.Kind.Button {
		case mouseevent.Middle:
			code = 1
		case mouseevent.Right:
			code = 2
		default:
			code = 0
		}
		if e.Kind.Kind == mouseevent.KindDrag {
			code |= 32
		}
	case mouseevent.KindMoved:
		code = 32 | 3
	case mouseevent.KindScrollUp:
		code = 64
	case mouseevent.KindScrollDown:
		code = 65
	case mouseevent.KindScrollLeft:
		code = 66
	case mouseevent.KindScrollRight:
		code = 67
	}
	if e.Modifiers.Has(kbevent.Shift) {
		code |= 4
	}
	if e.Modifiers.Has(kbevent.Alt) {
		code |= 8
	}
	if e.Modifiers.Has(kbevent.Control) {
		code |= 16
	}
	suffix := "m"
	if isPress {
		suffix = "M"
	}
	return "\x1b[<" + strconv.Itoa(code) + ";" + strconv.Itoa(e.Column+1) + ";" + strconv.Itoa(e.Row+1) + suffix
}
