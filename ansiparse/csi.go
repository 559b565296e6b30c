package ansiparse

import (
	"strconv"
	"strings"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/kbevent"
	"github.com/coreterm/coreterm/mouseevent"
)

func (p *Parser) finishSS3() {
	switch p.buf[2] {
	case 'P':
		p.emitKey(kbevent.New(kbevent.F(1)))
	case 'Q':
		p.emitKey(kbevent.New(kbevent.F(2)))
	case 'R':
		p.emitKey(kbevent.New(kbevent.F(3)))
	case 'S':
		p.emitKey(kbevent.New(kbevent.F(4)))
	}
	p.resetBuf()
}

var tildeCodes = map[int]kbevent.KeyCode{
	1:  kbevent.Home,
	2:  kbevent.Insert,
	3:  kbevent.Delete,
	4:  kbevent.End,
	5:  kbevent.PageUp,
	6:  kbevent.PageDown,
	7:  kbevent.Home,
	8:  kbevent.End,
	15: kbevent.F(5),
	17: kbevent.F(6),
	18: kbevent.F(7),
	19: kbevent.F(8),
	20: kbevent.F(9),
	21: kbevent.F(10),
	23: kbevent.F(11),
	24: kbevent.F(12),
}

func modifiersFromMask(mask int) kbevent.Modifiers {
	var m kbevent.Modifiers
	if mask&1 != 0 {
		m |= kbevent.Shift
	}
	if mask&2 != 0 {
		m |= kbevent.Alt
	}
	if mask&4 != 0 {
		m |= kbevent.Control
	}
	if mask&8 != 0 {
		m |= kbevent.Super
	}
	if mask&16 != 0 {
		m |= kbevent.Hyper
	}
	if mask&32 != 0 {
		m |= kbevent.Meta
	}
	return m
}

// parseModifierParam parses the modifier parameter carried by expanded
// CSI sequences (e.g. "1;5" in "ESC [ 1;5 D"): the wire value minus one
// is the modifier bitmask itself.
func parseModifierParam(s string) kbevent.Modifiers {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0
	}
	return modifiersFromMask(v - 1)
}

// finishCSI dispatches on the final byte of a complete CSI sequence.
// buf[2:len-1] holds the parameter string; the last byte is the final.
func (p *Parser) finishCSI() {
	final := p.buf[len(p.buf)-1]
	params := string(p.buf[2 : len(p.buf)-1])
	p.resetBuf()

	switch {
	case final == 'M' && strings.HasPrefix(params, "<"):
		p.emitSGRMouse(params[1:], true)
	case final == 'm' && strings.HasPrefix(params, "<"):
		p.emitSGRMouse(params[1:], false)
	case final == 'M' && len(params) > 0 && params[0] >= '0' && params[0] <= '9':
		p.emitRxvtMouse(params)
	case final == 'R':
		p.finishCursorPositionReport(params)
	case final == 'u' && (strings.HasPrefix(params, "?") || strings.HasPrefix(params, ">")):
		p.finishKeyboardEnhancementReport(params[1:])
	case final == 'c' && strings.HasPrefix(params, "?"):
		p.emitInternal(Internal{Kind: InternalPrimaryDeviceAttributes})
	case final == '~':
		p.finishTilde(params)
	case final == 'I':
		p.emit(event.FocusGained())
	case final == 'O':
		p.emit(event.FocusLost())
	case final == 'Z':
		p.emitKey(kbevent.New(kbevent.BackTab))
	case final == 'A' || final == 'B' || final == 'C' || final == 'D' || final == 'H' || final == 'F':
		p.finishNav(final, params)
	default:
		// Unrecognized CSI final byte: drop silently.
	}
}

func parseRC(params string) (row, col int, ok bool) {
	parts := strings.Split(params, ";")
	if len(parts) != 2 {
		return 0, 0, false
	}
	r, err1 := strconv.Atoi(parts[0])
	c, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return r, c, true
}

func (p *Parser) finishCursorPositionReport(params string) {
	row, col, ok := parseRC(params)
	if !ok {
		return
	}
	p.emitInternal(Internal{Kind: InternalCursorPosition, Row: row - 1, Column: col - 1})
}

func (p *Parser) finishKeyboardEnhancementReport(params string) {
	v, err := strconv.Atoi(params)
	if err != nil {
		return
	}
	p.emitInternal(Internal{Kind: InternalKeyboardEnhancementFlags, Flags: event.KeyboardEnhancementFlags(v)})
}

func (p *Parser) finishTilde(params string) {
	parts := strings.Split(params, ";")
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	if n == 200 {
		p.pasting = true
		p.pasteBuf = nil
		p.pasteMatch = 0
		return
	}
	if n == 201 {
		// Stray end-of-paste marker with no matching start; ignore.
		return
	}
	code, ok := tildeCodes[n]
	if !ok {
		return
	}
	var mod kbevent.Modifiers
	if len(parts) > 1 {
		mod = parseModifierParam(parts[1])
	}
	p.emitKey(kbevent.Event{Code: code, Modifiers: mod, Kind: kbevent.Press})
}

func (p *Parser) finishNav(final byte, params string) {
	var code kbevent.KeyCode
	switch final {
	case 'A':
		code = kbevent.Up
	case 'B':
		code = kbevent.Down
	case 'C':
		code = kbevent.Right
	case 'D':
		code = kbevent.Left
	case 'H':
		code = kbevent.Home
	case 'F':
		code = kbevent.End
	}
	var mod kbevent.Modifiers
	if parts := strings.Split(params, ";"); len(parts) == 2 {
		mod = parseModifierParam(parts[1])
	}
	p.emitKey(kbevent.Event{Code: code, Modifiers: mod, Kind: kbevent.Press})
}

func (p *Parser) finishX10Mouse() {
	if len(p.buf) != 6 {
		return
	}
	cb := int(p.buf[3]) - 32
	cx := int(p.buf[4]) - 32 - 1
	cy := int(p.buf[5]) - 32 - 1
	p.resetBuf()
	kind, mods, ok := decodeButtonCode(cb)
	if !ok {
		return
	}
	p.emit(event.Mouse(mouseevent.Event{Kind: kind, Column: cx, Row: cy, Modifiers: mods}))
}
