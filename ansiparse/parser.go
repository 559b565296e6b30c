// Package ansiparse implements the incremental byte-stream parser that
// turns a tty's ANSI/CSI/SS3/OSC byte stream into Events: key presses,
// mouse actions, focus changes, bracketed paste, and resize-adjacent
// internal replies (cursor-position reports, keyboard-enhancement
// acknowledgements).
//
// The parser is fed with Advance, which may be called with any chunking
// of the same logical byte stream without changing the sequence of
// events produced — a still-incomplete sequence simply keeps its bytes
// buffered until the next call resolves it, and a malformed sequence
// discards only its own buffered bytes.
package ansiparse

import (
	"unicode/utf8"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/kbevent"
)

// InternalKind discriminates events the library consumes itself and
// never surfaces to a user read() call.
type InternalKind int

const (
	InternalCursorPosition InternalKind = iota
	InternalKeyboardEnhancementFlags
	InternalPrimaryDeviceAttributes
)

// Internal is an event the EventReader matches against its Internal
// filter: the reply to a cursor-position query or a keyboard-enhancement
// probe.
type Internal struct {
	Kind   InternalKind
	Row    int
	Column int
	Flags  event.KeyboardEnhancementFlags
}

// Result is one item produced by a parser step: either a user-visible
// Event or an Internal reply.
type Result struct {
	IsInternal bool
	Event      event.Event
	Internal   Internal
}

var pasteTerminator = []byte("\x1b[201~")

// Parser is the incremental ANSI/CSI/SS3/OSC state machine. The zero
// value is ready to use.
type Parser struct {
	buf       []byte // bytes of the escape sequence currently being accumulated, including the leading ESC
	expectRaw int    // remaining raw (non-CSI-grammar) bytes expected, used by the X10 6-byte mouse form
	utf8buf   []byte // bytes of a multi-byte UTF-8 scalar accumulated so far

	pasting    bool
	pasteBuf   []byte
	pasteMatch int // how many bytes of pasteTerminator currently matched

	rawModeDisabled  bool
	bracketedPasteOn bool

	out []Result
}

// New returns a ready-to-use Parser.
func New() *Parser { return &Parser{} }

// SetRawModeDisabled tells the parser whether the terminal is currently
// in cooked mode, which changes how a bare '\n' byte is interpreted: the
// tty only rewrites '\r' to '\n' while cooked, so the byte means Enter
// there and Ctrl+J under raw mode.
func (p *Parser) SetRawModeDisabled(disabled bool) { p.rawModeDisabled = disabled }

// SetBracketedPasteEnabled tells the parser whether Paste events should
// be surfaced; paste-wrapper markers are always recognized and
// consumed, but their content is dropped when this is false.
func (p *Parser) SetBracketedPasteEnabled(enabled bool) { p.bracketedPasteOn = enabled }

// Drain returns and clears every Result produced since the last Drain.
func (p *Parser) Drain() []Result {
	out := p.out
	p.out = nil
	return out
}

// Advance feeds new bytes into the parser. moreAvailable indicates
// whether additional bytes from the same logical read are known to
// follow the last byte of data — this disambiguates a lone trailing ESC
// (start of an escape sequence vs. a standalone Esc keypress).
func (p *Parser) Advance(data []byte, moreAvailable bool) {
	for i, b := range data {
		more := i < len(data)-1 || moreAvailable
		p.step(b, more)
	}
}

func (p *Parser) emit(e event.Event) { p.out = append(p.out, Result{Event: e}) }
func (p *Parser) emitKey(k kbevent.Event) { p.emit(event.Key(k)) }
func (p *Parser) emitInternal(in Internal) { p.out = append(p.out, Result{IsInternal: true, Internal: in}) }

func (p *Parser) step(b byte, moreAvailable bool) {
	if p.pasting {
		p.stepPaste(b)
		return
	}
	if len(p.buf) == 0 {
		p.stepFresh(b, moreAvailable)
		return
	}
	p.stepSequence(b)
}

// stepFresh handles a byte that starts a brand new token: either a
// control byte with a direct event mapping, the start of an escape
// sequence, or a UTF-8-encoded character.
func (p *Parser) stepFresh(b byte, moreAvailable bool) {
	switch {
	case b == 0x1b:
		if !moreAvailable {
			p.emitKey(kbevent.New(kbevent.Esc))
			return
		}
		p.buf = append(p.buf, b)
	case b == '\r':
		p.emitKey(kbevent.New(kbevent.Enter))
	case b == '\n':
		// The terminal only turns \r into \n in cooked mode; in raw mode
		// 0x0A can only mean Ctrl+J, so it falls to the control-byte rule.
		if p.rawModeDisabled {
			p.emitKey(kbevent.New(kbevent.Enter))
		} else {
			p.emitKey(kbevent.New(kbevent.Char('j')).With(kbevent.Control))
		}
	case b == '\t':
		p.emitKey(kbevent.New(kbevent.Tab))
	case b == 0x7f:
		p.emitKey(kbevent.New(kbevent.Backspace))
	case b == 0x00:
		p.emitKey(kbevent.New(kbevent.Char(' ')).With(kbevent.Control))
	case b >= 0x01 && b <= 0x1a:
		p.emitKey(kbevent.New(kbevent.Char(rune('a' + b - 1))).With(kbevent.Control))
	case b >= 0x1c && b <= 0x1f:
		p.emitKey(kbevent.New(kbevent.Char(rune('4' + b - 0x1c))).With(kbevent.Control))
	default:
		p.stepUTF8(b)
	}
}

func (p *Parser) stepUTF8(b byte) {
	if len(p.utf8buf) == 0 && b < 0x80 {
		p.emitKey(kbevent.New(kbevent.Char(rune(b))))
		return
	}
	p.utf8buf = append(p.utf8buf, b)
	if utf8.FullRune(p.utf8buf) {
		r, _ := utf8.DecodeRune(p.utf8buf)
		p.utf8buf = nil
		if r != utf8.RuneError {
			p.emitKey(kbevent.New(kbevent.Char(r)))
		}
		return
	}
	if len(p.utf8buf) >= 5 {
		p.utf8buf = nil
	}
}

// stepSequence accumulates a byte into an in-progress escape sequence,
// recognizing completion, continuing on "could still be valid", or
// discarding on malformed input.
func (p *Parser) stepSequence(b byte) {
	p.buf = append(p.buf, b)

	if p.expectRaw > 0 {
		p.expectRaw--
		if p.expectRaw == 0 {
			p.finishX10Mouse()
		}
		return
	}

	if len(p.buf) == 3 && p.buf[1] == '[' && p.buf[2] == 'M' {
		p.expectRaw = 3
		return
	}

	if len(p.buf) == 2 {
		switch p.buf[1] {
		case 'O', '[', ']':
			return
		default:
			// ESC followed by an ordinary character: the common
			// terminal convention for Alt+<char>.
			p.emitKey(kbevent.New(kbevent.Char(rune(p.buf[1]))).With(kbevent.Alt))
			p.resetBuf()
			return
		}
	}

	switch p.buf[1] {
	case 'O':
		if len(p.buf) == 3 {
			p.finishSS3()
		}
	case '[':
		if b >= 0x40 && b <= 0x7e {
			p.finishCSI()
			return
		}
		if !(b >= 0x20 && b <= 0x3f) {
			p.resetBuf()
		}
	case ']':
		if b == 0x07 {
			p.resetBuf()
			return
		}
		if b == '\\' && len(p.buf) >= 2 && p.buf[len(p.buf)-2] == 0x1b {
			p.resetBuf()
		}
	}
}

func (p *Parser) resetBuf() { p.buf = nil }

func (p *Parser) stepPaste(b byte) {
	if int(p.pasteMatch) < len(pasteTerminator) && b == pasteTerminator[p.pasteMatch] {
		p.pasteMatch++
		if p.pasteMatch == len(pasteTerminator) {
			p.finishPaste()
		}
		return
	}
	if p.pasteMatch > 0 {
		p.pasteBuf = append(p.pasteBuf, pasteTerminator[:p.pasteMatch]...)
		p.pasteMatch = 0
		if b == pasteTerminator[0] {
			p.pasteMatch = 1
			return
		}
	}
	p.pasteBuf = append(p.pasteBuf, b)
}

func (p *Parser) finishPaste() {
	if p.bracketedPasteOn {
		p.emit(event.Paste(string(p.pasteBuf)))
	}
	p.pasting = false
	p.pasteBuf = nil
	p.pasteMatch = 0
}
