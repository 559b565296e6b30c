package input

import (
	"errors"
	"io"
	"time"

	"github.com/coreterm/coreterm/ansiparse"
	"github.com/coreterm/coreterm/command"
)

// ErrNoReply is returned by the query helpers when the terminal does not
// answer within the reply window, which usually means the output is not
// attached to a terminal at all.
var ErrNoReply = errors.New("input: no reply from terminal")

// replyTimeout bounds how long a query waits for the terminal's answer.
// Two seconds is generous for a local pty and still tolerates a slow SSH
// round trip.
const replyTimeout = 2 * time.Second

func writeQuery(w io.Writer, query string) error {
	if _, err := io.WriteString(w, query); err != nil {
		return err
	}
	if f, ok := w.(command.Flusher); ok {
		return f.Flush()
	}
	return nil
}

// readReply polls for an item matching filter within the reply window and
// consumes it. User-visible events arriving in the meantime stay buffered
// for later Read calls.
func (r *Reader) readReply(filter Filter) (Item, error) {
	timeout := replyTimeout
	ok, err := r.Poll(&timeout, filter)
	if err != nil {
		return Item{}, err
	}
	if !ok {
		return Item{}, ErrNoReply
	}
	return r.Read(filter)
}

// QueryCursorPosition asks the terminal where the cursor currently is and
// waits for its reply. The terminal must be in raw mode, or the reply
// would be echoed and line-buffered instead of reaching the event source.
// Coordinates are 0-based.
func QueryCursorPosition(w io.Writer) (column, row int, err error) {
	if err := writeQuery(w, "\x1b[6n"); err != nil {
		return 0, 0, err
	}
	it, err := defaultReader.readReply(CursorPosition)
	if err != nil {
		return 0, 0, err
	}
	return it.Internal.Column, it.Internal.Row, nil
}

// SupportsKeyboardEnhancement reports whether the terminal implements the
// kitty keyboard protocol. It sends the enhancement-flags query chased by
// a primary-device-attributes query: every terminal answers the latter,
// so an enhancement reply arriving before the attributes reply means the
// protocol is supported, and an attributes reply alone means it is not.
// Requires raw mode, like QueryCursorPosition.
func SupportsKeyboardEnhancement(w io.Writer) (bool, error) {
	if err := writeQuery(w, "\x1b[?u\x1b[c"); err != nil {
		return false, err
	}
	probe := func(it Item) bool {
		return KeyboardEnhancementFlags(it) || PrimaryDeviceAttributes(it)
	}
	supported := false
	for {
		it, err := defaultReader.readReply(probe)
		if err != nil {
			if errors.Is(err, ErrNoReply) {
				return supported, nil
			}
			return false, err
		}
		if it.Internal.Kind == ansiparse.InternalKeyboardEnhancementFlags {
			supported = true
			continue
		}
		return supported, nil
	}
}
