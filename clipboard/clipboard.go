// Package clipboard implements OSC 52 clipboard access: a Command that
// writes a base64-encoded payload to one or more clipboard destinations
// via the terminal's escape-sequence channel rather than a native OS
// clipboard API, so it works over SSH and inside multiplexers.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"

	"github.com/coreterm/coreterm/command"
)

// Destination identifies which clipboard buffer a CopyToClipboard
// targets. OSC 52 addresses buffers by a single ASCII letter; Other
// carries any letter the terminal defines beyond clipboard/primary.
type Destination struct {
	letter byte
}

var (
	// Clipboard is the system clipboard ('c').
	Clipboard = Destination{'c'}
	// Primary is the X11 primary selection ('p').
	Primary = Destination{'p'}
)

// Other names any destination letter the two named constants don't
// cover (OSC 52 also defines 's' for select, and 0-7 for cut buffers).
func Other(letter byte) Destination { return Destination{letter} }

func (d Destination) String() string { return string(d.letter) }

// Selection is an ordered, duplicate-preserving sequence of
// destinations, serialized to its ASCII letters in order.
type Selection []Destination

func (s Selection) String() string {
	b := make([]byte, len(s))
	for i, d := range s {
		b[i] = d.letter
	}
	return string(b)
}

// CopyToClipboard writes Content to every destination in Selection via
// OSC 52. The Windows legacy path has no equivalent console API and
// returns command.ErrUnsupported.
type CopyToClipboard struct {
	Content     []byte
	Destination Selection
}

// WriteANSI emits "ESC ] 52 ; <selection> ; <base64> ESC \".
func (c CopyToClipboard) WriteANSI(w io.Writer) error {
	encoded := base64.StdEncoding.EncodeToString(c.Content)
	_, err := fmt.Fprintf(w, "\x1b]52;%s;%s\x1b\\", c.Destination.String(), encoded)
	return err
}

func (c CopyToClipboard) ExecuteWinAPI() error { return command.ErrUnsupported }

var _ command.Command = CopyToClipboard{}
