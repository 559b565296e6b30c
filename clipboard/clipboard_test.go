package clipboard_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm/clipboard"
	"github.com/coreterm/coreterm/command"
)

func TestSelectionSerialization(t *testing.T) {
	sel := clipboard.Selection{clipboard.Clipboard, clipboard.Primary, clipboard.Other('s'), clipboard.Clipboard}
	assert.Equal(t, "cpsc", sel.String())
}

func TestCopyToClipboardWriteANSI(t *testing.T) {
	var buf bytes.Buffer
	cmd := clipboard.CopyToClipboard{
		Content:     []byte("hi"),
		Destination: clipboard.Selection{clipboard.Clipboard},
	}
	assert.NoError(t, cmd.WriteANSI(&buf))
	assert.Equal(t, "\x1b]52;c;aGk=\x1b\\", buf.String())
}

func TestCopyToClipboardWinAPIUnsupported(t *testing.T) {
	cmd := clipboard.CopyToClipboard{Content: []byte("x"), Destination: clipboard.Selection{clipboard.Clipboard}}
	assert.ErrorIs(t, cmd.ExecuteWinAPI(), command.ErrUnsupported)
}
