//go:build windows

package wininput_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/mouseevent"
	"github.com/coreterm/coreterm/wininput"
)

func keyRecord(rec windows.KeyEventRecord) windows.InputRecord {
	var r windows.InputRecord
	r.EventType = windows.KEY_EVENT
	*(*windows.KeyEventRecord)(unsafe.Pointer(&r.Event[0])) = rec
	return r
}

func mouseRecord(rec windows.MouseEventRecord) windows.InputRecord {
	var r windows.InputRecord
	r.EventType = windows.MOUSE_EVENT
	*(*windows.MouseEventRecord)(unsafe.Pointer(&r.Event[0])) = rec
	return r
}

func TestTranslateReturnKey(t *testing.T) {
	tr := &wininput.Translator{}
	r := keyRecord(windows.KeyEventRecord{KeyDown: 1, RepeatCount: 1, VirtualKeyCode: 0x0d, UnicodeChar: '\r'})
	ev, ok := tr.Translate(r)
	require.True(t, ok)
	assert.Equal(t, event.KindKey, ev.Kind)
}

func TestTranslateKeyUpDroppedByDefault(t *testing.T) {
	tr := &wininput.Translator{}
	r := keyRecord(windows.KeyEventRecord{KeyDown: 0, VirtualKeyCode: 0x41, UnicodeChar: 'A'})
	_, ok := tr.Translate(r)
	assert.False(t, ok)
}

func TestTranslateMouseAllButtonsUpSynthesizesLeft(t *testing.T) {
	tr := &wininput.Translator{}
	r := mouseRecord(windows.MouseEventRecord{ButtonState: 0, EventFlags: 0})
	ev, ok := tr.Translate(r)
	require.True(t, ok)
	assert.Equal(t, mouseevent.Up(mouseevent.Left), ev.Mouse.Kind)
}

func TestTranslateMouseWindowRelativeRow(t *testing.T) {
	tr := &wininput.Translator{WindowTop: 5}
	r := mouseRecord(windows.MouseEventRecord{
		MousePosition: windows.Coord{X: 10, Y: 15},
		ButtonState:   0x0001,
		EventFlags:    0,
	})
	ev, ok := tr.Translate(r)
	require.True(t, ok)
	assert.Equal(t, 10, ev.Mouse.Column)
	assert.Equal(t, 10, ev.Mouse.Row)
}
