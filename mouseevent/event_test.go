package mouseevent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm/kbevent"
	"github.com/coreterm/coreterm/mouseevent"
)

func TestEventKindConstructors(t *testing.T) {
	assert.Equal(t, mouseevent.EventKind{Kind: mouseevent.KindDown, Button: mouseevent.Left}, mouseevent.Down(mouseevent.Left))
	assert.Equal(t, mouseevent.EventKind{Kind: mouseevent.KindUp, Button: mouseevent.Right}, mouseevent.Up(mouseevent.Right))
	assert.Equal(t, mouseevent.EventKind{Kind: mouseevent.KindDrag, Button: mouseevent.Middle}, mouseevent.Drag(mouseevent.Middle))
}

func TestEventFields(t *testing.T) {
	e := mouseevent.Event{Kind: mouseevent.Down(mouseevent.Left), Column: 19, Row: 9, Modifiers: kbevent.Control}
	assert.Equal(t, 19, e.Column)
	assert.Equal(t, 9, e.Row)
	assert.True(t, e.Modifiers.Has(kbevent.Control))
}
