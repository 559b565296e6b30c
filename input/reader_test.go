package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreterm/coreterm/ansiparse"
	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/kbevent"
	"github.com/coreterm/coreterm/mouseevent"
)

// fakeSource hands out one prepared batch per TryRead call. Once the
// batches run out it behaves like a quiet terminal: timeouts elapse and
// untimed reads report an interrupt so tests never hang.
type fakeSource struct {
	batches [][]Item
	calls   int
	woken   int
}

func (f *fakeSource) TryRead(timeout time.Duration, hasTimeout bool) ([]Item, error) {
	if f.calls < len(f.batches) {
		batch := f.batches[f.calls]
		f.calls++
		return batch, nil
	}
	if hasTimeout {
		time.Sleep(timeout)
		return nil, nil
	}
	return nil, ErrInterrupted
}

func (f *fakeSource) Wake() { f.woken++ }
func (f *fakeSource) Close() error { return nil }

func newTestReader(src Source) *Reader {
	r := newReader()
	r.initOnce.Do(func() {})
	r.source = src
	return r
}

func keyItem(c rune) Item {
	return Item{Event: event.Key(kbevent.New(kbevent.Char(c)))}
}

func mouseItem(col, row int) Item {
	return Item{Event: event.Mouse(mouseevent.Event{Kind: mouseevent.Moved, Column: col, Row: row})}
}

func TestReadFilterPreservesSkippedOrder(t *testing.T) {
	src := &fakeSource{batches: [][]Item{
		{mouseItem(1, 1), mouseItem(2, 2), keyItem('a'), mouseItem(3, 3)},
	}}
	r := newTestReader(src)

	it, err := r.Read(KeyEvent)
	require.NoError(t, err)
	assert.Equal(t, kbevent.Char('a'), it.Event.Key.Code)

	// The skipped mouse events must come back in their original order.
	for _, wantCol := range []int{1, 2, 3} {
		it, err = r.Read(AnyEvent)
		require.NoError(t, err)
		require.Equal(t, event.KindMouse, it.Event.Kind)
		assert.Equal(t, wantCol, it.Event.Mouse.Column)
	}
}

func TestPollDoesNotConsume(t *testing.T) {
	src := &fakeSource{batches: [][]Item{{keyItem('x')}}}
	r := newTestReader(src)

	timeout := 100 * time.Millisecond
	ok, err := r.Poll(&timeout, KeyEvent)
	require.NoError(t, err)
	require.True(t, ok)

	it, err := r.Read(KeyEvent)
	require.NoError(t, err)
	assert.Equal(t, kbevent.Char('x'), it.Event.Key.Code)
}

func TestPollTimeoutReturnsFalse(t *testing.T) {
	r := newTestReader(&fakeSource{})
	timeout := 20 * time.Millisecond
	ok, err := r.Poll(&timeout, AnyEvent)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInterruptedPollReturnsFalse(t *testing.T) {
	// An untimed poll against a source that reports an interrupt (the
	// wake path) resolves to "nothing available" rather than an error.
	r := newTestReader(&fakeSource{})
	ok, err := r.Poll(nil, AnyEvent)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnyEventSkipsInternalReplies(t *testing.T) {
	internal := Item{IsInternal: true, Internal: ansiparse.Internal{
		Kind: ansiparse.InternalCursorPosition, Row: 5, Column: 7,
	}}
	src := &fakeSource{batches: [][]Item{{internal, keyItem('q')}}}
	r := newTestReader(src)

	it, err := r.Read(AnyEvent)
	require.NoError(t, err)
	assert.Equal(t, kbevent.Char('q'), it.Event.Key.Code)

	// The internal reply is still buffered for the library's own filter.
	it, err = r.Read(CursorPosition)
	require.NoError(t, err)
	require.True(t, it.IsInternal)
	assert.Equal(t, 7, it.Internal.Column)
	assert.Equal(t, 5, it.Internal.Row)
}

func TestResizeEventsPreserveArrivalOrder(t *testing.T) {
	src := &fakeSource{batches: [][]Item{
		{{Event: event.Resize(80, 24)}, {Event: event.Resize(120, 40)}},
	}}
	r := newTestReader(src)

	it, err := r.Read(AnyEvent)
	require.NoError(t, err)
	assert.Equal(t, 80, it.Event.Columns)

	it, err = r.Read(AnyEvent)
	require.NoError(t, err)
	assert.Equal(t, 120, it.Event.Columns)
}
