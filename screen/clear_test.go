package screen_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreterm/coreterm/command"
	"github.com/coreterm/coreterm/screen"
)

func TestClearVariants(t *testing.T) {
	cases := []struct {
		typ  screen.ClearType
		want string
	}{
		{screen.All, "\x1b[2J"},
		{screen.Purge, "\x1b[2J\x1b[3J"},
		{screen.FromCursorDown, "\x1b[J"},
		{screen.FromCursorUp, "\x1b[1J"},
		{screen.CurrentLine, "\x1b[2K"},
		{screen.UntilNewLine, "\x1b[K"},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		require.NoError(t, screen.Clear{Type: c.typ}.WriteANSI(&buf))
		assert.Equal(t, c.want, buf.String())
	}
}

func TestScrollZeroIsNoop(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, screen.ScrollUp{N: 0}.WriteANSI(&buf))
	assert.Empty(t, buf.String())
}

func TestSetSizeRejectsZero(t *testing.T) {
	var buf bytes.Buffer
	err := screen.SetSize{Columns: 0, Rows: 24}.WriteANSI(&buf)
	assert.ErrorIs(t, err, command.ErrInvalidArgument)
}

func TestSetTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, screen.SetTitle{Title: "hi"}.WriteANSI(&buf))
	assert.Equal(t, "\x1b]0;hi\x07", buf.String())
}

func TestAlternateScreen(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, screen.EnterAlternateScreen{}.WriteANSI(&buf))
	assert.Equal(t, "\x1b[?1049h", buf.String())

	buf.Reset()
	require.NoError(t, screen.LeaveAlternateScreen{}.WriteANSI(&buf))
	assert.Equal(t, "\x1b[?1049l", buf.String())
}

func TestSynchronizedUpdate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, screen.BeginSynchronizedUpdate{}.WriteANSI(&buf))
	require.NoError(t, screen.EndSynchronizedUpdate{}.WriteANSI(&buf))
	assert.Equal(t, "\x1b[?2026h\x1b[?2026l", buf.String())
}
