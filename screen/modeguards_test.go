package screen_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/screen"
)

func TestAlternateScreenModeNesting(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, screen.EnterAlternateScreenMode(&buf))
	require.NoError(t, screen.EnterAlternateScreenMode(&buf))
	// Second nested enable is a no-op: only one enter sequence written.
	assert.Equal(t, "\x1b[?1049h", buf.String())

	require.NoError(t, screen.LeaveAlternateScreenMode(&buf))
	assert.Equal(t, "\x1b[?1049h", buf.String(), "refcount still above zero, no leave sequence yet")

	require.NoError(t, screen.LeaveAlternateScreenMode(&buf))
	assert.Equal(t, "\x1b[?1049h\x1b[?1049l", buf.String())
}

func TestAlternateScreenModeOverDisableErrors(t *testing.T) {
	var buf bytes.Buffer
	err := screen.LeaveAlternateScreenMode(&buf)
	assert.ErrorIs(t, err, screen.ErrNotEnabled)
}

func TestMouseCaptureModeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, screen.EnableMouseCaptureMode(&buf))
	assert.True(t, screen.IsMouseCaptureEnabled())
	require.NoError(t, screen.DisableMouseCaptureMode(&buf))
	assert.False(t, screen.IsMouseCaptureEnabled())
	assert.Contains(t, buf.String(), "\x1b[?1000h")
	assert.Contains(t, buf.String(), "\x1b[?1000l")
}

func TestBracketedPastePredicateTracksGuard(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, screen.IsBracketedPasteEnabled())
	require.NoError(t, screen.EnableBracketedPasteMode(&buf))
	assert.True(t, screen.IsBracketedPasteEnabled())
	require.NoError(t, screen.DisableBracketedPasteMode(&buf))
	assert.False(t, screen.IsBracketedPasteEnabled())
}

func TestFocusChangePredicateTracksGuard(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, screen.IsFocusChangeEnabled())
	require.NoError(t, screen.EnableFocusChangeMode(&buf))
	assert.True(t, screen.IsFocusChangeEnabled())
	require.NoError(t, screen.DisableFocusChangeMode(&buf))
	assert.False(t, screen.IsFocusChangeEnabled())
}

func TestKeyboardEnhancementStack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, screen.PushKeyboardEnhancement(&buf, event.DisambiguateEscapeCodes))
	require.NoError(t, screen.PushKeyboardEnhancement(&buf, event.ReportEventTypes))
	// Unlike the refcounted boolean modes, every push writes its own
	// sequence: the terminal keeps a real stack.
	assert.Equal(t, "\x1b[>1u\x1b[>2u", buf.String())

	flags, ok := screen.ActiveKeyboardEnhancementFlags()
	require.True(t, ok)
	assert.Equal(t, event.ReportEventTypes, flags)

	require.NoError(t, screen.PopKeyboardEnhancement(&buf))
	require.NoError(t, screen.PopKeyboardEnhancement(&buf))
	assert.Equal(t, "\x1b[>1u\x1b[>2u\x1b[<1u\x1b[<1u", buf.String())

	assert.ErrorIs(t, screen.PopKeyboardEnhancement(&buf), screen.ErrNotEnabled)
	_, ok = screen.ActiveKeyboardEnhancementFlags()
	assert.False(t, ok)
}
