package style_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreterm/coreterm/style"
)

func TestSetColors(t *testing.T) {
	var buf bytes.Buffer
	cmd := style.SetColors{Foreground: style.Red, Background: style.Blue}
	require.NoError(t, cmd.WriteANSI(&buf))
	assert.Equal(t, "\x1b[91;104m", buf.String())
}

func TestSetAttributes_EmptyIsNoop(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, style.SetAttributes{}.WriteANSI(&buf))
	assert.Empty(t, buf.String())
}

func TestPrintStyledContent(t *testing.T) {
	var buf bytes.Buffer
	sc := style.Stylize("hi").Foreground(style.Green).Attribute(style.AttrBold)
	cmd := style.PrintStyledContent[string]{Content: sc}
	require.NoError(t, cmd.WriteANSI(&buf))
	assert.Equal(t, "\x1b[92m\x1b[1mhi\x1b[0m", buf.String())
}

func TestResetColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, style.ResetColor{}.WriteANSI(&buf))
	assert.Equal(t, "\x1b[0m", buf.String())
}
