package coreterm_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm"
	"github.com/coreterm/coreterm/screen"
)

func TestAlternateScreenFacadeDelegatesToScreen(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, coreterm.EnterAlternateScreen(&buf))
	assert.Equal(t, "\x1b[?1049h", buf.String())
	assert.NoError(t, coreterm.LeaveAlternateScreen(&buf))
}

func TestRawModeFacadeMatchesScreenState(t *testing.T) {
	assert.Equal(t, screen.IsRawModeEnabled(), coreterm.IsRawModeEnabled())
}
