package platformhandle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm/platformhandle"
)

func TestValid(t *testing.T) {
	assert.True(t, platformhandle.Valid(0))
	assert.True(t, platformhandle.Valid(3))
}

func TestHandle_CloseNonOwnedIsNoop(t *testing.T) {
	h, err := platformhandle.StdOutput()
	if err != nil {
		t.Skipf("no stdout handle available in this environment: %v", err)
	}
	assert.False(t, h.Owned())
	assert.NoError(t, h.Close())
	assert.NoError(t, h.Close())
}
