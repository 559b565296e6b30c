package platformhandle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm/platformhandle"
)

func TestRectDimensions(t *testing.T) {
	r := platformhandle.Rect{Left: 0, Top: 5, Right: 79, Bottom: 29}
	assert.Equal(t, 80, r.Width())
	assert.Equal(t, 25, r.Height())
}
