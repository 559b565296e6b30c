package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm/style"
)

func TestAttributesSGRCodes(t *testing.T) {
	bits := style.AttrBold | style.AttrUnderlined | style.AttrReverse
	codes := bits.SGRCodes()
	assert.Equal(t, []int{1, 4, 7}, codes)
}

func TestAttributeString_UnderlineVariants(t *testing.T) {
	assert.Equal(t, "4:3", style.Undercurled.String())
	assert.Equal(t, "4:4", style.Underdotted.String())
	assert.Equal(t, "4:5", style.Underdashed.String())
	assert.Equal(t, "1", style.Bold.String())
}
