package kbevent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm/kbevent"
)

func TestCaseInsensitiveKeyEquality(t *testing.T) {
	for _, c := range "abcxyz" {
		shifted := kbevent.New(kbevent.Char(c)).With(kbevent.Shift)
		upper := kbevent.New(kbevent.Char(rune(c - 'a' + 'A')))
		assert.True(t, kbevent.Equal(shifted, upper), "shifted %q should equal bare upper", c)
	}
}

func TestUppercaseCharImpliesShift(t *testing.T) {
	e := kbevent.New(kbevent.Char('A'))
	assert.True(t, e.With(0).Modifiers.Has(kbevent.Shift))
}

func TestNonCharCodesUnaffectedByNormalization(t *testing.T) {
	e := kbevent.New(kbevent.Up).With(kbevent.Control)
	assert.Equal(t, kbevent.Up, e.Code)
	assert.True(t, e.Modifiers.Has(kbevent.Control))
	assert.False(t, e.Modifiers.Has(kbevent.Shift))
}

func TestFAndMediaConstructors(t *testing.T) {
	assert.Equal(t, 5, kbevent.F(5).FNumber)
	assert.Equal(t, kbevent.MediaPlay, kbevent.Media(kbevent.MediaPlay).Media)
}
