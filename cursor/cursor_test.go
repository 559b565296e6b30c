package cursor_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreterm/coreterm/cursor"
)

func TestWriteANSI(t *testing.T) {
	cases := []struct {
		name string
		want string
		run  func(*bytes.Buffer) error
	}{
		{"MoveTo", "\x1b[11;6H", func(b *bytes.Buffer) error { return cursor.MoveTo{Column: 5, Row: 10}.WriteANSI(b) }},
		{"MoveToColumn", "\x1b[6G", func(b *bytes.Buffer) error { return cursor.MoveToColumn{Column: 5}.WriteANSI(b) }},
		{"MoveToRow", "\x1b[11d", func(b *bytes.Buffer) error { return cursor.MoveToRow{Row: 10}.WriteANSI(b) }},
		{"MoveToNextLine", "\x1b[3E", func(b *bytes.Buffer) error { return cursor.MoveToNextLine{N: 3}.WriteANSI(b) }},
		{"MoveToPreviousLine", "\x1b[2F", func(b *bytes.Buffer) error { return cursor.MoveToPreviousLine{N: 2}.WriteANSI(b) }},
		{"MoveUp", "\x1b[4A", func(b *bytes.Buffer) error { return cursor.MoveUp{N: 4}.WriteANSI(b) }},
		{"MoveDown", "\x1b[4B", func(b *bytes.Buffer) error { return cursor.MoveDown{N: 4}.WriteANSI(b) }},
		{"MoveRight", "\x1b[4C", func(b *bytes.Buffer) error { return cursor.MoveRight{N: 4}.WriteANSI(b) }},
		{"MoveLeft", "\x1b[4D", func(b *bytes.Buffer) error { return cursor.MoveLeft{N: 4}.WriteANSI(b) }},
		{"SavePosition", "\x1b7", func(b *bytes.Buffer) error { return cursor.SavePosition{}.WriteANSI(b) }},
		{"RestorePosition", "\x1b8", func(b *bytes.Buffer) error { return cursor.RestorePosition{}.WriteANSI(b) }},
		{"Hide", "\x1b[?25l", func(b *bytes.Buffer) error { return cursor.Hide{}.WriteANSI(b) }},
		{"Show", "\x1b[?25h", func(b *bytes.Buffer) error { return cursor.Show{}.WriteANSI(b) }},
		{"SetCursorStyle SteadyBar", "\x1b[6 q", func(b *bytes.Buffer) error {
			return cursor.SetCursorStyle{Style: cursor.SteadyBar}.WriteANSI(b)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, tc.run(&buf))
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestZeroMagnitudeMovesAreNoops(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, cursor.MoveUp{N: 0}.WriteANSI(&buf))
	assert.NoError(t, cursor.MoveToNextLine{N: 0}.WriteANSI(&buf))
	assert.Empty(t, buf.String())
}
