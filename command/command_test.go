package command_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreterm/coreterm/command"
)

type fakeCommand struct {
	ansi    string
	ansiErr error
	winErr  error
	winCall *int
}

func (f fakeCommand) WriteANSI(w io.Writer) error {
	if f.ansiErr != nil {
		return f.ansiErr
	}
	_, err := w.Write([]byte(f.ansi))
	return err
}

func (f fakeCommand) ExecuteWinAPI() error {
	if f.winCall != nil {
		*f.winCall++
	}
	return f.winErr
}

func TestQueue_WritesInOrderAndStopsOnError(t *testing.T) {
	var buf bytes.Buffer
	err := command.Queue(&buf, fakeCommand{ansi: "A"}, fakeCommand{ansi: "B"})
	require.NoError(t, err)
	assert.Equal(t, "AB", buf.String())

	buf.Reset()
	boom := errors.New("boom")
	err = command.Queue(&buf, fakeCommand{ansi: "A"}, fakeCommand{ansiErr: boom}, fakeCommand{ansi: "C"})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "A", buf.String(), "command after the error must not run")
}

func TestQueue_ZeroCommandsIsNoop(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, command.Queue(&buf))
	assert.Empty(t, buf.String())
}

type flushRecorder struct {
	bytes.Buffer
	flushed int
}

func (f *flushRecorder) Flush() error {
	f.flushed++
	return nil
}

func TestExecute_FlushesBufferedWriter(t *testing.T) {
	fr := &flushRecorder{}
	require.NoError(t, command.Execute(fr, fakeCommand{ansi: "X"}))
	assert.Equal(t, "X", fr.String())
	assert.Equal(t, 1, fr.flushed)
}

func TestExecute_DoesNotFlushOnError(t *testing.T) {
	fr := &flushRecorder{}
	err := command.Execute(fr, fakeCommand{ansiErr: errors.New("fail")})
	require.Error(t, err)
	assert.Equal(t, 0, fr.flushed)
}
