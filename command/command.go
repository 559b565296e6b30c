// Package command defines the polymorphic action type that every terminal
// operation in coreterm is built from, plus the queue/execute pipeline that
// batches commands into a writer.
//
// A Command is a data-only value describing a single terminal action. It
// provides one or both of two capabilities: writing an ANSI escape sequence
// to a formatter, or invoking a platform console API directly. The pipeline
// picks whichever path the running terminal actually supports.
package command

import (
	"errors"
	"io"
)

// ErrUnsupported is returned by WriteANSI or ExecuteWinAPI when a command
// does not implement that capability on the current platform. Commands such
// as bracketed paste or keyboard enhancement have no legacy Windows Console
// API equivalent and return this from ExecuteWinAPI.
var ErrUnsupported = errors.New("command: operation not supported on this platform")

// ErrInvalidArgument is returned by commands whose parameters are outside
// the range the terminal protocol or console API can express, e.g.
// SetSize with a zero dimension or a coordinate beyond int16 range.
var ErrInvalidArgument = errors.New("command: invalid argument")

// Command is a single terminal action. Implementations are data-only records
// (see the cursor, style, screen, event, and clipboard packages); this
// package only defines the contract and the pipeline that drives it.
//
// A Command must implement at least one of the two methods meaningfully; the
// other may return ErrUnsupported. The pipeline decides at runtime which one
// to invoke based on whether the output destination has ANSI support.
type Command interface {
	// WriteANSI writes this command's ANSI escape sequence to w. Returns
	// ErrUnsupported if this command has no ANSI representation (none of the
	// commands in this module fall into that category today, but the
	// capability is part of the closed contract).
	WriteANSI(w io.Writer) error

	// ExecuteWinAPI invokes the equivalent platform console call directly,
	// bypassing ANSI entirely. Returns ErrUnsupported if no such call exists
	// for this command (bracketed paste, keyboard enhancement, clipboard).
	ExecuteWinAPI() error
}

// AnsiSupported reports whether the ANSI escape-sequence path should be used
// for command dispatch. On every non-Windows platform this is always true;
// on Windows it is true once virtual-terminal processing has been enabled on
// the output handle (see the screen package's ensureVirtualTerminal, called
// automatically by EnableRawMode, EnterAlternateScreenMode and
// EnableMouseCaptureMode on first use).
//
// This is a package-level variable rather than a build-tag-only function so
// tests can force either path without a real console.
var AnsiSupported = defaultAnsiSupported

// Queue writes each command's ANSI sequence (or, if ANSI is unsupported,
// invokes its WinAPI path) to w without flushing. It stops and returns the
// first error encountered. A call with zero commands is a no-op that
// returns nil, matching the "queue!" macro's handling of an empty list.
func Queue(w io.Writer, cmds ...Command) error {
	useAnsi := AnsiSupported()
	for _, c := range cmds {
		if useAnsi {
			if err := c.WriteANSI(w); err != nil {
				return err
			}
			continue
		}
		if err := c.ExecuteWinAPI(); err != nil {
			return err
		}
	}
	return nil
}

// Execute queues every command exactly as Queue does, then flushes w if it
// implements an explicit Flusher. Most io.Writer destinations (os.File,
// bytes.Buffer) need no explicit flush; this only matters for buffered
// writers such as bufio.Writer.
func Execute(w io.Writer, cmds ...Command) error {
	if err := Queue(w, cmds...); err != nil {
		return err
	}
	return flush(w)
}

// Flusher is implemented by buffered writers (e.g. *bufio.Writer) that need
// an explicit call to push queued bytes out. Execute calls Flush after
// queuing all commands.
type Flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}
