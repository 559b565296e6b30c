//go:build !windows

package input

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"github.com/coreterm/coreterm/ansiparse"
	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/platformhandle"
	"github.com/coreterm/coreterm/screen"
)

func init() {
	newSource = newPosixSource
}

const readBufSize = 1024

type readResult struct {
	data []byte
	err  error
}

// posixSource multiplexes the tty, a SIGWINCH notification, and a wake
// signal behind a single TryRead call. Go's os/signal package already
// implements the self-pipe trick internally, so this reaches for it
// instead of hand-rolling a raw signal-safe pipe writer.
type posixSource struct {
	handle  platformhandle.Handle
	rd      cancelreader.CancelReader
	parser  *ansiparse.Parser
	results chan readResult
	sig     chan os.Signal
	wake    chan struct{}
}

func newPosixSource() (Source, error) {
	h, err := platformhandle.CurrentInput()
	if err != nil {
		return nil, err
	}
	file := os.NewFile(h.Fd(), "tty")
	rd, err := cancelreader.NewReader(file)
	if err != nil {
		return nil, err
	}

	s := &posixSource{
		handle:  h,
		rd:      rd,
		parser:  ansiparse.New(),
		results: make(chan readResult, 1),
		sig:     make(chan os.Signal, 1),
		wake:    make(chan struct{}, 1),
	}
	signal.Notify(s.sig, syscall.SIGWINCH)
	go s.readLoop()
	return s, nil
}

func (s *posixSource) readLoop() {
	buf := make([]byte, readBufSize)
	for {
		n, err := s.rd.Read(buf)
		if err != nil {
			s.results <- readResult{err: err}
			return
		}
		data := make([]byte, n)
		copy(data, buf[:n])
		s.results <- readResult{data: data}
	}
}

func (s *posixSource) TryRead(timeout time.Duration, hasTimeout bool) ([]Item, error) {
	var timerC <-chan time.Time
	if hasTimeout {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timerC = timer.C
	}

	select {
	case res := <-s.results:
		if res.err != nil {
			if errors.Is(res.err, cancelreader.ErrCanceled) {
				return nil, ErrInterrupted
			}
			return nil, res.err
		}
		s.parser.SetRawModeDisabled(!screen.IsRawModeEnabled())
		s.parser.SetBracketedPasteEnabled(screen.IsBracketedPasteEnabled())
		s.parser.Advance(res.data, len(res.data) == readBufSize)
		return toItems(s.parser.Drain()), nil
	case <-s.sig:
		cols, rows, err := term.GetSize(int(s.handle.Fd()))
		if err != nil {
			return nil, nil
		}
		return []Item{{Event: event.Resize(cols, rows)}}, nil
	case <-s.wake:
		return nil, ErrInterrupted
	case <-timerC:
		return nil, nil
	}
}

func (s *posixSource) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *posixSource) Close() error {
	signal.Stop(s.sig)
	s.rd.Cancel()
	err := s.rd.Close()
	s.handle.Close()
	return err
}

func toItems(results []ansiparse.Result) []Item {
	items := make([]Item, 0, len(results))
	for _, r := range results {
		if r.IsInternal {
			items = append(items, Item{IsInternal: true, Internal: r.Internal})
			continue
		}
		items = append(items, Item{Event: r.Event})
	}
	return items
}
