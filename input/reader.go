package input

import (
	"errors"
	"sync"
	"time"
)

// ErrInterrupted is returned by Source.TryRead when Wake was called while
// a read was outstanding. Poll turns it into a false result and Read goes
// back to waiting; it never propagates to Poll/Read callers as an error.
var ErrInterrupted = errors.New("input: interrupted")

// Source is the platform-specific half of the event pipeline: it owns
// the OS read primitive (tty + SIGWINCH + a wake channel on POSIX, the
// console input handle + a manual-reset wake event on Windows) and the parser/
// translator that turns raw input into Items.
type Source interface {
	// TryRead waits up to timeout (ignored if hasTimeout is false, in
	// which case it waits indefinitely) for new input, translates
	// whatever arrived, and returns the resulting Items. A timeout with
	// nothing to report returns a nil slice and a nil error.
	TryRead(timeout time.Duration, hasTimeout bool) ([]Item, error)

	// Wake interrupts exactly one in-flight TryRead, which then returns
	// ErrInterrupted.
	Wake()

	Close() error
}

// newSource is swapped per-platform (source_unix.go / source_windows.go).
var newSource func() (Source, error)

// Reader is the process-wide single-reader coordinator: poll/read calls
// from any number of goroutines are serialized by a write-preferring
// semaphore, matching the single EventSource underneath.
type Reader struct {
	sem chan struct{}

	initOnce sync.Once
	initErr  error
	source   Source

	deque []Item
}

// process-wide singleton; lazily initializes its Source on first use.
var defaultReader = newReader()

func newReader() *Reader {
	r := &Reader{sem: make(chan struct{}, 1)}
	r.sem <- struct{}{}
	return r
}

// Default returns the process-wide EventReader.
func Default() *Reader { return defaultReader }

func (r *Reader) ensureSource() error {
	r.initOnce.Do(func() {
		r.source, r.initErr = newSource()
	})
	return r.initErr
}

func (r *Reader) acquire(timeout *time.Duration) bool {
	if timeout == nil {
		<-r.sem
		return true
	}
	select {
	case <-r.sem:
		return true
	case <-time.After(*timeout):
		return false
	}
}

func (r *Reader) release() { r.sem <- struct{}{} }

// pollLocked must be called with the semaphore held. It scans the deque,
// and, on a miss, repeatedly pulls from the source until a match arrives
// or the timeout (if any) elapses.
func (r *Reader) pollLocked(filter Filter, timeout *time.Duration) (bool, error) {
	start := time.Now()
	for {
		for _, it := range r.deque {
			if filter(it) {
				return true, nil
			}
		}

		hasTimeout := timeout != nil
		var remaining time.Duration
		if hasTimeout {
			remaining = *timeout - time.Since(start)
			if remaining <= 0 {
				return false, nil
			}
		}

		items, err := r.source.TryRead(remaining, hasTimeout)
		if err != nil {
			if errors.Is(err, ErrInterrupted) {
				return false, nil
			}
			return false, err
		}
		r.deque = append(r.deque, items...)
	}
}

// Poll reports whether an event matching filter is available, waiting up
// to timeout (nil means wait indefinitely). It does not consume the
// event; a following Read(filter) will observe it.
func (r *Reader) Poll(timeout *time.Duration, filter Filter) (bool, error) {
	if err := r.ensureSource(); err != nil {
		return false, err
	}
	if !r.acquire(timeout) {
		return false, nil
	}
	defer r.release()
	return r.pollLocked(filter, timeout)
}

// Read blocks until an event matching filter is available, then removes
// and returns it. Events skipped along the way stay buffered, in their
// original relative order, for a later Read(AnyEvent).
func (r *Reader) Read(filter Filter) (Item, error) {
	if err := r.ensureSource(); err != nil {
		return Item{}, err
	}
	r.acquire(nil)
	defer r.release()

	for {
		for i, it := range r.deque {
			if filter(it) {
				rest := make([]Item, 0, len(r.deque)-1)
				rest = append(rest, r.deque[:i]...)
				rest = append(rest, r.deque[i+1:]...)
				r.deque = rest
				return it, nil
			}
		}
		if _, err := r.pollLocked(filter, nil); err != nil {
			return Item{}, err
		}
	}
}

// Wake interrupts the source's in-progress wait: a Poll waiting on it
// returns false promptly, while a Read goes back to waiting until a
// matching event arrives.
func (r *Reader) Wake() {
	if err := r.ensureSource(); err != nil {
		return
	}
	r.source.Wake()
}

// Poll/Read/Wake are exposed as free functions over the process-wide
// Reader, matching the library's free-function surface.
func Poll(timeout *time.Duration, filter Filter) (bool, error) { return defaultReader.Poll(timeout, filter) }
func Read(filter Filter) (Item, error) { return defaultReader.Read(filter) }
func Wake() { defaultReader.Wake() }
