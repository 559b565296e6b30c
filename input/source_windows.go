//go:build windows

package input

import (
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/event"
	"github.com/coreterm/coreterm/platformhandle"
	"github.com/coreterm/coreterm/screen"
	"github.com/coreterm/coreterm/wininput"
)

func init() {
	newSource = newWindowsSource
}

// waitTimeout is WAIT_TIMEOUT, the WaitForMultipleObjects return value
// when the interval elapses with nothing signaled. golang.org/x/sys's
// windows package only exports WAIT_OBJECT_0 and WAIT_FAILED.
const waitTimeout = 0x00000102

// ReadConsoleInputW has no wrapper in golang.org/x/sys/windows, so it is
// reached the same way the rest of this module's Windows paths reach
// unwrapped kernel32 entry points: a LazyDLL proc.
var (
	kernel32              = syscall.NewLazyDLL("kernel32.dll")
	procReadConsoleInputW = kernel32.NewProc("ReadConsoleInputW")
)

func readConsoleInput(h windows.Handle, buf []windows.InputRecord) (uint32, error) {
	var n uint32
	r1, _, err := procReadConsoleInputW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(&n)),
	)
	if r1 == 0 {
		return 0, err
	}
	return n, nil
}

const maxRecordsPerRead = 128

// windowsSource reads console input records directly off the console
// input handle. Wake is implemented with a manual-reset event included
// alongside the console handle in a single WaitForMultipleObjects call,
// the Windows analogue of the POSIX wake channel.
type windowsSource struct {
	handle     platformhandle.Handle
	wakeEvent  windows.Handle
	translator wininput.Translator
}

func newWindowsSource() (Source, error) {
	h, err := platformhandle.CurrentInput()
	if err != nil {
		return nil, err
	}
	wakeEvent, err := windows.CreateEvent(nil, 1, 0, nil)
	if err != nil {
		h.Close()
		return nil, err
	}
	return &windowsSource{handle: h, wakeEvent: wakeEvent}, nil
}

func (s *windowsSource) updateWindowTop() {
	if rect, err := platformhandle.WindowRect(s.handle); err == nil {
		s.translator.WindowTop = int16(rect.Top)
	}
}

func (s *windowsSource) TryRead(timeout time.Duration, hasTimeout bool) ([]Item, error) {
	waitMs := uint32(windows.INFINITE)
	if hasTimeout {
		if timeout < 0 {
			timeout = 0
		}
		waitMs = uint32(timeout.Milliseconds())
	}

	handles := []windows.Handle{windows.Handle(s.handle.Fd()), s.wakeEvent}
	ev, err := windows.WaitForMultipleObjects(handles, false, waitMs)
	if err != nil {
		return nil, err
	}

	switch ev {
	case windows.WAIT_OBJECT_0:
		return s.readRecords()
	case windows.WAIT_OBJECT_0 + 1:
		windows.ResetEvent(s.wakeEvent)
		return nil, ErrInterrupted
	case waitTimeout:
		return nil, nil
	default:
		return nil, nil
	}
}

func (s *windowsSource) readRecords() ([]Item, error) {
	var raw [maxRecordsPerRead]windows.InputRecord
	n, err := readConsoleInput(windows.Handle(s.handle.Fd()), raw[:])
	if err != nil {
		return nil, err
	}

	s.updateWindowTop()
	s.translator.ReportFocusChange = screen.IsFocusChangeEnabled()
	flags, active := screen.ActiveKeyboardEnhancementFlags()
	s.translator.ReportKeyReleases = active && flags&event.ReportEventTypes != 0

	items := make([]Item, 0, n)
	for i := uint32(0); i < n; i++ {
		ev, ok := s.translator.Translate(raw[i])
		if !ok {
			continue
		}
		items = append(items, Item{Event: ev})
	}
	return items, nil
}

func (s *windowsSource) Wake() {
	windows.SetEvent(s.wakeEvent)
}

func (s *windowsSource) Close() error {
	windows.CloseHandle(s.wakeEvent)
	s.handle.Close()
	return nil
}
