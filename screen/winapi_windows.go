//go:build windows

package screen

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/command"
	"github.com/coreterm/coreterm/platformhandle"
)

var (
	kernel32 = syscall.NewLazyDLL("kernel32.dll")

	procFillConsoleOutputCharacter   = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute   = kernel32.NewProc("FillConsoleOutputAttribute")
	procSetConsoleTitle              = kernel32.NewProc("SetConsoleTitleW")
	procCreateConsoleScreenBuffer    = kernel32.NewProc("CreateConsoleScreenBuffer")
	procSetConsoleActiveScreenBuffer = kernel32.NewProc("SetConsoleActiveScreenBuffer")
)

// consoleTextModeBuffer is CONSOLE_TEXTMODE_BUFFER, the only dwFlags value
// CreateConsoleScreenBuffer accepts.
const consoleTextModeBuffer = 1

// altScreenState remembers the buffer swap across an EnterAlternateScreen/
// LeaveAlternateScreen pair so the original buffer can be restored and the
// alternate one freed.
var altScreenState struct {
	original windows.Handle
	alt      windows.Handle
}

func fillConsoleOutputCharacter(h windows.Handle, char uint16, length uint32, coord windows.Coord) error {
	var written uint32
	r1, _, err := procFillConsoleOutputCharacter.Call(
		uintptr(h),
		uintptr(char),
		uintptr(length),
		uintptr(*(*uint32)(unsafe.Pointer(&coord))),
		uintptr(unsafe.Pointer(&written)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

func fillConsoleOutputAttribute(h windows.Handle, attr uint16, length uint32, coord windows.Coord) error {
	var written uint32
	r1, _, err := procFillConsoleOutputAttribute.Call(
		uintptr(h),
		uintptr(attr),
		uintptr(length),
		uintptr(*(*uint32)(unsafe.Pointer(&coord))),
		uintptr(unsafe.Pointer(&written)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}

func outputHandleScreen() (windows.Handle, error) {
	h, err := platformhandle.StdOutput()
	if err != nil {
		return 0, err
	}
	return windows.Handle(h.Fd()), nil
}

func winClear(t ClearType) error {
	h, err := outputHandleScreen()
	if err != nil {
		return err
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return err
	}
	width := uint32(info.Size.X)
	var start windows.Coord
	var length uint32
	switch t {
	case All, Purge:
		start = windows.Coord{X: 0, Y: 0}
		length = width * uint32(info.Size.Y)
	case FromCursorDown:
		start = info.CursorPosition
		length = width*uint32(info.Size.Y) - (uint32(info.CursorPosition.Y)*width + uint32(info.CursorPosition.X))
	case FromCursorUp:
		start = windows.Coord{X: 0, Y: 0}
		length = uint32(info.CursorPosition.Y)*width + uint32(info.CursorPosition.X) + 1
	case CurrentLine:
		start = windows.Coord{X: 0, Y: info.CursorPosition.Y}
		length = width
	case UntilNewLine:
		start = info.CursorPosition
		length = width - uint32(info.CursorPosition.X)
	}
	if err := fillConsoleOutputCharacter(h, uint16(' '), length, start); err != nil {
		return err
	}
	return fillConsoleOutputAttribute(h, info.Attributes, length, start)
}

func winScroll(_ int) error { return command.ErrUnsupported }

func winSetSize(cols, rows int) error {
	h, err := outputHandleScreen()
	if err != nil {
		return err
	}
	size := windows.Coord{X: int16(cols), Y: int16(rows)}
	return windows.SetConsoleScreenBufferSize(h, size)
}

func winSetTitle(title string) error {
	ptr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	r1, _, callErr := procSetConsoleTitle.Call(uintptr(unsafe.Pointer(ptr)))
	if r1 == 0 {
		return callErr
	}
	return nil
}

func setActiveScreenBuffer(h windows.Handle) error {
	r1, _, err := procSetConsoleActiveScreenBuffer.Call(uintptr(h))
	if r1 == 0 {
		return err
	}
	return nil
}

// winEnterAlternateScreen creates a second console screen buffer and makes
// it active, the Windows Console API's equivalent of CSI ?1049h: unlike
// the ANSI escape, there is no secondary buffer sharing the primary's
// scrollback, so switching back later is a clean SetConsoleActiveScreenBuffer
// rather than a terminal-side restore.
func winEnterAlternateScreen() error {
	h, err := outputHandleScreen()
	if err != nil {
		return err
	}

	r1, _, callErr := procCreateConsoleScreenBuffer.Call(
		uintptr(windows.GENERIC_READ|windows.GENERIC_WRITE),
		uintptr(windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE),
		0,
		uintptr(consoleTextModeBuffer),
		0,
	)
	alt := windows.Handle(r1)
	if alt == windows.InvalidHandle {
		return callErr
	}

	if err := setActiveScreenBuffer(alt); err != nil {
		windows.CloseHandle(alt)
		return err
	}
	altScreenState.original = h
	altScreenState.alt = alt
	return nil
}

func winLeaveAlternateScreen() error {
	if altScreenState.alt == 0 {
		return command.ErrUnsupported
	}
	err := setActiveScreenBuffer(altScreenState.original)
	windows.CloseHandle(altScreenState.alt)
	altScreenState.alt = 0
	return err
}
