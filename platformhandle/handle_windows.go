//go:build windows

package platformhandle

import (
	"golang.org/x/sys/windows"
)

func isValidFd(fd uintptr) bool {
	return windows.Handle(fd) != windows.InvalidHandle
}

// StdOutput returns a non-owning Handle over the process's console output
// handle (STD_OUTPUT_HANDLE).
func StdOutput() (Handle, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return Handle{}, err
	}
	if !isValidFd(uintptr(h)) {
		return Handle{}, ErrInvalidHandle
	}
	return Handle{fd: uintptr(h), owned: false}, nil
}

// StdInput returns a non-owning Handle over the process's console input
// handle (STD_INPUT_HANDLE).
func StdInput() (Handle, error) {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return Handle{}, err
	}
	if !isValidFd(uintptr(h)) {
		return Handle{}, ErrInvalidHandle
	}
	return Handle{fd: uintptr(h), owned: false}, nil
}

// CurrentOutput opens "CONOUT$" by name, the device that always refers to
// the current console's active screen buffer regardless of stdout
// redirection. The returned Handle owns the descriptor and must be closed.
func CurrentOutput() (Handle, error) {
	return openConsoleDevice("CONOUT$", windows.GENERIC_READ|windows.GENERIC_WRITE)
}

// CurrentInput opens "CONIN$" by name, analogous to CurrentOutput.
func CurrentInput() (Handle, error) {
	return openConsoleDevice("CONIN$", windows.GENERIC_READ|windows.GENERIC_WRITE)
}

// WindowRect returns h's console screen buffer's visible window region,
// used to translate absolute mouse coordinates into window-relative ones
// (spec: the Windows mouse-event row is window-top-relative).
func WindowRect(h Handle) (Rect, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(h.Fd()), &info); err != nil {
		return Rect{}, err
	}
	return Rect{
		Left:   int(info.Window.Left),
		Top:    int(info.Window.Top),
		Right:  int(info.Window.Right),
		Bottom: int(info.Window.Bottom),
	}, nil
}

func openConsoleDevice(name string, access uint32) (Handle, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return Handle{}, err
	}
	h, err := windows.CreateFile(
		namePtr,
		access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return Handle{}, err
	}
	if !isValidFd(uintptr(h)) {
		return Handle{}, ErrInvalidHandle
	}
	return Handle{
		fd:    uintptr(h),
		owned: true,
		close: func() error { return windows.CloseHandle(h) },
	}, nil
}
