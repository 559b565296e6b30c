//go:build windows

package cursor

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/platformhandle"
)

func outputHandle() (windows.Handle, error) {
	h, err := platformhandle.StdOutput()
	if err != nil {
		return 0, err
	}
	return windows.Handle(h.Fd()), nil
}

func screenBufferInfo(h windows.Handle) (*windows.ConsoleScreenBufferInfo, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func winSetCursorPosition(x, y int) error {
	h, err := outputHandle()
	if err != nil {
		return err
	}
	return windows.SetConsoleCursorPosition(h, windows.Coord{X: int16(x), Y: int16(y)})
}

func winMoveToColumn(x int) error {
	h, err := outputHandle()
	if err != nil {
		return err
	}
	info, err := screenBufferInfo(h)
	if err != nil {
		return err
	}
	return windows.SetConsoleCursorPosition(h, windows.Coord{X: int16(x), Y: info.CursorPosition.Y})
}

func winMoveToRow(y int) error {
	h, err := outputHandle()
	if err != nil {
		return err
	}
	info, err := screenBufferInfo(h)
	if err != nil {
		return err
	}
	return windows.SetConsoleCursorPosition(h, windows.Coord{X: info.CursorPosition.X, Y: int16(y)})
}

func winMoveToNextLine(n int) error {
	h, err := outputHandle()
	if err != nil {
		return err
	}
	info, err := screenBufferInfo(h)
	if err != nil {
		return err
	}
	return windows.SetConsoleCursorPosition(h, windows.Coord{X: 0, Y: info.CursorPosition.Y + int16(n)})
}

func winMoveToPreviousLine(n int) error {
	return winMoveToNextLine(-n)
}

func winMoveRelative(dx, dy int) error {
	h, err := outputHandle()
	if err != nil {
		return err
	}
	info, err := screenBufferInfo(h)
	if err != nil {
		return err
	}
	return windows.SetConsoleCursorPosition(h, windows.Coord{
		X: info.CursorPosition.X + int16(dx),
		Y: info.CursorPosition.Y + int16(dy),
	})
}

// The legacy console has no DECSC equivalent, so the saved coordinate is
// process state, one slot, same as the ANSI side's save/restore pair.
var savedPosition struct {
	mu    sync.Mutex
	coord windows.Coord
	set   bool
}

func winSavePosition() error {
	h, err := outputHandle()
	if err != nil {
		return err
	}
	info, err := screenBufferInfo(h)
	if err != nil {
		return err
	}
	savedPosition.mu.Lock()
	savedPosition.coord = info.CursorPosition
	savedPosition.set = true
	savedPosition.mu.Unlock()
	return nil
}

func winRestorePosition() error {
	savedPosition.mu.Lock()
	coord, set := savedPosition.coord, savedPosition.set
	savedPosition.mu.Unlock()
	if !set {
		return nil
	}
	h, err := outputHandle()
	if err != nil {
		return err
	}
	return windows.SetConsoleCursorPosition(h, coord)
}

func winSetCursorVisible(visible bool) error {
	h, err := outputHandle()
	if err != nil {
		return err
	}
	var info windows.ConsoleCursorInfo
	if err := windows.GetConsoleCursorInfo(h, &info); err != nil {
		return err
	}
	if visible {
		info.Visible = 1
	} else {
		info.Visible = 0
	}
	return windows.SetConsoleCursorInfo(h, &info)
}
