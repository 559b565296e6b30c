//go:build windows

package style

import (
	"sync"

	"golang.org/x/sys/windows"

	"github.com/coreterm/coreterm/platformhandle"
)

// currentAttr mirrors the low WORD SetConsoleTextAttribute expects: 4 bits
// foreground + 4 bits background + intensity bits. The Windows Console API
// sets both halves in one call, so SetForegroundColor/SetBackgroundColor
// must read-modify-write this cached value rather than clobbering the half
// they don't own.
var (
	attrMu     sync.Mutex
	attrLoaded bool
	currentAttr uint16
)

const (
	fgBlue      = 0x0001
	fgGreen     = 0x0002
	fgRed       = 0x0004
	fgIntensity = 0x0008
	bgBlue      = 0x0010
	bgGreen     = 0x0020
	bgRed       = 0x0040
	bgIntensity = 0x0080

	fgMask = fgBlue | fgGreen | fgRed | fgIntensity
	bgMask = bgBlue | bgGreen | bgRed | bgIntensity
)

func outputHandleStyle() (windows.Handle, error) {
	h, err := platformhandle.StdOutput()
	if err != nil {
		return 0, err
	}
	return windows.Handle(h.Fd()), nil
}

func loadCurrentAttr(h windows.Handle) error {
	attrMu.Lock()
	defer attrMu.Unlock()
	if attrLoaded {
		return nil
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return err
	}
	currentAttr = info.Attributes
	attrLoaded = true
	return nil
}

// colorToLegacy4Bit maps a named 16-color to the 4-bit legacy console
// color bits; RGB/AnsiValue colors are approximated to the nearest named
// color, since the legacy console API has no true-color support.
func colorToLegacy4Bit(c Color) (bits uint16, intensity bool) {
	named := c
	if r, g, b, ok := c.IsRGB(); ok {
		named = nearestNamed(r, g, b)
	} else if v, ok := c.IsAnsiValue(); ok {
		named = ansi256ToColor(v)
	}
	switch named.kind {
	case kindBlack:
		return 0, false
	case kindDarkBlue:
		return 1, false
	case kindDarkGreen:
		return 2, false
	case kindDarkCyan:
		return 3, false
	case kindDarkRed:
		return 4, false
	case kindDarkMagenta:
		return 5, false
	case kindDarkYellow:
		return 6, false
	case kindGrey:
		return 7, false
	case kindDarkGrey:
		return 0, true
	case kindBlue:
		return 1, true
	case kindGreen:
		return 2, true
	case kindCyan:
		return 3, true
	case kindRed:
		return 4, true
	case kindMagenta:
		return 5, true
	case kindYellow:
		return 6, true
	case kindWhite:
		return 7, true
	default:
		return 7, false
	}
}

func nearestNamed(r, g, b uint8) Color {
	// Coarse nearest-neighbor against the 8 primary hues; good enough for
	// the legacy console fallback path, which is itself a 16-color palette.
	hi := r > 127 || g > 127 || b > 127
	bit := func(v uint8) bool { return v > 64 }
	idx := 0
	if bit(r) {
		idx |= 4
	}
	if bit(g) {
		idx |= 2
	}
	if bit(b) {
		idx |= 1
	}
	names := []Color{Black, DarkBlue, DarkGreen, DarkCyan, DarkRed, DarkMagenta, DarkYellow, Grey}
	bright := []Color{DarkGrey, Blue, Green, Cyan, Red, Magenta, Yellow, White}
	if hi {
		return bright[idx]
	}
	return names[idx]
}

func winSetForeground(c Color) error {
	h, err := outputHandleStyle()
	if err != nil {
		return err
	}
	if err := loadCurrentAttr(h); err != nil {
		return err
	}
	attrMu.Lock()
	defer attrMu.Unlock()
	if c.kind == kindReset {
		currentAttr = (currentAttr &^ fgMask) | 7
	} else {
		bits, intensity := colorToLegacy4Bit(c)
		currentAttr = currentAttr &^ fgMask
		currentAttr |= uint16(bits)
		if intensity {
			currentAttr |= fgIntensity
		}
	}
	return windows.SetConsoleTextAttribute(h, currentAttr)
}

func winSetBackground(c Color) error {
	h, err := outputHandleStyle()
	if err != nil {
		return err
	}
	if err := loadCurrentAttr(h); err != nil {
		return err
	}
	attrMu.Lock()
	defer attrMu.Unlock()
	if c.kind == kindReset {
		currentAttr = currentAttr &^ bgMask
	} else {
		bits, intensity := colorToLegacy4Bit(c)
		currentAttr = currentAttr &^ bgMask
		currentAttr |= uint16(bits) << 4
		if intensity {
			currentAttr |= bgIntensity
		}
	}
	return windows.SetConsoleTextAttribute(h, currentAttr)
}

func winResetColor() error {
	h, err := outputHandleStyle()
	if err != nil {
		return err
	}
	attrMu.Lock()
	currentAttr = 7
	attrMu.Unlock()
	return windows.SetConsoleTextAttribute(h, 7)
}

func winWriteConsole(p []byte) (int, error) {
	h, err := outputHandleStyle()
	if err != nil {
		return 0, err
	}
	utf16, err := windows.UTF16FromString(string(p))
	if err != nil {
		return 0, err
	}
	var written uint32
	if err := windows.WriteConsole(h, &utf16[0], uint32(len(utf16)-1), &written, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}
