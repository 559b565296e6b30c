//go:build windows

package wininput

import "github.com/coreterm/coreterm/kbevent"

// Virtual-key codes this translator maps directly to a KeyCode; any VK
// not listed here falls back to the record's UnicodeChar.
const (
	vkBack    = 0x08
	vkTab     = 0x09
	vkReturn  = 0x0d
	vkEscape  = 0x1b
	vkPrior   = 0x21 // Page Up
	vkNext    = 0x22 // Page Down
	vkEnd     = 0x23
	vkHome    = 0x24
	vkLeft    = 0x25
	vkUp      = 0x26
	vkRight   = 0x27
	vkDown    = 0x28
	vkInsert  = 0x2d
	vkDelete  = 0x2e
	vkF1      = 0x70
	vkF24     = 0x87
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12 // Alt
)

func vkToKeyCode(vk uint16) (kbevent.KeyCode, bool) {
	switch vk {
	case vkBack:
		return kbevent.Backspace, true
	case vkTab:
		return kbevent.Tab, true
	case vkReturn:
		return kbevent.Enter, true
	case vkEscape:
		return kbevent.Esc, true
	case vkPrior:
		return kbevent.PageUp, true
	case vkNext:
		return kbevent.PageDown, true
	case vkEnd:
		return kbevent.End, true
	case vkHome:
		return kbevent.Home, true
	case vkLeft:
		return kbevent.Left, true
	case vkUp:
		return kbevent.Up, true
	case vkRight:
		return kbevent.Right, true
	case vkDown:
		return kbevent.Down, true
	case vkInsert:
		return kbevent.Insert, true
	case vkDelete:
		return kbevent.Delete, true
	case vkShift, vkControl, vkMenu:
		// Bare modifier keypresses are dropped per the translation
		// contract; the modifier still shows up on the event that
		// carries the actual key.
		return kbevent.KeyCode{}, false
	}
	if vk >= vkF1 && vk <= vkF24 {
		return kbevent.F(int(vk-vkF1) + 1), true
	}
	return kbevent.KeyCode{}, false
}
