package record

import (
	"encoding/binary"
	"fmt"
)

// EventType is the discriminant of a raw input record. It identifies which
// union arm of the payload is active.
type EventType uint16

const (
	// KeyEventType indicates a keyboard event.
	KeyEventType EventType = 0x0001

	// MouseEventType indicates a mouse movement or button event.
	MouseEventType EventType = 0x0002

	// WindowBufferSizeEventType indicates a screen-buffer resize.
	WindowBufferSizeEventType EventType = 0x0004

	// MenuEventType indicates a menu event. Used internally by Windows.
	MenuEventType EventType = 0x0008

	// FocusEventType indicates a focus change. Used internally by Windows.
	FocusEventType EventType = 0x0010
)

// String returns a short name for known event types and the hex code for
// anything else.
func (t EventType) String() string {
	switch t {
	case KeyEventType:
		return "key"
	case MouseEventType:
		return "mouse"
	case WindowBufferSizeEventType:
		return "window-buffer-size"
	case MenuEventType:
		return "menu"
	case FocusEventType:
		return "focus"
	default:
		return fmt.Sprintf("0x%04x", uint16(t))
	}
}

// Raw is the unmodified image of one Win32 INPUT_RECORD: the discriminant,
// two bytes of alignment padding, and the 16-byte event union. The layout
// matches the OS structure byte for byte, so ReadConsoleInputW can fill a
// []Raw directly.
//
// A Raw is borrowed for the duration of one Decode call and never retained;
// all field access goes through the little-endian readers below so that
// union-arm interpretation stays in this package.
type Raw struct {
	EventType EventType
	_         uint16
	Event     [16]byte
}

func (r Raw) u16(off int) uint16 {
	return binary.LittleEndian.Uint16(r.Event[off:])
}

func (r Raw) i16(off int) int16 {
	return int16(binary.LittleEndian.Uint16(r.Event[off:]))
}

func (r Raw) u32(off int) uint32 {
	return binary.LittleEndian.Uint32(r.Event[off:])
}

// bool32 reads a Win32 BOOL: a 32-bit field where any nonzero value is true.
func (r Raw) bool32(off int) bool {
	return r.u32(off) != 0
}
