package record

// EventFlags classifies a mouse event. Zero is a plain button press or
// release; the other codes are mutually exclusive values, not a bitmask.
type EventFlags uint32

const (
	// PressOrRelease indicates a button was pressed or released.
	PressOrRelease EventFlags = 0x0000

	// MouseMoved indicates a change in mouse position.
	MouseMoved EventFlags = 0x0001

	// DoubleClick indicates the second press of a double-click. The first
	// press arrives as a regular PressOrRelease event.
	DoubleClick EventFlags = 0x0002

	// MouseWheeled indicates the vertical wheel was rotated. The sign of
	// the button state gives the direction.
	MouseWheeled EventFlags = 0x0004

	// MouseHwheeled indicates the horizontal wheel was rotated.
	MouseHwheeled EventFlags = 0x0008

	// UnknownEventFlags is the fallback for any code outside the
	// documented set.
	UnknownEventFlags EventFlags = 0xFFFFFFFF
)

// NewEventFlags maps a raw dwEventFlags value to its EventFlags code. The
// mapping is total: unrecognized codes become UnknownEventFlags rather than
// an error. This is an exact-value match, not a bit test, because the source
// codes are mutually exclusive.
func NewEventFlags(v uint32) EventFlags {
	switch EventFlags(v) {
	case PressOrRelease, MouseMoved, DoubleClick, MouseWheeled, MouseHwheeled:
		return EventFlags(v)
	default:
		return UnknownEventFlags
	}
}

// String returns a string representation of the flags.
func (f EventFlags) String() string {
	switch f {
	case PressOrRelease:
		return "press-or-release"
	case MouseMoved:
		return "moved"
	case DoubleClick:
		return "double-click"
	case MouseWheeled:
		return "wheeled"
	case MouseHwheeled:
		return "hwheeled"
	default:
		return "unknown"
	}
}
