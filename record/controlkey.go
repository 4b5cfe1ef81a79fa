package record

// Modifier and lock bits of the dwControlKeyState field, shared by key and
// mouse events.
const (
	// RightAltPressed indicates the right Alt key is held.
	RightAltPressed uint32 = 0x0001

	// LeftAltPressed indicates the left Alt key is held.
	LeftAltPressed uint32 = 0x0002

	// RightCtrlPressed indicates the right Control key is held.
	RightCtrlPressed uint32 = 0x0004

	// LeftCtrlPressed indicates the left Control key is held.
	LeftCtrlPressed uint32 = 0x0008

	// ShiftPressed indicates a Shift key is held.
	ShiftPressed uint32 = 0x0010

	// NumLockOn indicates the Num Lock light is on.
	NumLockOn uint32 = 0x0020

	// ScrollLockOn indicates the Scroll Lock light is on.
	ScrollLockOn uint32 = 0x0040

	// CapsLockOn indicates the Caps Lock light is on.
	CapsLockOn uint32 = 0x0080

	// EnhancedKey indicates an enhanced key: the arrow, navigation and
	// editing keys of the extended 101/102-key layout.
	EnhancedKey uint32 = 0x0100
)

// ControlKeyState is the modifier/lock bitmask attached to an input event.
// The mask is kept raw and queried with HasState against the documented bit
// constants rather than being split into named booleans.
type ControlKeyState uint32

// HasState returns true if any bit of mask is set in the state.
func (c ControlKeyState) HasState(mask uint32) bool {
	return mask&uint32(c) != 0
}
