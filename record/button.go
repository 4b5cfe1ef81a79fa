package record

// Button bits of the MOUSE_EVENT_RECORD dwButtonState field. A bit is set
// while the corresponding button is held. Bits are assigned by physical
// position, not by the OS-assigned logical button index.
const (
	// FromLeft1stButtonPressed is the leftmost mouse button.
	FromLeft1stButtonPressed uint32 = 0x0001

	// RightmostButtonPressed is the rightmost mouse button.
	RightmostButtonPressed uint32 = 0x0002

	// FromLeft2ndButtonPressed is the second button from the left.
	FromLeft2ndButtonPressed uint32 = 0x0004

	// FromLeft3rdButtonPressed is the third button from the left.
	FromLeft3rdButtonPressed uint32 = 0x0008

	// FromLeft4thButtonPressed is the fourth button from the left.
	FromLeft4thButtonPressed uint32 = 0x0010
)

// ButtonState is the button field of a mouse event. The low bits identify
// held buttons; for wheel events the sign of the whole value carries the
// scroll direction (negative is toward the user). Button bits and the wheel
// sign are independent, so a button predicate and a scroll predicate can both
// report true for the same value.
type ButtonState int32

// NewButtonState reinterprets the raw dwButtonState value as a signed state.
func NewButtonState(v uint32) ButtonState {
	return ButtonState(int32(v))
}

// ReleaseButton returns true if no buttons are held.
func (b ButtonState) ReleaseButton() bool {
	return b == 0
}

// LeftButton returns true if the leftmost button is held.
func (b ButtonState) LeftButton() bool {
	return uint32(b)&FromLeft1stButtonPressed != 0
}

// RightButton returns true if the rightmost button or one of the extra
// (third or fourth from the left) buttons is held. The extra buttons share
// right-button semantics.
func (b ButtonState) RightButton() bool {
	return uint32(b)&(RightmostButtonPressed|FromLeft3rdButtonPressed|FromLeft4thButtonPressed) != 0
}

// MiddleButton returns true if the second button from the left is held.
func (b ButtonState) MiddleButton() bool {
	return uint32(b)&FromLeft2ndButtonPressed != 0
}

// ScrollDown returns true if the wheel was rotated toward the user. Only
// meaningful when the event flags report a wheel event.
func (b ButtonState) ScrollDown() bool {
	return b < 0
}

// ScrollUp returns true if the wheel was rotated away from the user. Only
// meaningful when the event flags report a wheel event.
func (b ButtonState) ScrollUp() bool {
	return b > 0
}

// State returns the raw signed value for callers that need bits this type
// does not name.
func (b ButtonState) State() int32 {
	return int32(b)
}
