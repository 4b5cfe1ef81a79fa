package record

import (
	"fmt"

	"github.com/dshills/wincon/coord"
)

// MOUSE_EVENT_RECORD field offsets within the event union.
const (
	mousePosXOffset         = 0
	mousePosYOffset         = 2
	mouseButtonOffset       = 4
	mouseControlStateOffset = 8
	mouseFlagsOffset        = 12
)

// MouseEvent is a decoded mouse event.
type MouseEvent struct {
	// Position is the cell the cursor was over when the event occurred.
	Position coord.Coord

	// ButtonState holds the button bits and, for wheel events, the scroll
	// direction.
	ButtonState ButtonState

	// ControlKeyState holds the modifier and lock-key bits.
	ControlKeyState ControlKeyState

	// EventFlags classifies the event.
	EventFlags EventFlags
}

// decodeMouseEvent reads the MOUSE_EVENT_RECORD union arm, threading the
// bitmask fields through their decoders.
func decodeMouseEvent(raw Raw) MouseEvent {
	return MouseEvent{
		Position:        coord.New(raw.i16(mousePosXOffset), raw.i16(mousePosYOffset)),
		ButtonState:     NewButtonState(raw.u32(mouseButtonOffset)),
		ControlKeyState: ControlKeyState(raw.u32(mouseControlStateOffset)),
		EventFlags:      NewEventFlags(raw.u32(mouseFlagsOffset)),
	}
}

// String returns a representation like `mouse moved at (3, 7) buttons=0x1`.
func (m MouseEvent) String() string {
	return fmt.Sprintf("mouse %s at %s buttons=%#x", m.EventFlags, m.Position, uint32(m.ButtonState.State()))
}
