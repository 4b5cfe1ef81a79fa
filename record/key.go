package record

import "fmt"

// KEY_EVENT_RECORD field offsets within the event union.
const (
	keyDownOffset         = 0
	keyRepeatOffset       = 4
	keyVirtualKeyOffset   = 6
	keyScanCodeOffset     = 8
	keyCharOffset         = 10
	keyControlStateOffset = 12
)

// KeyEventRecord is a decoded keyboard event.
type KeyEventRecord struct {
	// KeyDown is true for a press and false for a release.
	KeyDown bool

	// RepeatCount folds held-key repeats: one event with RepeatCount n
	// stands for n physical presses. Always at least 1.
	RepeatCount uint16

	// VirtualKeyCode identifies the key in a device-independent manner.
	VirtualKeyCode uint16

	// VirtualScanCode is the device-dependent value generated by the
	// keyboard hardware.
	VirtualScanCode uint16

	// Char is the translated character as a single UTF-16 code unit.
	Char uint16

	// ControlKeyState holds the modifier and lock-key bits.
	ControlKeyState ControlKeyState
}

// decodeKeyEvent reads the KEY_EVENT_RECORD union arm. The character union
// inside it is always read through the wide (UTF-16) arm; the narrow arm is
// never consulted, so this package must be paired with the wide console APIs
// to keep Unicode fidelity across locales.
func decodeKeyEvent(raw Raw) KeyEventRecord {
	return KeyEventRecord{
		KeyDown:         raw.bool32(keyDownOffset),
		RepeatCount:     raw.u16(keyRepeatOffset),
		VirtualKeyCode:  raw.u16(keyVirtualKeyOffset),
		VirtualScanCode: raw.u16(keyScanCodeOffset),
		Char:            raw.u16(keyCharOffset),
		ControlKeyState: ControlKeyState(raw.u32(keyControlStateOffset)),
	}
}

// String returns a representation like `key down vk=0x41 scan=0x1e char='a' repeat=1`.
func (k KeyEventRecord) String() string {
	state := "up"
	if k.KeyDown {
		state = "down"
	}
	return fmt.Sprintf("key %s vk=0x%02x scan=0x%02x char=%q repeat=%d",
		state, k.VirtualKeyCode, k.VirtualScanCode, rune(k.Char), k.RepeatCount)
}
