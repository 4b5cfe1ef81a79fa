package record

import "fmt"

const focusSetOffset = 0

// FocusEventRecord is a decoded focus event. The field is reserved by the
// OS and carries no documented meaning for consumers, but it is decoded
// faithfully rather than dropped.
type FocusEventRecord struct {
	// SetFocus is reserved.
	SetFocus bool
}

// decodeFocusEvent reads the FOCUS_EVENT_RECORD union arm.
func decodeFocusEvent(raw Raw) FocusEventRecord {
	return FocusEventRecord{SetFocus: raw.bool32(focusSetOffset)}
}

// String returns a representation like `focus set=true`.
func (f FocusEventRecord) String() string {
	return fmt.Sprintf("focus set=%t", f.SetFocus)
}
