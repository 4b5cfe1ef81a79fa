package record

import "fmt"

const menuCommandOffset = 0

// MenuEventRecord is a decoded menu event. The field is reserved by the OS
// and carries no documented meaning for consumers, but it is decoded
// faithfully rather than dropped.
type MenuEventRecord struct {
	// CommandID is reserved.
	CommandID uint32
}

// decodeMenuEvent reads the MENU_EVENT_RECORD union arm.
func decodeMenuEvent(raw Raw) MenuEventRecord {
	return MenuEventRecord{CommandID: raw.u32(menuCommandOffset)}
}

// String returns a representation like `menu command=0x1`.
func (m MenuEventRecord) String() string {
	return fmt.Sprintf("menu command=%#x", m.CommandID)
}
