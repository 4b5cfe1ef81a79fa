package record

import "testing"

func TestControlKeyStateHasState(t *testing.T) {
	tests := []struct {
		name   string
		state  ControlKeyState
		mask   uint32
		expect bool
	}{
		{"shift-set", ControlKeyState(0x0010), ShiftPressed, true},
		{"shift-not-right-alt", ControlKeyState(0x0010), RightAltPressed, false},
		{"empty", ControlKeyState(0), ShiftPressed, false},
		{"left-ctrl", ControlKeyState(LeftCtrlPressed), LeftCtrlPressed, true},
		{"either-ctrl", ControlKeyState(RightCtrlPressed), LeftCtrlPressed | RightCtrlPressed, true},
		{"either-alt-none", ControlKeyState(CapsLockOn), LeftAltPressed | RightAltPressed, false},
		{"enhanced", ControlKeyState(EnhancedKey | ShiftPressed), EnhancedKey, true},
		{"undocumented-bit", ControlKeyState(0x8000), 0x8000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.HasState(tt.mask); got != tt.expect {
				t.Errorf("ControlKeyState(%#x).HasState(%#x) = %v, want %v",
					uint32(tt.state), tt.mask, got, tt.expect)
			}
		})
	}
}

func TestControlKeyBitConstants(t *testing.T) {
	// The bit-to-meaning table is fixed by the platform documentation.
	want := []struct {
		name  string
		bit   uint32
		value uint32
	}{
		{"RightAltPressed", RightAltPressed, 0x0001},
		{"LeftAltPressed", LeftAltPressed, 0x0002},
		{"RightCtrlPressed", RightCtrlPressed, 0x0004},
		{"LeftCtrlPressed", LeftCtrlPressed, 0x0008},
		{"ShiftPressed", ShiftPressed, 0x0010},
		{"NumLockOn", NumLockOn, 0x0020},
		{"ScrollLockOn", ScrollLockOn, 0x0040},
		{"CapsLockOn", CapsLockOn, 0x0080},
		{"EnhancedKey", EnhancedKey, 0x0100},
	}

	for _, tt := range want {
		if tt.bit != tt.value {
			t.Errorf("%s = %#x, want %#x", tt.name, tt.bit, tt.value)
		}
	}
}
