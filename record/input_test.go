package record

import (
	"errors"
	"testing"

	"github.com/dshills/wincon/coord"
)

func TestDecodeDispatchesByEventType(t *testing.T) {
	provider := &fakeSizeProvider{size: coord.NewSize(120, 40)}

	tests := []struct {
		name string
		raw  Raw
		typ  EventType
	}{
		{"key", rawKey(true, 1, 0x41, 0x1E, 'a', 0), KeyEventType},
		{"mouse", rawMouse(3, 7, 0x0001, 0, 0), MouseEventType},
		{"window-buffer-size", rawWindowBufferSize(80, 24), WindowBufferSizeEventType},
		{"focus", rawFocus(true), FocusEventType},
		{"menu", rawMenu(42), MenuEventType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Decode(tt.raw, provider)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if rec.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", rec.Type(), tt.typ)
			}
		})
	}
}

func TestDecodeFocusEvent(t *testing.T) {
	rec, err := Decode(rawFocus(true), nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	focus, ok := rec.(FocusEventRecord)
	if !ok {
		t.Fatalf("Decode() = %T, want FocusEventRecord", rec)
	}
	if !focus.SetFocus {
		t.Error("SetFocus should be true")
	}

	rec, err = Decode(rawFocus(false), nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rec.(FocusEventRecord).SetFocus {
		t.Error("SetFocus should be false")
	}
}

func TestDecodeMenuEvent(t *testing.T) {
	rec, err := Decode(rawMenu(0xBEEF), nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	menu, ok := rec.(MenuEventRecord)
	if !ok {
		t.Fatalf("Decode() = %T, want MenuEventRecord", rec)
	}
	if menu.CommandID != 0xBEEF {
		t.Errorf("CommandID = %#x, want 0xbeef", menu.CommandID)
	}
}

func TestDecodeUnknownEventType(t *testing.T) {
	unknown := []EventType{0x0000, 0x0003, 0x0020, 0x0040, 0xFFFF}

	for _, typ := range unknown {
		raw := Raw{EventType: typ}
		rec, err := Decode(raw, nil)
		if err == nil {
			t.Fatalf("Decode(%v) should fail for an unknown discriminant", typ)
		}
		if rec != nil {
			t.Errorf("Decode(%v) = %v, want nil record", typ, rec)
		}
		if !IsUnknownEventType(err) {
			t.Errorf("IsUnknownEventType(%v) should be true", err)
		}

		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("error %T should be a *DecodeError", err)
		}
		if decodeErr.EventType != typ {
			t.Errorf("EventType = %v, want %v", decodeErr.EventType, typ)
		}
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	// Decode holds no state: the same raw record and the same collaborator
	// state yield the same result every time.
	provider := &fakeSizeProvider{size: coord.NewSize(120, 40)}
	raws := []Raw{
		rawKey(true, 2, 0x42, 0x30, 'b', ShiftPressed),
		rawMouse(5, 5, 0x0002, 0, 0x0002),
		rawWindowBufferSize(80, 24),
		rawFocus(true),
		rawMenu(7),
	}

	for _, raw := range raws {
		first, err := Decode(raw, provider)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		second, err := Decode(raw, provider)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if first != second {
			t.Errorf("Decode() not idempotent: %v != %v", first, second)
		}
	}
}

func TestDecodeCopiesOutOfRaw(t *testing.T) {
	raw := rawKey(true, 1, 0x41, 0x1E, 'a', 0)
	rec, err := Decode(raw, nil)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	// Mutating the raw record after the fact must not reach the decoded
	// value.
	for i := range raw.Event {
		raw.Event[i] = 0xFF
	}
	key := rec.(KeyEventRecord)
	if key.Char != 'a' || key.VirtualKeyCode != 0x41 {
		t.Errorf("decoded record changed after raw mutation: %+v", key)
	}
}
