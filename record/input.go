package record

// InputRecord is the decoded form of one console input record: a closed
// union over the five event record types. Exactly one variant is produced
// per decode, and a decoded value is immutable and independent of the Raw it
// came from.
type InputRecord interface {
	// Type reports which event record this is.
	Type() EventType

	inputRecord()
}

// Type implements InputRecord.
func (KeyEventRecord) Type() EventType { return KeyEventType }

// Type implements InputRecord.
func (MouseEvent) Type() EventType { return MouseEventType }

// Type implements InputRecord.
func (WindowBufferSizeRecord) Type() EventType { return WindowBufferSizeEventType }

// Type implements InputRecord.
func (FocusEventRecord) Type() EventType { return FocusEventType }

// Type implements InputRecord.
func (MenuEventRecord) Type() EventType { return MenuEventType }

func (KeyEventRecord) inputRecord()         {}
func (MouseEvent) inputRecord()             {}
func (WindowBufferSizeRecord) inputRecord() {}
func (FocusEventRecord) inputRecord()       {}
func (MenuEventRecord) inputRecord()        {}

// Decode translates one raw input record into its typed form. The sizes
// provider is consulted only for window-buffer-size records; a nil provider
// fails those records and leaves every other kind unaffected.
//
// A discriminant outside the five known event kinds yields a *DecodeError
// wrapping ErrUnknownEventType; the record is never coerced into a default
// variant. Callers decide whether to skip the record or abort.
func Decode(raw Raw, sizes SizeProvider) (InputRecord, error) {
	switch raw.EventType {
	case KeyEventType:
		return decodeKeyEvent(raw), nil
	case MouseEventType:
		return decodeMouseEvent(raw), nil
	case WindowBufferSizeEventType:
		rec, err := decodeWindowBufferSize(raw, sizes)
		if err != nil {
			return nil, err
		}
		return rec, nil
	case FocusEventType:
		return decodeFocusEvent(raw), nil
	case MenuEventType:
		return decodeMenuEvent(raw), nil
	default:
		return nil, &DecodeError{EventType: raw.EventType, Err: ErrUnknownEventType}
	}
}
