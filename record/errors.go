package record

import (
	"errors"
	"fmt"
)

// ErrUnknownEventType reports a raw record whose discriminant is not one of
// the five known event kinds. The active union arm cannot be determined, so
// the record is rejected instead of being guessed at: decoding the wrong arm
// would yield silently corrupt data.
var ErrUnknownEventType = errors.New("unknown event type")

// DecodeError describes a failed decode of a single raw input record.
type DecodeError struct {
	// EventType is the discriminant of the record that failed to decode.
	EventType EventType

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %v record: %v", e.EventType, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsUnknownEventType returns true if err was caused by an unrecognized
// discriminant.
func IsUnknownEventType(err error) bool {
	return errors.Is(err, ErrUnknownEventType)
}
