package record

import (
	"errors"
	"fmt"

	"github.com/dshills/wincon/coord"
)

// SizeProvider reports the current terminal size in character cells. It is
// queried while decoding a window-buffer-size record; the console package
// provides the live implementation, and tests substitute a deterministic
// stub.
type SizeProvider interface {
	TerminalSize() (coord.Size, error)
}

// WindowBufferSizeRecord reports the console size after a resize.
type WindowBufferSizeRecord struct {
	// Size is the current terminal size in character cells.
	Size coord.Size
}

// decodeWindowBufferSize decodes a resize record. The size embedded in the
// raw record is stale by the time the record is delivered, so it is discarded
// and the live console size is queried instead. A failed query aborts the
// decode; a fabricated size would be worse than a visible error.
func decodeWindowBufferSize(_ Raw, sizes SizeProvider) (WindowBufferSizeRecord, error) {
	if sizes == nil {
		return WindowBufferSizeRecord{}, &DecodeError{
			EventType: WindowBufferSizeEventType,
			Err:       errors.New("no size provider"),
		}
	}
	size, err := sizes.TerminalSize()
	if err != nil {
		return WindowBufferSizeRecord{}, &DecodeError{
			EventType: WindowBufferSizeEventType,
			Err:       fmt.Errorf("query terminal size: %w", err),
		}
	}
	return WindowBufferSizeRecord{Size: size}, nil
}

// String returns a representation like `resize 120x40`.
func (w WindowBufferSizeRecord) String() string {
	return fmt.Sprintf("resize %s", w.Size)
}
