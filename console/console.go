package console

import (
	"errors"

	"github.com/dshills/wincon/record"
)

// ErrUnsupported is returned by every console operation on platforms without
// a Win32 console subsystem.
var ErrUnsupported = errors.New("console: unsupported on this platform")

// Console input-mode bits, as accepted by SetConsoleMode for an input handle.
const (
	// EnableProcessedInput lets the system handle Ctrl+C.
	EnableProcessedInput uint32 = 0x0001

	// EnableLineInput holds reads until a carriage return.
	EnableLineInput uint32 = 0x0002

	// EnableEchoInput echoes read characters to the screen buffer.
	EnableEchoInput uint32 = 0x0004

	// EnableWindowInput delivers window-buffer-size records.
	EnableWindowInput uint32 = 0x0008

	// EnableMouseInput delivers mouse records.
	EnableMouseInput uint32 = 0x0010

	// EnableInsertMode enables insert mode for console reads.
	EnableInsertMode uint32 = 0x0020

	// EnableQuickEditMode lets the user select text with the mouse, which
	// swallows mouse records.
	EnableQuickEditMode uint32 = 0x0040

	// EnableExtendedFlags must be set for EnableQuickEditMode changes to
	// take effect.
	EnableExtendedFlags uint32 = 0x0080

	// EnableVirtualTerminalInput converts input to VT100 sequences instead
	// of records.
	EnableVirtualTerminalInput uint32 = 0x0200
)

// The live console answers the terminal-size query made while decoding
// resize records.
var _ record.SizeProvider = (*Console)(nil)
