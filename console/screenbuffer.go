package console

import "github.com/dshills/wincon/coord"

// Rect is an inclusive rectangle in buffer cell coordinates.
type Rect struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

// ScreenBufferInfo is a snapshot of the active screen buffer geometry, as
// reported by GetConsoleScreenBufferInfo.
type ScreenBufferInfo struct {
	// BufferSize is the full screen-buffer size in cells. It can be larger
	// than the visible window when the console keeps scrollback.
	BufferSize coord.Size

	// CursorPosition is the cursor cell in buffer coordinates.
	CursorPosition coord.Coord

	// Attributes are the character attributes text is written with.
	Attributes uint16

	// Window is the visible window rectangle in buffer coordinates, with
	// inclusive edges.
	Window Rect

	// MaximumWindowSize is the largest window the current buffer and
	// display allow.
	MaximumWindowSize coord.Size
}

// TerminalSize returns the size of the visible window in character cells.
// This, not BufferSize, is the terminal size a resize record should report.
func (i ScreenBufferInfo) TerminalSize() coord.Size {
	return coord.NewSize(
		i.Window.Right-i.Window.Left+1,
		i.Window.Bottom-i.Window.Top+1,
	)
}
