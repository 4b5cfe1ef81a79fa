package console

import (
	"testing"

	"github.com/dshills/wincon/coord"
)

func TestScreenBufferInfoTerminalSize(t *testing.T) {
	tests := []struct {
		name   string
		window Rect
		want   coord.Size
	}{
		{"origin-window", Rect{Left: 0, Top: 0, Right: 119, Bottom: 39}, coord.NewSize(120, 40)},
		{"scrolled-window", Rect{Left: 0, Top: 960, Right: 79, Bottom: 983}, coord.NewSize(80, 24)},
		{"single-cell", Rect{Left: 5, Top: 5, Right: 5, Bottom: 5}, coord.NewSize(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ScreenBufferInfo{
				BufferSize: coord.NewSize(120, 1000),
				Window:     tt.window,
			}
			if got := info.TerminalSize(); !got.Equal(tt.want) {
				t.Errorf("TerminalSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalSizeIsWindowNotBuffer(t *testing.T) {
	// With scrollback the buffer is taller than the window; the window
	// size is the one that matters for resize records.
	info := ScreenBufferInfo{
		BufferSize: coord.NewSize(120, 9000),
		Window:     Rect{Left: 0, Top: 8960, Right: 119, Bottom: 8999},
	}
	if got := info.TerminalSize(); !got.Equal(coord.NewSize(120, 40)) {
		t.Errorf("TerminalSize() = %v, want 120x40", got)
	}
}
