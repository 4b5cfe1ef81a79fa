package coord

import "fmt"

// Size is a terminal extent in character cells.
type Size struct {
	Width  int16
	Height int16
}

// NewSize creates a size.
func NewSize(width, height int16) Size {
	return Size{Width: width, Height: height}
}

// Equal returns true if two sizes have the same dimensions.
func (s Size) Equal(other Size) bool {
	return s.Width == other.Width && s.Height == other.Height
}

// IsZero returns true if both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// String returns a representation like "120x40".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
