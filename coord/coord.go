package coord

import "fmt"

// Coord is a character-cell position in the console screen buffer.
// The origin (0, 0) is the top-left cell.
type Coord struct {
	X int16
	Y int16
}

// New creates a coordinate.
func New(x, y int16) Coord {
	return Coord{X: x, Y: y}
}

// Equal returns true if two coordinates are the same cell.
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// String returns a representation like "(12, 4)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
