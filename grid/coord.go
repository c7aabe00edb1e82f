package grid

import "fmt"

// Coord is a board cell position, 0-indexed, origin top-left
type Coord struct {
	X, Y int
}

// Index returns the linear index of c on a board of the given width
func (c Coord) Index(width int) int {
	return c.Y*width + c.X
}

// Add returns c offset by dx, dy
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Category classifies a board cell by its role in the current game
type Category int

// Zone order in the partition array, left to right. Only adjacent
// categories share a boundary, so a transfer between non-adjacent
// categories takes |from-to| boundary shifts.
const (
	Empty Category = iota
	FutureBug
	CurrentBug
	Snake

	categoryCount
)

func (cat Category) String() string {
	switch cat {
	case Empty:
		return "empty"
	case FutureBug:
		return "future-bug"
	case CurrentBug:
		return "current-bug"
	case Snake:
		return "snake"
	}
	return fmt.Sprintf("category(%d)", int(cat))
}
