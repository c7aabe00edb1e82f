package game

// Direction is one of the four grid-adjacent unit moves
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// deltas indexed by Direction
var deltas = [4][2]int{
	{0, -1}, // up
	{1, 0},  // right
	{0, 1},  // down
	{-1, 0}, // left
}

// Delta returns the x,y offset of one step in d
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the reverse of d
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "direction(?)"
}
