package game

import "github.com/lixenwraith/bughunt/grid"

// snakePath is the ordered body of the snake, tail to head, backed by a
// ring buffer sized for the whole board so pushes never allocate. It is
// deliberately independent of the partition array: the partition knows
// which cells are snake, the path knows in what order.
type snakePath struct {
	buf   []grid.Coord
	start int // slot of the tail
	count int
}

func newSnakePath(capacity int) *snakePath {
	return &snakePath{buf: make([]grid.Coord, capacity)}
}

func (s *snakePath) len() int { return s.count }

// pushHead appends a new head cell
func (s *snakePath) pushHead(c grid.Coord) {
	s.buf[(s.start+s.count)%len(s.buf)] = c
	s.count++
}

// popTail removes and returns the tail cell
func (s *snakePath) popTail() grid.Coord {
	c := s.buf[s.start]
	s.start = (s.start + 1) % len(s.buf)
	s.count--
	return c
}

func (s *snakePath) head() grid.Coord {
	return s.buf[(s.start+s.count-1)%len(s.buf)]
}

func (s *snakePath) tail() grid.Coord {
	return s.buf[s.start]
}

// cells returns the body tail to head as a fresh slice
func (s *snakePath) cells() []grid.Coord {
	out := make([]grid.Coord, s.count)
	for i := 0; i < s.count; i++ {
		out[i] = s.buf[(s.start+i)%len(s.buf)]
	}
	return out
}
