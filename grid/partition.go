package grid

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrZoneEmpty is returned by PickRandom and CoordAt when the requested
// zone has no members.
var ErrZoneEmpty = errors.New("zone is empty")

// Partition holds every board coordinate exactly once, arranged into four
// contiguous zones (Empty, FutureBug, CurrentBug, Snake). Zone membership
// queries, uniform random picks within a zone, and membership transfers
// are all O(1); a transfer swaps the coordinate with a boundary-adjacent
// slot and shifts the shared boundary by one.
//
// The inverse index (slots) maps a coordinate back to its position in the
// permutation, so no operation ever scans the array.
type Partition struct {
	width, height int

	cells []Coord // permutation of all board coordinates
	slots []int   // slots[c.Index(width)] == i such that cells[i] == c

	// bounds[z] is the first slot of zone z; zone z occupies
	// cells[bounds[z]:bounds[z+1]]. bounds[0] and bounds[categoryCount]
	// are pinned to 0 and len(cells).
	bounds [categoryCount + 1]int

	rng *rand.Rand
}

// NewPartition creates a partition of a width×height board with every
// cell in the Empty zone. The RNG backs PickRandom; pass a seeded source
// for deterministic play.
func NewPartition(width, height int, rng *rand.Rand) *Partition {
	n := width * height
	p := &Partition{
		width:  width,
		height: height,
		cells:  make([]Coord, n),
		slots:  make([]int, n),
		rng:    rng,
	}
	for i := 0; i < n; i++ {
		p.cells[i] = Coord{X: i % width, Y: i / width}
		p.slots[i] = i
	}
	p.bounds = [categoryCount + 1]int{0, n, n, n, n}
	return p
}

// Width returns the board width
func (p *Partition) Width() int { return p.width }

// Height returns the board height
func (p *Partition) Height() int { return p.height }

// Size returns the total cell count
func (p *Partition) Size() int { return len(p.cells) }

// Contains reports whether c is a valid board coordinate
func (p *Partition) Contains(c Coord) bool {
	return c.X >= 0 && c.X < p.width && c.Y >= 0 && c.Y < p.height
}

// Category returns the zone holding c. O(1): one inverse-index lookup and
// three boundary comparisons.
func (p *Partition) Category(c Coord) Category {
	i := p.slots[c.Index(p.width)]
	for z := Empty; z < categoryCount-1; z++ {
		if i < p.bounds[z+1] {
			return z
		}
	}
	return categoryCount - 1
}

// ZoneSize returns the number of cells currently in cat's zone
func (p *Partition) ZoneSize(cat Category) int {
	return p.bounds[cat+1] - p.bounds[cat]
}

// CoordAt returns the zone member at the given offset from the zone start.
// Offsets are stable only between transfers touching that zone.
func (p *Partition) CoordAt(cat Category, offset int) (Coord, error) {
	if offset < 0 || offset >= p.ZoneSize(cat) {
		return Coord{}, fmt.Errorf("offset %d in %s zone of size %d: %w",
			offset, cat, p.ZoneSize(cat), ErrZoneEmpty)
	}
	return p.cells[p.bounds[cat]+offset], nil
}

// PickRandom returns a uniformly random member of cat's zone
func (p *Partition) PickRandom(cat Category) (Coord, error) {
	size := p.ZoneSize(cat)
	if size == 0 {
		return Coord{}, fmt.Errorf("pick from %s: %w", cat, ErrZoneEmpty)
	}
	return p.cells[p.bounds[cat]+p.rng.Intn(size)], nil
}

// Move transfers c from its current zone to the zone of cat. Non-adjacent
// transfers hop through the intervening zones, one boundary shift each, so
// the cost is bounded by the zone count, never by the board size.
func (p *Partition) Move(c Coord, to Category) error {
	if !p.Contains(c) {
		return fmt.Errorf("move %s: coordinate outside %dx%d board", c, p.width, p.height)
	}
	if to < Empty || to >= categoryCount {
		return fmt.Errorf("move %s: invalid category %d", c, int(to))
	}
	from := p.Category(c)
	for from != to {
		idx := p.slots[c.Index(p.width)]
		if to > from {
			// Leave the current zone through its last slot, then claim
			// that slot for the zone on the right.
			p.swap(idx, p.bounds[from+1]-1)
			p.bounds[from+1]--
			from++
		} else {
			// Mirror image: leave through the first slot.
			p.swap(idx, p.bounds[from])
			p.bounds[from]++
			from--
		}
	}
	return nil
}

// swap exchanges the permutation entries at slots i and j and keeps the
// inverse index consistent
func (p *Partition) swap(i, j int) {
	if i == j {
		return
	}
	p.cells[i], p.cells[j] = p.cells[j], p.cells[i]
	p.slots[p.cells[i].Index(p.width)] = i
	p.slots[p.cells[j].Index(p.width)] = j
}

// Check scans the whole partition for desyncs between the permutation,
// the inverse index, and the zone boundaries. It is O(n) and intended for
// tests and debug builds; game operations never need it.
func (p *Partition) Check() error {
	n := len(p.cells)
	if p.bounds[0] != 0 || p.bounds[categoryCount] != n {
		return fmt.Errorf("partition check: outer bounds %v not pinned to [0,%d]", p.bounds, n)
	}
	for z := Empty; z < categoryCount; z++ {
		if p.bounds[z] > p.bounds[z+1] {
			return fmt.Errorf("partition check: %s zone has negative size (bounds %v)", z, p.bounds)
		}
	}
	for i := 0; i < n; i++ {
		c := p.cells[i]
		if !p.Contains(c) {
			return fmt.Errorf("partition check: slot %d holds out-of-board coordinate %s", i, c)
		}
		if p.slots[c.Index(p.width)] != i {
			return fmt.Errorf("partition check: inverse index desync at slot %d (%s)", i, c)
		}
	}
	for idx := 0; idx < n; idx++ {
		i := p.slots[idx]
		if i < 0 || i >= n {
			return fmt.Errorf("partition check: inverse index %d out of range for coordinate index %d", i, idx)
		}
		if p.cells[i].Index(p.width) != idx {
			return fmt.Errorf("partition check: permutation desync at coordinate index %d", idx)
		}
	}
	return nil
}
