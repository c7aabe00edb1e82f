package grid

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestPartition(w, h int, seed int64) *Partition {
	return NewPartition(w, h, rand.New(rand.NewSource(seed)))
}

func TestNewPartitionAllEmpty(t *testing.T) {
	p := newTestPartition(5, 4, 1)

	if p.Size() != 20 {
		t.Errorf("Expected size 20, got %d", p.Size())
	}
	if p.ZoneSize(Empty) != 20 {
		t.Errorf("Expected 20 empty cells, got %d", p.ZoneSize(Empty))
	}
	for _, cat := range []Category{FutureBug, CurrentBug, Snake} {
		if p.ZoneSize(cat) != 0 {
			t.Errorf("Expected empty %s zone, got size %d", cat, p.ZoneSize(cat))
		}
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if cat := p.Category(Coord{X: x, Y: y}); cat != Empty {
				t.Errorf("Expected (%d,%d) empty, got %s", x, y, cat)
			}
		}
	}
	if err := p.Check(); err != nil {
		t.Errorf("Fresh partition failed check: %v", err)
	}
}

func TestMoveAdjacentZones(t *testing.T) {
	p := newTestPartition(4, 4, 1)
	c := Coord{X: 2, Y: 1}

	steps := []Category{FutureBug, CurrentBug, Snake, CurrentBug, FutureBug, Empty}
	for _, want := range steps {
		if err := p.Move(c, want); err != nil {
			t.Fatalf("Move to %s failed: %v", want, err)
		}
		if got := p.Category(c); got != want {
			t.Errorf("Expected %s after move, got %s", want, got)
		}
		if err := p.Check(); err != nil {
			t.Errorf("Invariants broken after move to %s: %v", want, err)
		}
	}
}

func TestMoveChainedTransfer(t *testing.T) {
	p := newTestPartition(4, 4, 1)
	c := Coord{X: 0, Y: 3}

	// Empty -> Snake skips two zones; must still land correctly
	if err := p.Move(c, Snake); err != nil {
		t.Fatalf("Chained move failed: %v", err)
	}
	if got := p.Category(c); got != Snake {
		t.Errorf("Expected snake after chained move, got %s", got)
	}
	if p.ZoneSize(FutureBug) != 0 || p.ZoneSize(CurrentBug) != 0 {
		t.Error("Intermediate zones should stay empty after a pass-through")
	}
	if err := p.Check(); err != nil {
		t.Errorf("Invariants broken after chained move: %v", err)
	}

	// And straight back
	if err := p.Move(c, Empty); err != nil {
		t.Fatalf("Chained move back failed: %v", err)
	}
	if got := p.Category(c); got != Empty {
		t.Errorf("Expected empty after chained move back, got %s", got)
	}
}

func TestMoveSameZoneIsNoop(t *testing.T) {
	p := newTestPartition(3, 3, 1)
	c := Coord{X: 1, Y: 1}

	before := make([]Coord, len(p.cells))
	copy(before, p.cells)

	if err := p.Move(c, Empty); err != nil {
		t.Fatalf("Same-zone move failed: %v", err)
	}
	for i := range before {
		if p.cells[i] != before[i] {
			t.Fatalf("Same-zone move permuted slot %d", i)
		}
	}
}

func TestMoveRejectsOutOfBoard(t *testing.T) {
	p := newTestPartition(3, 3, 1)
	if err := p.Move(Coord{X: 3, Y: 0}, Snake); err == nil {
		t.Error("Expected error moving out-of-board coordinate")
	}
	if err := p.Move(Coord{X: -1, Y: 0}, Snake); err == nil {
		t.Error("Expected error moving negative coordinate")
	}
}

func TestClassifyIdempotent(t *testing.T) {
	p := newTestPartition(4, 4, 7)
	c := Coord{X: 3, Y: 2}
	p.Move(c, CurrentBug)

	first := p.Category(c)
	second := p.Category(c)
	if first != second {
		t.Errorf("Classification changed without mutation: %s then %s", first, second)
	}
}

func TestPickRandomEmptyZoneError(t *testing.T) {
	p := newTestPartition(3, 3, 1)
	if _, err := p.PickRandom(Snake); !errors.Is(err, ErrZoneEmpty) {
		t.Errorf("Expected ErrZoneEmpty, got %v", err)
	}
	if _, err := p.CoordAt(CurrentBug, 0); !errors.Is(err, ErrZoneEmpty) {
		t.Errorf("Expected ErrZoneEmpty from CoordAt, got %v", err)
	}
}

func TestPickRandomStaysInZone(t *testing.T) {
	p := newTestPartition(6, 6, 3)
	for i := 0; i < 8; i++ {
		c, err := p.PickRandom(Empty)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		if err := p.Move(c, FutureBug); err != nil {
			t.Fatalf("Move of picked cell failed: %v", err)
		}
	}
	if p.ZoneSize(FutureBug) != 8 {
		t.Errorf("Expected 8 future bugs, got %d", p.ZoneSize(FutureBug))
	}
	for i := 0; i < 100; i++ {
		c, err := p.PickRandom(FutureBug)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		if got := p.Category(c); got != FutureBug {
			t.Errorf("Picked %s from future-bug zone, classified %s", c, got)
		}
	}
}

// TestPickRandomUniformity is a chi-square goodness-of-fit test against
// the uniform distribution over the empty zone.
func TestPickRandomUniformity(t *testing.T) {
	p := newTestPartition(5, 5, 42)
	const trials = 25000
	n := p.Size()

	counts := make(map[Coord]int, n)
	for i := 0; i < trials; i++ {
		c, err := p.PickRandom(Empty)
		if err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
		counts[c]++
	}

	if len(counts) != n {
		t.Errorf("Expected all %d cells picked at least once, got %d", n, len(counts))
	}

	expected := float64(trials) / float64(n)
	chi2 := 0.0
	for _, observed := range counts {
		d := float64(observed) - expected
		chi2 += d * d / expected
	}

	// 24 degrees of freedom; the 0.001 critical value is 51.18. The seed
	// is fixed, so this never flakes; a failure means a real bias.
	if chi2 > 51.18 {
		t.Errorf("Chi-square %.2f exceeds 51.18, pick is not uniform", chi2)
	}
}

// TestRandomOperationFuzz hammers the partition with random transfers and
// verifies the permutation/inverse bijection and zone coverage after each
// batch.
func TestRandomOperationFuzz(t *testing.T) {
	p := newTestPartition(8, 7, 99)
	rng := rand.New(rand.NewSource(1234))
	n := p.Size()

	for op := 0; op < 5000; op++ {
		c := Coord{X: rng.Intn(8), Y: rng.Intn(7)}
		to := Category(rng.Intn(int(categoryCount)))
		if err := p.Move(c, to); err != nil {
			t.Fatalf("Op %d: move %s to %s failed: %v", op, c, to, err)
		}
		if got := p.Category(c); got != to {
			t.Fatalf("Op %d: expected %s after move, got %s", op, to, got)
		}
		if op%100 == 0 {
			if err := p.Check(); err != nil {
				t.Fatalf("Op %d: invariants broken: %v", op, err)
			}
		}
	}

	if err := p.Check(); err != nil {
		t.Fatalf("Final check failed: %v", err)
	}
	total := 0
	for cat := Empty; cat < categoryCount; cat++ {
		total += p.ZoneSize(cat)
	}
	if total != n {
		t.Errorf("Zone sizes sum to %d, expected %d", total, n)
	}
}
