package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/bughunt/grid"
)

// Status is the controller's lifecycle state
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	case StatusWon:
		return "won"
	}
	return "status(?)"
}

// Terminal reports whether no further steps are possible
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusWon
}

// Config describes a new game. Zero Seed means seed from the clock.
type Config struct {
	Width         int
	Height        int
	InitialLength int
	Bugs          int // eatable bugs kept on the board
	Hints         int // staged future-bug cells shown as hints
	Seed          int64
}

// Validate checks that a playable game fits on the board
func (cfg Config) Validate() error {
	if cfg.Width < 3 || cfg.Height < 3 {
		return fmt.Errorf("board %dx%d too small, need at least 3x3", cfg.Width, cfg.Height)
	}
	if cfg.InitialLength < 1 {
		return fmt.Errorf("initial length %d, need at least 1", cfg.InitialLength)
	}
	if cfg.InitialLength > cfg.Width {
		return fmt.Errorf("initial length %d does not fit on a board %d wide", cfg.InitialLength, cfg.Width)
	}
	if cfg.Bugs < 1 {
		return fmt.Errorf("bug count %d, need at least 1", cfg.Bugs)
	}
	if cfg.Hints < 0 {
		return fmt.Errorf("hint count %d, must not be negative", cfg.Hints)
	}
	if occupied := cfg.InitialLength + cfg.Bugs + cfg.Hints; occupied >= cfg.Width*cfg.Height {
		return fmt.Errorf("snake, bugs and hints need %d cells, board only has %d", occupied, cfg.Width*cfg.Height)
	}
	return nil
}

// StepResult reports the outcome of one step
type StepResult struct {
	Status Status
	Head   grid.Coord
	Grew   bool
}

// Controller owns the partition array, the snake path and the hint cursor
// and advances them one command at a time. It is not safe for concurrent
// use; the driving loop feeds it one command per invocation (see Step).
type Controller struct {
	cfg  Config
	part *grid.Partition
	path *snakePath

	status     Status
	heading    Direction
	hintCursor int
}

// NewController creates a game in the Running state. The initial snake
// lies horizontally centered, head on the right, heading right; initial
// bugs and hints are drawn with the same primitives used during play.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	part := grid.NewPartition(cfg.Width, cfg.Height, rand.New(rand.NewSource(seed)))

	c := &Controller{
		cfg:     cfg,
		part:    part,
		path:    newSnakePath(cfg.Width * cfg.Height),
		status:  StatusRunning,
		heading: DirRight,
	}

	row := cfg.Height / 2
	startX := (cfg.Width - cfg.InitialLength) / 2
	for i := 0; i < cfg.InitialLength; i++ {
		cell := grid.Coord{X: startX + i, Y: row}
		if err := part.Move(cell, grid.Snake); err != nil {
			return nil, fmt.Errorf("placing snake: %w", err)
		}
		c.path.pushHead(cell)
	}

	for i := 0; i < cfg.Bugs; i++ {
		cell, err := part.PickRandom(grid.Empty)
		if err != nil {
			return nil, fmt.Errorf("placing bugs: %w", err)
		}
		if err := part.Move(cell, grid.CurrentBug); err != nil {
			return nil, fmt.Errorf("placing bugs: %w", err)
		}
	}

	c.replenishHints()
	return c, nil
}

// Step advances one tick in the given direction. Outside the Running
// state, and for a reversal straight into the neck, it is a no-op that
// reports the current state.
func (c *Controller) Step(dir Direction) StepResult {
	if c.status != StatusRunning {
		return c.result(false)
	}
	if c.path.len() > 1 && dir == c.heading.Opposite() {
		// Reversal is dropped rather than punished; the driver keeps the
		// previous heading.
		return c.result(false)
	}

	dx, dy := dir.Delta()
	next := c.path.head().Add(dx, dy)
	if !c.part.Contains(next) {
		c.status = StatusGameOver
		return c.result(false)
	}

	switch c.part.Category(next) {
	case grid.Snake:
		// The tail vacates on the same tick the head arrives, so entering
		// the tail cell is legal; advance retracts it first.
		if c.path.len() > 1 && next == c.path.tail() {
			c.advance(next, dir)
			return c.result(false)
		}
		c.status = StatusGameOver
		return c.result(false)

	case grid.Empty:
		c.advance(next, dir)
		return c.result(false)

	case grid.FutureBug:
		// A hint cell is still walkable. Demote it, move through, and
		// redraw a replacement so the hint count holds.
		c.shift(next, grid.Empty)
		c.advance(next, dir)
		c.replenishHints()
		return c.result(false)

	case grid.CurrentBug:
		c.shift(next, grid.Snake)
		c.path.pushHead(next)
		c.heading = dir
		if c.part.ZoneSize(grid.Snake) == c.part.Size() {
			c.status = StatusWon
			return c.result(true)
		}
		c.promoteHint()
		c.replenishHints()
		return c.result(true)
	}
	return c.result(false)
}

// shift reclassifies a cell mid-play. Move only fails on an out-of-board
// coordinate or an unnamed category; every caller here passes a cell that
// Contains already admitted (or that came out of the partition itself)
// and a category constant, so a failure means corrupted state and the
// driving loop's panic recovery takes over.
func (c *Controller) shift(cell grid.Coord, to grid.Category) {
	if err := c.part.Move(cell, to); err != nil {
		panic(fmt.Sprintf("partition desync: %v", err))
	}
}

// advance moves the head onto next and retracts the tail, keeping the
// snake length unchanged. Tail first, then head: that ordering is what
// makes moving into the vacating tail cell work.
func (c *Controller) advance(next grid.Coord, dir Direction) {
	tail := c.path.popTail()
	c.shift(tail, grid.Empty)
	c.shift(next, grid.Snake)
	c.path.pushHead(next)
	c.heading = dir
}

// promoteHint turns the hinted future bug into an eatable one. With no
// hints staged, a fresh bug is drawn straight from the empty zone.
func (c *Controller) promoteHint() {
	if c.part.ZoneSize(grid.FutureBug) == 0 {
		if cell, err := c.part.PickRandom(grid.Empty); err == nil {
			c.shift(cell, grid.CurrentBug)
		}
		return
	}
	if c.hintCursor >= c.part.ZoneSize(grid.FutureBug) {
		c.hintCursor = 0
	}
	cell, err := c.part.CoordAt(grid.FutureBug, c.hintCursor)
	if err != nil {
		return
	}
	c.shift(cell, grid.CurrentBug)
}

// replenishHints tops the future-bug zone back up to the configured size
// from the empty zone, and clamps the hint cursor if the zone shrank.
func (c *Controller) replenishHints() {
	for c.part.ZoneSize(grid.FutureBug) < c.cfg.Hints {
		cell, err := c.part.PickRandom(grid.Empty)
		if err != nil {
			break // board nearly full, live with fewer hints
		}
		c.shift(cell, grid.FutureBug)
	}
	if c.hintCursor >= c.part.ZoneSize(grid.FutureBug) {
		c.hintCursor = 0
	}
}

// TogglePause flips between Running and Paused; terminal states stick
func (c *Controller) TogglePause() Status {
	switch c.status {
	case StatusRunning:
		c.status = StatusPaused
	case StatusPaused:
		c.status = StatusRunning
	}
	return c.status
}

// CycleHint moves the hint cursor by delta (+1/-1) around the future-bug
// zone and returns the newly hinted cell. Pure metadata: no zone changes.
// With no hints staged it reports ok=false and leaves the cursor at 0.
func (c *Controller) CycleHint(delta int) (grid.Coord, bool) {
	if c.status != StatusRunning {
		return c.HintCoord()
	}
	size := c.part.ZoneSize(grid.FutureBug)
	if size == 0 {
		c.hintCursor = 0
		return grid.Coord{}, false
	}
	c.hintCursor = ((c.hintCursor+delta)%size + size) % size
	return c.HintCoord()
}

// HintCoord returns the cell currently selected by the hint cursor
func (c *Controller) HintCoord() (grid.Coord, bool) {
	if c.part.ZoneSize(grid.FutureBug) == 0 {
		return grid.Coord{}, false
	}
	cursor := c.hintCursor
	if cursor >= c.part.ZoneSize(grid.FutureBug) {
		cursor = 0
	}
	cell, err := c.part.CoordAt(grid.FutureBug, cursor)
	if err != nil {
		return grid.Coord{}, false
	}
	return cell, true
}

// CellCategory classifies a board cell for rendering
func (c *Controller) CellCategory(cell grid.Coord) grid.Category {
	return c.part.Category(cell)
}

// SnakeCells returns the body tail to head, re-derived each call
func (c *Controller) SnakeCells() []grid.Coord {
	return c.path.cells()
}

// Status returns the lifecycle state
func (c *Controller) Status() Status { return c.status }

// Head returns the head cell
func (c *Controller) Head() grid.Coord { return c.path.head() }

// Heading returns the direction of the last accepted step
func (c *Controller) Heading() Direction { return c.heading }

// Length returns the body length
func (c *Controller) Length() int { return c.path.len() }

// Score returns bugs eaten so far
func (c *Controller) Score() int { return c.path.len() - c.cfg.InitialLength }

// Width returns the board width
func (c *Controller) Width() int { return c.part.Width() }

// Height returns the board height
func (c *Controller) Height() int { return c.part.Height() }

// CheckInvariants runs the partition's full consistency scan plus the
// snake-length and path/zone agreement checks. Test and debug use only.
func (c *Controller) CheckInvariants() error {
	if err := c.part.Check(); err != nil {
		return err
	}
	if c.part.ZoneSize(grid.Snake) != c.path.len() {
		return fmt.Errorf("snake zone size %d != path length %d",
			c.part.ZoneSize(grid.Snake), c.path.len())
	}
	for _, cell := range c.path.cells() {
		if cat := c.part.Category(cell); cat != grid.Snake {
			return fmt.Errorf("path cell %s classified %s", cell, cat)
		}
	}
	return nil
}

func (c *Controller) result(grew bool) StepResult {
	return StepResult{Status: c.status, Head: c.path.head(), Grew: grew}
}
