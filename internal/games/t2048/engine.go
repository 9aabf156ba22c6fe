package t2048

// DefaultTwoProbability is the classic chance of spawning a 2 rather than a 4.
const DefaultTwoProbability = 0.9

// DefaultInitialTiles is the number of tiles on a new board.
const DefaultInitialTiles = 2

// Source is the randomness the engine draws from.
// *rand.Rand satisfies it; tests inject scripted sources.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Spawn describes a tile placed by the engine.
type Spawn struct {
	Index int // Flat cell index
	Value uint32
}

// Row returns the spawn row.
func (s Spawn) Row() int { return s.Index / Size }

// Col returns the spawn column.
func (s Spawn) Col() int { return s.Index % Size }

// Engine owns a Grid and mutates it through moves and spawns.
// It is not safe for concurrent use; Session adds the locking.
type Engine struct {
	grid    Grid
	rng     Source
	twoProb float64
}

// NewEngine creates an engine with an empty grid.
// twoProbability is the chance a spawned tile is a 2; it is clamped to [0, 1].
func NewEngine(rng Source, twoProbability float64) *Engine {
	e := &Engine{rng: rng}
	e.SetTwoProbability(twoProbability)
	return e
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Load replaces the grid.
func (e *Engine) Load(g Grid) {
	e.grid = g
}

// Clear empties every cell.
func (e *Engine) Clear() {
	e.grid = Grid{}
}

// TwoProbability returns the chance a spawned tile is a 2.
func (e *Engine) TwoProbability() float64 {
	return e.twoProb
}

// SetTwoProbability changes the spawn distribution for later spawns.
func (e *Engine) SetTwoProbability(p float64) {
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	e.twoProb = p
}

// Move slides every row or column toward dir and returns the score delta.
// A move that changes nothing leaves the grid identical and returns 0.
func (e *Engine) Move(dir Direction) uint32 {
	var delta uint32
	e.grid, delta = Slide(e.grid, dir)
	return delta
}

// Spawn places a 2 or a 4 on a uniformly chosen empty cell.
// Returns false when the grid has no empty cell.
func (e *Engine) Spawn() (Spawn, bool) {
	empty := EmptyCells(e.grid)
	if len(empty) == 0 {
		return Spawn{}, false
	}

	cell := empty[e.rng.Intn(len(empty))]

	var value uint32 = 4
	if e.rng.Float64() < e.twoProb {
		value = 2
	}

	e.grid[cell] = value
	return Spawn{Index: cell, Value: value}, true
}

// SpawnRandomTile is Spawn without the placement details.
func (e *Engine) SpawnRandomTile() bool {
	_, ok := e.Spawn()
	return ok
}
