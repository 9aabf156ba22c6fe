package t2048

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	// Source supplies randomness. Nil means a math/rand source seeded with Seed.
	Source Source
	Seed   int64

	// TwoProbability is the chance a spawned tile is a 2, clamped to at
	// most 1. Zero or less means DefaultTwoProbability.
	TwoProbability float64

	// SpawnAfterNoop spawns a tile after every move attempt, even one that
	// left the board unchanged.
	SpawnAfterNoop bool

	// InitialTiles is the number of tiles placed by Start, at most 16.
	// Zero or less means DefaultInitialTiles.
	InitialTiles int

	// Logger receives move and game-over events. Nil discards them.
	Logger *log.Logger
}

// MoveResult reports everything a single move did.
type MoveResult struct {
	Direction      Direction
	Delta          uint32 // Sum of merged tile values
	Changed        bool   // Grid differs from before the move
	SpawnAttempted bool
	Spawned        bool
	Spawn          Spawn // Valid when Spawned
	Over           bool  // No direction can change the grid any more
}

// Session is one game of 2048: an engine plus the running score.
// All methods are safe for concurrent use; every operation holds the
// session lock for its whole duration.
type Session struct {
	mu             sync.Mutex
	engine         *Engine
	spawnAfterNoop bool
	initialTiles   int
	logger         *log.Logger

	score uint32
	moves int
	over  bool
}

// NewSession creates a session with an empty grid. Call Start to seed it.
func NewSession(opts SessionOptions) *Session {
	src := opts.Source
	if src == nil {
		src = rand.New(rand.NewSource(opts.Seed))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	initial := opts.InitialTiles
	switch {
	case initial <= 0:
		initial = DefaultInitialTiles
	case initial > CellCount:
		initial = CellCount
	}

	twoProb := opts.TwoProbability
	if twoProb <= 0 {
		twoProb = DefaultTwoProbability
	}

	return &Session{
		engine:         NewEngine(src, twoProb),
		spawnAfterNoop: opts.SpawnAfterNoop,
		initialTiles:   initial,
		logger:         logger,
	}
}

// Start clears the grid, resets score and move count, and spawns the
// initial tiles.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Clear()
	s.score = 0
	s.moves = 0

	for i := 0; i < s.initialTiles; i++ {
		s.engine.Spawn()
	}
	s.over = !CanMove(s.engine.Grid())

	s.logger.Debug("session started", "tiles", s.initialTiles, "two_probability", s.engine.TwoProbability())
}

// Move applies one move and the spawn policy.
// Once the session is over every move is a no-op until Start is called.
func (s *Session) Move(dir Direction) MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := MoveResult{Direction: dir}
	if s.over {
		res.Over = true
		return res
	}

	before := s.engine.Grid()
	res.Delta = s.engine.Move(dir)
	res.Changed = s.engine.Grid() != before
	s.score += res.Delta

	if res.Changed {
		s.moves++
	}

	if res.Changed || s.spawnAfterNoop {
		res.SpawnAttempted = true
		res.Spawn, res.Spawned = s.engine.Spawn()
	}

	s.over = !CanMove(s.engine.Grid())
	res.Over = s.over

	s.logger.Debug("move",
		"dir", dir,
		"delta", res.Delta,
		"changed", res.Changed,
		"spawned", res.Spawned,
		"score", s.score,
	)
	if res.Spawned {
		s.logger.Debug("spawn", "row", res.Spawn.Row(), "col", res.Spawn.Col(), "value", res.Spawn.Value)
	}
	if res.SpawnAttempted && !res.Spawned {
		s.logger.Debug("no empty cell to spawn into", "over", s.over)
	}
	if s.over {
		s.logger.Info("game over", "score", s.score, "moves", s.moves, "max_tile", MaxTile(s.engine.Grid()))
	}

	return res
}

// Load replaces the grid without touching score or move count.
func (s *Session) Load(g Grid) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Load(g)
	s.over = !CanMove(g)
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Grid()
}

// Score returns the running score.
func (s *Session) Score() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Moves returns the number of moves that changed the grid.
func (s *Session) Moves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moves
}

// Over reports whether no direction can change the grid.
func (s *Session) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.over
}

// MaxTile returns the highest tile on the grid.
func (s *Session) MaxTile() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MaxTile(s.engine.Grid())
}

// TwoProbability returns the current spawn distribution.
func (s *Session) TwoProbability() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.TwoProbability()
}

// SetTwoProbability changes the spawn distribution for later spawns.
func (s *Session) SetTwoProbability(p float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetTwoProbability(p)
}

// SetSpawnAfterNoop changes the spawn policy for later moves.
func (s *Session) SetSpawnAfterNoop(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spawnAfterNoop = v
}
