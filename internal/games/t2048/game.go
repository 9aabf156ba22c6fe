package t2048

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Mode IDs used by the registry, CLI and score storage.
const (
	CampaignID = "2048"
	EndlessID  = "2048_endless"
)

// levelClearDuration is how long the level-cleared banner stays up, in ticks.
const levelClearDuration = 120

// Game runs a Session inside the platform's fixed-tick loop.
type Game struct {
	mode    Mode
	cfg     config.Config
	logger  *log.Logger
	session *Session
	tick    uint64

	levelIndex    int    // Current level (0-indexed)
	currentTarget uint32 // Current tile target, 0 in endless
	startLevel    int    // Level picked for the next Reset, 1-indexed, 0 = first

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
	last            MoveResult
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger handed to each session.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a new campaign mode game.
func New(cfg config.Config, opts ...Option) *Game {
	return newGame(ModeCampaign, cfg, opts)
}

// NewEndless creates a new endless mode game.
func NewEndless(cfg config.Config, opts ...Option) *Game {
	return newGame(ModeEndless, cfg, opts)
}

func newGame(mode Mode, cfg config.Config, opts []Option) *Game {
	g := &Game{
		mode:   mode,
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Register adds both 2048 modes to reg.
func Register(reg *registry.Registry, cfg config.Config, opts ...Option) error {
	if err := reg.Register(CampaignID, func() registry.Game {
		return New(cfg, opts...)
	}); err != nil {
		return err
	}
	return reg.Register(EndlessID, func() registry.Game {
		return NewEndless(cfg, opts...)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessID
	}
	return CampaignID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// SetStartLevel picks the campaign level (1-indexed) used by the next Reset.
// 0 or an out-of-range value starts from the first level. The choice is
// consumed by that Reset; later restarts begin at level 1.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0
	g.last = MoveResult{}

	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= g.cfg.LevelCount() {
		g.levelIndex = g.startLevel - 1
	}
	g.startLevel = 0

	g.session = NewSession(SessionOptions{
		Seed:           cfg.Seed,
		TwoProbability: g.cfg.Spawn.TwoProbability,
		SpawnAfterNoop: g.cfg.Spawn.AfterNoopMove,
		InitialTiles:   g.cfg.InitialTiles,
		Logger:         g.logger.With("mode", g.ID()),
	})
	g.loadLevel()
	g.session.Start()

	g.checkScreenSize()
}

// ApplyConfig swaps in a reloaded configuration. Spawn settings take effect
// on the next move; board and score are kept.
func (g *Game) ApplyConfig(cfg config.Config) {
	g.cfg = cfg
	if g.session == nil {
		return
	}

	if n := cfg.LevelCount(); g.levelIndex >= n && n > 0 {
		g.levelIndex = n - 1
	}
	g.session.SetSpawnAfterNoop(cfg.Spawn.AfterNoopMove)
	g.loadLevel()
	g.logger.Info("config applied", "mode", g.ID(), "two_probability", g.session.TwoProbability())
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.currentTarget = 0
		g.session.SetTwoProbability(g.cfg.Spawn.TwoProbability)
		return
	}

	level, ok := g.cfg.Level(g.levelIndex)
	if !ok {
		// No campaign configured: play it like endless
		g.currentTarget = 0
		g.session.SetTwoProbability(g.cfg.Spawn.TwoProbability)
		return
	}

	g.currentTarget = level.Target
	g.session.SetTwoProbability(level.TwoProbability)
}

// Resize adapts to a new screen size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Board (29 wide, 9 tall) plus the HUD
	minW := 31
	minH := 14
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform calling Reset
	if in.Has(core.ActionRestart) && g.finished() {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDuration {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.finished() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.processMove(dir)
	return core.StepResult{State: g.State(), Moved: moved}
}

// directionFor picks at most one move per tick.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove hands a move to the session and checks the level target.
func (g *Game) processMove(dir Direction) bool {
	g.last = g.session.Move(dir)

	if g.currentTarget > 0 && g.last.Changed && g.session.MaxTile() >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
		g.logger.Info("level cleared", "level", g.levelIndex+1, "target", g.currentTarget, "score", g.session.Score())
	}

	return g.last.Changed
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= g.cfg.LevelCount()-1 {
		g.won = true
		g.logger.Info("campaign complete", "score", g.session.Score())
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// finished reports whether no more moves will be accepted.
func (g *Game) finished() bool {
	return g.won || (g.session != nil && g.session.Over())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.session.Score()),
		MaxTile:  int(g.session.MaxTile()),
		Moves:    g.session.Moves(),
		GameOver: !g.levelCleared && g.finished(),
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// Load replaces the board, keeping score and move count.
// Used by tests and debugging tools.
func (g *Game) Load(grid Grid) {
	if g.session != nil {
		g.session.Load(grid)
	}
}

// Grid returns the current board.
func (g *Game) Grid() Grid {
	if g.session == nil {
		return Grid{}
	}
	return g.session.Grid()
}

// BoardText returns the board as plain text with a score header.
func (g *Game) BoardText() string {
	st := g.State()
	return fmt.Sprintf("%s  score %d  max %d  moves %d\n%s",
		g.Title(), st.Score, st.MaxTile, st.Moves, g.Grid().String())
}

// LastMove returns the result of the most recent move.
func (g *Game) LastMove() MoveResult {
	return g.last
}
