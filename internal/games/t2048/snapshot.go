package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "endless"
	Level   int    // Current level (1-indexed), 0 for endless
	Target  uint32 // Current target tile value
	Score   uint32
	Moves   int
	Grid    Grid
	MaxTile uint32
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.levelCleared:
		state = StateLevelCleared
	case g.finished():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	level := 0
	if g.mode == ModeCampaign && g.cfg.LevelCount() > 0 {
		level = g.levelIndex + 1
	}

	st := g.State()
	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   level,
		Target:  g.currentTarget,
		Score:   uint32(st.Score),
		Moves:   st.Moves,
		Grid:    g.Grid(),
		MaxTile: uint32(st.MaxTile),
		State:   state,
	}
}
