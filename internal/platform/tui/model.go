package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// statusDuration is how long a status message stays on screen.
const statusDuration = 2 * time.Second

// Optional capabilities a game may offer the platform.
type (
	configurable interface{ ApplyConfig(config.Config) }
	resizable    interface{ Resize(w, h int) }
	boardTexter  interface{ BoardText() string }
)

// Options wires the collaborators of a Model. Every field is optional.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Watcher *config.Watcher

	// ScreenshotDir receives ctrl+s dumps. Empty means ~/.t2048/screenshots.
	ScreenshotDir string

	// Clipboard receives the board on ctrl+y. Nil means the system clipboard.
	Clipboard func(string) error
}

// configMsg carries a reloaded configuration from the watcher.
type configMsg struct{ cfg config.Config }

// configErrMsg carries a reload failure from the watcher.
type configErrMsg struct{ err error }

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	watcher    *config.Watcher
	shotDir    string
	copyFn     func(string) error
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	statusTill time.Time
	quitting   bool
	scoreSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		watcher:    opts.Watcher,
		shotDir:    opts.ScreenshotDir,
		copyFn:     copyFn,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "mode", m.game.ID(), "seed", m.config.Seed)

	return tea.Batch(tickCmd(m.config.TickRate), waitForConfig(m.watcher))
}

// waitForConfig blocks on the watcher until it delivers something.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Updates:
			if !ok {
				return nil
			}
			return configMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return configErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case configMsg:
		if c, ok := m.game.(configurable); ok {
			c.ApplyConfig(msg.cfg)
		}
		m.setStatus("Config reloaded")
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed", "err", msg.err)
		m.setStatus("Config error, keeping previous settings")
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "ctrl+y":
		m.copyBoard()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Restart only means something once the game has ended
	if action == core.ActionRestart && !m.gameState.GameOver {
		return m, nil
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Fresh seed for the new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "mode", m.game.ID(), "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveResult()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult stores the finished game. Failures are logged and play goes on.
func (m *Model) saveResult() {
	st := m.gameState
	m.logger.Info("game finished", "mode", m.game.ID(), "score", st.Score, "max_tile", st.MaxTile, "moves", st.Moves)

	if m.store == nil || st.Score <= 0 {
		return
	}

	// Previous records, read before this game joins them
	prevHigh, _ := m.store.HighScore(m.game.ID())
	prevTile, _ := m.store.BestTile(m.game.ID())

	_, err := m.store.SaveResult(storage.Result{
		GameID:  m.game.ID(),
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Moves:   st.Moves,
	})
	if err != nil {
		m.logger.Warn("cannot save result", "err", err)
		return
	}

	switch {
	case st.Score > prevHigh:
		m.setStatus(fmt.Sprintf("New high score: %d", st.Score))
	case st.MaxTile > prevTile:
		m.setStatus(fmt.Sprintf("New best tile: %d", st.MaxTile))
	}
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	path, err := writeScreenshot(m.shotDir, m.game.ID(), m.screen.String(), time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		m.setStatus("Screenshot failed")
		return
	}

	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("Saved " + filepath.Base(path))
}

// writeScreenshot stores text under dir and returns the file path.
func writeScreenshot(dir, gameID, text string, now time.Time) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot find home directory: %w", err)
		}
		dir = filepath.Join(home, ".t2048", "screenshots")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}

	return path, nil
}

// copyBoard puts the board text on the clipboard.
func (m *Model) copyBoard() {
	text := m.screen.String()
	if bt, ok := m.game.(boardTexter); ok {
		text = bt.BoardText()
	}

	if err := m.copyFn(text); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.setStatus("Clipboard unavailable")
		return
	}
	m.setStatus("Board copied")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTill = time.Now().Add(statusDuration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.status != "" && time.Now().Before(m.statusTill) {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, core.ColorBrightGreen)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
