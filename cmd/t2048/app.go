package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// app holds everything a command needs, built from the global flags.
type app struct {
	logger     *log.Logger
	logFile    *os.File
	cfg        config.Config
	configPath string // File the config came from, empty for built-in
	reg        *registry.Registry
}

// newApp sets up logging, loads the config and registers the modes.
func newApp() (*app, error) {
	a := &app{}

	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.logFile = logFile

	cfg, err := config.Load(flagConfig)
	if err != nil {
		a.close()
		return nil, err
	}
	a.cfg = cfg
	a.configPath = config.ResolvePath(flagConfig)
	a.logger.Debug("config loaded", "path", a.configPath, "levels", cfg.LevelCount())

	a.reg = registry.New()
	if err := t2048.Register(a.reg, cfg, t2048.WithLogger(a.logger)); err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

// newLogger builds the charmbracelet logger. Without a file, logs are
// discarded so they never draw over the TUI.
func newLogger(path, level string) (*log.Logger, *os.File, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var f *os.File
	if path != "" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           lvl,
	})
	return logger, f, nil
}

func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// openStore opens the score database. Failure is not fatal: the game
// still works, it just cannot save.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		a.logger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// watchConfig follows the config file for live reloads.
// Returns nil when the config is built in or the file cannot be watched.
func (a *app) watchConfig() *config.Watcher {
	if a.configPath == "" {
		return nil
	}
	w, err := config.Watch(a.configPath)
	if err != nil {
		a.logger.Warn("config reload disabled", "path", a.configPath, "err", err)
		return nil
	}
	a.logger.Debug("watching config", "path", w.Path())
	return w
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// startLeveler is implemented by modes with selectable start levels.
type startLeveler interface {
	SetStartLevel(level int)
}

// checkLevel rejects a start level outside the campaign.
func checkLevel(sel tui.Selection, levels int) error {
	switch {
	case sel.Level == 0:
		return nil
	case sel.GameID != t2048.CampaignID:
		return fmt.Errorf("mode %q has no levels; --level needs %q", sel.GameID, t2048.CampaignID)
	case sel.Level < 0 || sel.Level > levels:
		return fmt.Errorf("level %d out of range (1-%d)", sel.Level, levels)
	}
	return nil
}

// play runs one game until the player quits.
func (a *app) play(sel tui.Selection, rc core.RuntimeConfig, store *storage.Store) error {
	if err := checkLevel(sel, a.cfg.LevelCount()); err != nil {
		return err
	}

	game, err := a.reg.Create(sel.GameID)
	if err != nil {
		return err
	}

	if sel.Level > 0 {
		sl, ok := game.(startLeveler)
		if !ok {
			return fmt.Errorf("mode %q has no levels", sel.GameID)
		}
		sl.SetStartLevel(sel.Level)
	}

	watcher := a.watchConfig()
	if watcher != nil {
		defer watcher.Close()
	}

	return tui.Run(game, rc, tui.Options{
		Store:   store,
		Logger:  a.logger,
		Watcher: watcher,
	})
}
