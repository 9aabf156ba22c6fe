package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	ChoiceCampaign MenuChoice = iota
	ChoiceEndless
	ChoiceSelectLevel
	ChoiceScoreboard
)

// menuEntry is one line of the main menu.
type menuEntry struct {
	choice MenuChoice
	label  string
}

// Selection holds what the user picked in the menu.
type Selection struct {
	GameID string
	Level  int // 0 = start from the beginning, otherwise 1-indexed
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	entries       []menuEntry
	levels        []config.Level
	campaignID    string
	endlessID     string
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	selected      *Selection
	scoreboard    bool
	quitting      bool
	back          bool
}

// NewMenuModel creates a menu for the modes in reg and the levels in cfg.
func NewMenuModel(reg *registry.Registry, cfg config.Config, rc core.RuntimeConfig) MenuModel {
	campaignID, endlessID := t2048.CampaignID, t2048.EndlessID
	var entries []menuEntry
	if reg.Exists(campaignID) {
		entries = append(entries, menuEntry{ChoiceCampaign, fmt.Sprintf("Campaign (%d levels)", cfg.LevelCount())})
	}
	if reg.Exists(endlessID) {
		entries = append(entries, menuEntry{ChoiceEndless, "Endless Mode"})
	}
	if reg.Exists(campaignID) && cfg.LevelCount() > 1 {
		entries = append(entries, menuEntry{ChoiceSelectLevel, "Select Level..."})
	}
	entries = append(entries, menuEntry{ChoiceScoreboard, "High Scores"})

	return MenuModel{
		entries:    entries,
		levels:     cfg.Campaign.Levels,
		campaignID: campaignID,
		endlessID:  endlessID,
		width:      rc.ScreenW,
		height:     rc.ScreenH,
		config:     rc,
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.entries[m.cursor].choice {
		case ChoiceCampaign:
			m.selected = &Selection{GameID: m.campaignID}
			return m, tea.Quit
		case ChoiceEndless:
			m.selected = &Selection{GameID: m.endlessID}
			return m, tea.Quit
		case ChoiceSelectLevel:
			m.inLevelSelect = true
			m.levelCursor = 0
		case ChoiceScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &Selection{GameID: m.campaignID, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#edc22e"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if m.inLevelSelect {
		b.WriteString(menuTitleStyle.Render(centerText("SELECT LEVEL", m.width)))
		b.WriteString("\n\n")
		for i, lvl := range m.levels {
			line := fmt.Sprintf("%2d. %s (Target: %d)", i+1, lvl.Name, lvl.Target)
			b.WriteString(m.renderItem(line, i == m.levelCursor))
		}
	} else {
		b.WriteString(menuTitleStyle.Render(centerText("2 0 4 8", m.width)))
		b.WriteString("\n\n")
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")
		for i, e := range m.entries {
			b.WriteString(m.renderItem(e.label, i == m.cursor))
		}
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText("Enter: Select  |  Tab: Scores  |  Esc: Back  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderItem(label string, active bool) string {
	if active {
		return menuCursorStyle.Render(centerText("> "+label, m.width)) + "\n"
	}
	return centerText("  "+label, m.width) + "\n"
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// WantsBack returns true if user left the top menu with back.
func (m MenuModel) WantsBack() bool {
	return m.back
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(reg *registry.Registry, cfg config.Config, rc core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(reg, cfg, rc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rc}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rc, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}

	return result, nil
}
