package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testMenu(t *testing.T) MenuModel {
	t.Helper()
	reg := registry.New()
	if err := t2048.Register(reg, config.Default()); err != nil {
		t.Fatalf("Register: %v", err)
	}
	return NewMenuModel(reg, config.Default(), testRuntime())
}

func menuStep(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuEntries(t *testing.T) {
	m := testMenu(t)

	want := []MenuChoice{ChoiceCampaign, ChoiceEndless, ChoiceSelectLevel, ChoiceScoreboard}
	if len(m.entries) != len(want) {
		t.Fatalf("entries = %+v", m.entries)
	}
	for i, c := range want {
		if m.entries[i].choice != c {
			t.Errorf("entry %d = %v, want %v", i, m.entries[i].choice, c)
		}
	}
}

func TestMenuSelectEndless(t *testing.T) {
	m := testMenu(t)
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.GameID != t2048.EndlessID || sel.Level != 0 {
		t.Errorf("Selected() = %+v", sel)
	}
}

func TestMenuSelectLevel(t *testing.T) {
	m := testMenu(t)
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.inLevelSelect {
		t.Fatal("level select not opened")
	}

	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil || sel.GameID != t2048.CampaignID || sel.Level != 3 {
		t.Errorf("Selected() = %+v, want campaign level 3", sel)
	}
}

func TestMenuLevelSelectBack(t *testing.T) {
	m := testMenu(t)
	m.cursor = 2
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.inLevelSelect || m.WantsBack() {
		t.Error("esc in level select should return to the mode list only")
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuStep(t, testMenu(t), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsScoreboard() {
		t.Error("tab did not request the scoreboard")
	}

	m = menuStep(t, testMenu(t), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q did not quit")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
