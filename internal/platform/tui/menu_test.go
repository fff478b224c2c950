package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(MenuModel)
	}
	return m, cmd
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		expected config.DifficultyPreset
	}{
		{"default is normal", nil, config.DifficultyNormal},
		{"up picks easy", []tea.KeyMsg{runeKey("k")}, config.DifficultyEasy},
		{"down picks hard", []tea.KeyMsg{runeKey("j")}, config.DifficultyHard},
		{"cursor stops at top", []tea.KeyMsg{runeKey("k"), runeKey("k"), runeKey("k")}, config.DifficultyEasy},
		{"cursor stops at bottom", []tea.KeyMsg{runeKey("j"), runeKey("j"), runeKey("j")}, config.DifficultyHard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(core.DefaultConfig())
			keys := append(tc.keys, tea.KeyMsg{Type: tea.KeyEnter})
			m, cmd := pressMenu(m, keys...)

			if cmd == nil {
				t.Error("selecting should quit the menu program")
			}
			res := m.result()
			if res.Quit || res.Preset != tc.expected {
				t.Errorf("result = %+v, expected preset %q", res, tc.expected)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	m, cmd := pressMenu(NewMenuModel(core.DefaultConfig()), runeKey("q"))

	if cmd == nil || !m.result().Quit {
		t.Error("q should quit without a selection")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	view := m.View()

	for _, want := range []string{"P O N G", "Easy", "Normal", "Hard", "The classic CPU"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(MenuModel)

	if c := m.result().Config; c.ScreenW != 100 || c.ScreenH != 30 {
		t.Errorf("config = %dx%d, expected 100x30", c.ScreenW, c.ScreenH)
	}
}
