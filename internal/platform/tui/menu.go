package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDescStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240"))
)

// MenuItem represents a selectable difficulty in the menu.
type MenuItem struct {
	Preset      config.DifficultyPreset
	Title       string
	Description string
}

// DifficultyItems returns the menu entries in display order.
func DifficultyItems() []MenuItem {
	return []MenuItem{
		{config.DifficultyEasy, "Easy", "The CPU paddle is slow to react"},
		{config.DifficultyNormal, "Normal", "The classic CPU"},
		{config.DifficultyHard, "Hard", "The CPU keeps up with most shots"},
	}
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a new menu model with Normal highlighted.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	items := DifficultyItems()
	cursor := 0
	for i, it := range items {
		if it.Preset == config.DifficultyNormal {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
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
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("P O N G"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := menuItemStyle.Render("  " + item.Title)
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDescStyle.Render(m.items[m.cursor].Description), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.ShortHelpView([]key.Binding{m.keys.Up, m.keys.Down, m.keys.Confirm, m.keys.Quit}), m.width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
	Quit   bool
}

// result converts the final model state into a MenuResult.
func (m MenuModel) result() MenuResult {
	if m.quitting || m.selected == nil {
		return MenuResult{Config: m.config, Quit: true}
	}
	return MenuResult{Preset: m.selected.Preset, Config: m.config}
}

// RunMenu runs the difficulty picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
