package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// helpHeight is the number of rows reserved below the arena.
const helpHeight = 1

// Model is the Bubble Tea model for running a match.
type Model struct {
	game      *pong.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	input     *heldInput
	logger    *log.Logger
	lastTick  time.Time
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-helpHeight, 1)),
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     newHeldInput(defaultHoldWindow),
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("match started", "match", m.game.MatchID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "match", m.game.MatchID())
		return m, tea.Quit
	}
	m.input.Press(action, now)
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the drawing scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	res := m.game.Step(m.input.Frame(now), elapsed)
	m.gameState = res.State
	m.logEvents(res)

	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(res pong.StepResult) {
	ev := res.Events
	switch {
	case ev.Has(pong.EventMatchRestarted):
		m.logger.Info("match started", "match", m.game.MatchID())
	case ev.Has(pong.EventGameOver):
		m.logger.Info("game over",
			"match", m.game.MatchID(),
			"winner", m.game.Snapshot().Winner,
			"player", res.State.PlayerScore,
			"cpu", res.State.AIScore)
	case ev.Has(pong.EventPointScored):
		m.logger.Debug("point",
			"scorer", m.game.Snapshot().LastScorer,
			"player", res.State.PlayerScore,
			"cpu", res.State.AIScore)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawArena(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game.
func Run(game *pong.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
