package tui

import "github.com/vovakirdan/tui-pong/internal/registry"

func init() {
	registry.Register("tui", func() registry.Frontend { return frontend{} })
}

// frontend hosts a match in the terminal.
type frontend struct{}

func (frontend) ID() string         { return "tui" }
func (frontend) Title() string      { return "Terminal (Bubble Tea)" }
func (frontend) OwnsTerminal() bool { return true }

func (frontend) Run(env registry.Env) error {
	return Run(env.Game, env.Runtime, env.Logger)
}
