package window

import "github.com/vovakirdan/tui-pong/internal/registry"

func init() {
	registry.Register("window", func() registry.Frontend { return frontend{} })
}

// frontend hosts a match in a desktop window.
type frontend struct{}

func (frontend) ID() string         { return "window" }
func (frontend) Title() string      { return "Desktop window (Ebiten)" }
func (frontend) OwnsTerminal() bool { return false }

func (frontend) Run(env registry.Env) error {
	return Run(env.Game, env.Runtime, env.Logger)
}
