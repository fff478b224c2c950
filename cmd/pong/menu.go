package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play in the terminal",
	Long: `Opens a difficulty picker in the terminal and starts a match with
the chosen preset.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Start
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	res, err := tui.RunMenu(runtimeConfig())
	if err != nil {
		return err
	}
	if res.Quit {
		return nil
	}

	flagDifficulty = string(res.Preset)
	return playMatch(defaultFrontend, res.Config)
}
