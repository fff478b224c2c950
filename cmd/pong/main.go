// pong is a two-paddle ball game against a CPU opponent, playable in the
// terminal or in a desktop window.
//
// Usage:
//
//	pong play [frontend]    - Play a match (frontend: tui, window)
//	pong menu               - Pick a difficulty, then play in the terminal
//	pong list               - List available frontends
//	pong config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game settings from a YAML file
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-pong/internal/platform/tui"
	_ "github.com/vovakirdan/tui-pong/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - beat the CPU paddle to three points",
	Long: `Pong is a two-paddle ball game. You control the right paddle,
the CPU controls the left one. First to three points wins.

Available commands:
  play     - Play a match
  menu     - Pick a difficulty, then play in the terminal
  list     - Show available frontends
  config   - Print the effective configuration

Examples:
  pong play
  pong play window
  pong play --difficulty hard
  pong config --config ./my-pong.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
