package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the game configuration as YAML after applying the config
file search order and the --difficulty preset. The output can be saved
to ~/.pong/pong.yaml and edited.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gc, err := loadGameConfig()
	if err != nil {
		return err
	}

	data, err := config.MarshalPong(gc.Config)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# source: %s\n# difficulty: %s\n", gc.Source, gc.Preset)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// gameConfig is the loaded configuration and where its parts came from.
type gameConfig struct {
	Config config.PongConfig
	Source string
	Preset config.DifficultyPreset
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (gameConfig, error) {
	cfg, source, err := config.LoadPong(flagConfig)
	if err != nil {
		return gameConfig{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return gameConfig{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return gameConfig{}, fmt.Errorf("%s difficulty: %w", preset, err)
	}

	return gameConfig{Config: cfg, Source: source, Preset: preset}, nil
}
