package config

import "fmt"

// maxAIStepRatio caps a scaled AI step relative to the player's step.
const maxAIStepRatio = 0.9

// DifficultyPreset represents a named difficulty level.
// The AI step is the only difficulty knob: presets scale it.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// AIStepMultiplier returns the factor applied to the configured AI step.
func AIStepMultiplier(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.6
	case DifficultyHard:
		return 1.6
	default:
		return 1.0
	}
}

// ApplyPongPreset scales the AI step for a difficulty preset. Normal leaves
// the config untouched. A scaled step stays positive and at most
// maxAIStepRatio of the player's step, and hard never lowers the step.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	mult := AIStepMultiplier(preset)
	if mult == 1 {
		return
	}

	step := min(cfg.AI.Step*mult, cfg.Paddles.PlayerStep*maxAIStepRatio)
	if mult > 1 {
		step = max(step, cfg.AI.Step)
	}
	if step <= 0 {
		return
	}
	cfg.AI.Step = step
}
