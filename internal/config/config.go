// Package config provides YAML-based configuration loading and difficulty
// presets for Firebreak.
package config

// FirebreakConfig contains all configuration for the game.
type FirebreakConfig struct {
	Board     BoardConfig     `yaml:"board"`
	History   HistoryConfig   `yaml:"history"`
	Animation AnimationConfig `yaml:"animation"`
	Rules     RulesConfig     `yaml:"rules"`
	TickRate  int             `yaml:"tick_rate"` // Frames per second
}

// BoardConfig defines the generated board size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HistoryConfig defines undo behaviour.
type HistoryConfig struct {
	Limit int `yaml:"limit"` // 0 = unbounded
}

// AnimationConfig defines tile animation speed.
type AnimationConfig struct {
	FrameTicks int `yaml:"frame_ticks"` // Frames between animation ticks
}

// RulesConfig defines when a game ends.
type RulesConfig struct {
	EndWhenContained bool `yaml:"end_when_contained"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty resolves a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
