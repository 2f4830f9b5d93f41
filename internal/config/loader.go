package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/firebreak/internal/core"
)

// LoadFirebreak loads the game configuration.
// Search order: customPath -> ~/.firebreak/configs/firebreak.yaml -> ./configs/firebreak.yaml -> embedded default
func LoadFirebreak(customPath string) (FirebreakConfig, error) {
	// Missing keys in a partial file keep their default values.
	cfg := DefaultFirebreakConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	if userCfgPath := userConfigPath("firebreak.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalized(), nil
			}
			cfg = DefaultFirebreakConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "firebreak.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalized(), nil
		}
		cfg = DefaultFirebreakConfig()
	}

	if err := yaml.Unmarshal(defaultFirebreakYAML, &cfg); err != nil {
		return DefaultFirebreakConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// normalized replaces out-of-range values with defaults.
func (c FirebreakConfig) normalized() FirebreakConfig {
	def := DefaultFirebreakConfig()
	if c.Board.Width <= 0 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height <= 0 {
		c.Board.Height = def.Board.Height
	}
	if c.History.Limit < 0 {
		c.History.Limit = 0
	}
	if c.Animation.FrameTicks <= 0 {
		c.Animation.FrameTicks = def.Animation.FrameTicks
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// ApplyTo copies the configuration into a runtime config.
func (c FirebreakConfig) ApplyTo(rc *core.RuntimeConfig) {
	rc.BoardW = c.Board.Width
	rc.BoardH = c.Board.Height
	rc.HistoryLimit = c.History.Limit
	rc.FrameTicks = c.Animation.FrameTicks
	rc.EndWhenContained = c.Rules.EndWhenContained
	rc.TickRate = c.TickRate
}

// ApplyFirebreakPreset modifies the config based on a difficulty preset.
// Bigger boards carry more fire fronts; hard also rations undo.
func ApplyFirebreakPreset(cfg *FirebreakConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Width, cfg.Board.Height = 6, 6
		cfg.History.Limit = 0
	case DifficultyNormal:
		cfg.Board.Width, cfg.Board.Height = 8, 8
	case DifficultyHard:
		cfg.Board.Width, cfg.Board.Height = 12, 10
		cfg.History.Limit = 3
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".firebreak", "configs", filename)
}
