package config

import (
	_ "embed"
)

//go:embed defaults/firebreak.yaml
var defaultFirebreakYAML []byte

// DefaultFirebreakConfig returns the hardcoded configuration used when no
// YAML can be read.
func DefaultFirebreakConfig() FirebreakConfig {
	return FirebreakConfig{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
		},
		History: HistoryConfig{
			Limit: 0,
		},
		Animation: AnimationConfig{
			FrameTicks: 1,
		},
		Rules: RulesConfig{
			EndWhenContained: true,
		},
		TickRate: 30,
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultFirebreakYAML
}
