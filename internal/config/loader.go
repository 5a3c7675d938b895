package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads the invaders configuration and validates it.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files are decoded over DefaultConfig, so a file only needs the keys it changes.
// A file that exists but cannot be parsed or fails validation is an error.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		return loadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			return loadFile(userCfgPath)
		}
	}

	// Try local configs directory
	if _, err := os.Stat(filepath.Join("configs", "invaders.yaml")); err == nil {
		return loadFile(filepath.Join("configs", "invaders.yaml"))
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultInvadersYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads, parses and validates a single config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", filename)
}

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset converts a preset name to a Preset.
// An empty name selects PresetNormal.
func ParsePreset(name string) (Preset, error) {
	switch Preset(strings.ToLower(strings.TrimSpace(name))) {
	case "", PresetNormal:
		return PresetNormal, nil
	case PresetEasy:
		return PresetEasy, nil
	case PresetHard:
		return PresetHard, nil
	case PresetFixed:
		return PresetFixed, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Gameplay.Lives = 5
		cfg.Difficulty.LevelMultiplier = 0.1
		cfg.Weapons.BombRate /= 2
	case PresetHard:
		cfg.Gameplay.Lives = 2
		cfg.Difficulty.LevelMultiplier = 0.3
		cfg.Weapons.BombRate *= 2
		cfg.Formation.Acceleration += 2
	case PresetFixed:
		// Every level plays like level one
		p := cfg.ForLevel(1)
		cfg.Formation.InitialVelocity = p.InvaderVelocity
		cfg.Formation.Ranks = p.Ranks
		cfg.Formation.Files = p.Files
		cfg.Weapons.BombRate = p.BombRate
		cfg.Weapons.BombMinVelocity = p.BombMinVelocity
		cfg.Weapons.BombMaxVelocity = p.BombMaxVelocity
		cfg.Weapons.RocketMaxFireRate = p.RocketMaxFireRate
		cfg.Difficulty.LevelMultiplier = 0
		cfg.Difficulty.FireRateStep = 0
		cfg.Difficulty.RankStep = 0
		cfg.Difficulty.FileStep = 0
	}
}
