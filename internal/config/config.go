// Package config provides YAML-based game configuration loading, validation
// and level-scaled difficulty for the invaders game.
package config

// Config contains all configuration for the invaders game.
// It is constructed once per session and treated as immutable.
type Config struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Ship       ShipConfig       `yaml:"ship"`
	Formation  FormationConfig  `yaml:"formation"`
	Weapons    WeaponsConfig    `yaml:"weapons"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
	Input      InputConfig      `yaml:"input"`
}

// ArenaConfig defines the play area and the logical drawing surface around it.
type ArenaConfig struct {
	Width         float64 `yaml:"width"`          // Play-area width
	Height        float64 `yaml:"height"`         // Play-area height
	SurfaceWidth  float64 `yaml:"surface_width"`  // Logical surface width
	SurfaceHeight float64 `yaml:"surface_height"` // Logical surface height
	TickRate      int     `yaml:"tick_rate"`      // Ticks per second
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Speed float64 `yaml:"speed"` // px/s
}

// FormationConfig defines the invader grid and its movement.
type FormationConfig struct {
	Ranks           int     `yaml:"ranks"`
	Files           int     `yaml:"files"`
	InitialVelocity float64 `yaml:"initial_velocity"` // px/s
	Acceleration    float64 `yaml:"acceleration"`     // px/s added per edge hit
	DropDistance    float64 `yaml:"drop_distance"`    // px
	Span            float64 `yaml:"span"`             // Grid width
	RankSpacing     float64 `yaml:"rank_spacing"`     // Vertical pitch between ranks
}

// WeaponsConfig defines rockets and bombs.
type WeaponsConfig struct {
	RocketVelocity    float64 `yaml:"rocket_velocity"`      // px/s
	RocketMaxFireRate float64 `yaml:"rocket_max_fire_rate"` // Rockets per second
	BombRate          float64 `yaml:"bomb_rate"`            // Bombs per second per front invader
	BombMinVelocity   float64 `yaml:"bomb_min_velocity"`    // px/s
	BombMaxVelocity   float64 `yaml:"bomb_max_velocity"`    // px/s
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives             int     `yaml:"lives"`
	PointsPerInvader  int     `yaml:"points_per_invader"`
	LevelBonus        int     `yaml:"level_bonus"`         // Bonus = level * LevelBonus
	LevelIntroSeconds float64 `yaml:"level_intro_seconds"` // Countdown before play
}

// DifficultyConfig defines how parameters grow with the level.
type DifficultyConfig struct {
	LevelMultiplier    float64 `yaml:"level_multiplier"`
	LimitLevelIncrease int     `yaml:"limit_level_increase"` // Level at which count/fire-rate growth stops
	VelocityScale      float64 `yaml:"velocity_scale"`
	FireRateStep       float64 `yaml:"fire_rate_step"`
	RankStep           float64 `yaml:"rank_step"`
	FileStep           float64 `yaml:"file_step"`
}

// AudioConfig defines the sound player.
type AudioConfig struct {
	Enabled    bool              `yaml:"enabled"`
	Volume     float64           `yaml:"volume"` // 0.0 to 1.0
	SampleRate int               `yaml:"sample_rate"`
	Sounds     map[string]string `yaml:"sounds"` // Cue name -> "synth:<name>" or path to a .wav file
}

// InputConfig defines platform input handling.
type InputConfig struct {
	ReleaseAfterMs int `yaml:"release_after_ms"` // Terminal key-hold window
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)
