package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks every field range and returns all violations at once.
func (c Config) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must be >= 0, got %v", name, v))
		}
	}

	// Arena
	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("arena.surface_width", c.Arena.SurfaceWidth)
	positive("arena.surface_height", c.Arena.SurfaceHeight)
	positive("arena.tick_rate", float64(c.Arena.TickRate))
	if c.Arena.Width > c.Arena.SurfaceWidth || c.Arena.Height > c.Arena.SurfaceHeight {
		errs = append(errs, fmt.Errorf("arena %vx%v does not fit surface %vx%v",
			c.Arena.Width, c.Arena.Height, c.Arena.SurfaceWidth, c.Arena.SurfaceHeight))
	}

	// Ship and formation
	positive("ship.speed", c.Ship.Speed)
	positive("formation.ranks", float64(c.Formation.Ranks))
	positive("formation.files", float64(c.Formation.Files))
	positive("formation.initial_velocity", c.Formation.InitialVelocity)
	nonNegative("formation.acceleration", c.Formation.Acceleration)
	positive("formation.drop_distance", c.Formation.DropDistance)
	positive("formation.span", c.Formation.Span)
	positive("formation.rank_spacing", c.Formation.RankSpacing)

	// Weapons
	positive("weapons.rocket_velocity", c.Weapons.RocketVelocity)
	positive("weapons.rocket_max_fire_rate", c.Weapons.RocketMaxFireRate)
	nonNegative("weapons.bomb_rate", c.Weapons.BombRate)
	positive("weapons.bomb_min_velocity", c.Weapons.BombMinVelocity)
	if c.Weapons.BombMaxVelocity < c.Weapons.BombMinVelocity {
		errs = append(errs, fmt.Errorf("weapons.bomb_max_velocity (%v) must be >= bomb_min_velocity (%v)",
			c.Weapons.BombMaxVelocity, c.Weapons.BombMinVelocity))
	}

	// Gameplay
	positive("gameplay.lives", float64(c.Gameplay.Lives))
	nonNegative("gameplay.points_per_invader", float64(c.Gameplay.PointsPerInvader))
	nonNegative("gameplay.level_bonus", float64(c.Gameplay.LevelBonus))
	positive("gameplay.level_intro_seconds", c.Gameplay.LevelIntroSeconds)

	// Difficulty
	nonNegative("difficulty.level_multiplier", c.Difficulty.LevelMultiplier)
	positive("difficulty.limit_level_increase", float64(c.Difficulty.LimitLevelIncrease))
	nonNegative("difficulty.velocity_scale", c.Difficulty.VelocityScale)
	nonNegative("difficulty.fire_rate_step", c.Difficulty.FireRateStep)
	nonNegative("difficulty.rank_step", c.Difficulty.RankStep)
	nonNegative("difficulty.file_step", c.Difficulty.FileStep)

	// Audio and input
	positive("audio.sample_rate", float64(c.Audio.SampleRate))
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	nonNegative("input.release_after_ms", float64(c.Input.ReleaseAfterMs))

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
