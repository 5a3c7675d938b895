package config

import "math"

// LevelParams holds the configuration values after level scaling.
// It is recomputed each time a level starts.
type LevelParams struct {
	Level             int
	InvaderVelocity   float64
	BombRate          float64
	BombMinVelocity   float64
	BombMaxVelocity   float64
	RocketMaxFireRate float64
	Ranks             int
	Files             int
}

// ForLevel computes the level-scaled parameters.
// Velocities and bomb rate grow without bound; rocket fire rate and grid size
// stop growing at difficulty.limit_level_increase. Levels below 1 are treated as 1.
func (c Config) ForLevel(level int) LevelParams {
	if level < 1 {
		level = 1
	}
	d := c.Difficulty
	levelMultiplier := float64(level) * d.LevelMultiplier
	limitLevel := float64(min(level, d.LimitLevelIncrease))

	bombMin := c.Weapons.BombMinVelocity + levelMultiplier*c.Weapons.BombMinVelocity

	return LevelParams{
		Level:             level,
		InvaderVelocity:   c.Formation.InitialVelocity + d.VelocityScale*levelMultiplier*c.Formation.InitialVelocity,
		BombRate:          c.Weapons.BombRate + levelMultiplier*c.Weapons.BombRate,
		BombMinVelocity:   bombMin,
		BombMaxVelocity:   math.Max(c.Weapons.BombMaxVelocity, bombMin),
		RocketMaxFireRate: c.Weapons.RocketMaxFireRate + d.FireRateStep*limitLevel,
		Ranks:             int(float64(c.Formation.Ranks) + d.RankStep*limitLevel),
		Files:             int(float64(c.Formation.Files) + d.FileStep*limitLevel),
	}
}

// FireCooldown returns the minimum time between rockets, in seconds.
func (p LevelParams) FireCooldown() float64 {
	if p.RocketMaxFireRate <= 0 {
		return math.Inf(1)
	}
	return 1 / p.RocketMaxFireRate
}
