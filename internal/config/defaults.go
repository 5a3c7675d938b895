package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultConfig returns the default invaders configuration.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			Width:         400,
			Height:        300,
			SurfaceWidth:  440,
			SurfaceHeight: 400,
			TickRate:      50,
		},
		Ship: ShipConfig{
			Speed: 120,
		},
		Formation: FormationConfig{
			Ranks:           5,
			Files:           10,
			InitialVelocity: 25,
			Acceleration:    0,
			DropDistance:    20,
			Span:            200,
			RankSpacing:     20,
		},
		Weapons: WeaponsConfig{
			RocketVelocity:    120,
			RocketMaxFireRate: 2,
			BombRate:          0.05,
			BombMinVelocity:   50,
			BombMaxVelocity:   50,
		},
		Gameplay: GameplayConfig{
			Lives:             3,
			PointsPerInvader:  5,
			LevelBonus:        50,
			LevelIntroSeconds: 3,
		},
		Difficulty: DifficultyConfig{
			LevelMultiplier:    0.2,
			LimitLevelIncrease: 25,
			VelocityScale:      1.5,
			FireRateStep:       0.4,
			RankStep:           0.1,
			FileStep:           0.2,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
			Sounds: map[string]string{
				"shoot":     "synth:shoot",
				"bang":      "synth:bang",
				"explosion": "synth:explosion",
			},
		},
		Input: InputConfig{
			ReleaseAfterMs: 150,
		},
	}
}
