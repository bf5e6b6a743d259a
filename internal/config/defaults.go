package config

import (
	_ "embed"
)

//go:embed defaults/zombies.yaml
var defaultZombiesYAML []byte

// DefaultZombiesConfig returns the default Zombie Run configuration.
func DefaultZombiesConfig() ZombiesConfig {
	return ZombiesConfig{
		Physics: ZombiesPhysics{
			PlayerGravity: 800,
			JumpImpulse:   -750,
			RunSpeed:      200,
			ObstacleSpeed: 200,
		},
		Spawn: ZombiesSpawn{
			DelayMs:   2000,
			StarEvery: 10,
		},
		Player: SpriteConfig{
			X:            100,
			BottomOffset: 140,
			Width:        40,
			Height:       80,
		},
		Zombie: SpriteConfig{
			BottomOffset: 140,
			Width:        50,
			Height:       100,
		},
		Star: SpriteConfig{
			BottomOffset: 200,
			Width:        32,
			Height:       32,
		},
		Platform: PlatformConfig{
			Height: 20,
		},
		Timing: ZombiesTiming{
			RestartDelayMs: 2000,
		},
		Terminal: TerminalConfig{
			CellWidth:  16,
			CellHeight: 32,
			HoldTicks:  8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				DelayReduction:  1000,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "zombies":
		return defaultZombiesYAML
	default:
		return nil
	}
}
