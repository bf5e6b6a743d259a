// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// ZombiesConfig contains all configuration for the Zombie Run game.
// Positions are in world units (pixels for sprite hosts).
type ZombiesConfig struct {
	Physics    ZombiesPhysics   `yaml:"physics"`
	Spawn      ZombiesSpawn     `yaml:"spawn"`
	Player     SpriteConfig     `yaml:"player"`
	Zombie     SpriteConfig     `yaml:"zombie"`
	Star       SpriteConfig     `yaml:"star"`
	Platform   PlatformConfig   `yaml:"platform"`
	Timing     ZombiesTiming    `yaml:"timing"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ZombiesPhysics defines physics parameters. Velocities are units per second.
type ZombiesPhysics struct {
	PlayerGravity float64 `yaml:"player_gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	RunSpeed      float64 `yaml:"run_speed"`
	ObstacleSpeed float64 `yaml:"obstacle_speed"`
}

// ZombiesSpawn defines obstacle spawning.
type ZombiesSpawn struct {
	DelayMs   float64 `yaml:"delay_ms"`   // Time between zombie spawns
	StarEvery int     `yaml:"star_every"` // Survivor points per star
}

// SpriteConfig places an entity relative to the viewport.
// X is the center x for the player; obstacles always spawn at the right edge.
// BottomOffset is the distance from the viewport bottom to the entity center.
type SpriteConfig struct {
	X            float64 `yaml:"x"`
	BottomOffset float64 `yaml:"bottom_offset"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// PlatformConfig defines the invisible ground surface.
type PlatformConfig struct {
	Height float64 `yaml:"height"`
}

// ZombiesTiming defines the game-over phase.
type ZombiesTiming struct {
	RestartDelayMs float64 `yaml:"restart_delay_ms"`
}

// TerminalConfig controls how the world maps onto terminal cells.
type TerminalConfig struct {
	CellWidth  int `yaml:"cell_width"`  // World units per column
	CellHeight int `yaml:"cell_height"` // World units per row
	// HoldTicks is how long a left/right key press counts as held.
	// Terminals report presses and auto-repeat, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to obstacle speed at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Spawn delay reduction (ms) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
