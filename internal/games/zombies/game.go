// Package zombies implements Zombie Run, a side-scroller where the player
// jumps over zombies that walk in from the right edge.
package zombies

import (
	"github.com/vovakirdan/zombie-run/internal/arcade"
	"github.com/vovakirdan/zombie-run/internal/assets"
	"github.com/vovakirdan/zombie-run/internal/config"
	"github.com/vovakirdan/zombie-run/internal/core"
	"github.com/vovakirdan/zombie-run/internal/registry"
)

// GameID is the registry and score storage identifier.
const GameID = "zombies"

// HUD placement in world units.
const (
	scoreTextX    = 16
	scoreTextY    = 16
	scoreTextSize = 32
	bannerSize    = 48
	bannerOffsetX = 100
	bannerOffsetY = 50
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names fall back to the config file's own settings.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts Scene to the fixed-tick registry.Game contract.
type Game struct {
	scene   *Scene
	clock   *arcade.Clock
	cfg     config.ZombiesConfig
	runtime core.RuntimeConfig
	cellW   float64
	cellH   float64
}

// New creates a new Zombie Run game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that skips config file loading.
func NewWithConfig(cfg config.ZombiesConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Zombie Run"
}

// Reset builds a fresh scene for the given screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime

	if g.cfg == (config.ZombiesConfig{}) {
		cfg, err := config.LoadZombies(configPath)
		if err != nil {
			cfg = config.DefaultZombiesConfig()
		}
		if difficultyPreset != "" {
			config.ApplyZombiesPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.cellW = float64(runtime.CellW)
	if g.cellW <= 0 {
		g.cellW = float64(core.Max(g.cfg.Terminal.CellWidth, 1))
	}
	g.cellH = float64(runtime.CellH)
	if g.cellH <= 0 {
		g.cellH = float64(core.Max(g.cfg.Terminal.CellHeight, 1))
	}

	g.clock = arcade.NewStepClock(runtime.TickRate)
	w, h := g.worldSize(runtime.ScreenW, runtime.ScreenH)
	g.scene = NewScene(g.cfg, g.clock, w, h)
	g.scene.OnStart()
}

// Step advances the game by one tick: key edges, held keys, timers,
// the frame callback and finally physics.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionJump) {
		g.scene.OnKeyDown(KeyUp)
	}
	g.scene.SetHeld(in.Has(core.ActionLeft), in.Has(core.ActionRight))

	g.clock.Tick()
	g.scene.OnFrame(g.clock.Now())
	g.scene.StepPhysics(g.clock.StepMs() / 1000)

	return core.StepResult{
		State:  g.scene.GameState(),
		Events: g.scene.TakeEvents(),
	}
}

// Resize changes the screen size in cells without restarting the round.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.scene == nil {
		return
	}
	w, h := g.worldSize(screenW, screenH)
	g.scene.OnResize(w, h)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.scene.GameState()
}

// Scene exposes the underlying controller.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Drawables lists sprites back to front in world units.
func (g *Game) Drawables() []core.Sprite {
	w, h := g.scene.Size()
	out := []core.Sprite{{Asset: assets.Background, Box: core.NewBox(0, 0, w, h)}}
	for _, o := range g.scene.Obstacles() {
		name := assets.Zombie
		if o.Kind == KindStar {
			name = assets.Star
		}
		out = append(out, core.Sprite{Asset: name, Box: o.Box(), Tinted: o.Tinted})
	}
	p := g.scene.Player()
	out = append(out, core.Sprite{Asset: assets.Player, Box: p.Box(), Tinted: p.Tinted})
	return out
}

// Labels lists the HUD text in world units.
func (g *Game) Labels() []core.Label {
	out := []core.Label{{Text: g.scene.ScoreText(), X: scoreTextX, Y: scoreTextY, Size: scoreTextSize}}
	if banner := g.scene.Banner(); banner != "" {
		w, h := g.scene.Size()
		out = append(out, core.Label{Text: banner, X: w/2 - bannerOffsetX, Y: h/2 - bannerOffsetY, Size: bannerSize})
	}
	return out
}

func (g *Game) worldSize(screenW, screenH int) (float64, float64) {
	return float64(screenW) * g.cellW, float64(screenH) * g.cellH
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
