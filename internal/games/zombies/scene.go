package zombies

import (
	"fmt"

	"github.com/vovakirdan/zombie-run/internal/arcade"
	"github.com/vovakirdan/zombie-run/internal/config"
	"github.com/vovakirdan/zombie-run/internal/core"
)

// TimerRestart identifies the delayed restart scheduled on game over.
const TimerRestart arcade.TimerID = 1

// Banner text shown while the game is over.
const gameOverText = "Game Over"

// Phase is the scene's play state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Key is a keyboard key the scene reacts to on press.
type Key int

const (
	KeyUp Key = iota
)

// Scheduler provides the simulated time and one-shot timers.
// *arcade.Clock satisfies it.
type Scheduler interface {
	Now() float64
	After(delayMs float64, id arcade.TimerID, fn arcade.TimerFunc)
}

// Scene is the game loop controller. A host calls OnStart once, then for
// every frame feeds key presses, held directions, a physics step and
// OnFrame with the frame timestamp.
type Scene struct {
	cfg        config.ZombiesConfig
	difficulty *config.DifficultyManager
	clock      Scheduler
	world      *arcade.World

	width  float64
	height float64

	player    *Entity
	platform  *Entity
	obstacles *arcade.Group

	phase     Phase
	score     int // Zombies survived
	stars     int // Stars spawned this round
	nextSpawn float64
	frames    int

	holdLeft  bool
	holdRight bool

	scoreText string
	banner    string
	events    []core.Event
}

// NewScene creates a scene for a viewport of the given size in world units.
// Nothing exists until OnStart.
func NewScene(cfg config.ZombiesConfig, clock Scheduler, width, height float64) *Scene {
	return &Scene{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		clock:      clock,
		world:      arcade.NewWorld(width, height),
		width:      width,
		height:     height,
	}
}

// OnStart builds the round from scratch: platform, player, obstacle group,
// colliders, counters and the first zombie. It is also the restart path.
func (s *Scene) OnStart() {
	s.world.Reset()
	s.world.SetBounds(s.width, s.height)

	ph := s.cfg.Platform.Height
	s.platform = newEntity(KindPlatform, s.world.AddStatic(core.NewBox(0, s.height-ph, s.width, ph)))

	p := s.cfg.Player
	body := s.world.AddDynamic(core.CenteredBox(p.X, s.height-p.BottomOffset, p.Width, p.Height))
	body.GravityY = s.cfg.Physics.PlayerGravity
	body.CollideWorldBounds = true
	s.player = newEntity(KindPlayer, body)

	s.obstacles = s.world.NewGroup()

	s.world.Collider(s.player.body, s.obstacles, s.collide)
	s.world.Collider(s.player.body, s.platform.body, nil)
	s.world.Collider(s.obstacles, s.platform.body, nil)

	s.phase = PhasePlaying
	s.score = 0
	s.stars = 0
	s.frames = 0
	s.holdLeft, s.holdRight = false, false
	s.banner = ""
	s.refreshScoreText()

	s.spawnZombie()
	s.nextSpawn = s.clock.Now() + s.spawnDelay()
}

// OnFrame runs the per-frame contract for the given timestamp in ms.
func (s *Scene) OnFrame(timestamp float64) {
	if s.phase != PhasePlaying {
		return
	}
	s.frames++

	if timestamp > s.nextSpawn {
		s.spawnZombie()
		s.nextSpawn = timestamp + s.spawnDelay()
	}

	for _, b := range s.obstacles.Bodies() {
		if b.Right() >= 0 {
			continue
		}
		e := entityOf(b)
		s.world.Destroy(b)
		if e != nil && e.Kind == KindZombie {
			s.score++
			s.refreshScoreText()
			s.emit(core.EventScored, timestamp)
		}
	}

	switch {
	case s.holdLeft:
		s.player.body.VX = -s.cfg.Physics.RunSpeed
	case s.holdRight:
		s.player.body.VX = s.cfg.Physics.RunSpeed
	default:
		s.player.body.VX = 0
	}

	// Loop so a score that jumps past a multiple still gets its star.
	if every := s.cfg.Spawn.StarEvery; every > 0 {
		for s.score/every > s.stars {
			s.spawnStar()
			s.stars++
			s.refreshScoreText()
			s.emit(core.EventBonus, timestamp)
		}
	}
}

// OnKeyDown handles key press edges. Jumping needs the player grounded.
func (s *Scene) OnKeyDown(k Key) {
	if k != KeyUp || s.phase != PhasePlaying {
		return
	}
	if s.player.Grounded() {
		s.player.body.VY = s.cfg.Physics.JumpImpulse
	}
}

// SetHeld records which horizontal directions are held. Left wins if both are.
func (s *Scene) SetHeld(left, right bool) {
	s.holdLeft = left
	s.holdRight = right
}

// StepPhysics advances the physics world by dt seconds. Collision callbacks
// run from inside this call.
func (s *Scene) StepPhysics(dt float64) {
	s.world.Step(dt)
}

// OnCollision handles an overlapping entity pair. Only player against
// obstacle matters; once the game is over further contacts are ignored.
func (s *Scene) OnCollision(a, b *Entity) {
	if s.phase != PhasePlaying || a == nil || b == nil {
		return
	}
	if a.Kind == KindPlayer && b.Kind.IsObstacle() || b.Kind == KindPlayer && a.Kind.IsObstacle() {
		s.gameOver()
	}
}

// OnTimerFired handles scheduled callbacks.
func (s *Scene) OnTimerFired(id arcade.TimerID) {
	if id != TimerRestart || s.phase != PhaseGameOver {
		return
	}
	s.OnStart()
	s.emit(core.EventRestarted, s.clock.Now())
}

// OnResize changes the viewport. Existing entities stay where they are;
// later spawns use the new edges.
func (s *Scene) OnResize(width, height float64) {
	s.width = width
	s.height = height
	s.world.SetBounds(width, height)
}

func (s *Scene) collide(a, b *arcade.Body) {
	s.OnCollision(entityOf(a), entityOf(b))
}

func (s *Scene) gameOver() {
	s.world.Pause()
	s.player.Tinted = true
	s.banner = gameOverText
	s.phase = PhaseGameOver
	s.emit(core.EventGameOver, s.clock.Now())
	s.clock.After(s.cfg.Timing.RestartDelayMs, TimerRestart, s.OnTimerFired)
}

func (s *Scene) spawnZombie() {
	s.spawnObstacle(KindZombie, s.cfg.Zombie)
}

func (s *Scene) spawnStar() {
	s.spawnObstacle(KindStar, s.cfg.Star)
}

func (s *Scene) spawnObstacle(kind Kind, sc config.SpriteConfig) {
	body := s.world.AddDynamic(core.CenteredBox(s.width, s.height-sc.BottomOffset, sc.Width, sc.Height))
	body.VX = -s.difficulty.Speed(s.cfg.Physics.ObstacleSpeed, s.score, s.frames)
	newEntity(kind, body)
	s.obstacles.Add(body)
}

func (s *Scene) spawnDelay() float64 {
	return s.difficulty.SpawnDelay(s.cfg.Spawn.DelayMs, s.score, s.frames)
}

func (s *Scene) refreshScoreText() {
	s.scoreText = fmt.Sprintf("Zombies Survived: %d Stars: %d", s.score, s.stars)
}

func (s *Scene) emit(kind core.EventKind, at float64) {
	s.events = append(s.events, core.Event{Kind: kind, TimeMs: at, State: s.GameState()})
}

// TakeEvents returns and clears the events recorded since the last call.
func (s *Scene) TakeEvents() []core.Event {
	events := s.events
	s.events = nil
	return events
}

// GameState summarizes the scene for hosts.
func (s *Scene) GameState() core.GameState {
	return core.GameState{
		Score:    s.score,
		Bonus:    s.stars,
		GameOver: s.phase == PhaseGameOver,
	}
}

// Phase returns the current play state.
func (s *Scene) Phase() Phase {
	return s.phase
}

// Score returns the survivor score.
func (s *Scene) Score() int {
	return s.score
}

// Stars returns the number of stars spawned this round.
func (s *Scene) Stars() int {
	return s.stars
}

// NextSpawn returns the timestamp after which the next zombie appears.
func (s *Scene) NextSpawn() float64 {
	return s.nextSpawn
}

// Player returns the player entity.
func (s *Scene) Player() *Entity {
	return s.player
}

// Platform returns the ground entity.
func (s *Scene) Platform() *Entity {
	return s.platform
}

// Obstacles returns the live obstacles in spawn order.
func (s *Scene) Obstacles() []*Entity {
	bodies := s.obstacles.Bodies()
	out := make([]*Entity, 0, len(bodies))
	for _, b := range bodies {
		if e := entityOf(b); e != nil {
			out = append(out, e)
		}
	}
	return out
}

// ScoreText returns the HUD line.
func (s *Scene) ScoreText() string {
	return s.scoreText
}

// Banner returns the centered message, empty while playing.
func (s *Scene) Banner() string {
	return s.banner
}

// PhysicsPaused reports whether the world is frozen.
func (s *Scene) PhysicsPaused() bool {
	return s.world.Paused()
}

// Size returns the viewport size in world units.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}
