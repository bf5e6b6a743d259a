package zombies

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/zombie-run/internal/assets"
	"github.com/vovakirdan/zombie-run/internal/config"
	"github.com/vovakirdan/zombie-run/internal/core"
	"github.com/vovakirdan/zombie-run/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultZombiesConfig())
	g.Reset(testRuntime())
	return g
}

func runUntilGameOver(t *testing.T, g *Game) []core.Event {
	t.Helper()
	var events []core.Event
	for i := 0; i < 2000; i++ {
		res := g.Step(core.NewInputFrame())
		events = append(events, res.Events...)
		if res.State.GameOver {
			return events
		}
	}
	t.Fatal("game never ended without input")
	return nil
}

func TestGame_Registered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.Title() != "Zombie Run" {
		t.Errorf("Title() = %q", g.Title())
	}
	if _, ok := g.(registry.SpriteGame); !ok {
		t.Error("zombies should provide sprites")
	}
}

func TestGame_WorldSizeFromCells(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Scene().Size()
	if w != 80*16 || h != 24*32 {
		t.Errorf("world size = %vx%v, want 1280x768", w, h)
	}

	rt := testRuntime()
	rt.ScreenW, rt.ScreenH, rt.CellW, rt.CellH = 800, 600, 1, 1
	g.Reset(rt)
	w, h = g.Scene().Size()
	if w != 800 || h != 600 {
		t.Errorf("pixel world size = %vx%v, want 800x600", w, h)
	}
}

func TestGame_GameOverAndRestart(t *testing.T) {
	for _, rate := range []int{30, 50, 60, 144} {
		t.Run(fmt.Sprintf("%dtps", rate), func(t *testing.T) {
			g := NewWithConfig(config.DefaultZombiesConfig())
			rt := testRuntime()
			rt.TickRate = rate
			g.Reset(rt)

			events := runUntilGameOver(t, g)
			last := events[len(events)-1]
			if last.Kind != core.EventGameOver {
				t.Fatalf("last event = %v, want game_over", last.Kind)
			}

			// Restart fires exactly 2000 ms of steps after the collision.
			ticks := 2 * rate
			for i := 1; i < ticks; i++ {
				if res := g.Step(core.NewInputFrame()); !res.State.GameOver {
					t.Fatalf("restarted after %d ticks, want %d", i, ticks)
				}
			}
			res := g.Step(core.NewInputFrame())
			if res.State.GameOver {
				t.Fatalf("no restart after %d ticks", ticks)
			}
			if res.State.Score != 0 || res.State.Bonus != 0 {
				t.Errorf("state after restart = %+v", res.State)
			}
			found := false
			for _, e := range res.Events {
				if e.Kind == core.EventRestarted {
					found = true
				}
			}
			if !found {
				t.Error("missing restarted event")
			}
		})
	}
}

func TestGame_JumpClearsZombies(t *testing.T) {
	g := newTestGame(t)

	// Jump whenever a zombie gets close.
	for i := 0; i < 50*30; i++ {
		in := core.NewInputFrame()
		px := g.Scene().Player().Box().Right()
		for _, o := range g.Scene().Obstacles() {
			if o.Kind == KindZombie && o.Box().X-px < 120 && o.Box().X > px {
				in.Set(core.ActionJump)
			}
		}
		if res := g.Step(in); res.State.GameOver {
			t.Fatalf("caught by a zombie at tick %d with score %d", i, res.State.Score)
		}
	}
	if g.State().Score < 10 {
		t.Errorf("Score() = %d after 30s of jumping, want at least 10", g.State().Score)
	}
	if g.State().Bonus < 1 {
		t.Errorf("no star spawned at score %d", g.State().Score)
	}
}

func TestGame_ScoreAndStarsMonotonic(t *testing.T) {
	g := newTestGame(t)
	rng := rand.New(rand.NewSource(42))

	prev := g.State()
	for i := 0; i < 50*60; i++ {
		in := core.NewInputFrame()
		if rng.Intn(10) == 0 {
			in.Set(core.ActionJump)
		}
		switch rng.Intn(3) {
		case 0:
			in.Set(core.ActionLeft)
		case 1:
			in.Set(core.ActionRight)
		}

		res := g.Step(in)
		restarted := false
		for _, e := range res.Events {
			if e.Kind == core.EventRestarted {
				restarted = true
			}
		}
		st := res.State
		if !restarted && (st.Score < prev.Score || st.Bonus < prev.Bonus) {
			t.Fatalf("tick %d: state went from %+v to %+v", i, prev, st)
		}
		if st.Bonus > st.Score/10 {
			t.Fatalf("tick %d: %d stars for score %d", i, st.Bonus, st.Score)
		}
		prev = st
	}
}

func TestGame_ResizeKeepsRound(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	player := g.Scene().Player()

	g.Resize(100, 30)
	if g.Scene().Player() != player {
		t.Error("resize restarted the round")
	}
	w, h := g.Scene().Size()
	if w != 100*16 || h != 30*32 {
		t.Errorf("world size = %vx%v after resize", w, h)
	}
}

func TestGame_Drawables(t *testing.T) {
	g := newTestGame(t)
	sprites := g.Drawables()
	if len(sprites) != 3 {
		t.Fatalf("len(Drawables()) = %d, want background, zombie, player", len(sprites))
	}
	if sprites[0].Asset != assets.Background {
		t.Errorf("first sprite = %q, want background", sprites[0].Asset)
	}
	if sprites[1].Asset != assets.Zombie {
		t.Errorf("second sprite = %q, want zombie", sprites[1].Asset)
	}
	if last := sprites[len(sprites)-1]; last.Asset != assets.Player || last.Tinted {
		t.Errorf("last sprite = %+v, want untinted player", last)
	}

	runUntilGameOver(t, g)
	sprites = g.Drawables()
	if !sprites[len(sprites)-1].Tinted {
		t.Error("player sprite should be tinted after game over")
	}
}

func TestGame_Labels(t *testing.T) {
	g := newTestGame(t)
	labels := g.Labels()
	if len(labels) != 1 {
		t.Fatalf("len(Labels()) = %d, want 1", len(labels))
	}
	if labels[0].X != 16 || labels[0].Y != 16 || labels[0].Size != 32 {
		t.Errorf("score label = %+v", labels[0])
	}

	runUntilGameOver(t, g)
	labels = g.Labels()
	if len(labels) != 2 || labels[1].Text != "Game Over" {
		t.Fatalf("labels = %+v, want score and banner", labels)
	}
	w, h := g.Scene().Size()
	if labels[1].X != w/2-100 || labels[1].Y != h/2-50 || labels[1].Size != 48 {
		t.Errorf("banner label = %+v", labels[1])
	}
}

func TestGame_Render(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Zombies Survived: 0 Stars: 0") {
		t.Error("HUD missing from render")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("player missing from render")
	}
	zr := g.Scene().Obstacles()[0].Box().ToCells(16, 32)
	if c := screen.GetCell(zr.X, zr.Y); c.Rune != ZombieChar || c.Color != core.ColorGreen {
		t.Errorf("zombie cell = %+v, want green %q", c, ZombieChar)
	}

	ground := g.Scene().Platform().Box().ToCells(16, 32)
	if !strings.ContainsRune(screen.Row(ground.Y), GroundChar) {
		t.Errorf("row %d should hold the ground", ground.Y)
	}

	runUntilGameOver(t, g)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("banner missing after game over")
	}

	pr := g.Scene().Player().Box().ToCells(16, 32)
	if c := screen.GetCell(pr.X, pr.Y); c.Rune != PlayerChar || c.Color != core.ColorBrightRed {
		t.Errorf("tinted player cell = %+v, want bright red %q", c, PlayerChar)
	}
}
