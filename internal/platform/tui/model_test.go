package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/zombie-run/internal/core"
	"github.com/vovakirdan/zombie-run/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames   []core.InputFrame
	resized  [2]int
	resets   int
	pending  []core.Event
	state    core.GameState
	rendered int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "fake")
}
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.state, Events: events}
}

func newTestModel(g *fakeGame, opts Options) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModel_JumpIsEdge(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("stepped %d times, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionJump) {
		t.Error("first tick should carry the jump")
	}
	if g.frames[1].Has(core.ActionJump) {
		t.Error("jump repeated on the next tick")
	}
}

func TestModel_HeldDirection(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{HoldTicks: 2})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg{})
	}

	want := []bool{true, true, false}
	for i, w := range want {
		if got := g.frames[i].Has(core.ActionRight); got != w {
			t.Errorf("tick %d right held = %v, want %v", i, got, w)
		}
	}
}

func TestModel_ResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resized != [2]int{100, 30} {
		t.Errorf("Resize got %v, want [100 30]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resize reset the game (%d resets)", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModel_SavesScoreOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, Options{Store: store, Player: "tester"})

	over := core.GameState{Score: 12, Bonus: 1, GameOver: true}
	g.state = over
	g.pending = []core.Event{{Kind: core.EventGameOver, State: over}}
	m = update(t, m, TickMsg{})
	// Later game-over ticks carry no new event and must not save again.
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Score != 12 || scores[0].Stars != 1 || scores[0].Player != "tester" {
		t.Errorf("saved entry = %+v", scores[0])
	}
}

func TestModel_SkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(g, Options{Store: store})
	g.pending = []core.Event{{Kind: core.EventGameOver, State: core.GameState{GameOver: true}}}
	update(t, m, TickMsg{})

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 0 {
		t.Errorf("saved %d zero-score runs", len(scores))
	}
}

func TestModel_Quit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModel_View(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, Options{})
	if m.View() == "" || g.rendered != 1 {
		t.Error("View should render the game")
	}
}
