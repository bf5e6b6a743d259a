// Package gfx hosts sprite games in a window (or a browser canvas) with
// Ebitengine. Sprites come from the asset catalog, text from text/v2.
package gfx

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/zombie-run/internal/assets"
	"github.com/vovakirdan/zombie-run/internal/core"
	"github.com/vovakirdan/zombie-run/internal/platform/journal"
	"github.com/vovakirdan/zombie-run/internal/registry"
)

// pixelFontScale shrinks label sizes for Press Start 2P, whose glyphs are
// as wide as they are tall.
const pixelFontScale = 0.5

// Options configures a window session.
type Options struct {
	Width    int // Initial logical width in pixels
	Height   int // Initial logical height in pixels
	Title    string
	TickRate int
	Assets   *assets.Catalog    // Nil uses the built-in images
	Scores   journal.ScoreSaver // Optional; browsers have no score file
	Logger   *log.Logger        // Optional
	Player   string
}

// DefaultOptions returns a 1200x600 window at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Width:    1200,
		Height:   600,
		Title:    "Zombie Run",
		TickRate: 60,
	}
}

// Host implements ebiten.Game on top of a registry.SpriteGame.
type Host struct {
	game    registry.SpriteGame
	journal *journal.Journal
	images  map[string]*ebiten.Image
	source  *text.GoTextFaceSource
	width   int
	height  int
}

// NewHost resets the game at the configured size and uploads every asset.
func NewHost(game registry.SpriteGame, opts Options) (*Host, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("gfx: invalid window size %dx%d", opts.Width, opts.Height)
	}
	catalog := opts.Assets
	if catalog == nil {
		catalog = assets.Default()
	}

	h := &Host{
		game:    game,
		journal: journal.New(game.ID(), opts.Player, opts.Scores, opts.Logger),
		images:  make(map[string]*ebiten.Image),
		width:   opts.Width,
		height:  opts.Height,
	}

	for _, name := range catalog.Names() {
		img, err := catalog.Get(name)
		if err != nil {
			return nil, err
		}
		h.images[name] = ebiten.NewImageFromImage(img)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		h.journal.Logger().Warn("pixel font unavailable, using basic font", "error", err)
	} else {
		h.source = src
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width,
		ScreenH:  opts.Height,
		TickRate: opts.TickRate,
		CellW:    1,
		CellH:    1,
	})
	h.journal.Logger().Info("game started", "game", game.ID(), "width", opts.Width, "height", opts.Height)

	return h, nil
}

// Update advances the game by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.journal.Logger().Info("game quit", "game", h.game.ID(), "score", h.game.State().Score)
		return ebiten.Termination
	}

	frame := readInput()
	result := h.game.Step(frame)
	h.journal.Record(result.Events)
	return nil
}

// readInput samples the keyboard: directions as levels, jump as an edge.
func readInput() core.InputFrame {
	frame := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		frame.Set(core.ActionJump)
	}
	return frame
}

// Draw paints sprites back to front, then the labels.
func (h *Host) Draw(screen *ebiten.Image) {
	for _, s := range h.game.Drawables() {
		img, ok := h.images[s.Asset]
		if !ok {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Box.W/float64(b.Dx()), s.Box.H/float64(b.Dy()))
		op.GeoM.Translate(s.Box.X, s.Box.Y)
		if s.Tinted {
			op.ColorScale.Scale(1, 0, 0, 1)
		}
		screen.DrawImage(img, op)
	}

	for _, l := range h.game.Labels() {
		h.drawLabel(screen, l)
	}
}

func (h *Host) drawLabel(screen *ebiten.Image, l core.Label) {
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(color.White)

	if h.source != nil {
		size := l.Size * pixelFontScale
		op.GeoM.Translate(l.X, l.Y)
		op.LineSpacing = size
		text.Draw(screen, l.Text, &text.GoTextFace{Source: h.source, Size: size}, op)
		return
	}

	// basicfont is a fixed 13px face; scale it to the requested size.
	scale := l.Size * pixelFontScale / 13
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(l.X, l.Y)
	text.Draw(screen, l.Text, text.NewGoXFace(basicfont.Face7x13), op)
}

// Layout follows the window size; a change resizes the game in place.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != h.width || outsideHeight != h.height) {
		h.width, h.height = outsideWidth, outsideHeight
		h.game.Resize(outsideWidth, outsideHeight)
		h.journal.Logger().Debug("resized", "width", outsideWidth, "height", outsideHeight)
	}
	return h.width, h.height
}

// Run opens a resizable window and blocks until it is closed.
func Run(game registry.SpriteGame, opts Options) error {
	h, err := NewHost(game, opts)
	if err != nil {
		return err
	}

	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gfx: %w", err)
	}
	return nil
}
