package zombies

import (
	"github.com/vovakirdan/zombie-run/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	ZombieChar = 'Z'
	StarChar   = '*'
	GroundChar = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, o := range g.scene.Obstacles() {
		switch o.Kind {
		case KindStar:
			dst.DrawRect(o.Box().ToCells(g.cellW, g.cellH), StarChar, core.ColorYellow)
		default:
			dst.DrawRect(o.Box().ToCells(g.cellW, g.cellH), ZombieChar, core.ColorGreen)
		}
	}

	p := g.scene.Player()
	color := core.ColorBrightCyan
	if p.Tinted {
		color = core.ColorBrightRed
	}
	dst.DrawRect(p.Box().ToCells(g.cellW, g.cellH), PlayerChar, color)

	// Ground goes last so bodies resting on it don't bleed into its row.
	ground := g.scene.Platform().Box().ToCells(g.cellW, g.cellH)
	dst.DrawHLine(0, ground.Y, dst.Width(), GroundChar, core.ColorGray)

	// Draw HUD
	dst.DrawText(2, 0, " "+g.scene.ScoreText()+" ")

	if banner := g.scene.Banner(); banner != "" {
		g.drawCenteredMessage(dst, banner, g.scene.ScoreText())
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
