// internal/render/renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Karyazilim/6cPastaSavasi/internal/app"
	"github.com/Karyazilim/6cPastaSavasi/internal/assets"
	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/ui"
)

// Renderer draws the arena from the combat loop's per-tick snapshots:
// both characters with their facing indicators, the live projectiles and
// the health bars.
type Renderer struct {
	cfg   config.Config
	fonts *assets.Fonts

	playerBar *ui.HealthBar
	aiBar     *ui.HealthBar
}

func NewRenderer(cfg config.Config, fonts *assets.Fonts) *Renderer {
	return &Renderer{
		cfg:       cfg,
		fonts:     fonts,
		playerBar: ui.NewHealthBar(20, 20, config.HealthBarWidth, config.HealthBarHeight, config.PlayerMaxHealth),
		aiBar:     ui.NewHealthBar(cfg.ScreenWidth-220, 20, config.HealthBarWidth, config.HealthBarHeight, config.PlayerMaxHealth),
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, g *app.Game) {
	screen.Fill(config.BackgroundColor)

	r.drawCharacter(screen, g.Player, config.Blue)
	r.drawCharacter(screen, &g.AI.Character, config.Red)

	for _, p := range g.Projectiles {
		r.drawProjectile(screen, p)
	}

	r.playerBar.SetHealth(g.Player.Health)
	r.playerBar.Draw(screen)
	r.aiBar.SetHealth(g.AI.Health)
	r.aiBar.Draw(screen)

	ui.DrawTextWithShadow(screen, "OYUNCU", r.fonts.Small, 20, 60, config.White, config.Black, 2, 2)
	ui.DrawTextWithShadow(screen, "RAKIP", r.fonts.Small, r.cfg.ScreenWidth-220, 60, config.White, config.Black, 2, 2)
}

func (r *Renderer) drawCharacter(screen *ebiten.Image, c *component.Character, clr color.RGBA) {
	box := c.Box()
	x, y := float32(box.Min.X), float32(box.Min.Y)
	w, h := float32(box.Dx()), float32(box.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
	vector.StrokeRect(screen, x, y, w, h, 2, config.Black, false)

	// Facing indicator: a short line out of the center along the dominant
	// throw axis.
	cx, cy := c.Center()
	ex := float32(cx) + float32(c.Facing.X*config.FacingIndicator)
	ey := float32(cy) + float32(c.Facing.Y*config.FacingIndicator)
	vector.StrokeLine(screen, float32(cx), float32(cy), ex, ey, 3, config.White, false)
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	cx, cy := p.Center()
	radius := float32(p.Width / 2)

	clr := config.Red
	if p.Owner == component.KindPlayer {
		clr = config.Orange
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius, clr, false)
	vector.StrokeCircle(screen, float32(cx), float32(cy), radius, 2, config.Black, false)
}

// DrawOverlay dims the whole screen, used under the pause and game-over
// chrome.
func DrawOverlay(screen *ebiten.Image, alpha uint8) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, alpha}, false)
}
