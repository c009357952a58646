// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Karyazilim/6cPastaSavasi/internal/app"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/event"
	"github.com/Karyazilim/6cPastaSavasi/internal/render"
	"github.com/Karyazilim/6cPastaSavasi/internal/ui"
)

// GameState runs a combat round: it polls the player's intent, advances the
// simulation and hands the snapshot to the renderer.
type GameState struct {
	ctx      *Context
	game     *app.Game
	renderer *render.Renderer
}

func NewGameState(ctx *Context) *GameState {
	g := app.NewGame(ctx.GameConfig())

	// Audio rides on the simulation's own events.
	g.EventDispatcher.Subscribe(event.ProjectileThrown, ctx.Sound)
	g.EventDispatcher.Subscribe(event.CharacterDamaged, ctx.Sound)
	g.EventDispatcher.Subscribe(event.RoundEnded, ctx.Sound)

	return &GameState{
		ctx:      ctx,
		game:     g,
		renderer: render.NewRenderer(g.Config, ctx.Fonts),
	}
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.game.TogglePause()
	}

	s.game.Update(deltaTime, s.readInput())

	if s.game.Over() {
		s.ctx.Machine.SetState(NewGameOverState(s.ctx, s))
	}
}

// readInput translates the polled device state into the simulation's
// per-tick intent.
func (s *GameState) readInput() app.Input {
	mx, my := ebiten.CursorPosition()
	return app.Input{
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Throw:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		TargetX: float64(mx),
		TargetY: float64(my),
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game)

	if s.game.Paused() {
		render.DrawOverlay(screen, 180)
		ui.DrawCenteredText(screen, "DURAKLADI - ESC ile devam", s.ctx.Fonts.Medium,
			s.ctx.Config.ScreenWidth/2, s.ctx.Config.ScreenHeight/2, config.White, config.Black)
	}
}

func (s *GameState) Exit() {}
