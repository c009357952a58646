// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Karyazilim/6cPastaSavasi/internal/app"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/render"
	"github.com/Karyazilim/6cPastaSavasi/internal/ui"
)

// GameOverState shows the winner over the frozen final arena and offers a
// rematch or the way back to the menu.
type GameOverState struct {
	ctx      *Context
	previous *GameState
	buttons  []*ui.PixelButton
}

func NewGameOverState(ctx *Context, previous *GameState) *GameOverState {
	s := &GameOverState{ctx: ctx, previous: previous}

	centerX := ctx.Config.ScreenWidth/2 - menuButtonWidth/2
	startY := ctx.Config.ScreenHeight/2 + 100
	step := menuButtonHeight + menuButtonSpacing

	s.buttons = []*ui.PixelButton{
		ui.NewPixelButton(centerX, startY, menuButtonWidth, menuButtonHeight,
			"YENİDEN OYNA", config.Orange, ctx.Fonts.Medium, func() {
				previous.game.Restart()
				ctx.Machine.SetState(previous)
			}),
		ui.NewPixelButton(centerX, startY+step, menuButtonWidth, menuButtonHeight,
			"MENÜ", config.Blue, ctx.Fonts.Medium, func() {
				ctx.Machine.SetState(NewMenuState(ctx))
			}),
	}
	return s
}

func (s *GameOverState) winnerText() string {
	if s.previous.game.Outcome() == app.OutcomePlayerWon {
		return "OYUNCU KAZANDI!"
	}
	return "AI KAZANDI!"
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Machine.SetState(NewMenuState(s.ctx))
		return
	}

	mx, my := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for _, b := range s.buttons {
		if b.Update(mx, my, pressed, released) {
			return
		}
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	// The final arena stays visible behind the announcement.
	s.previous.Draw(screen)
	render.DrawOverlay(screen, 128)

	ui.DrawCenteredText(screen, s.winnerText(), s.ctx.Fonts.Large,
		s.ctx.Config.ScreenWidth/2, 248, config.Gold, config.Black)

	for _, b := range s.buttons {
		b.Draw(screen)
	}
}

func (s *GameOverState) Exit() {}
