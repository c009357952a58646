// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/ui"
)

const (
	menuButtonWidth   = 200
	menuButtonHeight  = 60
	menuButtonSpacing = 20
)

// MenuState is the title screen.
type MenuState struct {
	ctx     *Context
	buttons []*ui.PixelButton
}

func NewMenuState(ctx *Context) *MenuState {
	m := &MenuState{ctx: ctx}

	centerX := ctx.Config.ScreenWidth/2 - menuButtonWidth/2
	startY := ctx.Config.ScreenHeight/2 + 100
	step := menuButtonHeight + menuButtonSpacing

	m.buttons = []*ui.PixelButton{
		ui.NewPixelButton(centerX, startY, menuButtonWidth, menuButtonHeight,
			"OYNA", config.Orange, ctx.Fonts.Medium, func() {
				ctx.Machine.SetState(NewGameState(ctx))
			}),
		ui.NewPixelButton(centerX, startY+step, menuButtonWidth, menuButtonHeight,
			"AYARLAR", config.Blue, ctx.Fonts.Medium, func() {
				ctx.Machine.SetState(NewSettingsState(ctx))
			}),
		ui.NewPixelButton(centerX, startY+2*step, menuButtonWidth, menuButtonHeight,
			"ÇIKIŞ", config.Red, ctx.Fonts.Medium, func() {
				ctx.RequestQuit()
			}),
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	mx, my := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for _, b := range m.buttons {
		if b.Update(mx, my, pressed, released) {
			return
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	centerX := m.ctx.Config.ScreenWidth / 2
	ui.DrawCenteredText(screen, "6C Sınıfı", m.ctx.Fonts.Large, centerX, 198, config.White, config.Black)
	ui.DrawCenteredText(screen, "Pasta Savaşı", m.ctx.Fonts.Medium, centerX, 252, config.Gold, config.Black)

	for _, b := range m.buttons {
		b.Draw(screen)
	}

	ui.DrawTextWithShadow(screen, "v1.0.0", m.ctx.Fonts.Small,
		m.ctx.Config.ScreenWidth-80, m.ctx.Config.ScreenHeight-20,
		config.White, config.Black, 1, 1)
}

func (m *MenuState) Exit() {}
