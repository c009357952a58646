// internal/state/settings_state.go
package state

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/ui"
)

// volumeSteps are the levels the volume button cycles through.
var volumeSteps = []float64{0.0, 0.25, 0.5, 0.75, 1.0}

// SettingsState lets the user cycle AI difficulty and sound volume. Both
// changes are persisted immediately.
type SettingsState struct {
	ctx     *Context
	buttons []*ui.PixelButton

	difficultyButton *ui.PixelButton
	volumeButton     *ui.PixelButton
}

func NewSettingsState(ctx *Context) *SettingsState {
	s := &SettingsState{ctx: ctx}

	centerX := ctx.Config.ScreenWidth/2 - menuButtonWidth/2
	startY := ctx.Config.ScreenHeight/2 + 100
	step := menuButtonHeight + menuButtonSpacing

	s.difficultyButton = ui.NewPixelButton(centerX, startY-50, menuButtonWidth, menuButtonHeight,
		s.difficultyLabel(), config.Orange, ctx.Fonts.Small, func() {
			ctx.SetDifficulty(ctx.Config.Difficulty.Next())
			ctx.SaveSettings()
			s.difficultyButton.Text = s.difficultyLabel()
		})

	s.volumeButton = ui.NewPixelButton(centerX, startY+menuButtonSpacing, menuButtonWidth, menuButtonHeight,
		s.volumeLabel(), config.Blue, ctx.Fonts.Small, func() {
			s.cycleVolume()
		})

	back := ui.NewPixelButton(centerX, startY+2*step, menuButtonWidth, menuButtonHeight,
		"GERİ", config.Red, ctx.Fonts.Medium, func() {
			ctx.Machine.SetState(NewMenuState(ctx))
		})

	s.buttons = []*ui.PixelButton{s.difficultyButton, s.volumeButton, back}
	return s
}

func (s *SettingsState) difficultyLabel() string {
	return "ZORLUK: " + strings.ToUpper(s.ctx.Config.Difficulty.String())
}

func (s *SettingsState) volumeLabel() string {
	return fmt.Sprintf("SES: %d%%", int(s.ctx.Settings.Volume*100))
}

func (s *SettingsState) cycleVolume() {
	current := 2 // default to the 50% slot when the stored value is off-grid
	for i, v := range volumeSteps {
		if s.ctx.Settings.Volume == v {
			current = i
			break
		}
	}
	s.ctx.Settings.Volume = volumeSteps[(current+1)%len(volumeSteps)]
	s.ctx.Sound.SetVolume(s.ctx.Settings.Volume)
	s.ctx.SaveSettings()
	s.volumeButton.Text = s.volumeLabel()
}

func (s *SettingsState) Enter() {}

func (s *SettingsState) Update(deltaTime float64) {
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

func (s *SettingsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	centerX := s.ctx.Config.ScreenWidth / 2
	ui.DrawCenteredText(screen, "AYARLAR", s.ctx.Fonts.Large, centerX, 198, config.White, config.Black)

	for _, b := range s.buttons {
		b.Draw(screen)
	}
}

func (s *SettingsState) Exit() {}
