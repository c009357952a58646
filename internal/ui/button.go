// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/Karyazilim/6cPastaSavasi/internal/config"
)

// ButtonState tracks the visual press cycle of a button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonPressed
)

// PixelButton is a retro-style button: flat fill, thick black border and a
// hard drop shadow that collapses as the button is pressed.
type PixelButton struct {
	Rect    image.Rectangle
	Text    string
	Color   color.RGBA
	Font    font.Face
	OnClick func()

	state ButtonState
}

func NewPixelButton(x, y, width, height int, label string, clr color.RGBA, face font.Face, onClick func()) *PixelButton {
	return &PixelButton{
		Rect:    image.Rect(x, y, x+width, y+height),
		Text:    label,
		Color:   clr,
		Font:    face,
		OnClick: onClick,
	}
}

// Update advances the press cycle from the polled mouse state and fires
// OnClick on a release inside the button. Returns whether it was clicked.
func (b *PixelButton) Update(mx, my int, justPressed, justReleased bool) bool {
	inside := image.Pt(mx, my).In(b.Rect)

	switch {
	case justPressed && inside:
		b.state = ButtonPressed
	case justReleased && b.state == ButtonPressed:
		if inside {
			b.state = ButtonHover
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
		b.state = ButtonNormal
	case b.state != ButtonPressed:
		if inside {
			b.state = ButtonHover
		} else {
			b.state = ButtonNormal
		}
	}
	return false
}

// Draw renders the button. Hovering nudges it toward its shadow, pressing
// sinks it the whole way.
func (b *PixelButton) Draw(screen *ebiten.Image) {
	offset := 0
	shadow := config.ShadowOffset
	switch b.state {
	case ButtonHover:
		offset, shadow = 2, 2
	case ButtonPressed:
		offset, shadow = 4, 0
	}

	x := float32(b.Rect.Min.X + offset)
	y := float32(b.Rect.Min.Y + offset)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())

	if shadow > 0 {
		vector.DrawFilledRect(screen, float32(b.Rect.Min.X+shadow), float32(b.Rect.Min.Y+shadow), w, h, config.Black, false)
	}
	vector.DrawFilledRect(screen, x, y, w, h, b.Color, false)
	vector.StrokeRect(screen, x, y, w, h, config.ButtonBorder, config.Black, false)

	bounds := b.Rect.Add(image.Pt(offset, offset))
	textX := bounds.Min.X + (bounds.Dx()-TextWidth(b.Font, b.Text))/2
	textY := bounds.Min.Y + bounds.Dy()/2 + textHalfHeight(b.Font)
	DrawTextWithShadow(screen, b.Text, b.Font, textX, textY, config.White, config.Black, 2, 2)
}

// textHalfHeight approximates half the cap height for vertical centering
// against a baseline-anchored draw.
func textHalfHeight(face font.Face) int {
	m := face.Metrics()
	return int(m.Ascent>>6) / 2
}
