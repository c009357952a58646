// internal/ui/health_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Karyazilim/6cPastaSavasi/internal/config"
)

// HealthBar renders a character's health as a bordered fill whose color
// shifts green → yellow → red as health drops.
type HealthBar struct {
	X, Y          int
	Width, Height int
	MaxHealth     int

	current int
}

func NewHealthBar(x, y, width, height, maxHealth int) *HealthBar {
	return &HealthBar{
		X: x, Y: y,
		Width: width, Height: height,
		MaxHealth: maxHealth,
		current:   maxHealth,
	}
}

// SetHealth clamps and stores the current health value.
func (h *HealthBar) SetHealth(health int) {
	if health < 0 {
		health = 0
	}
	if health > h.MaxHealth {
		health = h.MaxHealth
	}
	h.current = health
}

func (h *HealthBar) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(h.X), float32(h.Y), float32(h.Width), float32(h.Height), config.Black, false)
	vector.StrokeRect(screen, float32(h.X), float32(h.Y), float32(h.Width), float32(h.Height), 2, config.White, false)

	if h.current <= 0 {
		return
	}

	ratio := float64(h.current) / float64(h.MaxHealth)
	fillWidth := float32(float64(h.Width-4) * ratio)

	var fill color.RGBA
	switch {
	case ratio > 0.6:
		fill = color.RGBA{0, 255, 0, 255}
	case ratio > 0.3:
		fill = color.RGBA{255, 255, 0, 255}
	default:
		fill = color.RGBA{255, 0, 0, 255}
	}
	vector.DrawFilledRect(screen, float32(h.X+2), float32(h.Y+2), fillWidth, float32(h.Height-4), fill, false)
}
