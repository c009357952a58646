// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextWidth measures the rendered width of s in pixels.
func TextWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}

// DrawTextWithShadow draws s at the baseline point (x, y) with a hard
// pixel-style shadow behind it.
func DrawTextWithShadow(screen *ebiten.Image, s string, face font.Face, x, y int, clr, shadowClr color.Color, offsetX, offsetY int) {
	text.Draw(screen, s, face, x+offsetX, y+offsetY, shadowClr)
	text.Draw(screen, s, face, x, y, clr)
}

// DrawCenteredText draws s horizontally centered on centerX with a 2px
// shadow, the default for titles and labels.
func DrawCenteredText(screen *ebiten.Image, s string, face font.Face, centerX, y int, clr color.Color, shadowClr color.Color) {
	x := centerX - TextWidth(face, s)/2
	DrawTextWithShadow(screen, s, face, x, y, clr, shadowClr, 2, 2)
}
