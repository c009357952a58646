// internal/assets/fonts.go
package assets

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the three face sizes used throughout the UI.
type Fonts struct {
	Large  font.Face
	Medium font.Face
	Small  font.Face
}

// LoadFonts builds the UI faces from the bundled Go Mono font. On parse
// failure it falls back to the fixed basic face so a font problem never
// stops the game from starting.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return FallbackFonts(), err
	}

	sizes := []float64{48, 32, 16}
	faces := make([]font.Face, len(sizes))
	for i, size := range sizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return FallbackFonts(), err
		}
		faces[i] = face
	}

	return &Fonts{Large: faces[0], Medium: faces[1], Small: faces[2]}, nil
}

// FallbackFonts returns the fixed 7x13 face for all sizes.
func FallbackFonts() *Fonts {
	return &Fonts{
		Large:  basicfont.Face7x13,
		Medium: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
	}
}
