// internal/component/entity.go
package component

import "image"

// Kind discriminates the three entity categories. It replaces subclassing:
// anything that needs per-kind behavior switches on it.
type Kind int

const (
	KindPlayer Kind = iota
	KindAI
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindAI:
		return "ai"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Entity is the shared spatial component embedded by characters and
// projectiles: continuous position/velocity plus a discrete bounding box
// derived by truncation toward zero.
type Entity struct {
	X, Y          float64
	Width, Height int
	VelX, VelY    float64
	Kind          Kind
}

// Box returns the integer-aligned bounding box for collision tests. The
// origin is the truncated position, not a rounded one.
func (e *Entity) Box() image.Rectangle {
	x, y := int(e.X), int(e.Y)
	return image.Rect(x, y, x+e.Width, y+e.Height)
}

// Center returns the middle point of the entity. Half sizes are integer
// halves so centers line up with the discrete box.
func (e *Entity) Center() (float64, float64) {
	return e.X + float64(e.Width/2), e.Y + float64(e.Height/2)
}

// Overlaps reports whether the discrete boxes of both entities intersect.
func (e *Entity) Overlaps(other *Entity) bool {
	return e.Box().Overlaps(other.Box())
}
