// internal/component/character.go
package component

import (
	"math"

	"github.com/Karyazilim/6cPastaSavasi/internal/config"
)

// Facing is a 4-direction indicator: exactly one axis is nonzero, holding
// the sign of the dominant throw direction.
type Facing struct {
	X, Y int
}

// Character is the shared model for the player and the AI opponent. Which
// one it is follows from Entity.Kind.
type Character struct {
	Entity
	Health        int
	MaxHealth     int
	Speed         float64
	Facing        Facing
	ThrowCooldown float64 // seconds until the next throw is allowed
}

// NewCharacter creates a character at full health facing right.
func NewCharacter(x, y float64, kind Kind, speed float64) *Character {
	return &Character{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  config.PlayerSize,
			Height: config.PlayerSize,
			Kind:   kind,
		},
		Health:    config.PlayerMaxHealth,
		MaxHealth: config.PlayerMaxHealth,
		Speed:     speed,
		Facing:    Facing{X: 1},
	}
}

// CanThrow reports whether the throw cooldown has elapsed.
func (c *Character) CanThrow() bool {
	return c.ThrowCooldown <= 0
}

// TickCooldown advances the throw cooldown timer.
func (c *Character) TickCooldown(dt float64) {
	if c.ThrowCooldown > 0 {
		c.ThrowCooldown -= dt
	}
}

// Throw launches a projectile from the character's center toward the target
// point. Returns nil while on cooldown. A successful throw updates the
// facing indicator to the dominant axis and arms the base 1 s cooldown;
// callers with their own cadence (the AI) override the cooldown afterwards.
func (c *Character) Throw(targetX, targetY float64) *Projectile {
	if !c.CanThrow() {
		return nil
	}

	cx, cy := c.Center()
	dirX := targetX - cx
	dirY := targetY - cy

	if math.Abs(dirX) > math.Abs(dirY) {
		c.Facing = Facing{X: axisSign(dirX)}
	} else {
		c.Facing = Facing{Y: axisSign(dirY)}
	}

	c.ThrowCooldown = config.ThrowCooldown
	return NewProjectile(cx, cy, dirX, dirY, c.Kind)
}

// TakeDamage subtracts health and reports whether the character just died.
// Turning the death signal into a round outcome is the combat loop's job.
func (c *Character) TakeDamage(amount int) bool {
	c.Health -= amount
	return c.Health <= 0
}

func axisSign(v float64) int {
	if v > 0 {
		return 1
	}
	return -1
}
