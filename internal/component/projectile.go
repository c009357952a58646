// internal/component/projectile.go
package component

import (
	"math"

	"github.com/Karyazilim/6cPastaSavasi/internal/config"
)

// Projectile is a flying pastry. Owner records the kind of the thrower so a
// projectile never damages its own side.
type Projectile struct {
	Entity
	Owner    Kind
	Lifetime float64 // remaining seconds
	Damage   int
}

// NewProjectile spawns a projectile at (x, y) heading along the raw
// direction vector. The direction is normalized and scaled to the fixed
// projectile speed; a zero-magnitude direction leaves the velocity at zero,
// so the projectile sits in place and expires by lifetime alone.
func NewProjectile(x, y, dirX, dirY float64, owner Kind) *Projectile {
	p := &Projectile{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  config.ProjectileSize,
			Height: config.ProjectileSize,
			Kind:   KindProjectile,
		},
		Owner:    owner,
		Lifetime: config.ProjectileLifetime,
		Damage:   config.ProjectileDamage,
	}
	if mag := math.Hypot(dirX, dirY); mag > 0 {
		p.VelX = dirX / mag * config.ProjectileSpeed
		p.VelY = dirY / mag * config.ProjectileSpeed
	}
	return p
}

// Expired reports whether the projectile should be removed: lifetime ran
// out, or the box left the play area entirely on either axis.
func (p *Projectile) Expired(screenWidth, screenHeight int) bool {
	if p.Lifetime <= 0 {
		return true
	}
	return p.X < -float64(p.Width) || p.X > float64(screenWidth) ||
		p.Y < -float64(p.Height) || p.Y > float64(screenHeight)
}
