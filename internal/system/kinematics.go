// internal/system/kinematics.go
package system

import (
	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/utils"
)

// Kinematics integrates entity motion against the fixed play area.
type Kinematics struct {
	width, height int
}

func NewKinematics(cfg config.Config) *Kinematics {
	return &Kinematics{width: cfg.ScreenWidth, height: cfg.ScreenHeight}
}

// MoveEntity advances the position by velocity*dt. The discrete bounding
// box follows the position via Entity.Box, truncated toward zero.
func (k *Kinematics) MoveEntity(e *component.Entity, dt float64) {
	e.X += e.VelX * dt
	e.Y += e.VelY * dt
}

// MoveCharacter applies the character tick: friction scales velocity before
// integration, the cooldown timer advances, and the resulting position is
// clamped into the play area. Clamping never touches velocity.
func (k *Kinematics) MoveCharacter(c *component.Character, dt float64) {
	c.VelX *= config.Friction
	c.VelY *= config.Friction
	c.TickCooldown(dt)

	k.MoveEntity(&c.Entity, dt)

	c.X = utils.Clamp(c.X, 0, float64(k.width-c.Width))
	c.Y = utils.Clamp(c.Y, 0, float64(k.height-c.Height))
}
