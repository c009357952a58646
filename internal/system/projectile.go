// internal/system/projectile.go
package system

import (
	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/event"
)

// ProjectileSystem advances projectile flight, culls expired ones and
// resolves hits against the two characters.
type ProjectileSystem struct {
	kinematics *Kinematics
	dispatcher *event.Dispatcher
}

func NewProjectileSystem(kin *Kinematics, dispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{kinematics: kin, dispatcher: dispatcher}
}

// Update integrates every projectile (no friction), counts lifetime down
// and drops the ones that expired or left the play area. The filtered
// slice reuses the backing array.
func (s *ProjectileSystem) Update(projectiles []*component.Projectile, dt float64) []*component.Projectile {
	alive := projectiles[:0]
	for _, p := range projectiles {
		p.Lifetime -= dt
		s.kinematics.MoveEntity(&p.Entity, dt)
		if p.Expired(s.kinematics.width, s.kinematics.height) {
			continue
		}
		alive = append(alive, p)
	}
	return alive
}

// ResolveCollisions tests every projectile against both characters. A
// projectile never hits its own kind, damages at most one target (player
// checked first) and is removed on hit. Damage events go out through the
// dispatcher; the death signal is left for the combat loop to act on.
func (s *ProjectileSystem) ResolveCollisions(projectiles []*component.Projectile, player, ai *component.Character) []*component.Projectile {
	remaining := projectiles[:0]
	for _, p := range projectiles {
		if s.hit(p, player) || s.hit(p, ai) {
			continue
		}
		remaining = append(remaining, p)
	}
	return remaining
}

func (s *ProjectileSystem) hit(p *component.Projectile, target *component.Character) bool {
	if p.Owner == target.Kind || !p.Overlaps(&target.Entity) {
		return false
	}
	target.TakeDamage(p.Damage)
	s.dispatcher.Dispatch(event.Event{
		Type: event.CharacterDamaged,
		Data: event.CharacterDamagedData{
			Kind:   target.Kind,
			Health: target.Health,
			Damage: p.Damage,
		},
	})
	return true
}
