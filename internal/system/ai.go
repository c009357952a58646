// internal/system/ai.go
package system

import (
	"math"

	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/utils"
)

// AISystem drives the opponent's decision loop: a three-state behavior
// machine, delayed perception of the player, movement toward the computed
// target and the throw trigger. All randomness comes from the injected
// PRNG so a seeded run is reproducible.
type AISystem struct {
	rng *utils.PRNGService
}

func NewAISystem(rng *utils.PRNGService) *AISystem {
	return &AISystem{rng: rng}
}

// Update advances the AI by one tick and returns the projectile it threw,
// if any. It sets the AI's velocity; integration happens afterwards in the
// kinematics pass like every other character.
func (s *AISystem) Update(ai *component.AIOpponent, player *component.Character, dt float64) *component.Projectile {
	ai.BehaviorTimer += dt
	ai.ReactionTimer += dt

	// Perception: the AI only refreshes its view of the player on the
	// reaction cadence. Between refreshes it acts on a stale position.
	if ai.ReactionTimer >= ai.Profile.ReactionTime {
		ai.LastSeenX, ai.LastSeenY = player.Center()
		ai.ReactionTimer = 0
	}

	if ai.BehaviorTimer >= config.BehaviorInterval {
		ai.Behavior = component.Behavior(s.rng.Intn(3))
		ai.BehaviorTimer = 0
	}

	cx, cy := ai.Center()
	distance := utils.Dist(cx, cy, ai.LastSeenX, ai.LastSeenY)

	switch ai.Behavior {
	case component.BehaviorChase:
		ai.TargetX = ai.LastSeenX
		ai.TargetY = ai.LastSeenY
	case component.BehaviorStrafe:
		// Sidestep: aim perpendicular to the line toward the player.
		angle := math.Atan2(ai.LastSeenY-cy, ai.LastSeenX-cx) + math.Pi/2
		ai.TargetX = cx + math.Cos(angle)*config.ManeuverRadius
		ai.TargetY = cy + math.Sin(angle)*config.ManeuverRadius
	case component.BehaviorRetreat:
		if distance > 0 {
			ux, uy := utils.Normalize(cx-ai.LastSeenX, cy-ai.LastSeenY)
			ai.TargetX = cx + ux*config.ManeuverRadius
			ai.TargetY = cy + uy*config.ManeuverRadius
		}
	}

	s.moveTowardTarget(ai)

	if distance < config.AttackRange && ai.CanThrow() && s.hasLineOfSight(ai, player) {
		if p := ai.Throw(ai.LastSeenX, ai.LastSeenY); p != nil {
			// Difficulty cadence overrides the base cooldown armed by Throw.
			ai.ThrowCooldown = ai.Profile.ThrowCooldownMax
			return p
		}
	}
	return nil
}

func (s *AISystem) moveTowardTarget(ai *component.AIOpponent) {
	cx, cy := ai.Center()
	dx := ai.TargetX - cx
	dy := ai.TargetY - cy

	// Stop inside the deadzone so the AI doesn't jitter on its target.
	if utils.Dist(cx, cy, ai.TargetX, ai.TargetY) > config.TargetDeadzone {
		ux, uy := utils.Normalize(dx, dy)
		ai.VelX = ux * ai.Speed
		ai.VelY = uy * ai.Speed
	} else {
		ai.VelX = 0
		ai.VelY = 0
	}
}

// hasLineOfSight always holds.
// TODO: check arena obstacles here once obstacle geometry exists.
func (s *AISystem) hasLineOfSight(ai *component.AIOpponent, player *component.Character) bool {
	return true
}
