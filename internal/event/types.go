// internal/event/types.go
package event

import "github.com/Karyazilim/6cPastaSavasi/internal/component"

const (
	// ProjectileThrown fires when either character launches a pastry.
	// Data: *component.Projectile.
	ProjectileThrown EventType = "projectile_thrown"
	// CharacterDamaged fires when a projectile connects.
	// Data: CharacterDamagedData.
	CharacterDamaged EventType = "character_damaged"
	// RoundEnded fires once when a round reaches its outcome.
	// Data: RoundEndedData.
	RoundEnded EventType = "round_ended"
)

type CharacterDamagedData struct {
	Kind   component.Kind
	Health int // health after the hit
	Damage int
}

type RoundEndedData struct {
	Winner component.Kind // KindPlayer or KindAI
}
