// internal/component/ai.go
package component

import "github.com/Karyazilim/6cPastaSavasi/internal/config"

// Behavior is the AI's current movement pattern.
type Behavior int

const (
	BehaviorChase Behavior = iota
	BehaviorStrafe
	BehaviorRetreat
)

func (b Behavior) String() string {
	switch b {
	case BehaviorChase:
		return "chase"
	case BehaviorStrafe:
		return "strafe"
	case BehaviorRetreat:
		return "retreat"
	}
	return "unknown"
}

// AIOpponent extends Character with the decision state the AI system works
// on: its behavior machine, the stale view of the player it targets, and
// the difficulty profile.
type AIOpponent struct {
	Character
	Profile config.AIProfile

	TargetX, TargetY     float64
	LastSeenX, LastSeenY float64 // player center as of the last perception refresh
	ReactionTimer        float64
	BehaviorTimer        float64
	Behavior             Behavior
}

// NewAIOpponent creates the opponent at (x, y) with the given difficulty
// profile. The target starts at its own position; the last-seen point is
// zero until the first perception refresh.
func NewAIOpponent(x, y float64, profile config.AIProfile) *AIOpponent {
	return &AIOpponent{
		Character: *NewCharacter(x, y, KindAI, profile.Speed),
		Profile:   profile,
		TargetX:   x,
		TargetY:   y,
		Behavior:  BehaviorChase,
	}
}
