// internal/app/game.go
package app

import (
	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/event"
	"github.com/Karyazilim/6cPastaSavasi/internal/system"
	"github.com/Karyazilim/6cPastaSavasi/internal/utils"
)

// Input is the player's intent for one tick, supplied by the input layer:
// four directional flags plus a throw trigger carrying the target point
// (usually the cursor).
type Input struct {
	Up, Down, Left, Right bool

	Throw            bool
	TargetX, TargetY float64
}

// Outcome is the round result.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerWon
	OutcomeAIWon
)

// Game owns the whole combat simulation: the two characters, the live
// projectiles and the systems that advance them. It runs single-threaded;
// one Update call is one atomic tick.
type Game struct {
	Config config.Config

	Player      *component.Character
	AI          *component.AIOpponent
	Projectiles []*component.Projectile

	Kinematics       *system.Kinematics
	AISystem         *system.AISystem
	ProjectileSystem *system.ProjectileSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	outcome Outcome
	paused  bool
}

// NewGame builds a round from the immutable configuration. The config is
// captured once and never mutated afterwards.
func NewGame(cfg config.Config) *Game {
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.Seed)
	kin := system.NewKinematics(cfg)

	g := &Game{
		Config:           cfg,
		Kinematics:       kin,
		AISystem:         system.NewAISystem(rng),
		ProjectileSystem: system.NewProjectileSystem(kin, dispatcher),
		EventDispatcher:  dispatcher,
		Rng:              rng,
	}
	g.Restart()
	return g
}

// Restart reinitializes both characters at their spawn points with full
// health and clears all projectiles, ready for a new round.
func (g *Game) Restart() {
	w, h := g.Config.ScreenWidth, g.Config.ScreenHeight
	g.Player = component.NewCharacter(100, float64(h/2), component.KindPlayer, config.PlayerSpeed)
	g.AI = component.NewAIOpponent(float64(w-150), float64(h/2), g.Config.Difficulty.Profile())
	g.Projectiles = nil
	g.outcome = OutcomeNone
	g.paused = false
}

// Update runs one simulation tick. While paused or after the round ended
// the whole tick is skipped, freezing the simulation; rendering and input
// polling continue outside.
func (g *Game) Update(dt float64, in Input) {
	if g.paused || g.outcome != OutcomeNone {
		return
	}

	g.applyInput(in)
	g.Kinematics.MoveCharacter(g.Player, dt)

	if p := g.AISystem.Update(g.AI, g.Player, dt); p != nil {
		g.addProjectile(p)
	}
	g.Kinematics.MoveCharacter(&g.AI.Character, dt)

	g.Projectiles = g.ProjectileSystem.Update(g.Projectiles, dt)
	g.Projectiles = g.ProjectileSystem.ResolveCollisions(g.Projectiles, g.Player, &g.AI.Character)

	g.checkOutcome()
}

func (g *Game) applyInput(in Input) {
	var moveX, moveY float64
	if in.Left {
		moveX--
	}
	if in.Right {
		moveX++
	}
	if in.Up {
		moveY--
	}
	if in.Down {
		moveY++
	}
	if moveX != 0 && moveY != 0 {
		moveX *= config.DiagonalFactor
		moveY *= config.DiagonalFactor
	}
	g.Player.VelX = moveX * g.Player.Speed
	g.Player.VelY = moveY * g.Player.Speed

	if in.Throw {
		if p := g.Player.Throw(in.TargetX, in.TargetY); p != nil {
			g.addProjectile(p)
		}
	}
}

func (g *Game) addProjectile(p *component.Projectile) {
	g.Projectiles = append(g.Projectiles, p)
	g.EventDispatcher.Dispatch(event.Event{Type: event.ProjectileThrown, Data: p})
}

func (g *Game) checkOutcome() {
	var winner component.Kind
	switch {
	case g.Player.Health <= 0:
		g.outcome = OutcomeAIWon
		winner = component.KindAI
	case g.AI.Health <= 0:
		g.outcome = OutcomePlayerWon
		winner = component.KindPlayer
	default:
		return
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.RoundEnded,
		Data: event.RoundEndedData{Winner: winner},
	})
}

// Outcome reports the round result, OutcomeNone while still playing.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Over reports whether the round reached a terminal state.
func (g *Game) Over() bool {
	return g.outcome != OutcomeNone
}

// Paused reports the pause flag.
func (g *Game) Paused() bool {
	return g.paused
}

// SetPaused flips the global pause flag. A paused game still renders and
// polls input; only the simulation tick is short-circuited.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// TogglePause inverts the pause flag.
func (g *Game) TogglePause() {
	g.paused = !g.paused
}
