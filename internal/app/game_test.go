package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
	"github.com/Karyazilim/6cPastaSavasi/internal/event"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	return cfg
}

func TestNewGameSpawnsAtRoundPositions(t *testing.T) {
	g := NewGame(testConfig())

	assert.Equal(t, 100.0, g.Player.X)
	assert.Equal(t, 384.0, g.Player.Y)
	assert.Equal(t, 874.0, g.AI.X)
	assert.Equal(t, 384.0, g.AI.Y)
	assert.Equal(t, OutcomeNone, g.Outcome())
	assert.Empty(t, g.Projectiles)
}

func TestPlayerThrowViaInput(t *testing.T) {
	g := NewGame(testConfig())

	g.Update(0.016, Input{Throw: true, TargetX: 800, TargetY: 404})
	require.Len(t, g.Projectiles, 1)
	assert.Equal(t, component.KindPlayer, g.Projectiles[0].Owner)
	assert.False(t, g.Player.CanThrow())

	// Held trigger during cooldown adds nothing.
	g.Update(0.016, Input{Throw: true, TargetX: 800, TargetY: 404})
	assert.Len(t, g.Projectiles, 1)
}

func TestDiagonalInputIsNormalized(t *testing.T) {
	g := NewGame(testConfig())

	g.Update(0.016, Input{Right: true, Down: true})

	// Friction has already scaled the tick's velocity once.
	want := config.PlayerSpeed * config.DiagonalFactor * config.Friction
	assert.InDelta(t, want, g.Player.VelX, 1e-9)
	assert.InDelta(t, want, g.Player.VelY, 1e-9)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := NewGame(testConfig())
	g.SetPaused(true)

	x, y := g.Player.X, g.Player.Y
	g.Update(0.5, Input{Right: true})

	assert.Equal(t, x, g.Player.X)
	assert.Equal(t, y, g.Player.Y)
	assert.Empty(t, g.Projectiles)

	g.TogglePause()
	assert.False(t, g.Paused())
	g.Update(0.5, Input{Right: true})
	assert.Greater(t, g.Player.X, x)
}

type roundEndRecorder struct {
	data []event.RoundEndedData
}

func (r *roundEndRecorder) OnEvent(e event.Event) {
	if d, ok := e.Data.(event.RoundEndedData); ok {
		r.data = append(r.data, d)
	}
}

func TestRoundTerminationFreezesUntilRestart(t *testing.T) {
	g := NewGame(testConfig())
	rec := &roundEndRecorder{}
	g.EventDispatcher.Subscribe(event.RoundEnded, rec)

	// One more hit finishes the player.
	g.Player.Health = config.ProjectileDamage
	g.Projectiles = append(g.Projectiles,
		component.NewProjectile(g.Player.X, g.Player.Y, 0, 0, component.KindAI))

	g.Update(0.016, Input{})
	assert.Equal(t, OutcomeAIWon, g.Outcome())
	assert.True(t, g.Over())
	require.Len(t, rec.data, 1)
	assert.Equal(t, component.KindAI, rec.data[0].Winner)

	// Terminal state: further ticks mutate nothing.
	playerHealth, aiHealth := g.Player.Health, g.AI.Health
	px, ax := g.Player.X, g.AI.X
	for i := 0; i < 10; i++ {
		g.Update(0.1, Input{Right: true, Throw: true, TargetX: 900})
	}
	assert.Equal(t, playerHealth, g.Player.Health)
	assert.Equal(t, aiHealth, g.AI.Health)
	assert.Equal(t, px, g.Player.X)
	assert.Equal(t, ax, g.AI.X)
	assert.Len(t, rec.data, 1)

	g.Restart()
	assert.Equal(t, OutcomeNone, g.Outcome())
	assert.Equal(t, config.PlayerMaxHealth, g.Player.Health)
	assert.Equal(t, config.PlayerMaxHealth, g.AI.Health)
	assert.Empty(t, g.Projectiles)
	assert.Equal(t, 100.0, g.Player.X)
}

func TestPlayerWinOutcome(t *testing.T) {
	g := NewGame(testConfig())

	g.AI.Health = config.ProjectileDamage
	g.Projectiles = append(g.Projectiles,
		component.NewProjectile(g.AI.X, g.AI.Y, 0, 0, component.KindPlayer))

	g.Update(0.016, Input{})
	assert.Equal(t, OutcomePlayerWon, g.Outcome())
}

func TestSeededRunsAreReproducible(t *testing.T) {
	run := func(seed int64) (float64, float64) {
		cfg := config.Default()
		cfg.Seed = seed
		g := NewGame(cfg)
		for i := 0; i < 600; i++ { // 10 s of fixed ticks, idle player
			g.Update(1.0/60, Input{})
		}
		return g.AI.X, g.AI.Y
	}

	x1, y1 := run(42)
	x2, y2 := run(42)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}
