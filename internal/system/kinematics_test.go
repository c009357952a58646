package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	return cfg
}

func TestMoveEntityIntegratesPosition(t *testing.T) {
	kin := NewKinematics(testConfig())
	e := &component.Entity{X: 100, Y: 200, Width: 15, Height: 15, VelX: 400, VelY: -100}

	kin.MoveEntity(e, 0.25)

	assert.InDelta(t, 200, e.X, 1e-9)
	assert.InDelta(t, 175, e.Y, 1e-9)

	box := e.Box()
	assert.Equal(t, int(e.X), box.Min.X)
	assert.Equal(t, int(e.Y), box.Min.Y)
}

func TestMoveCharacterAppliesFrictionBeforeIntegration(t *testing.T) {
	kin := NewKinematics(testConfig())
	c := component.NewCharacter(100, 100, component.KindPlayer, config.PlayerSpeed)
	c.VelX = 100

	kin.MoveCharacter(c, 1.0)

	// Friction scales velocity first, so the full tick moves 100*0.8.
	assert.InDelta(t, 100+100*config.Friction, c.X, 1e-9)
	assert.InDelta(t, 100*config.Friction, c.VelX, 1e-9)
}

func TestMoveCharacterClampsToPlayArea(t *testing.T) {
	cfg := testConfig()
	kin := NewKinematics(cfg)

	c := component.NewCharacter(5, 5, component.KindPlayer, config.PlayerSpeed)
	c.VelX = -100000
	c.VelY = -100000
	kin.MoveCharacter(c, 1.0)
	assert.Equal(t, 0.0, c.X)
	assert.Equal(t, 0.0, c.Y)

	c.VelX = 100000
	c.VelY = 100000
	kin.MoveCharacter(c, 1.0)
	assert.Equal(t, float64(cfg.ScreenWidth-c.Width), c.X)
	assert.Equal(t, float64(cfg.ScreenHeight-c.Height), c.Y)

	// Clamping never rewrites velocity.
	assert.InDelta(t, 100000*config.Friction, c.VelX, 1e-9)
}

func TestMoveCharacterTicksCooldown(t *testing.T) {
	kin := NewKinematics(testConfig())
	c := component.NewCharacter(100, 100, component.KindPlayer, config.PlayerSpeed)
	c.ThrowCooldown = 1.0

	kin.MoveCharacter(c, 0.4)
	assert.InDelta(t, 0.6, c.ThrowCooldown, 1e-9)
	assert.False(t, c.CanThrow())

	kin.MoveCharacter(c, 0.7)
	assert.True(t, c.CanThrow())
}
