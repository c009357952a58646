package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Karyazilim/6cPastaSavasi/internal/config"
)

func TestNewCharacterStartsAtFullHealth(t *testing.T) {
	c := NewCharacter(100, 384, KindPlayer, config.PlayerSpeed)

	assert.Equal(t, config.PlayerMaxHealth, c.Health)
	assert.Equal(t, KindPlayer, c.Kind)
	assert.True(t, c.CanThrow())
	assert.Equal(t, Facing{X: 1}, c.Facing)
}

func TestThrowSpawnsFromCenter(t *testing.T) {
	c := NewCharacter(100, 100, KindPlayer, config.PlayerSpeed)

	p := c.Throw(500, 120)
	require.NotNil(t, p)

	cx, cy := c.Center()
	assert.Equal(t, cx, p.X)
	assert.Equal(t, cy, p.Y)
	assert.Equal(t, KindProjectile, p.Kind)
	assert.Equal(t, KindPlayer, p.Owner)
}

func TestThrowArmsBaseCooldown(t *testing.T) {
	c := NewCharacter(0, 0, KindPlayer, config.PlayerSpeed)

	require.NotNil(t, c.Throw(100, 0))
	assert.False(t, c.CanThrow())
	assert.InDelta(t, config.ThrowCooldown, c.ThrowCooldown, 1e-9)

	// A second throw while cooling down is a no-op.
	assert.Nil(t, c.Throw(100, 0))

	// Not quite elapsed yet.
	c.TickCooldown(0.9)
	assert.False(t, c.CanThrow())

	c.TickCooldown(0.1)
	assert.True(t, c.CanThrow())
	assert.NotNil(t, c.Throw(100, 0))
}

func TestThrowUpdatesFacingDominantAxis(t *testing.T) {
	tests := []struct {
		name             string
		targetX, targetY float64
		want             Facing
	}{
		{"right", 500, 20, Facing{X: 1}},
		{"left", -500, 20, Facing{X: -1}},
		{"down", 20, 500, Facing{Y: 1}},
		{"up", 20, -500, Facing{Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharacter(0, 0, KindPlayer, config.PlayerSpeed)
			require.NotNil(t, c.Throw(tt.targetX, tt.targetY))
			assert.Equal(t, tt.want, c.Facing)
		})
	}
}

func TestTakeDamageReportsDeath(t *testing.T) {
	c := NewCharacter(0, 0, KindAI, config.PlayerSpeed)

	assert.False(t, c.TakeDamage(40))
	assert.Equal(t, 60, c.Health)

	assert.False(t, c.TakeDamage(40))
	assert.True(t, c.TakeDamage(40))
	assert.LessOrEqual(t, c.Health, 0)
}
