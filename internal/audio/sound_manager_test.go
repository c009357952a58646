package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/event"
)

// The speaker is never opened in tests; every path below must be safe in
// silent mode.

func TestUninitializedManagerIsSilentNoOp(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.PlayThrow()
		sm.PlayHit()
		sm.PlayVictory()
		sm.PlayDefeat()
		sm.Cleanup()
	})
}

func TestSetVolumeClampsAndMutes(t *testing.T) {
	sm := NewSoundManager()

	sm.SetVolume(1.5)
	assert.False(t, sm.volume.Silent)
	assert.InDelta(t, 0, sm.volume.Volume, 1e-9)

	sm.SetVolume(-2)
	assert.True(t, sm.volume.Silent)

	sm.SetVolume(0.5)
	assert.False(t, sm.volume.Silent)
	assert.InDelta(t, -2.5, sm.volume.Volume, 1e-9)
}

func TestOnEventMapsGameEvents(t *testing.T) {
	sm := NewSoundManager()

	assert.NotPanics(t, func() {
		sm.OnEvent(event.Event{Type: event.ProjectileThrown})
		sm.OnEvent(event.Event{Type: event.CharacterDamaged})
		sm.OnEvent(event.Event{
			Type: event.RoundEnded,
			Data: event.RoundEndedData{Winner: component.KindPlayer},
		})
		sm.OnEvent(event.Event{
			Type: event.RoundEnded,
			Data: event.RoundEndedData{Winner: component.KindAI},
		})
	})
}

func TestOscillatorProducesFiniteStream(t *testing.T) {
	gen := newTone(440, 50*time.Millisecond, waveSine, sampleRate)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := gen.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(50*time.Millisecond), total)

	for _, s := range buf[:16] {
		assert.LessOrEqual(t, s[0], 1.0)
		assert.GreaterOrEqual(t, s[0], -1.0)
	}
}
