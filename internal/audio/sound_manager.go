// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/Karyazilim/6cPastaSavasi/internal/component"
	"github.com/Karyazilim/6cPastaSavasi/internal/event"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager synthesizes the game's sound effects into a shared mixer.
// When Initialize fails or was never called every Play method is a no-op,
// so a machine without audio still runs the game (silent mode).
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
}

func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
		},
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup silences and detaches every streamer. The speaker itself stays
// open; beep has no close, clearing the mixer is the shutdown.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetVolume sets the master volume in [0, 1]. Zero mutes entirely.
func (sm *SoundManager) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	apply := func() {
		sm.volume.Silent = v == 0
		sm.volume.Volume = (v - 1) * 5 // 0 dB gain at full, fading toward silence
	}
	if sm.initialized {
		speaker.Lock()
		apply()
		speaker.Unlock()
	} else {
		apply()
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayThrow is a quick downward whoosh.
func (sm *SoundManager) PlayThrow() {
	sm.play(newSweep(900, 300, 120*time.Millisecond, waveSine, sampleRate))
}

// PlayHit is a short low buzz.
func (sm *SoundManager) PlayHit() {
	sm.play(newTone(120, 150*time.Millisecond, waveSquare, sampleRate))
}

// PlayVictory is an ascending three-note arpeggio.
func (sm *SoundManager) PlayVictory() {
	sm.play(beep.Seq(
		newTone(523, 140*time.Millisecond, waveSquare, sampleRate),
		newTone(659, 140*time.Millisecond, waveSquare, sampleRate),
		newTone(784, 240*time.Millisecond, waveSquare, sampleRate),
	))
}

// PlayDefeat is the descending counterpart.
func (sm *SoundManager) PlayDefeat() {
	sm.play(beep.Seq(
		newTone(392, 180*time.Millisecond, waveSquare, sampleRate),
		newTone(330, 180*time.Millisecond, waveSquare, sampleRate),
		newTone(262, 300*time.Millisecond, waveSquare, sampleRate),
	))
}

// OnEvent maps game events to sound effects, making the manager an
// event.Listener the combat loop's dispatcher can feed directly.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileThrown:
		sm.PlayThrow()
	case event.CharacterDamaged:
		sm.PlayHit()
	case event.RoundEnded:
		if data, ok := e.Data.(event.RoundEndedData); ok {
			if data.Winner == component.KindPlayer {
				sm.PlayVictory()
			} else {
				sm.PlayDefeat()
			}
		}
	}
}
