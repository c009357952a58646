package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"1024x768", 1024, 768, false},
		{"800X600", 800, 600, false},
		{"1024", 0, 0, true},
		{"x768", 0, 0, true},
		{"1024x", 0, 0, true},
		{"axb", 0, 0, true},
		{"0x768", 0, 0, true},
		{"-800x600", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseResolution(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, w)
			assert.Equal(t, tt.h, h)
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("HARD")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	_, err = ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestDifficultyCycle(t *testing.T) {
	assert.Equal(t, DifficultyNormal, DifficultyEasy.Next())
	assert.Equal(t, DifficultyHard, DifficultyNormal.Next())
	assert.Equal(t, DifficultyEasy, DifficultyHard.Next())
}

func TestProfiles(t *testing.T) {
	p := DifficultyNormal.Profile()
	assert.Equal(t, 200.0, p.Speed)
	assert.Equal(t, 1.5, p.ThrowCooldownMax)
	assert.Equal(t, 0.7, p.ReactionTime)

	assert.Equal(t, 150.0, DifficultyEasy.Profile().Speed)
	assert.Equal(t, 1.0, DifficultyHard.Profile().ThrowCooldownMax)
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s := Settings{
		Resolution: "800x600",
		Fullscreen: true,
		Difficulty: "hard",
		Volume:     0.75,
	}
	require.NoError(t, SaveSettings(path, s))

	loaded, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	loaded, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), loaded)
}
