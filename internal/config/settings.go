// internal/config/settings.go
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// SettingsFile is the default name of the persisted user settings, looked up
// next to the binary's working directory.
const SettingsFile = "pastasavasi.yaml"

// Settings holds the user preferences persisted between runs. Game state is
// never persisted, only these knobs.
type Settings struct {
	Resolution string  `yaml:"resolution"`
	Fullscreen bool    `yaml:"fullscreen"`
	Difficulty string  `yaml:"difficulty"`
	Volume     float64 `yaml:"volume"`
}

func DefaultSettings() Settings {
	return Settings{
		Resolution: "1024x768",
		Fullscreen: false,
		Difficulty: DifficultyNormal.String(),
		Volume:     0.5,
	}
}

// LoadSettings reads the YAML settings file. A missing file is not an error:
// defaults are returned so a fresh install starts silently.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), err
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	if s.Volume < 0 {
		s.Volume = 0
	}
	if s.Volume > 1 {
		s.Volume = 1
	}
	return s, nil
}

// SaveSettings writes the settings as YAML.
func SaveSettings(path string, s Settings) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
