// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	DefaultScreenWidth  = 1024
	DefaultScreenHeight = 768
	MaxDeltaTime        = 0.06

	PlayerSpeed     = 300.0 // pixels per second
	PlayerSize      = 40
	PlayerMaxHealth = 100

	ProjectileSpeed    = 400.0
	ProjectileSize     = 15
	ProjectileDamage   = 20
	ProjectileLifetime = 3.0 // seconds

	Friction         = 0.8
	ThrowCooldown    = 1.0 // base cooldown for any character throw
	DiagonalFactor   = 0.707
	BehaviorInterval = 3.0 // seconds between AI behavior rolls
	AttackRange      = 300.0
	ManeuverRadius   = 100.0 // strafe/retreat target offset
	TargetDeadzone   = 10.0
	FacingIndicator  = 8

	ButtonPadding = 12
	ButtonBorder  = 4
	ShadowOffset  = 4

	FontSizeLarge  = 48
	FontSizeMedium = 32
	FontSizeSmall  = 16

	HealthBarWidth  = 200
	HealthBarHeight = 20
)

var (
	BackgroundColor = color.RGBA{92, 148, 110, 255}
	White           = color.RGBA{255, 255, 255, 255}
	Black           = color.RGBA{0, 0, 0, 255}
	Gold            = color.RGBA{255, 215, 0, 255}
	Orange          = color.RGBA{244, 141, 37, 255}
	Blue            = color.RGBA{74, 122, 140, 255}
	Red             = color.RGBA{168, 74, 74, 255}
)

// Difficulty selects one of the fixed AI profiles.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}

// Next cycles to the following difficulty, wrapping around. Used by the
// settings menu.
func (d Difficulty) Next() Difficulty {
	return (d + 1) % 3
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return DifficultyEasy, nil
	case "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q (use easy|normal|hard)", s)
}

// AIProfile groups the tunables that distinguish the difficulty levels.
type AIProfile struct {
	Speed            float64 // pixels per second
	ThrowCooldownMax float64 // seconds between AI throws
	ReactionTime     float64 // delay before the AI refreshes its view of the player
}

var aiProfiles = map[Difficulty]AIProfile{
	DifficultyEasy:   {Speed: 150, ThrowCooldownMax: 2.0, ReactionTime: 1.0},
	DifficultyNormal: {Speed: 200, ThrowCooldownMax: 1.5, ReactionTime: 0.7},
	DifficultyHard:   {Speed: 250, ThrowCooldownMax: 1.0, ReactionTime: 0.4},
}

// Profile returns the AI tuning for the difficulty. Unknown values fall back
// to normal.
func (d Difficulty) Profile() AIProfile {
	if p, ok := aiProfiles[d]; ok {
		return p
	}
	return aiProfiles[DifficultyNormal]
}

// Config is the immutable per-round configuration handed to the simulation
// at construction time. It is never mutated after startup.
type Config struct {
	ScreenWidth  int
	ScreenHeight int
	Difficulty   Difficulty
	Seed         int64 // 0 means time-based
}

func Default() Config {
	return Config{
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		Difficulty:   DifficultyNormal,
	}
}

// ParseResolution parses a "WIDTHxHEIGHT" string such as "1024x768".
func ParseResolution(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid resolution format %q: use WIDTHxHEIGHT (e.g. 1024x768)", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resolution format %q: use WIDTHxHEIGHT (e.g. 1024x768)", s)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid resolution format %q: use WIDTHxHEIGHT (e.g. 1024x768)", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("resolution %q must be positive", s)
	}
	return w, h, nil
}
