// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Karyazilim/6cPastaSavasi/internal/assets"
	"github.com/Karyazilim/6cPastaSavasi/internal/audio"
	"github.com/Karyazilim/6cPastaSavasi/internal/config"
)

// State is one screen of the game shell.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine switches between states, running Exit/Enter hooks.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Context carries the resources every state shares: the startup
// configuration, the persisted user settings, fonts and the sound manager.
type Context struct {
	Machine      *StateMachine
	Config       config.Config
	Settings     config.Settings
	SettingsPath string
	Fonts        *assets.Fonts
	Sound        *audio.SoundManager

	quit bool
}

// GameConfig returns the immutable configuration for a new round.
func (c *Context) GameConfig() config.Config {
	return c.Config
}

// SetDifficulty records a new difficulty for future rounds and mirrors it
// into the persisted settings.
func (c *Context) SetDifficulty(d config.Difficulty) {
	c.Config.Difficulty = d
	c.Settings.Difficulty = d.String()
}

// SaveSettings persists the current settings. Failure to write the file is
// logged and otherwise ignored; preferences are not worth crashing over.
func (c *Context) SaveSettings() {
	if c.SettingsPath == "" {
		return
	}
	if err := config.SaveSettings(c.SettingsPath, c.Settings); err != nil {
		log.Printf("settings: could not save %s: %v", c.SettingsPath, err)
	}
}

// RequestQuit asks the shell to terminate after the current frame.
func (c *Context) RequestQuit() {
	c.quit = true
}

// QuitRequested reports whether the shell should terminate.
func (c *Context) QuitRequested() bool {
	return c.quit
}
