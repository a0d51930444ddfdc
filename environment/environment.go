// This file is part of ALE2600.
//
// ALE2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ALE2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ALE2600.  If not, see <https://www.gnu.org/licenses/>.

package environment

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/cartridgeloader"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/dispatch"
	"github.com/jetsetilly/ale2600/display"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/palette"
	"github.com/jetsetilly/ale2600/screenshot"
	"github.com/jetsetilly/ale2600/session"
	"github.com/jetsetilly/ale2600/settings"
	"github.com/jetsetilly/ale2600/version"
	"github.com/jetsetilly/ale2600/wavwriter"

	// display backends register themselves with the display package
	_ "github.com/jetsetilly/ale2600/display/sdldisplay"
	_ "github.com/jetsetilly/ale2600/display/termdisplay"
)

// Sentinel errors returned by the environment package.
const (
	BootstrapError     = "bootstrap: %v"
	NotReady           = "environment: not ready: no ROM has been loaded"
	AlreadyLoaded      = "environment: a ROM has already been loaded"
	UnavailableDisplay = "environment: no display backend is available"
)

// tag used for log entries
const logTag = "ALE"

// Environment is the agent's view of a running game. A ROM can be loaded into
// an environment only once. Create a new environment to play a different
// ROM.
//
// An environment is not safe for use by more than one goroutine. Different
// environments can be used concurrently.
type Environment struct {
	displayScreen bool

	ctx *emucore.Context
	sys *system

	sess       *session.Session
	dispatcher *dispatch.Dispatcher
	disp       display.Display

	// the episode ends when the episode frame number reaches this value.
	// zero means no limit
	maxFrames int

	// optional recording of screens and sound
	screenDir string
	sound     *wavwriter.WavWriter
	audio     emucore.AudioSource

	loaded bool
	ended  bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If displayScreen is true then a display backend must have
// been compiled into the program.
func NewEnvironment(displayScreen bool) (*Environment, error) {
	fmt.Fprintln(os.Stderr, version.Welcome())

	if displayScreen && len(display.Available()) == 0 {
		return nil, curated.Errorf(UnavailableDisplay)
	}

	return &Environment{
		displayScreen: displayScreen,
		ctx:           emucore.NewContext(),
	}, nil
}

// LoadROM bootstraps the environment with the ROM file. The optional
// arguments are settings in command line form, for example:
//
//	env.LoadROM("pong.bin", "-random_seed", "123", "-frame_skip", "4")
//
// The game is reset and ready to play when LoadROM returns successfully. Any
// error is a BootstrapError.
func (env *Environment) LoadROM(romFile string, args ...string) error {
	if env.loaded || env.ended {
		return curated.Errorf(AlreadyLoaded)
	}

	sys, err := bootstrap(env.ctx, commandLine(env.displayScreen, romFile, args))
	if err != nil {
		return curated.Errorf(BootstrapError, err)
	}

	err = env.attach(sys)
	if err != nil {
		env.detach()
		return curated.Errorf(BootstrapError, err)
	}

	env.loaded = true

	err = env.ResetGame()
	if err != nil {
		env.detach()
		return curated.Errorf(BootstrapError, err)
	}

	return nil
}

// detach undoes a partial or complete attach(). Errors are ignored because
// detach is only called when there is already an error to report.
func (env *Environment) detach() {
	if env.disp != nil {
		_ = env.disp.Close()
	}
	if env.sound != nil {
		_ = env.sound.Close()
	}
	if env.sys != nil {
		_ = env.sys.console.Close()
	}

	env.sys = nil
	env.sess = nil
	env.dispatcher = nil
	env.disp = nil
	env.sound = nil
	env.audio = nil
	env.screenDir = ""
	env.maxFrames = 0
	env.loaded = false
}

// attach the session, the dispatcher and any optional display or recorders
// to the bootstrapped system.
func (env *Environment) attach(sys *system) error {
	st := env.ctx.Settings

	env.sys = sys
	env.maxFrames = st.GetInt(settings.MaxNumFramesPerEpisode)

	env.sess = session.NewSession(sys.console, sys.title, session.Config{
		FrameSkip:  st.GetInt(settings.FrameSkip),
		ResetSteps: st.GetInt(settings.SystemResetSteps),
		NoopSteps:  st.GetInt(settings.NoopResetSteps),
	})

	if st.GetBool(settings.DisplayScreen) {
		var err error
		env.disp, err = display.Create(st.GetString(settings.DisplayBackend), sys.palette)
		if err != nil {
			return err
		}
	}

	if dir := st.GetString(settings.RecordScreenDir); dir != "" {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return err
		}
		env.screenDir = dir
	}

	if fn := st.GetString(settings.RecordSoundFilename); fn != "" {
		if aud, ok := sys.console.(emucore.AudioSource); ok {
			var err error
			env.sound, err = wavwriter.NewWavWriter(fn, aud.SampleRate())
			if err != nil {
				return err
			}
			env.audio = aud
		}
	}

	env.dispatcher = dispatch.NewDispatcher(env.sess, env.ctx.Random, env.disp,
		st.GetFloat(settings.RepeatActionProbability))

	return nil
}

// ResetGame resets the game and begins a new episode. Frames run during the
// reset are not counted by FrameNumber() or EpisodeFrameNumber().
func (env *Environment) ResetGame() error {
	if !env.loaded {
		return curated.Errorf(NotReady)
	}

	err := env.sess.Reset()
	if err != nil {
		return err
	}
	env.dispatcher.Reset()
	env.recordSound()

	return nil
}

// GameOver returns true if the game has ended or if the maximum number of
// frames for the episode has been reached.
func (env *Environment) GameOver() bool {
	env.mustBeLoaded()
	if env.sess.IsTerminal() {
		return true
	}
	return env.maxFrames > 0 && env.sess.EpisodeFrameNumber() >= env.maxFrames
}

// Act applies the action for a single step and returns the reward. Only
// player A actions and the Reset action are accepted. The action can be taken
// even if the game is over.
func (env *Environment) Act(a action.Action) (int, error) {
	if !env.loaded {
		return 0, curated.Errorf(NotReady)
	}

	reward, err := env.dispatcher.Apply(a)
	if err != nil {
		return reward, err
	}

	if env.screenDir != "" {
		fn := filepath.Join(env.screenDir, fmt.Sprintf("%06d.png", env.sess.FrameNumber()))
		err = screenshot.Save(fn, env.sess.Screen(), env.sys.palette, 1)
		if err != nil {
			return reward, err
		}
	}
	env.recordSound()

	return reward, nil
}

func (env *Environment) recordSound() {
	if env.sound != nil {
		env.sound.AddSamples(env.audio.AudioSamples())
	}
}

// AddObserver adds a function that is called after every step with the
// action that was applied and the reward. The applied action can differ from
// the requested action if repeat_action_probability is greater than zero.
func (env *Environment) AddObserver(o dispatch.Observer) error {
	if !env.loaded {
		return curated.Errorf(NotReady)
	}
	env.dispatcher.AddObserver(o)
	return nil
}

// SetMaxNumFrames sets the maximum number of frames in an episode. The limit
// applies to the current episode. A value of zero removes the limit.
func (env *Environment) SetMaxNumFrames(n int) {
	env.maxFrames = max(n, 0)
}

func (env *Environment) mustBeLoaded() {
	if !env.loaded {
		panic(NotReady)
	}
}

// FrameNumber returns the number of steps since the ROM was loaded.
func (env *Environment) FrameNumber() int {
	env.mustBeLoaded()
	return env.sess.FrameNumber()
}

// EpisodeFrameNumber returns the number of steps since the most recent reset.
func (env *Environment) EpisodeFrameNumber() int {
	env.mustBeLoaded()
	return env.sess.EpisodeFrameNumber()
}

// LegalActionSet returns every action that may be passed to Act().
func (env *Environment) LegalActionSet() action.Set {
	env.mustBeLoaded()
	return env.sys.title.LegalActions().Copy()
}

// MinimalActionSet returns the actions that have an effect in the game.
func (env *Environment) MinimalActionSet() action.Set {
	env.mustBeLoaded()
	return env.sys.title.MinimalActions().Copy()
}

// Screen returns the screen at the end of the most recent step. The screen
// is valid until the next call to Act() or ResetGame().
func (env *Environment) Screen() *emucore.Screen {
	env.mustBeLoaded()
	return env.sess.Screen()
}

// RAM returns the RAM at the end of the most recent step. The RAM is valid
// until the next call to Act() or ResetGame().
func (env *Environment) RAM() emucore.RAM {
	env.mustBeLoaded()
	return env.sess.RAM()
}

// Title returns the name of the game being played.
func (env *Environment) Title() string {
	env.mustBeLoaded()
	return env.sys.title.Name()
}

// Cartridge returns the details of the loaded cartridge.
func (env *Environment) Cartridge() cartridgeloader.Loader {
	env.mustBeLoaded()
	return env.sys.loader
}

// Seed returns the value used to seed the environment's random number
// generator. This is the seed that was taken from the clock if the
// random_seed setting is "time".
func (env *Environment) Seed() int64 {
	env.mustBeLoaded()
	seed, _ := env.ctx.Random.CurrentSeed()
	return seed
}

// Settings returns the settings of the environment. Before LoadROM() the
// settings are the defaults.
func (env *Environment) Settings() *settings.Settings {
	return env.ctx.Settings
}

// Palette returns the palette in use. Returns nil before LoadROM().
func (env *Environment) Palette() *palette.Palette {
	if !env.loaded {
		return nil
	}
	return env.sys.palette
}

// End releases the resources held by the environment. Any recorded sound is
// written to disk. The environment cannot be used after End() has been
// called.
func (env *Environment) End() error {
	if !env.loaded || env.ended {
		return nil
	}
	env.ended = true
	env.loaded = false

	var errs []error

	if env.disp != nil {
		if err := env.disp.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if env.sound != nil {
		if err := env.sound.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := env.sys.console.Close(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return curated.Errorf("environment: end: %v", errs[0])
	}

	return nil
}
