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

package settings

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jetsetilly/ale2600/curated"
)

// List of setting keys.
const (
	RandomSeed              = "random_seed"
	MaxNumFrames            = "max_num_frames"
	MaxNumFramesPerEpisode  = "max_num_frames_per_episode"
	DisplayScreen           = "display_screen"
	DisplayBackend          = "display_backend"
	PlayerAgent             = "player_agent"
	RestrictedActionSet     = "restricted_action_set"
	FrameSkip               = "frame_skip"
	RepeatActionProbability = "repeat_action_probability"
	SystemResetSteps        = "system_reset_steps"
	NoopResetSteps          = "noop_reset_steps"
	Core                    = "core"
	OutputFile              = "output_file"
	Config                  = "config"
	ROMFile                 = "rom_file"
	RecordScreenDir         = "record_screen_dir"
	RecordSoundFilename     = "record_sound_filename"
)

// List of agents accepted by the player_agent setting.
const (
	RandomAgent   = "random_agent"
	KeyboardAgent = "keyboard_agent"
)

// entry in the table of known settings.
type entry struct {
	value setting
	def   string
	usage string
}

// Sentinel errors returned by the settings package.
const (
	UnknownSetting = "settings: unknown setting: %s"
	InvalidSetting = "settings: invalid setting: %s: %v"
)

// Settings is the table of all settings for an environment. The table is
// fixed. Values can be changed but settings cannot be added or removed.
type Settings struct {
	entries map[string]*entry
}

// NewSettings is the preferred method of initialisation for the Settings
// type. The new instance has all its values set to their defaults.
func NewSettings() *Settings {
	s := &Settings{
		entries: make(map[string]*entry),
	}

	s.add(RandomSeed, &String{}, "time", "seed for the environment's random numbers. 'time' or a non-negative integer")
	s.add(MaxNumFrames, &Int{}, "0", "maximum number of frames for a run (0 is unlimited)")
	s.add(MaxNumFramesPerEpisode, &Int{}, "0", "maximum number of frames per episode (0 is unlimited)")
	s.add(DisplayScreen, &Bool{}, "false", "show the screen while the environment is running")
	s.add(DisplayBackend, &String{}, "", "display backend to use. empty for the best available")
	s.add(PlayerAgent, &String{}, RandomAgent, "agent used by the ale command: random_agent or keyboard_agent")
	s.add(RestrictedActionSet, &Bool{}, "false", "agent chooses actions from the minimal action set")
	s.add(FrameSkip, &Int{}, "1", "number of frames to run for every action")
	s.add(RepeatActionProbability, &Float{}, "0.0", "probability that the previous action is repeated instead of the new one")
	s.add(SystemResetSteps, &Int{}, "4", "number of frames the reset switch is held for during a reset")
	s.add(NoopResetSteps, &Int{}, "60", "number of no-op frames run after the console is reset")
	s.add(Core, &String{}, "", "emulator core to use. empty for the only registered core")
	s.add(OutputFile, &String{}, "", "redirect standard output to this file")
	s.add(Config, &String{}, "", "additional configuration file. loaded after the command line")
	s.add(ROMFile, &String{}, "", "the ROM file that has been loaded")
	s.add(RecordScreenDir, &String{}, "", "directory to save a PNG of every screen")
	s.add(RecordSoundFilename, &String{}, "", "file to save audio to as WAV data")

	// the defaults are known to be valid
	_ = s.SetDefaults()

	return s
}

func (s *Settings) add(key string, v setting, def string, usage string) {
	s.entries[key] = &entry{value: v, def: def, usage: usage}
}

// SetDefaults sets every setting to its default value.
func (s *Settings) SetDefaults() error {
	for k, e := range s.entries {
		if err := e.value.Set(e.def); err != nil {
			return curated.Errorf(InvalidSetting, k, err)
		}
	}
	return nil
}

// Keys returns the sorted list of setting keys.
func (s *Settings) Keys() []string {
	k := make([]string, 0, len(s.entries))
	for key := range s.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// Usage returns the description of the setting.
func (s *Settings) Usage(key string) string {
	if e, ok := s.entries[key]; ok {
		return e.usage
	}
	return ""
}

// Set changes the value of a setting. The value can be the Go type of the
// setting or a string representation of it.
func (s *Settings) Set(key string, v Value) error {
	e, ok := s.entries[key]
	if !ok {
		return curated.Errorf(UnknownSetting, key)
	}
	if err := e.value.Set(v); err != nil {
		return curated.Errorf(InvalidSetting, key, err)
	}
	return nil
}

// Get returns the value of a setting.
func (s *Settings) Get(key string) (Value, error) {
	e, ok := s.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownSetting, key)
	}
	return e.value.Get(), nil
}

// the typed getters panic if the key is unknown or is of the wrong type. the
// list of keys is fixed so this can only happen through a programming error.

// GetString returns the value of a string setting.
func (s *Settings) GetString(key string) string {
	return s.mustGet(key).(string)
}

// GetInt returns the value of an integer setting.
func (s *Settings) GetInt(key string) int {
	return s.mustGet(key).(int)
}

// GetBool returns the value of a boolean setting.
func (s *Settings) GetBool(key string) bool {
	return s.mustGet(key).(bool)
}

// GetFloat returns the value of a floating point setting.
func (s *Settings) GetFloat(key string) float64 {
	return s.mustGet(key).(float64)
}

func (s *Settings) mustGet(key string) Value {
	v, err := s.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks that the combination of settings is usable.
func (s *Settings) Validate() error {
	if v := s.GetInt(FrameSkip); v < 1 {
		return curated.Errorf(InvalidSetting, FrameSkip, fmt.Sprintf("must be at least 1 (%d)", v))
	}

	for _, k := range []string{MaxNumFrames, MaxNumFramesPerEpisode, SystemResetSteps, NoopResetSteps} {
		if v := s.GetInt(k); v < 0 {
			return curated.Errorf(InvalidSetting, k, fmt.Sprintf("must not be negative (%d)", v))
		}
	}

	if v := s.GetFloat(RepeatActionProbability); !(v >= 0.0 && v <= 1.0) {
		return curated.Errorf(InvalidSetting, RepeatActionProbability, fmt.Sprintf("must be between 0.0 and 1.0 (%v)", v))
	}

	switch v := s.GetString(PlayerAgent); v {
	case RandomAgent, KeyboardAgent:
	default:
		return curated.Errorf(InvalidSetting, PlayerAgent, fmt.Sprintf("unknown agent (%s)", v))
	}

	return nil
}

// Write the settings to io.Writer in config file format.
func (s *Settings) Write(w io.Writer) error {
	for _, k := range s.Keys() {
		if _, err := io.WriteString(w, fmt.Sprintf("%s %s %s\n", k, fieldSep, s.entries[k].value)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Settings) String() string {
	b := &strings.Builder{}
	_ = s.Write(b)
	return b.String()
}
