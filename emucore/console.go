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

package emucore

import (
	"github.com/jetsetilly/ale2600/palette"
	"github.com/jetsetilly/ale2600/random"
	"github.com/jetsetilly/ale2600/settings"
)

// Joystick is the state of a single joystick for the duration of a frame.
type Joystick struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

// Panel is the state of the console's front panel switches for the duration
// of a frame.
type Panel struct {
	Reset  bool
	Select bool
}

// Inputs to the console for the duration of a frame.
type Inputs struct {
	Player0 Joystick
	Player1 Joystick
	Panel   Panel
}

// Console is the contract for an emulator core. A Console is driven one
// frame at a time by a single goroutine.
type Console interface {
	// Reset the console as though the power had been cycled.
	Reset() error

	// Step the console for a single video frame with the given inputs.
	Step(in Inputs) error

	// Screen returns the most recent frame. The returned Screen is owned by
	// the Console and should be treated as read-only. It is valid until the
	// next call to Step() or Reset().
	Screen() *Screen

	// RAM returns the console's working memory. The same ownership rules as
	// for Screen() apply.
	RAM() RAM

	// SetPalette sets the palette used by the console for any RGB output.
	SetPalette(p *palette.Palette) error

	// Close releases any resources held by the console.
	Close() error
}

// AudioSource is implemented by consoles that produce audio.
type AudioSource interface {
	// AudioSamples returns the 8bit mono samples produced since the previous
	// call.
	AudioSamples() []uint8

	// SampleRate returns the sample frequency in Hz.
	SampleRate() int
}

// Context is handed to the Creator of a console. It gives the console access
// to the environment's own random number generator and settings.
type Context struct {
	Random   *random.Random
	Settings *settings.Settings
}

// NewContext is the preferred method of initialisation for the Context type.
func NewContext() *Context {
	return &Context{
		Random:   random.NewRandom(),
		Settings: settings.NewSettings(),
	}
}
