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

// Package null implements an emulator core with no CPU. It is registered with
// the name "null".
//
// Without a script the console draws a simple pattern that depends only on
// the frame number and the joystick inputs. This makes it deterministic,
// which is useful for checking that an environment reproduces a run exactly.
//
// A Script can be supplied to NewCreator() to control the screen and RAM of
// the console on every frame. Tests use this to play the part of a real game.
package null

import (
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/palette"
)

// Name of the core in the emucore registry.
const Name = "null"

// Sentinel error returned when creating a new console.
const NoCartridge = "null: no cartridge data"

func init() {
	_ = emucore.Register(Name, NewCreator(nil))
}

// Script is called at the end of every frame with the frame number (since the
// most recent reset) and the inputs for that frame. The screen and RAM can be
// changed freely.
type Script func(frame int, in emucore.Inputs, scr *emucore.Screen, ram emucore.RAM)

// the number of audio samples produced every frame. roughly two samples per
// scanline
const samplesPerFrame = 524

// Console is the null emulator core.
type Console struct {
	script  Script
	screen  *emucore.Screen
	ram     emucore.RAM
	frame   int
	palette *palette.Palette
	audio   []uint8
	closed  bool
}

// NewCreator returns an emucore.Creator for a null console driven by the
// script. A nil script gives the default behaviour.
func NewCreator(script Script) emucore.Creator {
	return func(cart []byte, _ *emucore.Context) (emucore.Console, error) {
		if len(cart) == 0 {
			return nil, curated.Errorf(NoCartridge)
		}
		if script == nil {
			script = pattern
		}
		return &Console{
			script: script,
			screen: emucore.NewScreen(emucore.ScreenWidth, emucore.ScreenHeight),
			ram:    make(emucore.RAM, emucore.RAMSize),
		}, nil
	}
}

// Reset implements the emucore.Console interface.
func (con *Console) Reset() error {
	clear(con.screen.Pix)
	clear(con.ram)
	con.frame = 0
	con.audio = con.audio[:0]
	return nil
}

// Step implements the emucore.Console interface.
func (con *Console) Step(in emucore.Inputs) error {
	if con.closed {
		return curated.Errorf("null: console has been closed")
	}
	con.script(con.frame, in, con.screen, con.ram)
	con.frame++

	// the volume is taken from the first byte of RAM
	for range samplesPerFrame {
		con.audio = append(con.audio, con.ram[0])
	}

	return nil
}

// Screen implements the emucore.Console interface.
func (con *Console) Screen() *emucore.Screen {
	return con.screen
}

// RAM implements the emucore.Console interface.
func (con *Console) RAM() emucore.RAM {
	return con.ram
}

// SetPalette implements the emucore.Console interface.
func (con *Console) SetPalette(p *palette.Palette) error {
	con.palette = p
	return nil
}

// Palette returns the palette set by SetPalette(). Returns nil if no palette
// has been set.
func (con *Console) Palette() *palette.Palette {
	return con.palette
}

// Close implements the emucore.Console interface.
func (con *Console) Close() error {
	con.closed = true
	return nil
}

// AudioSamples implements the emucore.AudioSource interface.
func (con *Console) AudioSamples() []uint8 {
	s := make([]uint8, len(con.audio))
	copy(s, con.audio)
	con.audio = con.audio[:0]
	return s
}

// SampleRate implements the emucore.AudioSource interface.
func (con *Console) SampleRate() int {
	return samplesPerFrame * 60
}

// pattern is the default script. the frame number is stored in the first
// byte of RAM and the player 0 joystick in the second. one scanline is
// drawn per frame in a colour that depends on the joystick.
func pattern(frame int, in emucore.Inputs, scr *emucore.Screen, ram emucore.RAM) {
	var joy uint8
	if in.Player0.Up {
		joy |= 0x01
	}
	if in.Player0.Down {
		joy |= 0x02
	}
	if in.Player0.Left {
		joy |= 0x04
	}
	if in.Player0.Right {
		joy |= 0x08
	}
	if in.Player0.Fire {
		joy |= 0x10
	}

	ram[0] = uint8(frame)
	ram[1] = joy

	y := frame % scr.Height
	for x := range scr.Width {
		scr.Set(x, y, joy<<3)
	}
}
