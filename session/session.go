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

// Package session owns a console and the title being played on it. It keeps
// the frame counters and the most recent screen and RAM.
//
// All changes to the counters happen through Tick() and Reset(). Tick()
// advances both counters by exactly one, however many frames the console is
// run for. Reset() returns the episode counter to zero and leaves the frame
// counter unchanged. The frames run by the reset sequence are not counted.
package session

import (
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/romsettings"
)

// Sentinel errors returned by the session package.
const (
	TickError  = "session: tick: %v"
	ResetError = "session: reset: %v"
)

// Session is the game session for a single environment.
type Session struct {
	console emucore.Console
	title   romsettings.Title

	frameSkip  int
	resetSteps int
	noopSteps  int

	frame        int
	episodeFrame int

	// the snapshots of the screen and RAM are copied from the console at the
	// end of every tick. the back buffers are filled first and then swapped
	// so that a snapshot is never partially updated
	screen     *emucore.Screen
	ram        emucore.RAM
	backScreen *emucore.Screen
	backRAM    emucore.RAM
}

// Config for a new session.
type Config struct {
	// the number of console frames for every tick. values less than one are
	// treated as one
	FrameSkip int

	// number of frames the reset switch is held for during a reset
	ResetSteps int

	// number of frames with no input run after the console has been reset
	NoopSteps int
}

// NewSession is the preferred method of initialisation for the Session type.
// The session is not ready to use until Reset() has been called.
func NewSession(console emucore.Console, title romsettings.Title, cfg Config) *Session {
	return &Session{
		console:    console,
		title:      title,
		frameSkip:  max(cfg.FrameSkip, 1),
		resetSteps: max(cfg.ResetSteps, 0),
		noopSteps:  max(cfg.NoopSteps, 0),
		screen:     &emucore.Screen{},
		backScreen: &emucore.Screen{},
	}
}

// Tick runs the console for one step with the inputs. The title is stepped
// after every frame and the rewards are summed. Returns the reward for the
// step.
func (sess *Session) Tick(in emucore.Inputs) (int, error) {
	var reward int

	for range sess.frameSkip {
		if err := sess.console.Step(in); err != nil {
			return reward, curated.Errorf(TickError, err)
		}
		sess.title.Step(sess.console.RAM())
		reward += sess.title.Reward()
	}

	sess.snapshot()
	sess.frame++
	sess.episodeFrame++

	return reward, nil
}

// Reset the console and the title and begin a new episode. The frame counter
// is unchanged.
func (sess *Session) Reset() error {
	if err := sess.console.Reset(); err != nil {
		return curated.Errorf(ResetError, err)
	}

	// let the console settle
	for range sess.noopSteps {
		if err := sess.console.Step(emucore.Inputs{}); err != nil {
			return curated.Errorf(ResetError, err)
		}
	}

	// press the reset switch and then release it
	press := emucore.Inputs{Panel: emucore.Panel{Reset: true}}
	for range sess.resetSteps {
		if err := sess.console.Step(press); err != nil {
			return curated.Errorf(ResetError, err)
		}
	}
	if err := sess.console.Step(emucore.Inputs{}); err != nil {
		return curated.Errorf(ResetError, err)
	}

	sess.title.Reset()
	sess.snapshot()
	sess.episodeFrame = 0

	return nil
}

func (sess *Session) snapshot() {
	sess.backScreen.CopyFrom(sess.console.Screen())
	sess.backRAM.CopyFrom(sess.console.RAM())
	sess.screen, sess.backScreen = sess.backScreen, sess.screen
	sess.ram, sess.backRAM = sess.backRAM, sess.ram
}

// IsTerminal returns true if the title says the game is over.
func (sess *Session) IsTerminal() bool {
	return sess.title.Terminal()
}

// FrameNumber returns the number of ticks since the session was created.
func (sess *Session) FrameNumber() int {
	return sess.frame
}

// EpisodeFrameNumber returns the number of ticks since the most recent reset.
func (sess *Session) EpisodeFrameNumber() int {
	return sess.episodeFrame
}

// Screen returns the screen at the end of the most recent tick or reset. It
// is valid until the next call to Tick() or Reset().
func (sess *Session) Screen() *emucore.Screen {
	return sess.screen
}

// RAM returns the RAM at the end of the most recent tick or reset. It is
// valid until the next call to Tick() or Reset().
func (sess *Session) RAM() emucore.RAM {
	return sess.ram
}
