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

// Package dispatch turns an action into the inputs for a single tick of the
// game session.
//
// Player B is always given the PLAYER_B_NOOP action. The display, if there is
// one, is refreshed after the tick has completed so that it always shows the
// screen that resulted from the action.
package dispatch

import (
	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/display"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/random"
	"github.com/jetsetilly/ale2600/session"
)

// Sentinel errors returned by the dispatch package.
const (
	IllegalAction = "dispatch: illegal action: %v"
	DisplayError  = "dispatch: display: %v"
)

// Dispatcher applies actions to a session.
type Dispatcher struct {
	sess *session.Session
	rnd  *random.Random
	disp display.Display

	// probability that the previous action is repeated instead of the
	// requested action
	repeatProbability float64
	previous          action.Action

	// called after every tick with the action that was used and the reward
	observers []Observer
}

// Observer is notified after every successful tick.
type Observer func(applied action.Action, reward int)

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type. The display can be nil.
func NewDispatcher(sess *session.Session, rnd *random.Random, disp display.Display, repeatProbability float64) *Dispatcher {
	return &Dispatcher{
		sess:              sess,
		rnd:               rnd,
		disp:              disp,
		repeatProbability: repeatProbability,
		previous:          action.PlayerANoop,
	}
}

// AddObserver adds a function to be called after every tick.
func (dsp *Dispatcher) AddObserver(o Observer) {
	dsp.observers = append(dsp.observers, o)
}

// Reset forgets the previous action. The first action of a new episode is
// never replaced by the last action of the previous episode.
func (dsp *Dispatcher) Reset() {
	dsp.previous = action.PlayerANoop
}

// Apply the action for a single tick. Returns the reward for the tick.
func (dsp *Dispatcher) Apply(primary action.Action) (int, error) {
	if !primary.IsPlayerA() && primary != action.Reset {
		return 0, curated.Errorf(IllegalAction, primary)
	}

	if dsp.repeatProbability > 0.0 && dsp.rnd.Float64() < dsp.repeatProbability {
		primary = dsp.previous
	}
	dsp.previous = primary

	in := Inputs(primary, action.PlayerBNoop)

	reward, err := dsp.sess.Tick(in)
	if err != nil {
		return reward, err
	}

	for _, o := range dsp.observers {
		o(primary, reward)
	}

	if dsp.disp != nil {
		err = dsp.disp.Refresh(dsp.sess.Screen())
		if err != nil {
			return reward, curated.Errorf(DisplayError, err)
		}
	}

	return reward, nil
}

// Inputs returns the console inputs for the actions of the two players.
func Inputs(a action.Action, b action.Action) emucore.Inputs {
	return emucore.Inputs{
		Player0: a.Joystick(),
		Player1: b.Joystick(),
		Panel: emucore.Panel{
			Reset: a == action.Reset || b == action.Reset,
		},
	}
}
