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

package bots

import (
	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/random"
	"github.com/jetsetilly/ale2600/settings"
)

// RandomAgent chooses every action at random from a set of actions.
type RandomAgent struct {
	rnd     *random.Random
	actions action.Set
}

// NewRandomAgent is the preferred method of initialisation for the
// RandomAgent type.
func NewRandomAgent(rnd *random.Random, actions action.Set) (*RandomAgent, error) {
	if len(actions) == 0 {
		return nil, curated.Errorf("bots: random agent: empty action set")
	}
	return &RandomAgent{
		rnd:     rnd,
		actions: actions.Copy(),
	}, nil
}

// ID implements the Agent interface.
func (agt *RandomAgent) ID() string {
	return settings.RandomAgent
}

// Act implements the Agent interface.
func (agt *RandomAgent) Act() (action.Action, error) {
	return agt.actions[agt.rnd.Intn(len(agt.actions))], nil
}

// Close implements the Agent interface.
func (agt *RandomAgent) Close() error {
	return nil
}
