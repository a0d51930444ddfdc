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

// Package bots contains the agents used by the ale command to play a game.
// An agent chooses the action for every step of an episode.
//
// The random agent is in this package. The keyboard agent, which lets a
// person play through the terminal, is in the keyboard sub-package. The macro
// agent, which plays a script of instructions, is in the macro sub-package.
package bots

import (
	"github.com/jetsetilly/ale2600/action"
)

// Sentinel error returned by an agent that has been asked to stop by the
// person or process controlling it.
const Quit = "bots: quit"

// Agent defines the functions that all agents must implement.
type Agent interface {
	// ID returns the name of the agent as used in the player_agent setting.
	ID() string

	// Act returns the action for the next step. An error matching Quit is
	// returned when the agent wants to stop playing.
	Act() (action.Action, error)

	// Close releases any resources held by the agent.
	Close() error
}
