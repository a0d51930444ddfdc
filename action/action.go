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

package action

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
)

// Action is an input to the console for a single step of the environment.
// The numbering is stable and is shared by every agent that drives an
// environment. Values 0 to 17 are player A joystick actions, values 18 to 35
// are the same actions for player B.
type Action int

// List of valid Action values.
const (
	PlayerANoop Action = iota
	PlayerAFire
	PlayerAUp
	PlayerARight
	PlayerALeft
	PlayerADown
	PlayerAUpRight
	PlayerAUpLeft
	PlayerADownRight
	PlayerADownLeft
	PlayerAUpFire
	PlayerARightFire
	PlayerALeftFire
	PlayerADownFire
	PlayerAUpRightFire
	PlayerAUpLeftFire
	PlayerADownRightFire
	PlayerADownLeftFire

	PlayerBNoop
	PlayerBFire
	PlayerBUp
	PlayerBRight
	PlayerBLeft
	PlayerBDown
	PlayerBUpRight
	PlayerBUpLeft
	PlayerBDownRight
	PlayerBDownLeft
	PlayerBUpFire
	PlayerBRightFire
	PlayerBLeftFire
	PlayerBDownFire
	PlayerBUpRightFire
	PlayerBUpLeftFire
	PlayerBDownRightFire
	PlayerBDownLeftFire
)

// Console actions. These are not joystick actions and are numbered apart
// from them.
const (
	Reset           Action = 40
	Undefined       Action = 41
	Random          Action = 42
	SaveState       Action = 43
	LoadState       Action = 44
	SystemReset     Action = 45
	LastActionIndex Action = 50
)

// the number of joystick actions for a single player.
const numPlayerActions = 18

// the joystick part of the action name. the index into the array is the
// action value for player A.
var joystickNames = [numPlayerActions]string{
	"NOOP", "FIRE", "UP", "RIGHT", "LEFT", "DOWN",
	"UPRIGHT", "UPLEFT", "DOWNRIGHT", "DOWNLEFT",
	"UPFIRE", "RIGHTFIRE", "LEFTFIRE", "DOWNFIRE",
	"UPRIGHTFIRE", "UPLEFTFIRE", "DOWNRIGHTFIRE", "DOWNLEFTFIRE",
}

var consoleNames = map[Action]string{
	Reset:       "RESET",
	Undefined:   "UNDEFINED",
	Random:      "RANDOM",
	SaveState:   "SAVE_STATE",
	LoadState:   "LOAD_STATE",
	SystemReset: "SYSTEM_RESET",
}

func (a Action) String() string {
	switch {
	case a.IsPlayerA():
		return fmt.Sprintf("PLAYER_A_%s", joystickNames[a])
	case a.IsPlayerB():
		return fmt.Sprintf("PLAYER_B_%s", joystickNames[a-PlayerBNoop])
	}
	if s, ok := consoleNames[a]; ok {
		return s
	}
	return fmt.Sprintf("__invalid__ (%d)", int(a))
}

// IsPlayerA returns true if the action is a joystick action for player A.
func (a Action) IsPlayerA() bool {
	return a >= PlayerANoop && a <= PlayerADownLeftFire
}

// IsPlayerB returns true if the action is a joystick action for player B.
func (a Action) IsPlayerB() bool {
	return a >= PlayerBNoop && a <= PlayerBDownLeftFire
}

// Joystick decodes the action into the state of a joystick. Player B actions
// decode to the same joystick as the equivalent player A action. Console
// actions decode to a joystick in the neutral position.
func (a Action) Joystick() emucore.Joystick {
	if a.IsPlayerB() {
		a -= PlayerBNoop
	}
	if !a.IsPlayerA() {
		return emucore.Joystick{}
	}

	n := joystickNames[a]
	if n == "NOOP" {
		return emucore.Joystick{}
	}

	return emucore.Joystick{
		Up:    strings.HasPrefix(n, "UP"),
		Down:  strings.HasPrefix(n, "DOWN"),
		Left:  strings.Contains(n, "LEFT"),
		Right: strings.Contains(n, "RIGHT"),
		Fire:  strings.HasSuffix(n, "FIRE"),
	}
}

// Sentinel error returned by Parse().
const UnknownAction = "action: unknown action: %s"

// Parse converts an action name to an Action. The full name is accepted (eg.
// PLAYER_A_UPFIRE) as is the joystick part of a player A action (eg. UPFIRE).
// Matching is case insensitive.
func Parse(name string) (Action, error) {
	n := strings.ToUpper(strings.TrimSpace(name))

	for a, c := range consoleNames {
		if n == c {
			return a, nil
		}
	}

	player := PlayerANoop
	switch {
	case strings.HasPrefix(n, "PLAYER_A_"):
		n = strings.TrimPrefix(n, "PLAYER_A_")
	case strings.HasPrefix(n, "PLAYER_B_"):
		n = strings.TrimPrefix(n, "PLAYER_B_")
		player = PlayerBNoop
	}

	for i, j := range joystickNames {
		if n == j {
			return player + Action(i), nil
		}
	}

	return Undefined, curated.Errorf(UnknownAction, name)
}
