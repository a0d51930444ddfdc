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

// Package macro implements an agent that takes its actions from a macro
// script.
//
// The first line of a macro file must be the header "ale2600macro". The second
// line is a version string, which is currently ignored.
//
// The macro language is very simple and does not implement any flow control
// except basic loops.
//
//	DO loopCt [loopName]
//		...
//	LOOP
//
// The 'loopName' parameter is optional. When a loop is named the current
// counter value can be referenced as a variable in some contexts (currently,
// this is the SCREENSHOT instruction only).
//
// Loops can be nested.
//
// The joystick is controlled with the following instructions. The state of
// the joystick is held until it is changed by another instruction. Each
// instruction takes two steps so that the input has a chance to take effect
// in the game.
//
//	LEFT, RIGHT, UP, DOWN, LEFTUP, LEFTDOWN, RIGHTUP, RIGHTDOWN, CENTRE, FIRE, NOFIRE
//
// An action name (eg. PLAYER_A_UPFIRE or UPFIRE) takes a single step with
// that action. An optional count repeats the action for that many steps. The
// held joystick state is not changed.
//
//	UPFIRE 10
//
// The RESET instruction takes a single step with the RESET action.
//
// The WAIT instruction takes the specified number of steps with the held
// joystick state. If no value is given the number of steps defaults to 60.
//
// There is also an instruction to take a screenshot. The macro system is
// therefore useful to automate the collation of screenshots in a repeatable
// manner.
//
//	SCREENSHOT [filename suffix]
//
// In the context of the screenshot instruction, variables can referenced with
// the % symbol. For example, if a loop has been given the name "ct", then the
// following screenshot command could be written:
//
//	SCREENSHOT %ct
//
// The QUIT instruction ends the macro. The end of the file has the same
// effect. Once the macro has ended the agent returns bots.Quit from Act().
//
// Any error in a macro script is returned by Act() and is also logged.
//
// Lines can be commented by prefixing the line with two dashes (--). Leading
// and trailing white space is ignored.
package macro
