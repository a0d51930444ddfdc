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

package romsettings

import (
	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/emucore"
)

type pong struct {
	scoring
}

func (t *pong) Name() string {
	return "pong"
}

func (t *pong) Reset() {
	t.reset()
}

func (t *pong) Step(ram emucore.RAM) {
	cpu := readRAM(ram, 13)
	player := readRAM(ram, 14)
	t.update(player - cpu)

	// the first to 21 wins
	t.terminal = cpu == 21 || player == 21
}

func (t *pong) MinimalActions() action.Set {
	return action.Set{
		action.PlayerANoop,
		action.PlayerAFire,
		action.PlayerARight,
		action.PlayerALeft,
		action.PlayerARightFire,
		action.PlayerALeftFire,
	}
}

type breakout struct {
	scoring

	// the game doesn't begin until the lives counter has been set to 5
	started bool
	lives   int
}

func (t *breakout) Name() string {
	return "breakout"
}

func (t *breakout) Reset() {
	t.reset()
	t.started = false
	t.lives = 5
}

func (t *breakout) Step(ram emucore.RAM) {
	x := readRAM(ram, 77)
	y := readRAM(ram, 76)
	t.update((x & 0x0f) + 10*((x&0xf0)>>4) + 100*(y&0x0f))

	t.lives = readRAM(ram, 57)
	if !t.started && t.lives == 5 {
		t.started = true
	}
	t.terminal = t.started && t.lives == 0
}

func (t *breakout) MinimalActions() action.Set {
	return action.Set{
		action.PlayerANoop,
		action.PlayerAFire,
		action.PlayerARight,
		action.PlayerALeft,
	}
}

type spaceInvaders struct {
	scoring
	lives int
}

// the score display rolls over at this value
const spaceInvadersMaxScore = 10000

func (t *spaceInvaders) Name() string {
	return "space_invaders"
}

func (t *spaceInvaders) Reset() {
	t.reset()
	t.lives = 3
}

func (t *spaceInvaders) Step(ram emucore.RAM) {
	score := decimalScore(ram, 0xe8, 0xe6)
	reward := score - t.score
	if reward < 0 {
		reward += spaceInvadersMaxScore
	}
	t.score = score
	t.reward = reward

	t.lives = readRAM(ram, 0xc9)
	t.terminal = readRAM(ram, 0x98)&0x80 == 0x80 || t.lives == 0
}

func (t *spaceInvaders) MinimalActions() action.Set {
	return action.Set{
		action.PlayerANoop,
		action.PlayerALeft,
		action.PlayerARight,
		action.PlayerAFire,
		action.PlayerALeftFire,
		action.PlayerARightFire,
	}
}

type freeway struct {
	scoring
}

func (t *freeway) Name() string {
	return "freeway"
}

func (t *freeway) Reset() {
	t.reset()
}

func (t *freeway) Step(ram emucore.RAM) {
	t.update(decimalScore(ram, 103, -1))

	// the game timer reaches one at the end of the game
	t.terminal = readRAM(ram, 22) == 1
}

func (t *freeway) MinimalActions() action.Set {
	return action.Set{
		action.PlayerANoop,
		action.PlayerAUp,
		action.PlayerADown,
	}
}

type boxing struct {
	scoring
}

// the score value that indicates a knockout
const boxingKO = 0xc0

func (t *boxing) Name() string {
	return "boxing"
}

func (t *boxing) Reset() {
	t.reset()
}

func (t *boxing) Step(ram emucore.RAM) {
	player := decimalScore(ram, 0x92, -1)
	if readRAM(ram, 0x92) == boxingKO {
		player = 100
	}
	cpu := decimalScore(ram, 0x93, -1)
	if readRAM(ram, 0x93) == boxingKO {
		cpu = 100
	}
	t.update(player - cpu)

	// the game ends with a knockout or when the two minute clock runs out
	minutes := readRAM(ram, 0x90)
	seconds := readRAM(ram, 0x91)
	t.terminal = player == 100 || cpu == 100 || (minutes == 0 && seconds == 0)
}

func (t *boxing) MinimalActions() action.Set {
	return action.Legal.Copy()
}
