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

package romsettings_test

import (
	"testing"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/romsettings"
	"github.com/jetsetilly/ale2600/test"
)

func TestLookup(t *testing.T) {
	tl, err := romsettings.Lookup("/roms/Pong.bin", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tl.Name(), "pong")

	// md5 takes precedence over the filename
	tl, err = romsettings.Lookup("/roms/pong.bin", "F34F08E5EB96E500E851A80BE3277A56")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tl.Name(), "breakout")

	tl, err = romsettings.Lookup("space_invaders.a26", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tl.Name(), "space_invaders")

	_, err = romsettings.Lookup("combat.bin", "00000000000000000000000000000000")
	test.ExpectSuccess(t, curated.Is(err, romsettings.UnsupportedROM))

	// every call to Lookup() returns a fresh instance
	a, _ := romsettings.Lookup("pong.bin", "")
	b, _ := romsettings.Lookup("pong.bin", "")
	ram := make(emucore.RAM, emucore.RAMSize)
	ram[14] = 1
	a.Step(ram)
	test.ExpectEquality(t, a.Reward(), 1)
	test.ExpectEquality(t, b.Reward(), 0)
}

func TestActionSets(t *testing.T) {
	for _, n := range romsettings.Names() {
		tl, err := romsettings.Lookup(n+".bin", "")
		test.DemandSuccess(t, err, n)

		legal := tl.LegalActions()
		test.ExpectEquality(t, len(legal), 18, n)
		test.ExpectSuccess(t, tl.MinimalActions().IsSubsetOf(legal), n)
		test.ExpectSuccess(t, len(tl.MinimalActions()) > 0, n)

		// changing a returned set does not change the title
		legal[0] = action.Reset
		test.ExpectEquality(t, tl.LegalActions()[0], action.PlayerANoop, n)
	}
}

func TestPong(t *testing.T) {
	tl, _ := romsettings.Lookup("pong.bin", "")
	tl.Reset()
	ram := make(emucore.RAM, emucore.RAMSize)

	// rewards are the change in score difference, not the running total
	ram[14] = 1
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 1)
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 0)

	ram[13] = 1
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), -1)
	test.ExpectFailure(t, tl.Terminal())

	ram[13] = 21
	tl.Step(ram)
	test.ExpectSuccess(t, tl.Terminal())

	tl.Reset()
	test.ExpectFailure(t, tl.Terminal())
	test.ExpectEquality(t, tl.Reward(), 0)
}

func TestBreakout(t *testing.T) {
	tl, _ := romsettings.Lookup("breakout.bin", "")
	tl.Reset()
	ram := make(emucore.RAM, emucore.RAMSize)

	// zero lives before the game has started is not terminal
	tl.Step(ram)
	test.ExpectFailure(t, tl.Terminal())

	ram[57] = 5
	ram[77] = 0x12
	ram[76] = 0x01
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 112)
	test.ExpectFailure(t, tl.Terminal())

	ram[57] = 0
	tl.Step(ram)
	test.ExpectSuccess(t, tl.Terminal())
}

func TestSpaceInvaders(t *testing.T) {
	tl, _ := romsettings.Lookup("space_invaders.bin", "")
	tl.Reset()
	ram := make(emucore.RAM, emucore.RAMSize)
	ram[0xc9&0x7f] = 3

	ram[0xe8&0x7f] = 0x50
	ram[0xe6&0x7f] = 0x99
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 9950)

	// score display rolls over
	ram[0xe8&0x7f] = 0x20
	ram[0xe6&0x7f] = 0x00
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 70)
	test.ExpectFailure(t, tl.Terminal())

	ram[0x98&0x7f] = 0x80
	tl.Step(ram)
	test.ExpectSuccess(t, tl.Terminal())
}

func TestFreeway(t *testing.T) {
	tl, _ := romsettings.Lookup("freeway.bin", "")
	tl.Reset()
	ram := make(emucore.RAM, emucore.RAMSize)

	ram[103] = 0x11
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 11)
	test.ExpectFailure(t, tl.Terminal())

	ram[22] = 1
	tl.Step(ram)
	test.ExpectSuccess(t, tl.Terminal())
}

func TestBoxing(t *testing.T) {
	tl, _ := romsettings.Lookup("boxing.bin", "")
	tl.Reset()
	ram := make(emucore.RAM, emucore.RAMSize)
	ram[0x90&0x7f] = 2

	ram[0x92&0x7f] = 0x15
	ram[0x93&0x7f] = 0x03
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 12)
	test.ExpectFailure(t, tl.Terminal())

	ram[0x92&0x7f] = 0xc0
	tl.Step(ram)
	test.ExpectEquality(t, tl.Reward(), 85)
	test.ExpectSuccess(t, tl.Terminal())
}
