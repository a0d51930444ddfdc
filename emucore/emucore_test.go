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

package emucore_test

import (
	"testing"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/test"
)

func creator(cart []byte, ctx *emucore.Context) (emucore.Console, error) {
	return nil, nil
}

func TestRegistry(t *testing.T) {
	_, err := emucore.Lookup("")
	test.ExpectSuccess(t, curated.Is(err, emucore.UnknownCore))

	test.DemandSuccess(t, emucore.Register("alpha", creator))
	err = emucore.Register("alpha", creator)
	test.ExpectSuccess(t, curated.Is(err, emucore.DuplicateCore))

	// a single registered core is selected by the empty name
	_, err = emucore.Lookup("")
	test.ExpectSuccess(t, err)

	test.DemandSuccess(t, emucore.Register("beta", creator))
	_, err = emucore.Lookup("")
	test.ExpectSuccess(t, curated.Is(err, emucore.AmbiguousCore))

	_, err = emucore.Lookup("beta")
	test.ExpectSuccess(t, err)

	_, err = emucore.Lookup("gamma")
	test.ExpectSuccess(t, curated.Is(err, emucore.UnknownCore))

	test.ExpectEquality(t, len(emucore.Cores()), 2)
}

func TestScreen(t *testing.T) {
	a := emucore.NewScreen(emucore.ScreenWidth, emucore.ScreenHeight)
	a.Set(5, 6, 0x42)
	test.ExpectEquality(t, a.At(5, 6), uint8(0x42))

	b := &emucore.Screen{}
	b.CopyFrom(a)
	test.ExpectEquality(t, b.Width, emucore.ScreenWidth)
	test.ExpectEquality(t, b.At(5, 6), uint8(0x42))

	// copies are independent
	a.Set(5, 6, 0x00)
	test.ExpectEquality(t, b.At(5, 6), uint8(0x42))

	var r emucore.RAM
	r.CopyFrom(emucore.RAM{1, 2, 3})
	test.ExpectEquality(t, len(r), 3)
	test.ExpectEquality(t, r[2], uint8(3))
}
