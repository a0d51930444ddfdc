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

package palette_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/palette"
	"github.com/jetsetilly/ale2600/test"
)

func TestStandard(t *testing.T) {
	p, err := palette.Lookup(palette.Standard)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Name, palette.Standard)

	// colour zero is black
	test.ExpectEquality(t, p.Color(0x00), color.RGBA{A: 255})

	// hue zero is a greyscale
	c := p.Color(0x0e)
	test.ExpectEquality(t, c.R, c.G)
	test.ExpectEquality(t, c.G, c.B)

	// the low bit is ignored
	test.ExpectEquality(t, p.Color(0x45), p.Color(0x44))

	// hues with the same luminance are distinct colours
	test.ExpectInequality(t, p.Color(0x46), p.Color(0x86))

	// every entry is opaque
	for i := range 256 {
		test.ExpectEquality(t, p.Color(uint8(i)).A, uint8(255), i)
	}
}

func TestSECAM(t *testing.T) {
	p, err := palette.Lookup("secam")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Color(0x0e), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255})
	test.ExpectEquality(t, p.Color(0xf2), color.RGBA{R: 0x21, G: 0x21, B: 0xff, A: 255})
}

func TestUnknown(t *testing.T) {
	_, err := palette.Lookup("technicolor")
	test.ExpectSuccess(t, curated.Is(err, palette.UnknownPalette))
	test.ExpectEquality(t, len(palette.Names()), 4)
}
