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

// Package palette converts the colour values produced by the console into RGB
// colours. Palettes are generated from a model of the console's colour signal
// rather than being stored as tables.
//
// The environment always applies the palette named "standard", which is the
// NTSC palette. The PAL and SECAM palettes are available to tools that want
// them.
package palette

import (
	"image/color"
	"sort"

	"github.com/jetsetilly/ale2600/curated"
)

// Palette maps every possible colour value produced by the console to an RGB
// colour. Only the top seven bits of a colour value are meaningful. The low
// bit is ignored by the console and so by the palette.
type Palette struct {
	Name    string
	entries [256]color.RGBA
}

// Color returns the RGB colour for the colour value.
func (p *Palette) Color(v uint8) color.RGBA {
	return p.entries[v]
}

// Standard is the name of the palette applied by the environment.
const Standard = "standard"

// Sentinel error returned by Lookup().
const UnknownPalette = "palette: unknown palette: %s"

type generator func(v uint8) color.RGBA

var generators = map[string]generator{
	Standard: generateNTSC,
	"ntsc":   generateNTSC,
	"pal":    generatePAL,
	"secam":  generateSECAM,
}

// Lookup returns a new instance of the named palette.
func Lookup(name string) (*Palette, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, curated.Errorf(UnknownPalette, name)
	}

	p := &Palette{Name: name}
	for i := range p.entries {
		p.entries[i] = gen(uint8(i) & 0xfe)
	}
	return p, nil
}

// Names returns the sorted list of palette names accepted by Lookup().
func Names() []string {
	n := make([]string, 0, len(generators))
	for k := range generators {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
