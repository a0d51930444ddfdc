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
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
)

// Title is implemented by every supported game. A Title reads the RAM of the
// console after every frame and from it decides the reward and whether the
// game is over.
type Title interface {
	// Name of the title as used for lookup by filename.
	Name() string

	// Reset the title to the state of a new game.
	Reset()

	// Step is called with the console RAM after every frame.
	Step(ram emucore.RAM)

	// Reward returns the reward for the most recent call to Step().
	Reward() int

	// Terminal returns true if the game is over.
	Terminal() bool

	// LegalActions returns every action that may be taken in the game.
	LegalActions() action.Set

	// MinimalActions returns the subset of the legal actions that have an
	// effect in the game.
	MinimalActions() action.Set
}

// Sentinel error returned by Lookup().
const UnsupportedROM = "romsettings: unsupported ROM: %s"

type title struct {
	create func() Title
	md5    []string
}

// list of supported titles, keyed by the name used for filename lookup.
var titles = map[string]title{
	"pong": {
		create: func() Title { return &pong{} },
		md5:    []string{"60e0ea3cbe0913d39803477945e9e5ec"},
	},
	"breakout": {
		create: func() Title { return &breakout{} },
		md5:    []string{"f34f08e5eb96e500e851a80be3277a56"},
	},
	"space_invaders": {
		create: func() Title { return &spaceInvaders{} },
		md5:    []string{"72ffbef6504b75e69ee1045af9075f66"},
	},
	"freeway": {
		create: func() Title { return &freeway{} },
		md5:    []string{"8e0ab801b1705a740b476b7f588c6d16"},
	},
	"boxing": {
		create: func() Title { return &boxing{} },
		md5:    []string{"c3ef5c4653212088eda54dc91d787870"},
	},
}

// Lookup returns a new instance of the title for a ROM. The MD5 hash of the
// cartridge data is tried first. If the hash is not recognised then the ROM
// filename, without path or extension, is compared case insensitively with
// the title names.
func Lookup(romFile string, md5 string) (Title, error) {
	for _, t := range titles {
		for _, h := range t.md5 {
			if strings.EqualFold(h, md5) {
				return t.create(), nil
			}
		}
	}

	n := filepath.Base(romFile)
	n = strings.ToLower(strings.TrimSuffix(n, filepath.Ext(n)))
	if t, ok := titles[n]; ok {
		return t.create(), nil
	}

	return nil, curated.Errorf(UnsupportedROM, romFile)
}

// Names returns the sorted list of supported titles.
func Names() []string {
	n := make([]string, 0, len(titles))
	for k := range titles {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// readRAM reads RAM with a console address. addresses in the range 0x80 to
// 0xff are equivalent to 0x00 to 0x7f.
func readRAM(ram emucore.RAM, addr int) int {
	return int(ram[addr&0x7f])
}

// decimalScore decodes a score stored as binary coded decimal. the lower
// address holds the two least significant digits. the higher address, if it
// is not -1, holds the next two digits.
func decimalScore(ram emucore.RAM, lower int, higher int) int {
	v := readRAM(ram, lower)
	score := 10*(v>>4) + (v & 0x0f)
	if higher == -1 {
		return score
	}
	v = readRAM(ram, higher)
	score += 1000*(v>>4) + 100*(v&0x0f)
	return score
}

// scoring is embedded by every title. it implements the parts of the Title
// interface that are the same for every game.
type scoring struct {
	score    int
	reward   int
	terminal bool
}

func (s *scoring) reset() {
	s.score = 0
	s.reward = 0
	s.terminal = false
}

// update sets the reward to the change in score since the previous update.
func (s *scoring) update(score int) {
	s.reward = score - s.score
	s.score = score
}

func (s *scoring) Reward() int {
	return s.reward
}

func (s *scoring) Terminal() bool {
	return s.terminal
}

func (s *scoring) LegalActions() action.Set {
	return action.Legal.Copy()
}
