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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/ale2600/modalflag"
	"github.com/jetsetilly/ale2600/test"
)

func TestNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-test", "-seed", "10", "rom.bin", "extra"})
	testFlag := md.AddBool("test", false, "test flag")
	seed := md.AddString("seed", "time", "seed flag")
	frames := md.AddInt("frames", 100, "frames flag")

	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, *seed, "10")
	test.ExpectEquality(t, *frames, 100)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "rom.bin")

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.DemandEquality(t, len(visited), 2)
	test.ExpectEquality(t, visited[0], "seed")
	test.ExpectEquality(t, visited[1], "test")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-a", "1", "second", "-b", "2"})
	md.NewMode("first")
	a := md.AddString("a", "", "")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	// the flag package stops at the first argument that isn't a flag so the
	// "-b" flag is left for the next mode
	test.ExpectEquality(t, *a, "1")
	test.ExpectEquality(t, len(md.RemainingArgs()), 3)

	md.NewMode("second")
	b := md.AddString("b", "", "")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *b, "2")
	test.ExpectEquality(t, md.Path(), "FIRST/SECOND")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.NewMode("settings")
	md.AddBool("verbose", false, "print additional log messages")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Contains("for SETTINGS mode"))
	test.ExpectSuccess(t, tw.Contains("print additional log messages"))
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-unknown", "10"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}
