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

package macro

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/bots"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/test"
)

// run the macro until it quits and return every action
func run(t *testing.T, mcr *Macro) []action.Action {
	t.Helper()
	var acts []action.Action
	for range 1000 {
		a, err := mcr.Act()
		if curated.Is(err, bots.Quit) {
			return acts
		}
		test.DemandSuccess(t, err)
		acts = append(acts, a)
	}
	t.Fatalf("macro did not end")
	return nil
}

func TestHeader(t *testing.T) {
	_, err := newMacro("test", "", nil)
	test.ExpectSuccess(t, curated.Is(err, MacroError))

	_, err = newMacro("test", "othermacro\nv1\n", nil)
	test.ExpectSuccess(t, curated.Is(err, MacroError))

	mcr, err := newMacro("test", "ale2600macro\nv1", nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(run(t, mcr)), 0)

	_, err = NewMacro(filepath.Join(t.TempDir(), "missing"), nil)
	test.ExpectSuccess(t, curated.Is(err, MacroError))
}

func TestInstructions(t *testing.T) {
	script := `ale2600macro
v1
-- hold left and fire
LEFT
FIRE
WAIT 3
CENTRE
NOFIRE
UPFIRE 2
RESET
QUIT
DOWN
`
	mcr, err := newMacro("test", script, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mcr.ID(), "macro_agent")

	acts := run(t, mcr)
	expected := []action.Action{
		action.PlayerALeft, action.PlayerALeft,
		action.PlayerALeftFire, action.PlayerALeftFire,
		action.PlayerALeftFire, action.PlayerALeftFire, action.PlayerALeftFire,
		action.PlayerAFire, action.PlayerAFire,
		action.PlayerANoop, action.PlayerANoop,
		action.PlayerAUpFire, action.PlayerAUpFire,
		action.Reset,
	}
	test.DemandEquality(t, len(acts), len(expected))
	for i := range expected {
		test.ExpectEquality(t, acts[i], expected[i], i)
	}

	// the macro stays ended
	_, err = mcr.Act()
	test.ExpectSuccess(t, curated.Is(err, bots.Quit))
}

func TestLoops(t *testing.T) {
	var shots []string
	screenshot := func(suffix string) error {
		shots = append(shots, suffix)
		return nil
	}

	script := `ale2600macro
v1
DO 2 outer
  DO 3
    PLAYER_A_RIGHT
  LOOP
  SCREENSHOT shot %outer
LOOP
`
	mcr, err := newMacro("test", script, screenshot)
	test.DemandSuccess(t, err)

	acts := run(t, mcr)
	test.ExpectEquality(t, len(acts), 6)
	for _, a := range acts {
		test.ExpectEquality(t, a, action.PlayerARight)
	}

	test.DemandEquality(t, len(shots), 2)
	test.ExpectEquality(t, shots[0], "shot_0")
	test.ExpectEquality(t, shots[1], "shot_1")
}

func TestScriptErrors(t *testing.T) {
	for _, script := range []string{
		"LOOP",
		"DO",
		"DO x",
		"WAIT 1 2",
		"JUMP",
		"PLAYER_B_FIRE",
		"SCREENSHOT %missing",
		"FIRE 0",
	} {
		mcr, err := newMacro("test", "ale2600macro\nv1\n"+script, func(string) error { return nil })
		test.DemandSuccess(t, err)

		_, err = mcr.Act()
		test.ExpectSuccess(t, curated.Is(err, ScriptError), script)

		// the macro ends after an error
		_, err = mcr.Act()
		test.ExpectSuccess(t, curated.Is(err, bots.Quit), script)
	}
}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.macro")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("ale2600macro\r\nv1\r\nFIRE\r\n"), 0o644))

	mcr, err := NewMacro(fn, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(run(t, mcr)), 2)
	test.ExpectSuccess(t, mcr.Close())
}
