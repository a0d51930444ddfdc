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

package termdisplay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/palette"
	"github.com/jetsetilly/ale2600/test"
)

func TestRedirectedStdout(t *testing.T) {
	dir := t.TempDir()

	tty, err := os.Create(filepath.Join(dir, "tty"))
	test.DemandSuccess(t, err)
	defer tty.Close()

	redirect, err := os.Create(filepath.Join(dir, "redirect"))
	test.DemandSuccess(t, err)
	defer redirect.Close()

	savedTerminal := terminal
	savedStdout := os.Stdout
	t.Cleanup(func() {
		terminal = savedTerminal
		os.Stdout = savedStdout
	})

	// the terminal is found when the program starts. stdout is redirected
	// later
	terminal = tty
	os.Stdout = redirect

	p, err := palette.Lookup(palette.Standard)
	test.DemandSuccess(t, err)
	dsp, err := create(p)
	test.DemandSuccess(t, err)

	scr := emucore.NewScreen(emucore.ScreenWidth, emucore.ScreenHeight)
	test.DemandSuccess(t, dsp.Refresh(scr))
	test.DemandSuccess(t, dsp.Close())

	fi, err := os.Stat(redirect.Name())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fi.Size(), int64(0))

	fi, err = os.Stat(tty.Name())
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.Size() > 0)
}
