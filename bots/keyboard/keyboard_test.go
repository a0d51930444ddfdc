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

package keyboard

import (
	"io"
	"strings"
	"testing"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/bots"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/test"
)

func TestDecode(t *testing.T) {
	acts, quit := decode([]byte("wasdW \x1b[A\x1b[D"))
	test.ExpectFailure(t, quit)
	test.DemandEquality(t, len(acts), 8)
	test.ExpectEquality(t, acts[0], action.PlayerAUp)
	test.ExpectEquality(t, acts[1], action.PlayerALeft)
	test.ExpectEquality(t, acts[2], action.PlayerANoop)
	test.ExpectEquality(t, acts[3], action.PlayerARight)
	test.ExpectEquality(t, acts[4], action.PlayerAUpFire)
	test.ExpectEquality(t, acts[5], action.PlayerAFire)
	test.ExpectEquality(t, acts[6], action.PlayerAUp)
	test.ExpectEquality(t, acts[7], action.PlayerALeft)

	// unknown keys are ignored
	acts, quit = decode([]byte("1?\x1b[Z"))
	test.ExpectFailure(t, quit)
	test.ExpectEquality(t, len(acts), 0)

	acts, quit = decode([]byte{'x', KeyInterrupt, 'w'})
	test.ExpectSuccess(t, quit)
	test.DemandEquality(t, len(acts), 1)
	test.ExpectEquality(t, acts[0], action.PlayerADown)
}

func TestKeyboard(t *testing.T) {
	kb := newKeyboard(strings.NewReader("eC\x04"))

	var agt bots.Agent
	test.ExpectImplements(t, kb, agt)

	a, err := kb.Act()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, action.PlayerAUpRight)

	a, err = kb.Act()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, action.PlayerADownRightFire)

	_, err = kb.Act()
	test.ExpectSuccess(t, curated.Is(err, bots.Quit))
	test.ExpectSuccess(t, kb.Close())
}

func TestKeyboardEOF(t *testing.T) {
	r, w := io.Pipe()
	kb := newKeyboard(r)

	_, err := w.Write([]byte("x"))
	test.DemandSuccess(t, err)
	a, err := kb.Act()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, action.PlayerADown)

	test.DemandSuccess(t, w.Close())
	_, err = kb.Act()
	test.ExpectSuccess(t, curated.Is(err, bots.Quit))
}
