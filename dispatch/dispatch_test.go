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

package dispatch_test

import (
	"testing"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/dispatch"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/emucore/null"
	"github.com/jetsetilly/ale2600/random"
	"github.com/jetsetilly/ale2600/session"
	"github.com/jetsetilly/ale2600/test"
)

// fire rewards one point for every frame where the fire button is pressed.
// the null console records the joystick in the second byte of RAM
type fire struct {
	reward int
}

func (f *fire) Name() string { return "fire" }
func (f *fire) Reset()       { f.reward = 0 }
func (f *fire) Step(ram emucore.RAM) {
	f.reward = int(ram[1]>>4) & 0x01
}
func (f *fire) Reward() int                { return f.reward }
func (f *fire) Terminal() bool             { return false }
func (f *fire) LegalActions() action.Set   { return action.Legal }
func (f *fire) MinimalActions() action.Set { return action.Legal }

type mockDisplay struct {
	frames []uint8
	sess   *session.Session
}

func (m *mockDisplay) Refresh(scr *emucore.Screen) error {
	// the screen given to the display is the screen of the session after
	// the tick has completed
	m.frames = append(m.frames, m.sess.RAM()[0])
	if scr != m.sess.Screen() {
		return curated.Errorf("unexpected screen")
	}
	return nil
}

func (m *mockDisplay) Close() error {
	return nil
}

type joysticks struct {
	p0 []emucore.Joystick
	p1 []emucore.Joystick
}

func (j *joysticks) script(frame int, in emucore.Inputs, _ *emucore.Screen, ram emucore.RAM) {
	j.p0 = append(j.p0, in.Player0)
	j.p1 = append(j.p1, in.Player1)
	ram[0] = uint8(frame)
	ram[1] = 0
	if in.Player0.Fire {
		ram[1] = 0x10
	}
}

func newSession(t *testing.T, script null.Script) *session.Session {
	t.Helper()
	con, err := null.NewCreator(script)([]byte{0x00}, emucore.NewContext())
	test.DemandSuccess(t, err)
	sess := session.NewSession(con, &fire{}, session.Config{FrameSkip: 1})
	test.DemandSuccess(t, sess.Reset())
	return sess
}

func TestApply(t *testing.T) {
	var j joysticks
	sess := newSession(t, j.script)
	j.p0 = j.p0[:0]
	j.p1 = j.p1[:0]

	dsp := dispatch.NewDispatcher(sess, random.NewRandom(), nil, 0.0)

	reward, err := dsp.Apply(action.PlayerAUpFire)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reward, 1)
	test.DemandEquality(t, len(j.p0), 1)
	test.ExpectEquality(t, j.p0[0], emucore.Joystick{Up: true, Fire: true})
	test.ExpectEquality(t, j.p1[0], emucore.Joystick{})

	reward, err = dsp.Apply(action.PlayerALeft)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reward, 0)
	test.ExpectEquality(t, j.p0[1], emucore.Joystick{Left: true})

	test.ExpectEquality(t, sess.FrameNumber(), 2)
}

func TestIllegalAction(t *testing.T) {
	sess := newSession(t, nil)
	dsp := dispatch.NewDispatcher(sess, random.NewRandom(), nil, 0.0)

	_, err := dsp.Apply(action.PlayerBFire)
	test.ExpectSuccess(t, curated.Is(err, dispatch.IllegalAction))
	_, err = dsp.Apply(action.SaveState)
	test.ExpectSuccess(t, curated.Is(err, dispatch.IllegalAction))
	test.ExpectEquality(t, sess.FrameNumber(), 0)

	_, err = dsp.Apply(action.Reset)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sess.FrameNumber(), 1)
}

func TestDisplayRefresh(t *testing.T) {
	var j joysticks
	sess := newSession(t, j.script)
	md := &mockDisplay{sess: sess}
	dsp := dispatch.NewDispatcher(sess, random.NewRandom(), md, 0.0)

	for range 3 {
		_, err := dsp.Apply(action.PlayerANoop)
		test.ExpectSuccess(t, err)
	}

	// reset sequence ran one frame so the first tick is frame 1
	test.DemandEquality(t, len(md.frames), 3)
	test.ExpectEquality(t, md.frames[0], uint8(1))
	test.ExpectEquality(t, md.frames[2], uint8(3))
}

func TestStickyActions(t *testing.T) {
	var j joysticks
	sess := newSession(t, j.script)
	j.p0 = j.p0[:0]

	rnd := random.NewRandom()
	rnd.Seed(1)

	// with a probability of one the first action is always repeated
	dsp := dispatch.NewDispatcher(sess, rnd, nil, 1.0)
	for _, a := range []action.Action{action.PlayerAFire, action.PlayerAUp, action.PlayerADown} {
		_, err := dsp.Apply(a)
		test.ExpectSuccess(t, err)
	}
	for _, p := range j.p0 {
		test.ExpectEquality(t, p, emucore.Joystick{})
	}
}

func TestStickyReset(t *testing.T) {
	sess := newSession(t, nil)

	rnd := random.NewRandom()
	rnd.Seed(1)
	dsp := dispatch.NewDispatcher(sess, rnd, nil, 0.9)

	var applied []action.Action
	dsp.AddObserver(func(a action.Action, _ int) {
		applied = append(applied, a)
	})

	// keep asking for FIRE until it is used. the previous action starts as
	// NOOP so it may take a few attempts
	for range 1000 {
		_, err := dsp.Apply(action.PlayerAFire)
		test.DemandSuccess(t, err)
		if applied[len(applied)-1] == action.PlayerAFire {
			break
		}
	}
	test.DemandEquality(t, applied[len(applied)-1], action.PlayerAFire)

	// after a reset a repeat can only ever be NOOP
	for range 20 {
		dsp.Reset()
		_, err := dsp.Apply(action.PlayerANoop)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, applied[len(applied)-1], action.PlayerANoop)
	}
}

func TestObserver(t *testing.T) {
	sess := newSession(t, nil)
	dsp := dispatch.NewDispatcher(sess, random.NewRandom(), nil, 0.0)

	var applied []action.Action
	dsp.AddObserver(func(a action.Action, _ int) {
		applied = append(applied, a)
	})

	_, err := dsp.Apply(action.PlayerARight)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(applied), 1)
	test.ExpectEquality(t, applied[0], action.PlayerARight)
}

func TestInputs(t *testing.T) {
	in := dispatch.Inputs(action.Reset, action.PlayerBNoop)
	test.ExpectSuccess(t, in.Panel.Reset)
	test.ExpectEquality(t, in.Player0, emucore.Joystick{})

	in = dispatch.Inputs(action.PlayerADownRight, action.PlayerBLeftFire)
	test.ExpectFailure(t, in.Panel.Reset)
	test.ExpectEquality(t, in.Player0, emucore.Joystick{Down: true, Right: true})
	test.ExpectEquality(t, in.Player1, emucore.Joystick{Left: true, Fire: true})
}
