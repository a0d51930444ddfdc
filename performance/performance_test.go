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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore/null"
	"github.com/jetsetilly/ale2600/environment"
	"github.com/jetsetilly/ale2600/performance"
	"github.com/jetsetilly/ale2600/test"
)

func newEnvironment(t *testing.T, args ...string) *environment.Environment {
	t.Helper()
	rom := filepath.Join(t.TempDir(), "pong.bin")
	test.DemandSuccess(t, os.WriteFile(rom, []byte("performance"), 0o644))

	env, err := environment.NewEnvironment(false)
	test.DemandSuccess(t, err)
	args = append([]string{"-core", null.Name, "-random_seed", "1"}, args...)
	test.DemandSuccess(t, env.LoadROM(rom, args...))
	t.Cleanup(func() {
		_ = env.End()
	})
	return env
}

type fireAgent struct {
	n int
}

func (a *fireAgent) Act() (action.Action, error) {
	a.n++
	return action.PlayerAFire, nil
}

func TestCheck(t *testing.T) {
	env := newEnvironment(t, "-max_num_frames_per_episode", "10")

	res, err := performance.Check(nil, env, nil, performance.ProfileNone, 25)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 25)
	test.ExpectEquality(t, res.Episodes, 2)
	test.ExpectEquality(t, env.FrameNumber(), 25)

	agent := &fireAgent{}
	var w test.CompareWriter
	res, err = performance.Check(&w, env, agent, performance.ProfileNone, 5)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 5)
	test.ExpectEquality(t, agent.n, 5)
	test.ExpectSuccess(t, w.Contains("fps (5 frames"))

	_, err = performance.Check(nil, env, nil, performance.ProfileNone, 0)
	test.ExpectSuccess(t, curated.Is(err, performance.PerformanceError))
}

func TestCalcFPS(t *testing.T) {
	fps, acc := performance.CalcFPS(120, time.Second)
	test.ExpectApproximate(t, fps, 120.0, 0.001)
	test.ExpectApproximate(t, acc, 200.0, 0.001)

	fps, acc = performance.CalcFPS(120, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, acc, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("cpu, Mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestRunProfiler(t *testing.T) {
	header := filepath.Join(t.TempDir(), "test")

	var ran bool
	err := performance.RunProfiler(performance.ProfileMem, header, func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectFailure(t, err)
}
