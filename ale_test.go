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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/ale2600/test"
)

func TestSplitArgs(t *testing.T) {
	rom, setts, err := splitArgs([]string{"pong.bin"}, -1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rom, "pong.bin")
	test.ExpectEquality(t, len(setts), 0)

	_, _, err = splitArgs([]string{"-frame_skip", "4", "pong.bin"}, -1)
	test.ExpectFailure(t, err)

	rom, setts, err = splitArgs([]string{"-frame_skip", "4", "pong.bin"}, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rom, "pong.bin")
	test.ExpectEquality(t, len(setts), 2)

	rom, setts, err = splitArgs([]string{"pong.bin", "-frame_skip", "4"}, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rom, "pong.bin")
	test.ExpectEquality(t, setts[0], "-frame_skip")

	_, _, err = splitArgs([]string{}, 0)
	test.ExpectFailure(t, err)

	_, _, err = splitArgs([]string{"a.bin", "b.bin", "-frame_skip", "4"}, 2)
	test.ExpectFailure(t, err)
}

// flag values persist between executions of the root command
func resetFlags() {
	flagQuiet = false
	flagEpisodes = 10
	flagDB = ""
	flagRecord = ""
	flagStatsview = false
	flagDisplay = false
	flagFPS = 0
	flagMacro = ""
	flagLogLines = 0
	flagLimit = 10
	flagSave = ""
	flagUsage = false
	flagMemviz = ""
	flagFrames = 6000
	flagProfile = "none"
}

// execute the root command with the arguments and return the output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	var w test.CompareWriter
	rootCmd.SetOut(&w)
	rootCmd.SetErr(&w)
	rootCmd.SetArgs(append([]string{"--quiet"}, args...))
	err := rootCmd.Execute()
	return w.String(), err
}

func writeROM(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "pong.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("command line test"), 0o644))
	return fn
}

func TestExitCode(t *testing.T) {
	test.ExpectEquality(t, exitCode(nil), 0)

	_, err := execute(t, "run")
	test.ExpectEquality(t, exitCode(err), exitArgs)

	_, err = execute(t, "run", "--episodes", "1", "--", "-core", "no_such_core", writeROM(t))
	test.ExpectEquality(t, exitCode(err), exitMode)
}

func TestRunAndScores(t *testing.T) {
	rom := writeROM(t)
	db := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "run", "--episodes", "2", "--db", db, "--",
		"-core", "null", "-random_seed", "3", "-max_num_frames_per_episode", "10", rom)
	test.DemandSuccess(t, err)

	var w test.CompareWriter
	_, _ = w.Write([]byte(out))
	test.ExpectSuccess(t, w.Contains("Episode 1 ended with score: 0"))
	test.ExpectSuccess(t, w.Contains("Episode 2 ended with score: 0"))

	out, err = execute(t, "scores", "--db", db, "--limit", "1", "pong")
	test.DemandSuccess(t, err)
	w.Clear()
	_, _ = w.Write([]byte(out))
	test.ExpectSuccess(t, w.Contains("pong: 2 episodes"))
	test.ExpectSuccess(t, w.Contains("random_agent"))

	out, err = execute(t, "scores", "--db", db, "breakout")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "no episodes of breakout\n")
}

func TestSettingsCommand(t *testing.T) {
	out, err := execute(t, "settings")
	test.DemandSuccess(t, err)

	var w test.CompareWriter
	_, _ = w.Write([]byte(out))
	test.ExpectSuccess(t, w.Contains("frame_skip :: 1"))

	fn := filepath.Join(t.TempDir(), "ale.yaml")
	_, err = execute(t, "settings", "--save", fn)
	test.DemandSuccess(t, err)
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestPerform(t *testing.T) {
	out, err := execute(t, "perform", "--frames", "20", "--profile", "none", "--",
		"-core", "null", writeROM(t))
	test.DemandSuccess(t, err)

	var w test.CompareWriter
	_, _ = w.Write([]byte(out))
	test.ExpectSuccess(t, w.Contains("fps (20 frames"))

	_, err = execute(t, "perform", "--profile", "disk", writeROM(t))
	test.ExpectEquality(t, exitCode(err), exitArgs)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", "--", "-core", "null", "-frame_skip", "2", writeROM(t))
	test.DemandSuccess(t, err)

	var w test.CompareWriter
	_, _ = w.Write([]byte(out))
	test.ExpectSuccess(t, w.Contains("title:     pong"))
	test.ExpectSuccess(t, w.Contains("frame_skip :: 2"))
}

func TestRecordAndPlayback(t *testing.T) {
	rom := writeROM(t)
	transcript := filepath.Join(t.TempDir(), "pong.transcript")

	_, err := execute(t, "run", "--episodes", "2", "--record", transcript, "--",
		"-core", "null", "-random_seed", "7", "-max_num_frames_per_episode", "15", rom)
	test.DemandSuccess(t, err)

	out, err := execute(t, "playback", transcript)
	test.DemandSuccess(t, err)

	var w test.CompareWriter
	_, _ = w.Write([]byte(out))
	test.ExpectSuccess(t, w.Contains("succeeded"))

	_, err = execute(t, "playback", rom)
	test.ExpectEquality(t, exitCode(err), exitMode)
}

func TestInspect(t *testing.T) {
	_, err := execute(t, "inspect", writeROM(t))
	test.ExpectEquality(t, exitCode(err), exitArgs)

	fn := filepath.Join(t.TempDir(), "env.dot")
	_, err = execute(t, "inspect", "--memviz", fn, "--", "-core", "null", writeROM(t))
	test.DemandSuccess(t, err)

	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestRunMacro(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.macro")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("ale2600macro\nv1\nFIRE\nWAIT 20\n"), 0o644))

	out, err := execute(t, "run", "--episodes", "1", "--macro", fn, "--", "-core", "null", writeROM(t))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out, "")

	fn = filepath.Join(t.TempDir(), "bad.macro")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("ale2600macro\nv1\nJUMP\n"), 0o644))
	_, err = execute(t, "run", "--episodes", "1", "--macro", fn, "--", "-core", "null", writeROM(t))
	test.ExpectEquality(t, exitCode(err), exitMode)
}
