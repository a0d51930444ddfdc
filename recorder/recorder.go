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

// Package recorder writes and plays back transcripts of an environment. A
// transcript is the list of actions applied to the environment, together
// with the reward and a digest of the screen after every step.
//
// Playing back a transcript with the same ROM and emulator core should
// produce exactly the same rewards and screens. Any difference is reported
// as an error. This is useful for checking that changes to an emulator core
// have not affected emulation.
//
// The actions recorded are those that were actually applied, after the
// effect of repeat_action_probability. Playback is always made with a repeat
// probability of zero.
package recorder

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/digest"
	"github.com/jetsetilly/ale2600/environment"
	"github.com/jetsetilly/ale2600/settings"
)

// Sentinel errors returned by the recorder package.
const (
	RecordingError = "recorder: %v"
	PlaybackError  = "playback: %v"
)

// settings that are recorded in the transcript header. these are the settings
// that affect what happens on each step
var recordedSettings = []string{
	settings.Core,
	settings.FrameSkip,
	settings.SystemResetSteps,
	settings.NoopResetSteps,
}

// Recorder transcribes the steps taken by an environment.
type Recorder struct {
	env    *environment.Environment
	output *os.File
	digest *digest.Screen

	// errors that occur in the observer function are returned by the next call
	// to ResetGame() or End()
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The environment must have had a ROM loaded and no steps taken. Every
// subsequent step will be recorded. Calls to ResetGame() should be made through the recorder so that
// they are recorded too.
func NewRecorder(transcript string, env *environment.Environment) (*Recorder, error) {
	if env.FrameNumber() != 0 {
		return nil, curated.Errorf(RecordingError, "environment has already taken steps")
	}

	rec := &Recorder{
		env:    env,
		digest: digest.NewScreen(),
	}

	args := make([]string, 0, len(recordedSettings)*2+2)
	for _, k := range recordedSettings {
		v, err := env.Settings().Get(k)
		if err != nil {
			return nil, curated.Errorf(RecordingError, err)
		}
		if s := fmt.Sprint(v); s != "" {
			args = append(args, "-"+k, s)
		}
	}
	args = append(args, "-"+settings.RandomSeed, strconv.FormatInt(env.Seed(), 10))

	var err error

	rec.output, err = os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf(RecordingError, err)
	}

	cart := env.Cartridge()
	err = rec.writeHeader(cart.Filename, cart.Hash, args)
	if err != nil {
		rec.output.Close()
		return nil, err
	}

	err = env.AddObserver(rec.observe)
	if err != nil {
		rec.output.Close()
		return nil, curated.Errorf(RecordingError, err)
	}

	rec.digest.Update(env.Screen())

	return rec, nil
}

func (rec *Recorder) observe(a action.Action, reward int) {
	if rec.err != nil || rec.output == nil {
		return
	}
	rec.digest.Update(rec.env.Screen())
	rec.err = rec.writeEntry(a.String(), reward)
}

func (rec *Recorder) writeEntry(act string, reward int) error {
	line := fmt.Sprintf("%d%s%d%s%s%s%d%s%s\n",
		rec.env.FrameNumber(), fieldSep,
		rec.env.EpisodeFrameNumber(), fieldSep,
		act, fieldSep,
		reward, fieldSep,
		rec.digest.Hash(),
	)

	n, err := rec.output.WriteString(line)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if n != len(line) {
		return curated.Errorf(RecordingError, "output truncated")
	}

	return nil
}

// ResetGame resets the environment and records the reset.
func (rec *Recorder) ResetGame() error {
	if rec.err != nil {
		return rec.err
	}
	if rec.output == nil {
		return curated.Errorf(RecordingError, "recording has ended")
	}

	err := rec.env.ResetGame()
	if err != nil {
		return err
	}

	rec.digest.Update(rec.env.Screen())
	return rec.writeEntry(resetGame, 0)
}

// End the recording and close the transcript file. Steps taken by the
// environment after End() are not recorded.
func (rec *Recorder) End() error {
	if rec.output == nil {
		return rec.err
	}

	err := rec.output.Close()
	rec.output = nil
	if rec.err != nil {
		return rec.err
	}
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}

	return nil
}
