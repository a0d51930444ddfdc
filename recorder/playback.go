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

package recorder

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/digest"
	"github.com/jetsetilly/ale2600/environment"
	"github.com/jetsetilly/ale2600/settings"
)

// Sentinel errors returned by Playback.Play().
const (
	PlaybackHashError   = "playback: unexpected screen at line %d (frame %d)"
	PlaybackRewardError = "playback: unexpected reward at line %d (frame %d): %d instead of %d"
	PlaybackFrameError  = "playback: unexpected frame number at line %d: %d instead of %d"
	PlaybackCartError   = "playback: cartridge does not match the recording: %s"
)

type playbackEntry struct {
	frame        int
	episodeFrame int
	reset        bool
	action       action.Action
	reward       int
	hash         string

	// the line in the transcript the entry appears
	line int
}

// Playback repeats the actions recorded in a transcript and checks the
// results.
type Playback struct {
	Transcript string

	CartName string
	CartHash string
	Args     []string

	sequence []playbackEntry
	seqCt    int

	digest *digest.Screen
}

func (plb *Playback) String() string {
	if len(plb.sequence) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.seqCt, len(plb.sequence), 100*float64(plb.seqCt)/float64(len(plb.sequence)))
}

// Len returns the number of entries in the transcript.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// NewPlayback is the preferred method of initialisation for the Playback type.
func NewPlayback(transcript string) (*Playback, error) {
	plb := &Playback{
		Transcript: transcript,
		sequence:   make([]playbackEntry, 0),
		digest:     digest.NewScreen(),
	}

	tf, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}
	buffer, err := io.ReadAll(tf)
	if err != nil {
		tf.Close()
		return nil, curated.Errorf(PlaybackError, err)
	}
	err = tf.Close()
	if err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	lines := strings.Split(string(buffer), "\n")

	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}

		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("expected %d fields at line %d", numFields, i+1))
		}

		entry := playbackEntry{line: i + 1, hash: toks[fieldHash]}

		entry.frame, err = strconv.Atoi(toks[fieldFrame])
		if err != nil {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("%v at line %d", err, i+1))
		}
		entry.episodeFrame, err = strconv.Atoi(toks[fieldEpisodeFrame])
		if err != nil {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("%v at line %d", err, i+1))
		}
		entry.reward, err = strconv.Atoi(toks[fieldReward])
		if err != nil {
			return nil, curated.Errorf(PlaybackError, fmt.Sprintf("%v at line %d", err, i+1))
		}

		if toks[fieldAction] == resetGame {
			entry.reset = true
		} else {
			entry.action, err = action.Parse(toks[fieldAction])
			if err != nil {
				return nil, curated.Errorf(PlaybackError, fmt.Sprintf("%v at line %d", err, i+1))
			}
		}

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// Play loads the recorded cartridge into the environment and repeats every
// entry in the transcript. Additional settings can be given in command line
// form but the settings in the transcript take precedence.
//
// Playback stops at the first entry that does not match the recording.
func (plb *Playback) Play(env *environment.Environment, args ...string) error {
	args = append(args, plb.Args...)
	args = append(args, "-"+settings.RepeatActionProbability, "0")

	err := env.LoadROM(plb.CartName, args...)
	if err != nil {
		return curated.Errorf(PlaybackError, err)
	}

	if env.Cartridge().Hash != plb.CartHash {
		return curated.Errorf(PlaybackCartError, plb.CartName)
	}

	plb.seqCt = 0
	plb.digest.ResetDigest()
	plb.digest.Update(env.Screen())

	for _, entry := range plb.sequence {
		var reward int
		if entry.reset {
			err = env.ResetGame()
		} else {
			reward, err = env.Act(entry.action)
		}
		if err != nil {
			return curated.Errorf(PlaybackError, err)
		}

		plb.digest.Update(env.Screen())

		if env.FrameNumber() != entry.frame {
			return curated.Errorf(PlaybackFrameError, entry.line, env.FrameNumber(), entry.frame)
		}
		if env.EpisodeFrameNumber() != entry.episodeFrame {
			return curated.Errorf(PlaybackFrameError, entry.line, env.EpisodeFrameNumber(), entry.episodeFrame)
		}
		if reward != entry.reward {
			return curated.Errorf(PlaybackRewardError, entry.line, entry.frame, reward, entry.reward)
		}
		if plb.digest.Hash() != entry.hash {
			return curated.Errorf(PlaybackHashError, entry.line, entry.frame)
		}

		plb.seqCt++
	}

	return nil
}
