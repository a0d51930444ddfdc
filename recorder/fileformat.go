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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/ale2600/curated"
)

// transcript file format
// ----------------------
//
// the file begins with a fixed number of header lines:
//
//	<magic string>
//	<cartridge filename>
//	<cartridge hash>
//	<settings as command line arguments>
//
// every following line is an entry. the fields of an entry are separated by
// fieldSep:
//
//	<frame>, <episode frame>, <action>, <reward>, <screen digest>
//
// a call to ResetGame() is recorded with an action of resetGame.

const magicString = "ale2600 transcript"

const (
	lineMagic int = iota
	lineCartName
	lineCartHash
	lineArgs
	numHeaderLines
)

const (
	fieldFrame int = iota
	fieldEpisodeFrame
	fieldAction
	fieldReward
	fieldHash
	numFields
)

const fieldSep = ", "

// the action field value for a call to ResetGame()
const resetGame = "RESET_GAME"

func (rec *Recorder) writeHeader(cartName string, cartHash string, args []string) error {
	lines := make([]string, numHeaderLines)
	lines[lineMagic] = magicString
	lines[lineCartName] = cartName
	lines[lineCartHash] = cartHash
	lines[lineArgs] = strings.Join(args, " ")

	line := fmt.Sprintf("%s\n", strings.Join(lines, "\n"))

	n, err := io.WriteString(rec.output, line)
	if err != nil {
		return curated.Errorf(RecordingError, err)
	}
	if n != len(line) {
		return curated.Errorf(RecordingError, "output truncated")
	}

	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines || lines[lineMagic] != magicString {
		return curated.Errorf(PlaybackError, "not a transcript file")
	}

	plb.CartName = lines[lineCartName]
	plb.CartHash = lines[lineCartHash]
	plb.Args = strings.Fields(lines[lineArgs])

	return nil
}

// IsPlaybackFile returns true if the file is a transcript.
func IsPlaybackFile(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		return false
	}
	defer f.Close()

	b := bufio.NewReader(f)
	l, err := b.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSuffix(l, "\n") == magicString
}
