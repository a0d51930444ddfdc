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

package settings

import (
	"fmt"
	"io"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/modalflag"
)

// Sentinel errors returned by LoadCommandLine().
const (
	CommandLineError = "settings: command line: %v"
	HelpRequested    = "settings: command line: help requested"
)

// LoadCommandLine reads settings from a list of command line arguments. Every
// setting can be given with a single dash, followed by its value:
//
//	-max_num_frames_per_episode 1000 -random_seed 42 pong.bin
//
// At most one argument can follow the settings and that is returned as the ROM
// file. The returned string is empty if no ROM file has been specified.
//
// Help is written to the output io.Writer if it is requested. In that case
// the HelpRequested error is returned.
func (s *Settings) LoadCommandLine(args []string, output io.Writer) (string, error) {
	md := modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode("settings")

	keys := s.Keys()
	values := make(map[string]*string, len(keys))
	for _, k := range keys {
		values[k] = md.AddString(k, s.entries[k].value.String(), s.entries[k].usage)
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return "", curated.Errorf(HelpRequested)
	case modalflag.ParseError:
		return "", curated.Errorf(CommandLineError, err)
	}

	// only flags that appear on the command line are applied. this means that
	// values from an earlier config file are not overwritten by the value
	// that was current when the flag was added
	var setErr error
	md.Visit(func(flg string) {
		if setErr != nil {
			return
		}
		setErr = s.Set(flg, *values[flg])
	})
	if setErr != nil {
		return "", curated.Errorf(CommandLineError, setErr)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return "", nil
	case 1:
		return md.GetArg(0), nil
	}

	return "", curated.Errorf(CommandLineError, fmt.Sprintf("too many arguments (%v)", md.RemainingArgs()))
}
