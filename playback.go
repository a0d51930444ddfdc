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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/ale2600/environment"
	"github.com/jetsetilly/ale2600/recorder"
)

var playbackCmd = &cobra.Command{
	Use:   "playback [flags] TRANSCRIPT [-- -setting value ...]",
	Short: "Replay and verify a transcript",
	Long: `Replay the actions in a transcript created with the --record flag of
the run command. Every step is checked against the recording. The command
fails at the first step that does not match.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transcript, setts, err := splitArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		return modeFailed(cmd, playback(cmd.OutOrStdout(), transcript, setts))
	},
}

func init() {
	playbackCmd.Flags().BoolVar(&flagDisplay, "display", false, "show the screen")
}

func playback(output io.Writer, transcript string, setts []string) (rerr error) {
	if !recorder.IsPlaybackFile(transcript) {
		return fmt.Errorf("%s is not a transcript", transcript)
	}

	plb, err := recorder.NewPlayback(transcript)
	if err != nil {
		return err
	}

	env, err := environment.NewEnvironment(flagDisplay)
	if err != nil {
		return err
	}
	defer func() {
		err := env.End()
		if rerr == nil {
			rerr = err
		}
	}()

	err = plb.Play(env, setts...)
	if err != nil {
		fmt.Fprintf(output, "playback stopped at %s\n", plb)
		return err
	}

	fmt.Fprintf(output, "playback of %s succeeded: %s\n", plb.CartName, plb)
	return nil
}
