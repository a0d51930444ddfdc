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
	"io"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/ale2600/environment"
	"github.com/jetsetilly/ale2600/performance"
)

var (
	flagFrames  int
	flagProfile string
)

var performCmd = &cobra.Command{
	Use:   "perform [flags] [-- -setting value ...] ROM",
	Short: "Measure the speed of the environment",
	Long: `Run the game with the NOOP action for a number of frames and report the
number of frames per second. Profiles can be written with the --profile flag.
The profile argument is a comma separated list of CPU, MEM, TRACE or ALL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, setts, err := splitArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		profile, err := performance.ParseProfile(flagProfile)
		if err != nil {
			return err
		}
		return modeFailed(cmd, perform(cmd.OutOrStdout(), rom, setts, profile))
	},
}

func init() {
	performCmd.Flags().IntVar(&flagFrames, "frames", 6000, "number of frames to run")
	performCmd.Flags().StringVar(&flagProfile, "profile", "none", "profiles to create")
	performCmd.Flags().BoolVar(&flagDisplay, "display", false, "show the screen")
}

func perform(output io.Writer, rom string, setts []string, profile performance.Profile) (rerr error) {
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

	err = env.LoadROM(rom, setts...)
	if err != nil {
		return err
	}

	_, err = performance.Check(output, env, nil, profile, flagFrames)
	return err
}
