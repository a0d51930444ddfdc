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

// ale is the command line interface to the ALE2600 environment.
//
// Usage:
//
//	ale run [flags] [-- -setting value ...] ROM    - play episodes with an agent
//	ale info [-- -setting value ...] ROM           - show details of a ROM
//	ale playback TRANSCRIPT                        - replay and verify a transcript
//	ale scores TITLE                               - list the best episodes
//	ale settings [--save FILE]                     - show the default settings
//	ale inspect --memviz FILE ROM                  - graph the environment in memory
//	ale perform [--frames N] ROM                   - measure emulation speed
//
// Settings are given after the double dash in the same form as the arguments
// to Environment.LoadROM(). For example:
//
//	ale run --episodes 5 -- -frame_skip 4 -random_seed 42 pong.bin
//
// The exit code is 10 if the command line is wrong and 20 if the command
// itself fails.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/logger"
	"github.com/jetsetilly/ale2600/version"

	// emulator cores register themselves with the emucore package
	_ "github.com/jetsetilly/ale2600/emucore/null"
)

// exit codes
const (
	exitArgs = 10
	exitMode = 20
)

// Sentinel error for a command that has failed. Any other error returned by
// the root command is a problem with the command line.
const modeError = "error in %s mode: %v"

// global flags
var (
	flagQuiet bool
)

var rootCmd = &cobra.Command{
	Use:           "ale",
	Short:         fmt.Sprintf("%s - the Arcade Learning Environment for the Atari 2600", version.ApplicationName),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if flagQuiet {
			logger.SetEcho(nil)
		} else {
			logger.SetEcho(cmd.ErrOrStderr())
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "do not echo log entries to stderr")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(playbackCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(performCmd)
}

// modeFailed wraps an error returned by a command.
func modeFailed(cmd *cobra.Command, err error) error {
	if err == nil {
		return nil
	}
	return curated.Errorf(modeError, cmd.Name(), err)
}

// exitCode returns the exit code for an error returned by the root command.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case curated.Is(err, modeError):
		return exitMode
	}
	return exitArgs
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		if curated.Is(err, modeError) {
			fmt.Fprintf(os.Stderr, "* %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		}
	}
	os.Exit(exitCode(err))
}

// splitArgs separates the ROM file from the settings in the arguments of a
// command. The ROM is the only argument before the double dash or, if there
// are no arguments before the double dash, the last argument.
func splitArgs(args []string, dash int) (string, []string, error) {
	switch {
	case dash < 0:
		if len(args) != 1 {
			return "", nil, fmt.Errorf("expected a single ROM file. use -- before any settings")
		}
		return args[0], nil, nil
	case dash == 0:
		if len(args) == 0 {
			return "", nil, fmt.Errorf("ROM file required")
		}
		return args[len(args)-1], args[:len(args)-1], nil
	case dash == 1:
		return args[0], args[1:], nil
	}
	return "", nil, fmt.Errorf("expected a single ROM file before --")
}
