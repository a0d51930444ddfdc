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
	"github.com/jetsetilly/ale2600/logger"
)

var flagLogLines int

var infoCmd = &cobra.Command{
	Use:   "info [-- -setting value ...] ROM",
	Short: "Show details of a ROM",
	Long: `Load a ROM and show the game title, the cartridge details, the action
sets and the settings that result from the command line and any config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, setts, err := splitArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		return modeFailed(cmd, info(cmd.OutOrStdout(), rom, setts))
	},
}

func init() {
	infoCmd.Flags().IntVar(&flagLogLines, "log", 0, "show the last N entries of the log")
}

func info(output io.Writer, rom string, setts []string) (rerr error) {
	env, err := environment.NewEnvironment(false)
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

	cart := env.Cartridge()
	fmt.Fprintf(output, "title:     %s\n", env.Title())
	fmt.Fprintf(output, "cartridge: %s\n", cart.Filename)
	fmt.Fprintf(output, "md5:       %s\n", cart.MD5)
	fmt.Fprintf(output, "sha1:      %s\n", cart.Hash)
	fmt.Fprintf(output, "palette:   %s\n", env.Palette().Name)
	fmt.Fprintf(output, "seed:      %d\n", env.Seed())
	fmt.Fprintf(output, "legal:     %s\n", env.LegalActionSet())
	fmt.Fprintf(output, "minimal:   %s\n", env.MinimalActionSet())
	fmt.Fprintln(output)

	err = env.Settings().Write(output)
	if err != nil {
		return err
	}

	if flagLogLines > 0 {
		fmt.Fprintln(output)
		logger.Tail(output, flagLogLines)
	}

	return nil
}
