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
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/spf13/cobra"

	"github.com/jetsetilly/ale2600/environment"
)

var flagMemviz string

var inspectCmd = &cobra.Command{
	Use:   "inspect --memviz FILE [-- -setting value ...] ROM",
	Short: "Graph the environment in memory",
	Long: `Load a ROM and write a graph of the environment's memory structure in
the DOT format. The graph can be turned into an image with graphviz. For
example:

  ale inspect --memviz env.dot pong.bin
  dot -Tsvg env.dot > env.svg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, setts, err := splitArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		if flagMemviz == "" {
			return fmt.Errorf("the --memviz flag is required")
		}
		return modeFailed(cmd, inspect(cmd.OutOrStdout(), rom, setts))
	},
}

func init() {
	inspectCmd.Flags().StringVar(&flagMemviz, "memviz", "", "file to write the graph to")
}

func inspect(output io.Writer, rom string, setts []string) (rerr error) {
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

	f, err := os.Create(flagMemviz)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if rerr == nil {
			rerr = err
		}
	}()

	memviz.Map(f, env)
	fmt.Fprintf(output, "memory graph written to %s\n", flagMemviz)

	return nil
}
