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

	"github.com/jetsetilly/ale2600/settings"
)

var (
	flagSave  string
	flagUsage bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings [flags]",
	Short: "Show the default settings",
	Long: `Show the default value of every setting. The output is in the config
file format and can be used as the starting point for a config file. The
--save flag writes the defaults to a file instead. YAML is written if the
filename ends with .yaml or .yml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return modeFailed(cmd, showSettings(cmd.OutOrStdout()))
	},
}

func init() {
	settingsCmd.Flags().StringVar(&flagSave, "save", "", "write the default settings to a file")
	settingsCmd.Flags().BoolVar(&flagUsage, "usage", false, "show a description of each setting")
}

func showSettings(output io.Writer) error {
	st := settings.NewSettings()

	if flagSave != "" {
		err := st.Save(flagSave)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "settings saved to %s\n", flagSave)
		return nil
	}

	if flagUsage {
		for _, k := range st.Keys() {
			fmt.Fprintf(output, "%s\n\t%s\n", k, st.Usage(k))
		}
		return nil
	}

	return st.Write(output)
}
