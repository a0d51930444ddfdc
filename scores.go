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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jetsetilly/ale2600/hiscore"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [flags] TITLE",
	Short: "List the best episodes of a game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return modeFailed(cmd, scores(cmd.OutOrStdout(), args[0]))
	},
}

func init() {
	scoresCmd.Flags().StringVar(&flagDB, "db", "", "episode database")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "number of episodes to list")
}

func scores(output io.Writer, title string) error {
	store, err := hiscore.Open(flagDB)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(title)
	if err != nil {
		return err
	}

	if stats.Episodes == 0 {
		fmt.Fprintf(output, "no episodes of %s\n", title)
		return nil
	}

	eps, err := store.TopEpisodes(title, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %d episodes, high score %d, average %.1f\n\n",
		stats.Title, stats.Episodes, stats.High, stats.Average)

	w := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tscore\tframes\tagent\tseed\tplayed")
	for i, ep := range eps {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%d\t%s\n", i+1, ep.Score, ep.Frames, ep.Agent, ep.Seed,
			ep.Played.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
