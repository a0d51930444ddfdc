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

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/bots"
	"github.com/jetsetilly/ale2600/bots/keyboard"
	"github.com/jetsetilly/ale2600/bots/macro"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/environment"
	"github.com/jetsetilly/ale2600/hiscore"
	"github.com/jetsetilly/ale2600/paths"
	"github.com/jetsetilly/ale2600/performance/limiter"
	"github.com/jetsetilly/ale2600/random"
	"github.com/jetsetilly/ale2600/recorder"
	"github.com/jetsetilly/ale2600/screenshot"
	"github.com/jetsetilly/ale2600/settings"
	"github.com/jetsetilly/ale2600/statsview"
)

var (
	flagEpisodes  int
	flagDB        string
	flagRecord    string
	flagStatsview bool
	flagDisplay   bool
	flagFPS       int
	flagMacro     string
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [-- -setting value ...] ROM",
	Short: "Play episodes of a game with an agent",
	Long: `Play episodes of a game with the agent named by the player_agent
setting. The random agent is used by default. The keyboard agent lets you
play the game from the terminal.

The result of every episode is printed to stderr. Results can also be kept
in the episode database with the --db flag.

The --macro flag plays the game with a script of instructions instead. See
the documentation of the macro package for the language.

Examples:
  ale run pong.bin
  ale run --episodes 10 --db ~/.ale/hiscore.db -- -random_seed 42 pong.bin
  ale run --display -- -player_agent keyboard_agent breakout.bin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rom, setts, err := splitArgs(args, cmd.ArgsLenAtDash())
		if err != nil {
			return err
		}
		if flagEpisodes < 1 {
			return fmt.Errorf("number of episodes must be at least one")
		}
		return modeFailed(cmd, run(cmd.ErrOrStderr(), rom, setts))
	},
}

func init() {
	runCmd.Flags().IntVar(&flagEpisodes, "episodes", 10, "number of episodes to play")
	runCmd.Flags().StringVar(&flagDB, "db", "", "episode database to add results to")
	runCmd.Flags().StringVar(&flagRecord, "record", "", "record a transcript of the run to this file")
	runCmd.Flags().BoolVar(&flagStatsview, "statsview", false, "launch the statsview server")
	runCmd.Flags().BoolVar(&flagDisplay, "display", false, "show the screen")
	runCmd.Flags().StringVar(&flagMacro, "macro", "", "play the game with a macro script")
	runCmd.Flags().IntVar(&flagFPS, "fps", 0, "limit the number of actions per second (0 is unlimited)")
}

func run(output io.Writer, rom string, setts []string) (rerr error) {
	if flagStatsview {
		statsview.Launch(output)
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

	err = env.LoadROM(rom, setts...)
	if err != nil {
		return err
	}

	agent, err := newAgent(env)
	if err != nil {
		return err
	}
	defer agent.Close()

	var store *hiscore.Store
	if flagDB != "" {
		store, err = hiscore.Open(flagDB)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	reset := env.ResetGame
	if flagRecord != "" {
		rec, err := recorder.NewRecorder(flagRecord, env)
		if err != nil {
			return err
		}
		defer func() {
			err := rec.End()
			if rerr == nil {
				rerr = err
			}
		}()
		reset = rec.ResetGame
	}

	var lim *limiter.FpsLimiter
	if flagFPS > 0 {
		lim, err = limiter.NewFPSLimiter(flagFPS)
		if err != nil {
			return err
		}
		defer lim.Stop()
	}

	// the run ends early if the total number of frames reaches this value
	maxFrames := env.Settings().GetInt(settings.MaxNumFrames)

	for episode := 1; episode <= flagEpisodes; episode++ {
		var score int
		for !env.GameOver() {
			if maxFrames > 0 && env.FrameNumber() >= maxFrames {
				return nil
			}

			a, err := agent.Act()
			if err != nil {
				if curated.Is(err, bots.Quit) {
					return nil
				}
				return err
			}

			if lim != nil {
				lim.Wait()
			}

			reward, err := env.Act(a)
			if err != nil {
				return err
			}
			score += reward
		}

		fmt.Fprintf(output, "Episode %d ended with score: %d\n", episode, score)

		if store != nil {
			_, err = store.SaveEpisode(&hiscore.Episode{
				Title:    env.Title(),
				CartHash: env.Cartridge().Hash,
				Agent:    agent.ID(),
				Seed:     env.Seed(),
				Frames:   env.EpisodeFrameNumber(),
				Score:    score,
			})
			if err != nil {
				return err
			}
		}

		err = reset()
		if err != nil {
			return err
		}
	}

	return nil
}

// newAgent creates the agent named in the player_agent setting. The macro
// agent is used instead if the --macro flag has been set.
func newAgent(env *environment.Environment) (bots.Agent, error) {
	st := env.Settings()

	if flagMacro != "" {
		shot := func(suffix string) error {
			fn := fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", env.Cartridge().ShortName()))
			if suffix != "" {
				fn = fmt.Sprintf("%s_%s.png", env.Cartridge().ShortName(), suffix)
			}
			return screenshot.Save(fn, env.Screen(), env.Palette(), 2)
		}
		mcr, err := macro.NewMacro(flagMacro, shot)
		if err != nil {
			return nil, err
		}
		return mcr, nil
	}

	switch st.GetString(settings.PlayerAgent) {
	case settings.KeyboardAgent:
		kb, err := keyboard.NewKeyboard()
		if err != nil {
			return nil, err
		}
		return kb, nil
	}

	var set action.Set
	if st.GetBool(settings.RestrictedActionSet) {
		set = env.MinimalActionSet()
	} else {
		set = env.LegalActionSet()
	}

	rnd := random.NewRandom()
	rnd.Seed(env.Seed())

	agt, err := bots.NewRandomAgent(rnd, set)
	if err != nil {
		return nil, err
	}
	return agt, nil
}
