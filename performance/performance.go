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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/environment"
)

// Sentinel error returned by Check().
const PerformanceError = "performance: %v"

// Agent is the source of actions for Check(). The agent interface in the bots
// package satisfies this interface.
type Agent interface {
	Act() (action.Action, error)
}

// noop is the Agent used by Check() when no other agent is supplied.
type noop struct{}

func (noop) Act() (action.Action, error) {
	return action.PlayerANoop, nil
}

// Result of a performance check.
type Result struct {
	Frames   int
	Episodes int
	Duration time.Duration
	FPS      float64
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%", r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy)
}

// Check the performance of the environment. The environment must have a ROM
// loaded. Actions are taken until the frame number has advanced by at least
// the number of frames requested. The game is reset whenever an episode ends.
//
// The Agent can be nil, in which case the NOOP action is always used.
//
// The profiles in the Profile argument are generated with the title of the
// game at the start of the filename. The result is written to output if it is
// not nil.
func Check(output io.Writer, env *environment.Environment, agent Agent, profile Profile, frames int) (Result, error) {
	if frames <= 0 {
		return Result{}, curated.Errorf(PerformanceError, "number of frames must be positive")
	}

	if agent == nil {
		agent = noop{}
	}

	var res Result
	startFrame := env.FrameNumber()

	runner := func() error {
		for env.FrameNumber()-startFrame < frames {
			if env.GameOver() {
				res.Episodes++
				if err := env.ResetGame(); err != nil {
					return err
				}
			}

			a, err := agent.Act()
			if err != nil {
				return err
			}

			if _, err := env.Act(a); err != nil {
				return err
			}
		}
		return nil
	}

	start := time.Now()
	err := RunProfiler(profile, env.Title(), runner)
	res.Duration = time.Since(start)
	if err != nil {
		return Result{}, curated.Errorf(PerformanceError, err)
	}

	res.Frames = env.FrameNumber() - startFrame
	res.FPS, res.Accuracy = CalcFPS(res.Frames, res.Duration)

	if output != nil {
		fmt.Fprintln(output, res.String())
	}

	return res, nil
}
