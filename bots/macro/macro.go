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

package macro

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/bots"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/logger"
)

// Sentinel errors returned by the macro package.
const (
	MacroError  = "macro: %v"
	ScriptError = "macro: %s: %d: %v"
)

// Screenshot is called by the SCREENSHOT instruction with the filename suffix.
type Screenshot func(suffix string) error

const (
	headerLineID = iota
	headerLineVersion
	headerNumLines
)

const headerID = "ale2600macro"

// number of steps taken by a joystick instruction
const controlSteps = 2

// number of steps taken by WAIT without an argument
const defaultWait = 60

type loop struct {
	line int

	// loop counters count upwards because it is more natural when
	// referencing the counter value to think of the counter as counting
	// upwards
	count    int
	countEnd int

	// if loop counter has been named then we need to know it so that we can
	// update the entry in the variables table
	countName string
}

// Macro is an agent that takes actions from a series of instructions.
type Macro struct {
	filename     string
	instructions []string
	screenshot   Screenshot

	// the next line to be executed
	ln int

	loops     []loop
	variables map[string]int

	// held joystick state
	stick string
	fire  bool

	// action to be repeated and the number of steps remaining
	pending      action.Action
	pendingCount int

	ended bool
}

// NewMacro is the preferred method of initialisation for the Macro type. The
// screenshot function can be nil, in which case the SCREENSHOT instruction is
// ignored.
func NewMacro(filename string, screenshot Screenshot) (*Macro, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(MacroError, err)
	}
	return newMacro(filename, string(b), screenshot)
}

func newMacro(filename string, script string, screenshot Screenshot) (*Macro, error) {
	mcr := &Macro{
		filename:   filename,
		screenshot: screenshot,
		variables:  make(map[string]int),
	}

	// convert file contents to an array of lines
	mcr.instructions = strings.Split(strings.ReplaceAll(script, "\r\n", "\n"), "\n")
	if len(mcr.instructions) < headerNumLines {
		return nil, curated.Errorf(MacroError, fmt.Sprintf("%s: not a macro file", filename))
	}
	if strings.TrimSpace(mcr.instructions[headerLineID]) != headerID {
		return nil, curated.Errorf(MacroError, fmt.Sprintf("%s: not a macro file", filename))
	}

	// we no longer need the header
	mcr.instructions = mcr.instructions[headerNumLines:]

	return mcr, nil
}

// ID implements the bots.Agent interface.
func (mcr *Macro) ID() string {
	return "macro_agent"
}

// Close implements the bots.Agent interface.
func (mcr *Macro) Close() error {
	mcr.ended = true
	return nil
}

// held returns the action for the current state of the joystick.
func (mcr *Macro) held() action.Action {
	n := mcr.stick
	if mcr.fire {
		n = fmt.Sprintf("%sFIRE", n)
	}
	if n == "" {
		return action.PlayerANoop
	}

	// stick and fire values are always valid so the error can be ignored
	a, _ := action.Parse(n)
	return a
}

// repeat the action for the number of steps and return the first of them.
func (mcr *Macro) repeat(a action.Action, n int) action.Action {
	mcr.pending = a
	mcr.pendingCount = n - 1
	return a
}

// the names of the joystick instructions and the joystick direction they set.
var sticks = map[string]string{
	"LEFT":      "LEFT",
	"RIGHT":     "RIGHT",
	"UP":        "UP",
	"DOWN":      "DOWN",
	"LEFTUP":    "UPLEFT",
	"LEFTDOWN":  "DOWNLEFT",
	"RIGHTUP":   "UPRIGHT",
	"RIGHTDOWN": "DOWNRIGHT",
	"CENTRE":    "",
	"CENTER":    "",
}

// Act implements the bots.Agent interface.
func (mcr *Macro) Act() (action.Action, error) {
	if mcr.pendingCount > 0 {
		mcr.pendingCount--
		return mcr.pending, nil
	}

	for !mcr.ended && mcr.ln < len(mcr.instructions) {
		ln := mcr.ln
		mcr.ln++

		a, ok, err := mcr.execute(ln, strings.Fields(mcr.instructions[ln]))
		if err != nil {
			mcr.ended = true
			err = curated.Errorf(ScriptError, mcr.filename, ln+headerNumLines+1, err)
			logger.Log(logger.Allow, "macro", err)
			return action.PlayerANoop, err
		}
		if ok {
			return a, nil
		}
	}

	mcr.ended = true
	return action.PlayerANoop, curated.Errorf(bots.Quit)
}

// execute the instruction on line ln. returns true if the instruction
// produces an action.
func (mcr *Macro) execute(ln int, toks []string) (action.Action, bool, error) {
	if len(toks) == 0 || strings.HasPrefix(toks[0], "--") {
		return action.PlayerANoop, false, nil
	}

	cmd := strings.ToUpper(toks[0])

	if dir, ok := sticks[cmd]; ok {
		if len(toks) > 1 {
			return action.PlayerANoop, false, fmt.Errorf("too many arguments for %s", cmd)
		}
		mcr.stick = dir
		return mcr.repeat(mcr.held(), controlSteps), true, nil
	}

	switch cmd {
	case "DO":
		switch len(toks) {
		case 2, 3:
			ct, err := strconv.Atoi(toks[1])
			if err != nil {
				return action.PlayerANoop, false, err
			}
			if ct < 1 {
				return action.PlayerANoop, false, fmt.Errorf("loop count must be positive")
			}
			lp := loop{
				line:     ln + 1,
				countEnd: ct,
			}
			if len(toks) == 3 {
				lp.countName = toks[2]
				mcr.variables[lp.countName] = lp.count
			}
			mcr.loops = append(mcr.loops, lp)
		case 1:
			return action.PlayerANoop, false, fmt.Errorf("too few arguments for DO")
		default:
			return action.PlayerANoop, false, fmt.Errorf("too many arguments for DO")
		}

	case "LOOP":
		if len(toks) > 1 {
			return action.PlayerANoop, false, fmt.Errorf("too many arguments for LOOP")
		}

		idx := len(mcr.loops) - 1
		if idx == -1 {
			return action.PlayerANoop, false, fmt.Errorf("LOOP without a DO")
		}

		lp := &mcr.loops[idx]
		lp.count++

		if lp.count < lp.countEnd {
			// loop is ongoing so return to start of loop
			mcr.ln = lp.line
			if lp.countName != "" {
				mcr.variables[lp.countName] = lp.count
			}
		} else {
			// loop has ended. remove from loop stack and delete variable name
			delete(mcr.variables, lp.countName)
			mcr.loops = mcr.loops[:idx]
		}

	case "WAIT":
		w := defaultWait
		switch len(toks) {
		case 1:
		case 2:
			var err error
			w, err = strconv.Atoi(toks[1])
			if err != nil {
				return action.PlayerANoop, false, err
			}
		default:
			return action.PlayerANoop, false, fmt.Errorf("too many arguments for WAIT")
		}
		if w > 0 {
			return mcr.repeat(mcr.held(), w), true, nil
		}

	case "FIRE", "NOFIRE":
		if len(toks) > 1 {
			return action.PlayerANoop, false, fmt.Errorf("too many arguments for %s", cmd)
		}
		mcr.fire = cmd == "FIRE"
		return mcr.repeat(mcr.held(), controlSteps), true, nil

	case "SCREENSHOT":
		if mcr.screenshot == nil {
			break
		}

		var s strings.Builder
		for _, c := range toks[1:] {
			if strings.HasPrefix(c, "%") {
				v, ok := mcr.variables[c[1:]]
				if !ok {
					return action.PlayerANoop, false, fmt.Errorf("variable '%s' does not exist", c[1:])
				}
				s.WriteString(strconv.Itoa(v))
			} else {
				s.WriteString(c)
			}
			s.WriteRune(' ')
		}

		// the filename suffix is all the "words" in string builder joined
		// with an underscore
		err := mcr.screenshot(strings.Join(strings.Fields(s.String()), "_"))
		if err != nil {
			return action.PlayerANoop, false, err
		}

	case "QUIT":
		if len(toks) > 1 {
			return action.PlayerANoop, false, fmt.Errorf("too many arguments for QUIT")
		}
		mcr.ended = true

	default:
		a, err := action.Parse(cmd)
		if err != nil {
			return action.PlayerANoop, false, fmt.Errorf("unrecognised instruction: %s", toks[0])
		}
		if !a.IsPlayerA() && a != action.Reset {
			return action.PlayerANoop, false, fmt.Errorf("action cannot be used in a macro: %s", toks[0])
		}

		n := 1
		switch len(toks) {
		case 1:
		case 2:
			n, err = strconv.Atoi(toks[1])
			if err != nil {
				return action.PlayerANoop, false, err
			}
			if n < 1 {
				return action.PlayerANoop, false, fmt.Errorf("repeat count must be positive")
			}
		default:
			return action.PlayerANoop, false, fmt.Errorf("too many arguments for %s", toks[0])
		}
		return mcr.repeat(a, n), true, nil
	}

	return action.PlayerANoop, false, nil
}
