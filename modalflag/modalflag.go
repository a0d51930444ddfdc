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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. Arguments are given to NewArgs() and then parsed in one or more
// named stages, or modes, each with its own set of flags.
//
//	md := modalflag.Modes{Output: os.Stderr}
//	md.NewArgs(args)
//	md.NewMode("SETTINGS")
//	seed := md.AddString("random_seed", "time", "seed for random numbers")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, arguments that were not flags are available through
// RemainingArgs() and GetArg(). A subsequent call to NewMode() starts a new
// stage with those remaining arguments. The flag package stops parsing at the
// first argument that isn't a flag, so the name of the next mode is usually
// that argument:
//
//	-random_seed 10 agent -episodes 4
//
// Help is printed to the Output field when the -help or -h flag is seen. The
// Output field must be set before Parse() is called.
package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// a new flagset is created on every call to NewMode()
	flags *flag.FlagSet

	// the argument list for the current mode
	args []string

	// the modes that have been started with NewMode()
	path []string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the name of the current mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes started so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs with a list of arguments (from the command line for example). An
// unnamed mode is started automatically.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.path = md.path[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// NewMode indicates that the remaining arguments should be parsed with a new
// set of flags. The name is used in help messages. If the first remaining
// argument is the name of the mode then it is consumed. Comparison is case
// insensitive.
func (md *Modes) NewMode(name string) {
	if md.flags != nil && md.flags.Parsed() {
		md.args = md.flags.Args()
	}
	if len(md.args) > 0 && strings.EqualFold(md.args[0], name) {
		md.args = md.args[1:]
	}
	md.path = append(md.path, strings.ToUpper(name))
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the arguments of the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			hw.Help(md.Output, md.Path())
			return ParseHelp, nil
		}
		return ParseError, err
	}

	return ParseContinue, nil
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
