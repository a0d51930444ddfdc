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

package environment

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jetsetilly/ale2600/cartridgeloader"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/logger"
	"github.com/jetsetilly/ale2600/palette"
	"github.com/jetsetilly/ale2600/paths"
	"github.com/jetsetilly/ale2600/random"
	"github.com/jetsetilly/ale2600/romsettings"
	"github.com/jetsetilly/ale2600/settings"
)

// DefaultConfig is the name of the configuration file that is loaded, if it
// exists, before the command line is parsed. The file is looked for in the
// resource path.
const DefaultConfig = "ale.cfg"

// the result of a successful bootstrap
type system struct {
	ctx     *emucore.Context
	loader  cartridgeloader.Loader
	title   romsettings.Title
	console emucore.Console
	palette *palette.Palette
}

// commandLine builds the arguments for the bootstrap from the arguments
// given to LoadROM(). The ROM file is always the final argument.
func commandLine(displayScreen bool, romFile string, args []string) []string {
	argv := []string{
		"-" + settings.PlayerAgent, settings.RandomAgent,
		"-" + settings.DisplayScreen, strconv.FormatBool(displayScreen),
	}
	argv = append(argv, args...)
	argv = append(argv, romFile)
	return argv
}

// bootstrap creates the console for a ROM from the list of command line
// arguments. Errors are not wrapped in BootstrapError.
//
// If bootstrap fails after the console has been created then the console is
// closed before returning.
func bootstrap(ctx *emucore.Context, argv []string) (_ *system, rerr error) {
	sys := &system{ctx: ctx}

	// defaults
	err := ctx.Settings.SetDefaults()
	if err != nil {
		return nil, err
	}

	// the default configuration file followed by the command line. values on
	// the command line take precedence
	cfg := paths.ResourcePath(DefaultConfig)
	if _, err := os.Stat(cfg); err == nil {
		err = ctx.Settings.LoadConfig(cfg)
		if err != nil {
			return nil, err
		}
	}

	romFile, err := ctx.Settings.LoadCommandLine(argv, os.Stderr)
	if err != nil {
		return nil, err
	}

	// a configuration file named on the command line is loaded last and so
	// takes precedence over the command line
	if cfg := ctx.Settings.GetString(settings.Config); cfg != "" {
		err = ctx.Settings.LoadConfig(cfg)
		if err != nil {
			return nil, err
		}
	}

	err = ctx.Settings.Validate()
	if err != nil {
		return nil, err
	}

	create, err := emucore.Lookup(ctx.Settings.GetString(settings.Core))
	if err != nil {
		return nil, err
	}

	// redirection of stdout affects the entire process and is never undone
	if out := ctx.Settings.GetString(settings.OutputFile); out != "" {
		f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, curated.Errorf("output file: %v", err)
		}
		logger.Logf(logger.Allow, logTag, "Redirecting ... %s", out)
		os.Stdout = f
	}

	// cartridge and title
	sys.loader = cartridgeloader.NewLoader(romFile)
	err = sys.loader.Exists()
	if err != nil {
		return nil, err
	}
	err = sys.loader.Load()
	if err != nil {
		return nil, err
	}

	sys.title, err = romsettings.Lookup(sys.loader.ShortName(), sys.loader.MD5)
	if err != nil {
		return nil, err
	}

	// console
	sys.console, err = create(sys.loader.Data, ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rerr != nil {
			_ = sys.console.Close()
		}
	}()

	logger.Log(logger.Allow, logTag, "Running ROM file...")
	err = ctx.Settings.Set(settings.ROMFile, romFile)
	if err != nil {
		return nil, err
	}

	// random seed. the seed is only ever applied to the environment's own
	// random number generator
	seed, ok, err := random.ParseSeed(ctx.Settings.GetString(settings.RandomSeed))
	if err != nil {
		return nil, err
	}
	if ok {
		ctx.Random.Seed(seed)
		logger.Log(logger.Allow, logTag, fmt.Sprintf("Random Seed: %d", seed))
	} else {
		ctx.Random.SeedFromTime()
		logger.Log(logger.Allow, logTag, "Random Seed: Time")
	}

	// palette
	sys.palette, err = palette.Lookup(palette.Standard)
	if err != nil {
		return nil, err
	}
	err = sys.console.SetPalette(sys.palette)
	if err != nil {
		return nil, err
	}

	return sys, nil
}
