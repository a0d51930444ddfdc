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

// Package environment is the control surface for an agent playing an Atari
// 2600 game. It implements the life cycle of the Arcade Learning Environment:
//
//	env, err := environment.NewEnvironment(false)
//	err = env.LoadROM("pong.bin", "-random_seed", "123")
//	for !env.GameOver() {
//		reward, err := env.Act(action.PlayerAFire)
//		...
//	}
//	err = env.ResetGame()
//
// LoadROM() runs the bootstrap. Settings are taken from the defaults, the
// ale.cfg file in the resource path, the arguments to LoadROM() and finally
// any file named by the config setting, in that order. The emulator core is
// chosen with the core setting and the game is identified from the cartridge
// data or the ROM filename.
//
// Every bootstrap failure is returned as an error matching BootstrapError.
// The curated.Has() function can be used to find the underlying cause. For
// example:
//
//	if curated.Has(err, cartridgeloader.NoROM) {
//		...
//	}
//
// Each environment has its own random number generator, seeded with the
// random_seed setting, which is used for sticky actions and is shared with
// the emulator core.
//
// The output_file setting redirects os.Stdout for the entire process. The
// redirection is not undone when the environment ends.
package environment
