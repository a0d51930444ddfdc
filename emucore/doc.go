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

// Package emucore defines the contract between the environment and an
// emulator core.
//
// An emulator core is anything that can run a cartridge one video frame at a
// time and report the screen and the working memory of the console after
// each frame. How it does that is not the concern of this package.
//
// Cores are registered by name with the Register() function and created with
// the Creator returned by Lookup(). The null package is a core with no CPU
// and is always available.
package emucore
