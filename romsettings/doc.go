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

// Package romsettings contains the rules for every supported game. The rules
// decide the reward for each frame, when the game is over and which actions
// are available.
//
// Every supported game is a type that implements the Title interface. An
// instance is found for a ROM with the Lookup() function. A ROM is matched by
// the MD5 hash of its data or, failing that, by its filename. For example, a
// file named Breakout.bin is matched to the breakout title whatever its
// contents.
//
// The legal action set is the same for every title. The minimal action set is
// always a subset of the legal set.
package romsettings
