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

// Package sdldisplay shows the screen in an SDL window. The package is only
// functional when built with the sdl build tag. Without the tag the package
// is empty and no backend is registered with the display package.
//
// SDL must be driven from the main thread. The package locks the main
// goroutine to the main thread in its init() function and the environment
// that uses the display must be driven from the main goroutine.
package sdldisplay
