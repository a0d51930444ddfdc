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

// Package random should be used in preference to the math/rand package when a
// random number is required by an environment.
//
// Every environment owns an instance of the Random type. The instance is
// seeded once during bootstrap, either from the wall clock or from an
// explicit seed. Two environments seeded with the same value will produce the
// same sequence of numbers regardless of what any other environment in the
// process is doing.
//
// If the same numbers are required every single time then use an explicit
// seed. This is useful for testing purposes.
package random
