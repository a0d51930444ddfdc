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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. Unlike fmt.Errorf()
// the first argument is a pattern and the error remembers it. The pattern is
// what identifies the error:
//
//	err := curated.Errorf("session: tick: %v", e)
//
//	if curated.Is(err, "session: tick: %v") {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of curated errors
// that have been used as values. IsAny() answers whether an error was created
// by this package at all. We can think of that as the difference between an
// expected and an unexpected error.
//
// Sentinel errors are exported const patterns. For example, the environment
// package declares
//
//	const NotReady = "environment: not ready: %s"
//
// and callers test for it with curated.Is(err, environment.NotReady).
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. A part is a section of the message separated by the sub-string ": ".
// This means that functions can wrap errors freely without worrying whether
// the caller will wrap it in the same way. So
//
//	curated.Errorf("environment: %v", curated.Errorf("environment: not ready"))
//
// prints as "environment: not ready" and not "environment: environment: not
// ready".
//
// Curated errors implement the Unwrap() []error method so the errors package
// in the standard library can find plain errors that were used as values.
package curated
