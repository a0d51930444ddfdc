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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions are fatal. A Demand function should be used when the value
// being tested is needed by the rest of the test.
//
// ExpectSuccess() and ExpectFailure() interpret nil as success. This is
// because of how errors usually work, where nil indicates no error.
//
// All the Expect and Demand functions accept an optional list of tags. The
// tags are printed at the start of any failure message and help to identify
// which iteration of a loop failed.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output. The Compare() function can then be used to test for equality.
package test
