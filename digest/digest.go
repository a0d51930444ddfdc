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

// Package digest creates fingerprints of the output of an environment. A
// digest is updated after every step and each new value depends on the
// previous one. Two runs with the same digest value have produced the same
// sequence of output.
//
// Digests are used by the recorder package to check that the playback of a
// transcript matches the original run.
package digest

// Digest implementations compute a running hash of some output.
type Digest interface {
	Hash() string
	ResetDigest()
}
