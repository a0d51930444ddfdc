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

// Package statsview runs a local HTTP server showing runtime statistics of
// the program. It is only functional when built with the statsview build tag.
// Without the tag Available() returns false and Launch() does nothing but
// say so.
//
// The charts are provided by "github.com/go-echarts/statsview". After launch
// they can be viewed at:
//
//	localhost:12600/debug/statsview
//
// The standard Go pprof statistics are also available at:
//
//	localhost:12600/debug/pprof/
//
// The ale command launches the server with the --statsview flag. This is
// useful for watching allocations during a long run of episodes.
package statsview

// Address of the statsview server.
const Address = "localhost:12600"

const url = "/debug/statsview"
