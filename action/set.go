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

package action

import "strings"

// Set is an ordered list of actions.
type Set []Action

// Legal is the console-wide legal action set. Every player A joystick action
// in numeric order.
var Legal Set

func init() {
	Legal = make(Set, numPlayerActions)
	for i := range Legal {
		Legal[i] = PlayerANoop + Action(i)
	}
}

// Contains returns true if the action is in the set.
func (s Set) Contains(a Action) bool {
	for _, b := range s {
		if a == b {
			return true
		}
	}
	return false
}

// IsSubsetOf returns true if every action in the set is also in the other
// set.
func (s Set) IsSubsetOf(o Set) bool {
	for _, a := range s {
		if !o.Contains(a) {
			return false
		}
	}
	return true
}

// Copy returns a copy of the set. Sets held by a title are never handed out
// without copying.
func (s Set) Copy() Set {
	c := make(Set, len(s))
	copy(c, s)
	return c
}

func (s Set) String() string {
	n := make([]string, len(s))
	for i, a := range s {
		n[i] = a.String()
	}
	return strings.Join(n, ", ")
}
