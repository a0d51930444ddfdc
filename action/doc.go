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

// Package action defines the actions an agent can take in a single step of
// the environment.
//
// Action values are shared with every tool that drives an Arcade Learning
// Environment. Player A actions are numbered 0 to 17 and player B actions 18
// to 35. A small number of console actions (RESET etc.) are numbered from 40.
//
// The Set type is an ordered list of actions. The Legal set is the same for
// every title and lists every player A action. A title may also publish a
// minimal set, which is the subset of the legal set that has an effect in
// that game.
package action
