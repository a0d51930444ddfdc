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

package emucore

import (
	"sort"
	"sync"

	"github.com/jetsetilly/ale2600/curated"
)

// Creator is a function that creates a new console with the cartridge data
// inserted.
type Creator func(cart []byte, ctx *Context) (Console, error)

// Sentinel errors for the registry.
const (
	UnknownCore   = "emucore: unknown core: %s"
	DuplicateCore = "emucore: core already registered: %s"
	AmbiguousCore = "emucore: core must be named. choose from: %v"
)

var registry = struct {
	crit     sync.Mutex
	creators map[string]Creator
}{
	creators: make(map[string]Creator),
}

// Register a core with a name. Cores usually register themselves in an init()
// function.
func Register(name string, c Creator) error {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if _, ok := registry.creators[name]; ok {
		return curated.Errorf(DuplicateCore, name)
	}
	registry.creators[name] = c
	return nil
}

// Lookup the Creator for the named core. An empty name selects the only core
// that has been registered. It is an error if more than one core has been
// registered and the name is empty.
func Lookup(name string) (Creator, error) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if name == "" {
		if len(registry.creators) == 1 {
			for _, c := range registry.creators {
				return c, nil
			}
		}
		if len(registry.creators) == 0 {
			return nil, curated.Errorf(UnknownCore, "no cores registered")
		}
		return nil, curated.Errorf(AmbiguousCore, cores())
	}

	c, ok := registry.creators[name]
	if !ok {
		return nil, curated.Errorf(UnknownCore, name)
	}
	return c, nil
}

// Cores returns the sorted list of registered core names.
func Cores() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	return cores()
}

func cores() []string {
	n := make([]string, 0, len(registry.creators))
	for k := range registry.creators {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
