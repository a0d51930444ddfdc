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

// Package display is the registry of the display backends that can show the
// screen of a running environment. Backends register themselves in their
// init() function and are only available if they have been compiled into the
// program.
//
// The terminal backend is in the termdisplay package. The SDL backend is in
// the sdldisplay package and is only compiled with the sdl build tag.
package display

import (
	"sort"
	"sync"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/palette"
)

// Display is implemented by every display backend.
type Display interface {
	// Refresh the display with a new screen. The display must not keep a
	// reference to the screen.
	Refresh(scr *emucore.Screen) error

	// Close the display and release any resources.
	Close() error
}

// Creator creates a new display that uses the palette to convert the screen
// to RGB.
type Creator func(p *palette.Palette) (Display, error)

// Sentinel errors returned by the display package.
const (
	UnknownDisplay   = "display: unknown display: %s"
	NoDisplay        = "display: no display backend available"
	DuplicateDisplay = "display: display already registered: %s"
	Closed           = "display: window closed"
)

type backend struct {
	name     string
	priority int
	create   Creator
}

var (
	crit     sync.Mutex
	backends []backend
)

// Register a display backend. When no backend is named the backend with the
// highest priority is used.
func Register(name string, priority int, create Creator) error {
	crit.Lock()
	defer crit.Unlock()

	for _, b := range backends {
		if b.name == name {
			return curated.Errorf(DuplicateDisplay, name)
		}
	}

	backends = append(backends, backend{name: name, priority: priority, create: create})
	sort.SliceStable(backends, func(i, j int) bool {
		return backends[i].priority > backends[j].priority
	})

	return nil
}

// Available returns the names of the registered backends in order of
// priority.
func Available() []string {
	crit.Lock()
	defer crit.Unlock()

	n := make([]string, len(backends))
	for i, b := range backends {
		n[i] = b.name
	}
	return n
}

// Create a display. An empty name selects the backend with the highest
// priority.
func Create(name string, p *palette.Palette) (Display, error) {
	crit.Lock()
	defer crit.Unlock()

	if len(backends) == 0 {
		return nil, curated.Errorf(NoDisplay)
	}

	if name == "" {
		return backends[0].create(p)
	}

	for _, b := range backends {
		if b.name == name {
			return b.create(p)
		}
	}

	return nil, curated.Errorf(UnknownDisplay, name)
}
