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

// Package keyboard is an agent controlled by a person at the terminal. The
// terminal is put into raw mode and every key press is an action. The
// environment waits for a key before every step.
//
// The keys are laid out like the directions of a joystick:
//
//	q w e
//	a s d
//	z x c
//
// The s key is no movement. Capital letters are the same directions with the
// fire button pressed and the space bar is the fire button on its own. The
// cursor keys can also be used. Ctrl-C or Ctrl-D stops the agent.
package keyboard

import (
	"io"
	"unicode"

	"github.com/pkg/term"

	"github.com/jetsetilly/ale2600/action"
	"github.com/jetsetilly/ale2600/bots"
	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/settings"
)

// the terminal device to open
const device = "/dev/tty"

// Keyboard implements the bots.Agent interface.
type Keyboard struct {
	tty *term.Term

	actions chan action.Action

	// closed when reading from the terminal has stopped. readErr is nil if
	// reading stopped because of a quit key
	done    chan struct{}
	readErr error
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. The terminal stays in raw mode until Close() is called.
func NewKeyboard() (*Keyboard, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, curated.Errorf("keyboard: %v", err)
	}

	kb := newKeyboard(tty)
	kb.tty = tty

	return kb, nil
}

// newKeyboard starts reading keys from the reader.
func newKeyboard(r io.Reader) *Keyboard {
	kb := &Keyboard{
		actions: make(chan action.Action, 16),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(kb.done)

		b := make([]byte, 16)
		for {
			n, err := r.Read(b)
			if n > 0 {
				acts, quit := decode(b[:n])
				for _, a := range acts {
					select {
					case kb.actions <- a:
					default:
						// a full queue means the person is typing faster than
						// the environment is stepping
					}
				}
				if quit {
					return
				}
			}
			if err != nil {
				kb.readErr = err
				return
			}
		}
	}()

	return kb
}

// ID implements the bots.Agent interface.
func (kb *Keyboard) ID() string {
	return settings.KeyboardAgent
}

// Act implements the bots.Agent interface. It blocks until a key has been
// pressed.
func (kb *Keyboard) Act() (action.Action, error) {
	select {
	case a := <-kb.actions:
		return a, nil
	case <-kb.done:
	}

	// actions queued before reading stopped are still returned
	select {
	case a := <-kb.actions:
		return a, nil
	default:
	}

	if kb.readErr != nil && kb.readErr != io.EOF {
		return action.PlayerANoop, curated.Errorf("keyboard: %v", kb.readErr)
	}
	return action.PlayerANoop, curated.Errorf(bots.Quit)
}

// Close implements the bots.Agent interface. The terminal is restored to its
// original mode.
func (kb *Keyboard) Close() error {
	if kb.tty == nil {
		return nil
	}
	err := kb.tty.Restore()
	if err != nil {
		_ = kb.tty.Close()
		return curated.Errorf("keyboard: %v", err)
	}
	err = kb.tty.Close()
	kb.tty = nil
	if err != nil {
		return curated.Errorf("keyboard: %v", err)
	}
	return nil
}

var letters = map[rune]action.Action{
	'q': action.PlayerAUpLeft,
	'w': action.PlayerAUp,
	'e': action.PlayerAUpRight,
	'a': action.PlayerALeft,
	's': action.PlayerANoop,
	'd': action.PlayerARight,
	'z': action.PlayerADownLeft,
	'x': action.PlayerADown,
	'c': action.PlayerADownRight,
}

var firing = map[action.Action]action.Action{
	action.PlayerAUpLeft:    action.PlayerAUpLeftFire,
	action.PlayerAUp:        action.PlayerAUpFire,
	action.PlayerAUpRight:   action.PlayerAUpRightFire,
	action.PlayerALeft:      action.PlayerALeftFire,
	action.PlayerANoop:      action.PlayerAFire,
	action.PlayerARight:     action.PlayerARightFire,
	action.PlayerADownLeft:  action.PlayerADownLeftFire,
	action.PlayerADown:      action.PlayerADownFire,
	action.PlayerADownRight: action.PlayerADownRightFire,
}

var cursor = map[byte]action.Action{
	CursorUp:       action.PlayerAUp,
	CursorDown:     action.PlayerADown,
	CursorForward:  action.PlayerARight,
	CursorBackward: action.PlayerALeft,
}

// decode the bytes read from the terminal into actions. quit is true if a
// key to stop the agent was found. any actions before the quit key are
// returned.
func decode(b []byte) ([]action.Action, bool) {
	var acts []action.Action

	for i := 0; i < len(b); i++ {
		switch c := b[i]; c {
		case KeyInterrupt, KeyEOF:
			return acts, true

		case KeyEsc:
			if i+2 < len(b) && b[i+1] == EscCursor {
				if a, ok := cursor[b[i+2]]; ok {
					acts = append(acts, a)
				}
				i += 2
			}

		case KeySpace:
			acts = append(acts, action.PlayerAFire)

		default:
			r := rune(c)
			if a, ok := letters[unicode.ToLower(r)]; ok {
				if unicode.IsUpper(r) {
					a = firing[a]
				}
				acts = append(acts, a)
			}
		}
	}

	return acts, false
}
