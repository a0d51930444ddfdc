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

// Package termdisplay draws the screen in a terminal using half-block
// characters. Each character cell shows two pixels, one above the other.
//
// The backend is registered with the display package only if standard output
// is a terminal when the program starts. Redirecting os.Stdout afterwards
// does not affect where the display is drawn.
package termdisplay

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/display"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/palette"
	"github.com/jetsetilly/ale2600/screenshot"
)

// Name of the backend in the display registry.
const Name = "terminal"

// the width to use if the size of the terminal can't be found
const defaultWidth = 80

// the upper half block. the foreground colour is the top pixel and the
// background colour is the bottom pixel
const halfBlock = "▀"

// ANSI sequences
const (
	cursorHome = "\x1b[H"
	clearTerm  = "\x1b[2J"
	showCursor = "\x1b[?25h"
	hideCursor = "\x1b[?25l"
)

// the terminal as it was when the program started. the environment can
// redirect os.Stdout to a file before the display is created
var terminal = os.Stdout

func init() {
	if !term.IsTerminal(int(terminal.Fd())) {
		return
	}
	_ = display.Register(Name, 1, create)
}

// create is the display.Creator for the backend. The display always draws to
// the terminal even if os.Stdout has been redirected.
func create(p *palette.Palette) (display.Display, error) {
	width := defaultWidth
	if w, _, err := term.GetSize(int(terminal.Fd())); err == nil && w > 0 {
		width = w
	}
	return NewTermDisplay(terminal, p, width), nil
}

// TermDisplay implements the display.Display interface.
type TermDisplay struct {
	out      io.Writer
	palette  *palette.Palette
	renderer *lipgloss.Renderer
	width    int
	cleared  bool
	sb       strings.Builder
}

// NewTermDisplay is the preferred method of initialisation for the
// TermDisplay type. The screen is scaled to fit the number of columns.
func NewTermDisplay(out io.Writer, p *palette.Palette, columns int) *TermDisplay {
	return &TermDisplay{
		out:      out,
		palette:  p,
		renderer: lipgloss.NewRenderer(out),
		width:    max(columns, 1),
	}
}

// Size returns the number of columns and rows used to draw a screen.
func (dsp *TermDisplay) Size(scr *emucore.Screen) (int, int) {
	// number of pixel rows for the width, keeping the aspect ratio
	h := dsp.width * scr.Height / (scr.Width * screenshot.PixelWidth)
	return dsp.width, max((h+1)/2, 1)
}

// Refresh implements the display.Display interface.
func (dsp *TermDisplay) Refresh(scr *emucore.Screen) error {
	cols, rows := dsp.Size(scr)
	img := screenshot.Scale(screenshot.Image(scr, dsp.palette), cols, rows*2)

	dsp.sb.Reset()
	if !dsp.cleared {
		dsp.sb.WriteString(clearTerm)
		dsp.sb.WriteString(hideCursor)
		dsp.cleared = true
	}
	dsp.sb.WriteString(cursorHome)

	for r := range rows {
		if r > 0 {
			dsp.sb.WriteRune('\n')
		}

		// adjacent cells with the same colours are rendered with the same
		// style
		x := 0
		for x < cols {
			top := img.RGBAAt(x, r*2)
			bot := img.RGBAAt(x, r*2+1)
			n := 0
			for x < cols && img.RGBAAt(x, r*2) == top && img.RGBAAt(x, r*2+1) == bot {
				n++
				x++
			}
			style := dsp.renderer.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bot)))
			dsp.sb.WriteString(style.Render(strings.Repeat(halfBlock, n)))
		}
	}

	_, err := io.WriteString(dsp.out, dsp.sb.String())
	if err != nil {
		return curated.Errorf("termdisplay: %v", err)
	}

	return nil
}

// Close implements the display.Display interface.
func (dsp *TermDisplay) Close() error {
	if !dsp.cleared {
		return nil
	}
	_, err := io.WriteString(dsp.out, showCursor+"\n")
	if err != nil {
		return curated.Errorf("termdisplay: %v", err)
	}
	return nil
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
