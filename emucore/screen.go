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

// Dimensions of the screen and RAM of the VCS.
const (
	ScreenWidth  = 160
	ScreenHeight = 210
	RAMSize      = 128
)

// Screen is a single frame of video. Each entry in Pix is a colour value as
// produced by the console. A palette.Palette converts them to RGB.
type Screen struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(width, height int) *Screen {
	return &Screen{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// At returns the colour value at the x, y coordinates.
func (scr *Screen) At(x, y int) uint8 {
	return scr.Pix[y*scr.Width+x]
}

// Set the colour value at the x, y coordinates.
func (scr *Screen) Set(x, y int, v uint8) {
	scr.Pix[y*scr.Width+x] = v
}

// CopyFrom copies another screen into this screen, resizing if necessary.
func (scr *Screen) CopyFrom(o *Screen) {
	if len(scr.Pix) != len(o.Pix) {
		scr.Pix = make([]uint8, len(o.Pix))
	}
	scr.Width = o.Width
	scr.Height = o.Height
	copy(scr.Pix, o.Pix)
}

// RAM is the working memory of the console.
type RAM []uint8

// CopyFrom copies another RAM into this RAM, resizing if necessary.
func (ram *RAM) CopyFrom(o RAM) {
	if len(*ram) != len(o) {
		*ram = make(RAM, len(o))
	}
	copy(*ram, o)
}
