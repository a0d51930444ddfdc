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

// Package screenshot converts the screen of a console to an image and saves
// it as a PNG file.
package screenshot

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/palette"
)

// Sentinel error returned by Save().
const SaveError = "screenshot: %v"

// PixelWidth is the width of a VCS pixel relative to its height.
const PixelWidth = 2

// Image converts the screen to an RGBA image using the palette.
func Image(scr *emucore.Screen, p *palette.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, scr.Width, scr.Height))
	for y := range scr.Height {
		for x := range scr.Width {
			img.SetRGBA(x, y, p.Color(scr.At(x, y)))
		}
	}
	return img
}

// Scale an image to the new width and height.
func Scale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Save the screen to a PNG file. The image is scaled so that pixels have the
// correct aspect ratio. A scale of less than one is treated as one.
func Save(filename string, scr *emucore.Screen, p *palette.Palette, scale int) error {
	scale = max(scale, 1)

	img := Scale(Image(scr, p), scr.Width*PixelWidth*scale, scr.Height*scale)

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
