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

package palette

import (
	"image/color"
	"math"
)

func clamp(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// the min/max values for the Y component of greyscale hues
const (
	minY = 0.35
	maxY = 1.00
)

// the phase difference between adjacent NTSC hues. the value is the one
// arrived at by following the "VCS Domestic Field Service Manual"
const ntscPhase = 26.7

// the phase difference between adjacent PAL hues
const palPhase = 16.35

// hue 1 is defined to be "gold". the colour burst is 16 counts of a 3.58MHz
// clock which gives the adjustment
const phiAdj = -57.28

// angle of the colour burst reference
const phiBurst = 180

// saturation of chroma in final colour
const saturation = 0.3

// split colour value into luminance and hue. returns the Y value for the
// luminance.
func components(v uint8) (lum uint8, hue uint8, Y float64) {
	lum = (v & 0x0e) >> 1
	hue = (v & 0xf0) >> 4
	Y = minY + (float64(lum)/8)*(maxY-minY)
	return lum, hue, Y
}

func grey(lum uint8, Y float64) color.RGBA {
	if lum == 0x00 {
		return color.RGBA{A: 255}
	}
	g := uint8(Y * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

func rgb(R, G, B float64) color.RGBA {
	return color.RGBA{
		R: uint8(clamp(R) * 255.0),
		G: uint8(clamp(G) * 255.0),
		B: uint8(clamp(B) * 255.0),
		A: 255,
	}
}

func generateNTSC(v uint8) color.RGBA {
	lum, hue, Y := components(v)

	// hue zero has no colour component
	if hue == 0x00 {
		return grey(lum, Y)
	}

	phi := (float64(hue)-1)*-ntscPhase + phiAdj + phiBurst
	phi *= math.Pi / 180

	I := Y * saturation * math.Sin(phi)
	Q := Y * saturation * math.Cos(phi)

	// NTSC 1953 colorimetry
	return rgb(
		Y+(0.956*I)+(0.619*Q),
		Y-(0.272*I)-(0.647*Q),
		Y-(1.106*I)+(1.703*Q),
	)
}

func generatePAL(v uint8) color.RGBA {
	lum, hue, Y := components(v)

	// PAL creates a greyscale for hues 0, 1, 14 and 15
	if hue <= 0x01 || hue >= 0x0e {
		return grey(lum, Y)
	}

	// odd and even hues travel round the colour wheel in opposite directions
	var phiHue float64
	if hue&0x01 == 0x01 {
		phiHue = float64(hue) * -palPhase
	} else {
		phiHue = (float64(hue) - 2) * palPhase
	}

	phi := phiHue + phiAdj + phiBurst
	phi *= math.Pi / 180

	U := Y * saturation * -math.Sin(phi)
	V := Y * saturation * -math.Cos(phi)

	// SDTV with BT.470
	return rgb(
		Y+(1.140*V),
		Y-(0.395*U)-(0.581*V),
		Y+(2.033*U),
	)
}

// SECAM only uses the luminance part of the colour value. each luminance
// is a fixed colour
var secam = [8]uint32{0x000000, 0x2121ff, 0xf03c79, 0xff50ff, 0x7fff00, 0x7fffff, 0xffff3f, 0xffffff}

func generateSECAM(v uint8) color.RGBA {
	c := secam[(v&0x0e)>>1]
	return color.RGBA{
		R: uint8((c & 0xff0000) >> 16),
		G: uint8((c & 0xff00) >> 8),
		B: uint8(c & 0xff),
		A: 255,
	}
}
