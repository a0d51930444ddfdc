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

//go:build sdl

package sdldisplay

import (
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/display"
	"github.com/jetsetilly/ale2600/emucore"
	"github.com/jetsetilly/ale2600/palette"
	"github.com/jetsetilly/ale2600/screenshot"
)

// Name of the backend in the display registry.
const Name = "sdl"

const windowTitle = "ALE2600"

// the size of each VCS pixel in the window
const pixelScale = 2

func init() {
	runtime.LockOSThread()
	_ = display.Register(Name, 10, func(p *palette.Palette) (display.Display, error) {
		return NewSdlDisplay(p)
	})
}

// SdlDisplay implements the display.Display interface.
type SdlDisplay struct {
	palette  *palette.Palette
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int32
	height   int32
}

// NewSdlDisplay is the preferred method of initialisation for the SdlDisplay
// type.
func NewSdlDisplay(p *palette.Palette) (*SdlDisplay, error) {
	dsp := &SdlDisplay{
		palette: p,
		width:   emucore.ScreenWidth,
		height:  emucore.ScreenHeight,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	dsp.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		dsp.width*screenshot.PixelWidth*pixelScale, dsp.height*pixelScale,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	dsp.renderer, err = sdl.CreateRenderer(dsp.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		dsp.window.Destroy()
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	dsp.texture, err = dsp.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), dsp.width, dsp.height)
	if err != nil {
		dsp.renderer.Destroy()
		dsp.window.Destroy()
		return nil, curated.Errorf("sdldisplay: %v", err)
	}

	dsp.renderer.Clear()
	dsp.renderer.Present()

	return dsp, nil
}

// Refresh implements the display.Display interface.
func (dsp *SdlDisplay) Refresh(scr *emucore.Screen) error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev.(type) {
		case *sdl.QuitEvent:
			return curated.Errorf(display.Closed)
		}
	}

	img := screenshot.Image(scr, dsp.palette)

	err := dsp.texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride)
	if err != nil {
		return curated.Errorf("sdldisplay: %v", err)
	}

	err = dsp.renderer.Copy(dsp.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdldisplay: %v", err)
	}
	dsp.renderer.Present()

	return nil
}

// Close implements the display.Display interface.
func (dsp *SdlDisplay) Close() error {
	if err := dsp.texture.Destroy(); err != nil {
		return curated.Errorf("sdldisplay: %v", err)
	}
	if err := dsp.renderer.Destroy(); err != nil {
		return curated.Errorf("sdldisplay: %v", err)
	}
	if err := dsp.window.Destroy(); err != nil {
		return curated.Errorf("sdldisplay: %v", err)
	}
	sdl.Quit()
	return nil
}
