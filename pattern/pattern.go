// This file is part of palmhires.
//
// palmhires is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// palmhires is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with palmhires.  If not, see <https://www.gnu.org/licenses/>.

// Package pattern draws an identifying pattern into a framebuffer, in the
// same way that an application would draw into the display after changing
// the resolution. The pattern is a QR code of the framebuffer geometry,
// centred on a white background and scaled to be as large as possible.
package pattern

import (
	"fmt"
	"image"
	"image/color"

	"rsc.io/qr"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/emureg"
)

// Memory containing the framebuffer.
type Memory interface {
	Read(addr uint32, size uint32) ([]byte, error)
	Write(addr uint32, data []byte) error
}

// width of the empty border around the code, in modules.
const quietZone = 4

// Sentinal error patterns.
const (
	TooSmall     = "pattern: framebuffer too small for pattern (%dx%d)"
	PatternError = "pattern: %v"
)

// Text returns the text encoded in the pattern for the framebuffer.
func Text(fb emureg.Framebuffer) string {
	return fmt.Sprintf("palmhires %dx%d", fb.Width, fb.Height)
}

// Draw the pattern into the framebuffer.
func Draw(mem Memory, fb emureg.Framebuffer) error {
	code, err := qr.Encode(Text(fb), qr.M)
	if err != nil {
		return curated.Errorf(PatternError, err)
	}

	side := int(fb.Width)
	if int(fb.Height) < side {
		side = int(fb.Height)
	}

	scale := side / (code.Size + quietZone*2)
	if scale < 1 {
		return curated.Errorf(TooSmall, fb.Width, fb.Height)
	}

	hdr := bitmap.NewDirect565(fb.Width, fb.Height, bitmap.DensityDouble)

	b, err := mem.Read(fb.Addr, hdr.DataSize())
	if err != nil {
		return curated.Errorf(PatternError, err)
	}

	// work on a copy of the pixel data and write it back in one go
	pix := make([]byte, len(b))
	copy(pix, b)
	img := bitmap.NewImage565(pix, hdr)

	ox := (int(fb.Width) - code.Size*scale) / 2
	oy := (int(fb.Height) - code.Size*scale) / 2

	for y := 0; y < code.Size; y++ {
		for x := 0; x < code.Size; x++ {
			c := color.Color(color.White)
			if code.Black(x, y) {
				c = color.Black
			}
			fill(img, image.Rect(ox+x*scale, oy+y*scale, ox+(x+1)*scale, oy+(y+1)*scale), c)
		}
	}

	err = mem.Write(fb.Addr, pix)
	if err != nil {
		return curated.Errorf(PatternError, err)
	}

	return nil
}

func fill(img *bitmap.Image565, r image.Rectangle, c color.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
