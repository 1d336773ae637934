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

package bitmap

import (
	"image"
	"image/color"
)

// Image565 adapts big-endian 565 pixel data to the image.Image and draw.Image
// interfaces.
type Image565 struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewImage565 returns an Image565 for pixel data with the geometry described
// by the bitmap header.
func NewImage565(pix []byte, h Header) *Image565 {
	return &Image565{
		Pix:    pix,
		Stride: int(h.Width) * BytesPerPixel,
		Rect:   image.Rect(0, 0, int(h.Width), int(h.Height)),
	}
}

// ColorModel implements the image.Image interface.
func (img *Image565) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (img *Image565) Bounds() image.Rectangle {
	return img.Rect
}

func (img *Image565) offset(x, y int) (int, bool) {
	if !(image.Point{x, y}.In(img.Rect)) {
		return 0, false
	}
	o := (y-img.Rect.Min.Y)*img.Stride + (x-img.Rect.Min.X)*BytesPerPixel
	if o+1 >= len(img.Pix) {
		return 0, false
	}
	return o, true
}

// At implements the image.Image interface.
func (img *Image565) At(x, y int) color.Color {
	o, ok := img.offset(x, y)
	if !ok {
		return color.RGBA{}
	}

	p := uint16(img.Pix[o])<<8 | uint16(img.Pix[o+1])
	r := uint8(p>>11) & 0x1f
	g := uint8(p>>5) & 0x3f
	b := uint8(p) & 0x1f

	return color.RGBA{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
		A: 0xff,
	}
}

// Set implements the draw.Image interface.
func (img *Image565) Set(x, y int, c color.Color) {
	o, ok := img.offset(x, y)
	if !ok {
		return
	}

	r, g, b, _ := c.RGBA()
	p := uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)
	img.Pix[o] = uint8(p >> 8)
	img.Pix[o+1] = uint8(p)
}
