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

package snapshot

import (
	"image"
	"image/draw"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// size of caption text in points. the caption is drawn at 72 DPI so a point
// is a pixel.
const captionSize = 12

var captionFont struct {
	once sync.Once
	font *truetype.Font
	err  error
}

func parseCaptionFont() (*truetype.Font, error) {
	captionFont.once.Do(func() {
		captionFont.font, captionFont.err = freetype.ParseFont(goregular.TTF)
	})
	return captionFont.font, captionFont.err
}

// Caption returns a copy of the image with a strip of text added beneath it.
func Caption(img image.Image, text string) (*image.NRGBA, error) {
	f, err := parseCaptionFont()
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	strip := captionSize * 2

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+strip))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	c := freetype.NewContext()
	c.SetFont(f)
	c.SetFontSize(captionSize)
	c.SetDPI(72)
	c.SetClip(image.Rect(0, b.Dy(), b.Dx(), b.Dy()+strip))
	c.SetDst(dst)
	c.SetSrc(image.Black)

	_, err = c.DrawString(text, freetype.Pt(4, b.Dy()+captionSize+captionSize/2))
	if err != nil {
		return nil, err
	}

	return dst, nil
}
