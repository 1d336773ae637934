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

// Package snapshot creates images of the framebuffer the emulator is
// displaying and saves them to disk as PNG files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/emureg"
)

// Memory containing the framebuffer.
type Memory interface {
	Read(addr uint32, size uint32) ([]byte, error)
}

// Sentinal error patterns.
const (
	NoFramebuffer = "snapshot: emulator has no framebuffer"
	BadScale      = "snapshot: scale must be at least one (%d)"
	FileExists    = "snapshot: file already exists (%s)"
	SnapshotError = "snapshot: %v"
)

// Capture the framebuffer. The image is scaled by the scale factor with
// nearest neighbour scaling.
func Capture(mem Memory, fb emureg.Framebuffer, scale int) (*image.NRGBA, error) {
	if fb.Width == 0 || fb.Height == 0 {
		return nil, curated.Errorf(NoFramebuffer)
	}
	if scale < 1 {
		return nil, curated.Errorf(BadScale, scale)
	}

	hdr := bitmap.NewDirect565(fb.Width, fb.Height, bitmap.DensityDouble)

	pix, err := mem.Read(fb.Addr, hdr.DataSize())
	if err != nil {
		return nil, curated.Errorf(SnapshotError, err)
	}
	src := bitmap.NewImage565(pix, hdr)

	dst := image.NewNRGBA(image.Rect(0, 0, int(fb.Width)*scale, int(fb.Height)*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Save the image to the named file. An existing file will not be
// overwritten.
func Save(filename string, img image.Image) error {
	f, err := os.Open(filename)
	if f != nil {
		f.Close()
		return curated.Errorf(FileExists, filename)
	}
	if err != nil && !os.IsNotExist(err) {
		return curated.Errorf(SnapshotError, err)
	}

	f, err = os.Create(filename)
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return curated.Errorf(SnapshotError, err)
	}

	return nil
}

// Filename returns a filename for a snapshot of the framebuffer. The
// geometry of the framebuffer is added to the base name.
func Filename(base string, fb emureg.Framebuffer) string {
	return fmt.Sprintf("%s_%dx%d.png", base, fb.Width, fb.Height)
}
