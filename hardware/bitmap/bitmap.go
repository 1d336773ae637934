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

// Package bitmap describes the version 3 bitmap header used by the Palm
// window manager and the "indirect" variant of the header, in which the
// pixel data is kept in a separate chunk of memory and referred to by a
// pointer placed immediately after the header.
//
// Headers are encoded big-endian, as they appear in the memory of the device.
package bitmap

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/palmhires/palmhires/curated"
)

// Flags of a bitmap header.
type Flags uint16

// List of valid Flags.
const (
	Compressed       Flags = 0x8000
	HasColorTable    Flags = 0x4000
	HasTransparency  Flags = 0x2000
	Indirect         Flags = 0x1000
	ForScreen        Flags = 0x0800
	DirectColor      Flags = 0x0400
	IndirectColorTbl Flags = 0x0200
	NoDither         Flags = 0x0100
)

func (f Flags) String() string {
	var s []string
	for _, n := range []struct {
		f    Flags
		name string
	}{
		{Compressed, "compressed"},
		{HasColorTable, "colortable"},
		{HasTransparency, "transparency"},
		{Indirect, "indirect"},
		{ForScreen, "forscreen"},
		{DirectColor, "directcolor"},
		{IndirectColorTbl, "indirectcolortable"},
		{NoDither, "nodither"},
	} {
		if f&n.f == n.f {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, "|")
}

// Pixel formats.
const (
	PixelFormatIndexed   = 0
	PixelFormat565       = 1
	PixelFormat565LE     = 2
	PixelFormatIndexedLE = 3
)

// CompressionNone is the compression type of an uncompressed bitmap.
const CompressionNone = 0xff

// Densities.
const (
	DensityLow    = 72
	DensityDouble = 144
)

// Version of the bitmap header described by this package.
const Version = 3

// HeaderSize is the size of an encoded version 3 header in bytes.
const HeaderSize = 24

// IndirectSize is the size of an indirect bitmap descriptor in bytes. A
// header followed by a 32-bit pointer to the pixel data.
const IndirectSize = HeaderSize + 4

// BytesPerPixel for the 565 pixel format.
const BytesPerPixel = 2

// MaxWidth is the widest 565 bitmap with a row stride that fits the 16-bit
// RowBytes field.
const MaxWidth = 0xffff / BytesPerPixel

// Sentinal error patterns.
const (
	ShortHeader = "bitmap: header too short (%d bytes)"
	BadVersion  = "bitmap: unsupported header version (%d)"
	TooWide     = "bitmap: width too large for row stride (%d)"
)

// Header is a version 3 bitmap header.
type Header struct {
	Width            uint16
	Height           uint16
	RowBytes         uint16
	Flags            Flags
	PixelSize        uint8
	Version          uint8
	Size             uint8
	PixelFormat      uint8
	CompressionType  uint8
	Density          uint16
	TransparentValue uint32
	NextBitmapOffset uint32
}

func (h Header) String() string {
	return fmt.Sprintf("%dx%d rowbytes=%d density=%d [%s]", h.Width, h.Height, h.RowBytes, h.Density, h.Flags)
}

// NewDirect565 returns a header for a direct color, 565 pixel format bitmap
// of the specified dimensions. The row stride is always width*2 bytes, which
// is only true if width is no more than MaxWidth.
func NewDirect565(width uint16, height uint16, density uint16) Header {
	return Header{
		Width:           width,
		Height:          height,
		RowBytes:        width * BytesPerPixel,
		Flags:           DirectColor,
		PixelSize:       16,
		Version:         Version,
		Size:            HeaderSize,
		PixelFormat:     PixelFormat565,
		CompressionType: CompressionNone,
		Density:         density,
	}
}

// DataSize returns the number of bytes required for the pixel data.
func (h Header) DataSize() uint32 {
	return uint32(h.Width) * uint32(h.Height) * BytesPerPixel
}

// Encode header as it appears in memory.
func (h Header) Encode() []byte {
	b := make([]byte, HeaderSize)
	binary.BigEndian.PutUint16(b[0:], h.Width)
	binary.BigEndian.PutUint16(b[2:], h.Height)
	binary.BigEndian.PutUint16(b[4:], h.RowBytes)
	binary.BigEndian.PutUint16(b[6:], uint16(h.Flags))
	b[8] = h.PixelSize
	b[9] = h.Version
	b[10] = h.Size
	b[11] = h.PixelFormat
	b[13] = h.CompressionType
	binary.BigEndian.PutUint16(b[14:], h.Density)
	binary.BigEndian.PutUint32(b[16:], h.TransparentValue)
	binary.BigEndian.PutUint32(b[20:], h.NextBitmapOffset)
	return b
}

// Decode header from memory.
func Decode(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, curated.Errorf(ShortHeader, len(b))
	}

	h := Header{
		Width:            binary.BigEndian.Uint16(b[0:]),
		Height:           binary.BigEndian.Uint16(b[2:]),
		RowBytes:         binary.BigEndian.Uint16(b[4:]),
		Flags:            Flags(binary.BigEndian.Uint16(b[6:])),
		PixelSize:        b[8],
		Version:          b[9],
		Size:             b[10],
		PixelFormat:      b[11],
		CompressionType:  b[13],
		Density:          binary.BigEndian.Uint16(b[14:]),
		TransparentValue: binary.BigEndian.Uint32(b[16:]),
		NextBitmapOffset: binary.BigEndian.Uint32(b[20:]),
	}

	if h.Version != Version {
		return Header{}, curated.Errorf(BadVersion, h.Version)
	}

	return h, nil
}
