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
	"encoding/binary"
)

// Memory is the memory in which bitmaps are found.
type Memory interface {
	Read(addr uint32, size uint32) ([]byte, error)
	Write(addr uint32, data []byte) error
}

// Read the header of the bitmap at addr.
func Read(mem Memory, addr uint32) (Header, error) {
	b, err := mem.Read(addr, HeaderSize)
	if err != nil {
		return Header{}, err
	}
	return Decode(b)
}

// Write the header of the bitmap at addr.
func Write(mem Memory, addr uint32, h Header) error {
	return mem.Write(addr, h.Encode())
}

// DataAddress returns the address of the bitmap's pixel data. For indirect
// bitmaps this is the pointer following the header. For all other bitmaps
// the data immediately follows the header.
func DataAddress(mem Memory, addr uint32, h Header) (uint32, error) {
	if h.Flags&Indirect != Indirect {
		return addr + uint32(h.Size), nil
	}
	b, err := mem.Read(addr+HeaderSize, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// SetDataAddress sets the pointer of an indirect bitmap.
func SetDataAddress(mem Memory, addr uint32, data uint32) error {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, data)
	return mem.Write(addr+HeaderSize, b)
}

// SetFlags replaces the flags of the bitmap at addr.
func SetFlags(mem Memory, addr uint32, f Flags) error {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(f))
	return mem.Write(addr+6, b)
}
