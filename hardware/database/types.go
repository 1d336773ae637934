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

package database

import (
	"encoding/binary"
	"fmt"

	"github.com/palmhires/palmhires/hardware/cpu"
)

// ResType is a four character resource type.
type ResType uint32

// NewResType creates a ResType from a four character string. Short strings
// are padded with spaces and long strings are truncated.
func NewResType(s string) ResType {
	b := []byte("    ")
	copy(b, s)
	return ResType(binary.BigEndian.Uint32(b))
}

func (t ResType) String() string {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(t))
	return string(b)
}

// LocalID identifies an installed database. The zero value is not a valid ID.
type LocalID uint32

// OpenMode specifies how a database should be opened.
type OpenMode int

// List of valid OpenMode values.
const (
	ReadOnly OpenMode = iota
	ReadWrite
)

func (m OpenMode) String() string {
	switch m {
	case ReadOnly:
		return "read only"
	case ReadWrite:
		return "read write"
	}
	return fmt.Sprintf("mode %d", int(m))
}

// OpenRef is a reference to an open database. The zero value is not a valid
// reference.
type OpenRef int

// Resource is a typed item in a resource database.
type Resource struct {
	Type ResType
	ID   uint16
	Data []byte

	// the native implementation of a code resource. nil for data resources
	Code cpu.Routine
}

func (r Resource) String() string {
	return fmt.Sprintf("%s%04x", r.Type, r.ID)
}

// Database is a resource database.
type Database struct {
	Name      string
	Resources []Resource

	// a busy database cannot be opened. the equivalent of the database being
	// held open exclusively by another task
	Busy bool
}
