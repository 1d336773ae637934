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

// Package globals is the keyed store of driver state that must survive
// between independent calls into the driver. It is the only mutable state
// shared between the components of the hires package.
//
// The store performs no validation. Values are 32-bit, the same as the global
// variable slots reserved for the driver on the device.
package globals

import "fmt"

// Key identifies a global variable.
type Key int

// List of valid Key values.
const (
	// non-zero once the vendor drivers have been installed
	DriversInstalled Key = iota

	// the current resolution, packed as width<<16 | height
	CurrentResolution

	// address of the display bitmap before the drivers were installed
	OriginalFramebuffer
)

func (k Key) String() string {
	switch k {
	case DriversInstalled:
		return "DriversInstalled"
	case CurrentResolution:
		return "CurrentResolution"
	case OriginalFramebuffer:
		return "OriginalFramebuffer"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Store of global variables. Unset keys have the value zero.
type Store struct {
	vars map[Key]uint32
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore() *Store {
	return &Store{
		vars: make(map[Key]uint32),
	}
}

// Get the value of a global variable.
func (s *Store) Get(key Key) uint32 {
	return s.vars[key]
}

// Set the value of a global variable.
func (s *Store) Set(key Key, value uint32) {
	s.vars[key] = value
}

// GetBool is a convenience function returning true if the global variable is
// non-zero.
func (s *Store) GetBool(key Key) bool {
	return s.vars[key] != 0
}

// SetBool is a convenience function setting the global variable to one or
// zero.
func (s *Store) SetBool(key Key, value bool) {
	if value {
		s.vars[key] = 1
	} else {
		s.vars[key] = 0
	}
}
