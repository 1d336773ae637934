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

package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/palmhires/palmhires/curated"
)

// Area is implemented by anything that can be placed in the address space.
// Addresses passed to an Area are absolute, not relative to the origin of
// the area.
type Area interface {
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, data uint32) error
}

// Bus is the 32-bit access to the address space from the point of view of
// the software running on the device.
type Bus interface {
	Read32(addr uint32) (uint32, error)
	Write32(addr uint32, data uint32) error
}

// Sentinal error patterns.
const (
	OverlappingArea = "memory: area %s overlaps %s"
)

type mapped struct {
	name   string
	origin uint32
	memtop uint32
	area   Area
}

// Map is the address space of the device.
type Map struct {
	areas []mapped
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap() *Map {
	return &Map{}
}

// Add an area to the map, covering the address range origin to memtop
// inclusive.
func (m *Map) Add(name string, origin uint32, memtop uint32, area Area) error {
	for _, a := range m.areas {
		if origin <= a.memtop && memtop >= a.origin {
			return curated.Errorf(OverlappingArea, name, a.name)
		}
	}

	m.areas = append(m.areas, mapped{
		name:   name,
		origin: origin,
		memtop: memtop,
		area:   area,
	})

	sort.Slice(m.areas, func(i, j int) bool {
		return m.areas[i].origin < m.areas[j].origin
	})

	return nil
}

func (m *Map) String() string {
	s := strings.Builder{}
	for _, a := range m.areas {
		s.WriteString(fmt.Sprintf("%#08x -> %#08x %s\n", a.origin, a.memtop, a.name))
	}
	return s.String()
}

// MapAddress returns the name of the area that contains addr.
func (m *Map) MapAddress(addr uint32) (string, bool) {
	a, ok := m.lookup(addr)
	if !ok {
		return "", false
	}
	return a.name, true
}

func (m *Map) lookup(addr uint32) (mapped, bool) {
	idx := sort.Search(len(m.areas), func(i int) bool {
		return m.areas[i].memtop >= addr
	})
	if idx < len(m.areas) && m.areas[idx].origin <= addr {
		return m.areas[idx], true
	}
	return mapped{}, false
}

// Read32 implements the Bus interface.
func (m *Map) Read32(addr uint32) (uint32, error) {
	a, ok := m.lookup(addr)
	if !ok {
		return 0, curated.Errorf(UnmappedAddress, addr)
	}
	return a.area.Read32(addr)
}

// Write32 implements the Bus interface.
func (m *Map) Write32(addr uint32, data uint32) error {
	a, ok := m.lookup(addr)
	if !ok {
		return curated.Errorf(UnmappedAddress, addr)
	}
	return a.area.Write32(addr, data)
}
