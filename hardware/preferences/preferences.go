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

package preferences

import (
	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/paths"
	"github.com/palmhires/palmhires/prefs"
)

// DefaultHeapSize is the default size of the dynamic heap in bytes.
const DefaultHeapSize = 8 * 1024 * 1024

// minimum heap size. the stock framebuffer must fit with some room to spare
const minHeapSize = 256 * 1024

// Sentinal error patterns.
const (
	NotOnDisk = "preferences: hardware preferences are not backed by disk"
	HeapSize  = "preferences: heap size of %d bytes is too small"
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// size of the dynamic heap in bytes
	HeapSize prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("palm.heapsize", &p.HeapSize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// DefaultPreferences returns preferences that are never loaded from or saved
// to disk.
func DefaultPreferences() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	p.HeapSize.SetHookPost(func(v prefs.Value) error {
		if v.(int) < minHeapSize {
			return curated.Errorf(HeapSize, v)
		}
		return nil
	})
	return p
}

// SetDefaults reverts all hardware preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.HeapSize.Set(DefaultHeapSize)
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NotOnDisk)
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NotOnDisk)
	}
	return p.dsk.Save()
}
