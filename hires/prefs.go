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

package hires

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware"
	"github.com/palmhires/palmhires/logger"
	"github.com/palmhires/palmhires/paths"
	"github.com/palmhires/palmhires/prefs"
)

// Sentinal error patterns.
const (
	NotOnDisk         = "hires: preferences are not backed by disk"
	InvalidResolution = "hires: invalid resolution (%s)"
)

// Preferences for the driver.
type Preferences struct {
	dsk *prefs.Disk

	// names of the vendor databases
	Fonts   prefs.String
	Display prefs.String

	// the resolution the display returns to when an application exits
	Default       *prefs.Generic
	defaultWidth  uint16
	defaultHeight uint16

	// echo log entries to stdout as they are created
	Echo prefs.Bool
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

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hires.fonts", &p.Fonts)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hires.display", &p.Display)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hires.default", p.Default)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hires.echo", &p.Echo)
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

	p.Default = prefs.NewGeneric(
		func(v prefs.Value) error {
			w, h, err := parseResolution(fmt.Sprintf("%s", v))
			if err != nil {
				return err
			}
			p.defaultWidth = w
			p.defaultHeight = h
			return nil
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", p.defaultWidth, p.defaultHeight)
		},
	)

	p.SetDefaults()

	p.Echo.SetHookPost(func(v prefs.Value) error {
		if v.(bool) {
			logger.SetEcho(os.Stdout)
		} else {
			logger.SetEcho(nil)
		}
		return nil
	})

	return p
}

// parseResolution parses a string of the form "width,height". The empty
// string is the resolution of the stock display.
func parseResolution(s string) (uint16, uint16, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return hardware.DefaultWidth, hardware.DefaultHeight, nil
	}

	f := strings.Split(s, ",")
	if len(f) != 2 {
		return 0, 0, curated.Errorf(InvalidResolution, s)
	}

	w, err := strconv.ParseUint(strings.TrimSpace(f[0]), 10, 16)
	if err != nil || w == 0 {
		return 0, 0, curated.Errorf(InvalidResolution, s)
	}
	h, err := strconv.ParseUint(strings.TrimSpace(f[1]), 10, 16)
	if err != nil || h == 0 {
		return 0, 0, curated.Errorf(InvalidResolution, s)
	}

	return uint16(w), uint16(h), nil
}

// DefaultResolution returns the resolution the display returns to when an
// application exits.
func (p *Preferences) DefaultResolution() (uint16, uint16) {
	return p.defaultWidth, p.defaultHeight
}

// SetDefaults reverts all driver preferences to their default values. The
// Echo preference is not changed.
func (p *Preferences) SetDefaults() {
	_ = p.Fonts.Set(hardware.FontsDatabase)
	_ = p.Display.Set(hardware.DisplayDatabase)
	_ = p.Default.Set("")
}

// Reset all driver preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load driver preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf(NotOnDisk)
	}
	return p.dsk.Load(false)
}

// Save driver preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf(NotOnDisk)
	}
	return p.dsk.Save()
}
