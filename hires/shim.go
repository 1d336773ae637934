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
	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/hardware/bitmap"
	"github.com/palmhires/palmhires/hardware/globals"
	"github.com/palmhires/palmhires/hardware/traps"
)

// depth of the display in bits per pixel.
const displayDepth = 16

// displayAttributes is the replacement HwrDisplayAttributes handler. The
// stock handler doesn't answer the questions asked by the display extension
// when it is brought up.
//
// The first argument is non-zero for a set request. The second argument is
// the attribute.
func (ins *Installer) displayAttributes(args ...uint32) (uint32, error) {
	if len(args) < 2 {
		return 0, curated.Errorf(traps.UnsupportedAttribute, "missing arguments")
	}

	attr := traps.DisplayAttr(args[1])
	if args[0] != 0 {
		return 0, curated.Errorf(traps.ReadOnlyAttribute, attr)
	}

	w, h := ins.resolution()

	switch attr {
	case traps.DisplayWidth:
		return uint32(w), nil
	case traps.DisplayHeight:
		return uint32(h), nil
	case traps.DisplayDepth:
		return displayDepth, nil
	case traps.DisplayDensity:
		return bitmap.DensityDouble, nil
	}

	return 0, curated.Errorf(traps.UnsupportedAttribute, attr)
}

// resolution returns the stored resolution or the default resolution if no
// resolution has been stored.
func (ins *Installer) resolution() (uint16, uint16) {
	v := ins.platform.Globals.Get(globals.CurrentResolution)
	if v == 0 {
		return ins.prefs.DefaultResolution()
	}
	return Unpack(v)
}
