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
	"github.com/palmhires/palmhires/hardware/globals"
	"github.com/palmhires/palmhires/logger"
)

// Pack a resolution into a single 32-bit value.
func Pack(width uint16, height uint16) uint32 {
	return uint32(width)<<16 | uint32(height)
}

// Unpack a resolution packed with Pack().
func Unpack(v uint32) (uint16, uint16) {
	return uint16(v >> 16), uint16(v)
}

// ResolutionController changes the resolution of the display on behalf of
// applications.
type ResolutionController struct {
	platform Platform
	prefs    *Preferences
	fbm      *FramebufferManager
}

// NewResolutionController is the preferred method of initialisation for the
// ResolutionController type.
func NewResolutionController(platform Platform, prefs *Preferences, fbm *FramebufferManager) *ResolutionController {
	return &ResolutionController{
		platform: platform,
		prefs:    prefs,
		fbm:      fbm,
	}
}

// Resolution returns the stored resolution. Returns zero for both values if
// the resolution has never been changed.
func (rc *ResolutionController) Resolution() (uint16, uint16) {
	return Unpack(rc.platform.Globals.Get(globals.CurrentResolution))
}

// SetDeviceResolution changes the resolution of the display. A request for
// the resolution already in effect does nothing. The stored resolution is
// only changed if the framebuffer is successfully replaced.
func (rc *ResolutionController) SetDeviceResolution(width uint16, height uint16) error {
	prev := rc.platform.Globals.Get(globals.CurrentResolution)
	next := Pack(width, height)

	logger.Logf(logger.Allow, "hires", "Setting custom FB size w:%d, h:%d", width, height)

	if next == prev {
		return nil
	}

	if err := rc.fbm.SetFramebuffer(width, height); err != nil {
		return err
	}

	rc.platform.Globals.Set(globals.CurrentResolution, next)

	return nil
}

// OnApplicationStart should be called when an application starts.
func (rc *ResolutionController) OnApplicationStart() {
}

// OnApplicationExit should be called when an application exits. The display
// returns to the default resolution whatever the resolution was before the
// call.
func (rc *ResolutionController) OnApplicationExit() error {
	return rc.SetDeviceResolution(rc.prefs.DefaultResolution())
}
