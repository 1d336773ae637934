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
	"github.com/palmhires/palmhires/hardware/database"
	"github.com/palmhires/palmhires/hardware/globals"
	"github.com/palmhires/palmhires/hardware/traps"
	"github.com/palmhires/palmhires/logger"
)

// Installer installs the vendor display extension.
type Installer struct {
	platform Platform
	prefs    *Preferences
}

// NewInstaller is the preferred method of initialisation for the Installer
// type.
func NewInstaller(platform Platform, prefs *Preferences) *Installer {
	return &Installer{
		platform: platform,
		prefs:    prefs,
	}
}

// Installed returns true if the vendor display extension has been installed.
func (ins *Installer) Installed() bool {
	return ins.platform.Globals.GetBool(globals.DriversInstalled)
}

// Install the vendor display extension. Returns nil if the extension is
// already installed.
//
// Both vendor databases must be present. Nothing on the device is changed
// until the bring-up code has been found and locked.
func (ins *Installer) Install() error {
	if ins.Installed() {
		logger.Log(logger.Allow, "hires", "Tungsten W drivers already installed")
		return nil
	}

	res := ins.platform.Resources
	fonts := ins.prefs.Fonts.String()
	display := ins.prefs.Display.String()

	// the fonts only need to be present
	if _, ok := res.FindDatabase(fonts); !ok {
		logger.Logf(logger.Allow, "hires", "%s.prc not installed", fonts)
		return curated.Errorf(ResourceMissing, fonts)
	}

	id, ok := res.FindDatabase(display)
	if !ok {
		logger.Logf(logger.Allow, "hires", "%s.prc not installed", display)
		return curated.Errorf(ResourceMissing, display)
	}

	ref, err := res.OpenDatabase(id, database.ReadOnly)
	if err != nil {
		logger.Logf(logger.Allow, "hires", "cannot open %s.prc", display)
		return curated.Errorf(OpenFailure, display, err)
	}

	drv, err := loadDriver(res, ins.platform.CPU, ref)
	if err != nil {
		ins.close(ref)
		logger.Logf(logger.Allow, "hires", "cannot load %s.prc %s%04x", display, entryType, entryID)
		return curated.Errorf(ResourceLoadFailure, display, database.Resource{Type: entryType, ID: entryID}, err)
	}

	// the stock framebuffer
	if ins.platform.Globals.Get(globals.OriginalFramebuffer) == 0 {
		ins.platform.Globals.Set(globals.OriginalFramebuffer, ins.platform.Display.DisplayBitmap())
	}

	logger.Log(logger.Allow, "hires", "Attempting Tungsten W driver install")

	// the bring-up code will not complete without a HwrDisplayAttributes
	// handler that knows about high density displays
	ins.platform.Traps.SetTrapAddress(traps.HwrDisplayAttributes, ins.displayAttributes)

	drv.Run()
	logger.Log(logger.Allow, "hires", "Tungsten W drivers installed")

	if err := drv.release(); err != nil {
		logger.Log(logger.Allow, "hires", err)
	}
	ins.close(ref)

	ins.platform.Globals.SetBool(globals.DriversInstalled, true)

	return nil
}

func (ins *Installer) close(ref database.OpenRef) {
	if err := ins.platform.Resources.CloseDatabase(ref); err != nil {
		logger.Log(logger.Allow, "hires", err)
	}
}
