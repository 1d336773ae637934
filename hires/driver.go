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

// Driver is the high density display driver.
type Driver struct {
	Prefs       *Preferences
	Installer   *Installer
	Framebuffer *FramebufferManager
	Resolution  *ResolutionController
}

// NewDriver is the preferred method of initialisation for the Driver type. A
// nil Preferences argument will create the driver with the default
// preferences.
func NewDriver(platform Platform, prefs *Preferences) *Driver {
	if prefs == nil {
		prefs = DefaultPreferences()
	}

	drv := &Driver{Prefs: prefs}
	drv.Installer = NewInstaller(platform, prefs)
	drv.Framebuffer = NewFramebufferManager(platform, drv.Installer)
	drv.Resolution = NewResolutionController(platform, prefs, drv.Framebuffer)

	return drv
}

// Install the vendor display extension.
func (drv *Driver) Install() error {
	return drv.Installer.Install()
}

// SetDeviceResolution changes the resolution of the display.
func (drv *Driver) SetDeviceResolution(width uint16, height uint16) error {
	return drv.Resolution.SetDeviceResolution(width, height)
}

// OnApplicationStart should be called when an application starts.
func (drv *Driver) OnApplicationStart() {
	drv.Resolution.OnApplicationStart()
}

// OnApplicationExit should be called when an application exits.
func (drv *Driver) OnApplicationExit() error {
	return drv.Resolution.OnApplicationExit()
}
