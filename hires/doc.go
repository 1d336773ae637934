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

// Package hires is the high density display driver. It installs the vendor
// display extension, swaps the framebuffer of the display window for a
// double density framebuffer of any size and tells the emulator where the
// new framebuffer is.
//
// The driver is made of three parts, each of which can be used on its own:
//
// The Installer checks that the vendor databases are present, patches the
// HwrDisplayAttributes trap and runs the bring-up code of the display
// extension. Installation happens once. Subsequent calls to Install() do
// nothing.
//
// The FramebufferManager creates a new framebuffer, retires the old one and
// publishes the new framebuffer to the emulator. It does nothing until the
// Installer has succeeded.
//
// The ResolutionController is the entry point for applications. It ignores
// requests for the resolution already in effect and returns the display to
// the default resolution when an application exits.
//
// The Driver type composes the three parts:
//
//	drv := hires.NewDriver(hires.NewPlatform(palm), hires.DefaultPreferences())
//	if err := drv.Install(); err != nil {
//		return err
//	}
//	drv.OnApplicationStart()
//	if err := drv.SetDeviceResolution(320, 480); err != nil {
//		return err
//	}
//	...
//	return drv.OnApplicationExit()
//
// All state that must survive between calls is kept in the globals.Store of
// the Platform.
package hires
