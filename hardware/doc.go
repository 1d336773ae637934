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

// Package hardware is the base package for the Palm emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// parts of the device that the high density display driver touches.
//
// The Palm type is the root of the emulation and contains external references
// to all the sub-systems. NewPalm() creates the device in the state it is in
// after a reset: the dynamic heap is empty save for the stock low density
// framebuffer, the trap table holds the stock handlers, and the emulator is
// displaying the stock framebuffer.
//
// Vendor databases are not installed by NewPalm(). They must be installed
// with InstallVendorPackages().
package hardware
