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

// Package prefs facilitates the persistence of preference values to disk.
//
// Preference values are created with one of the types in this package (Bool,
// String, Int and Generic) and added to a Disk instance under a key. The
// Disk instance is responsible for loading and saving all the values it
// knows about.
//
// The file format is a simple list of key/value pairs, one per line,
// separated by "::". The first line of the file is a warning not to edit the
// file by hand:
//
//	*** do not edit this file by hand ***
//	hires.display :: HighDensityDisplay
//	hires.fonts :: HighDensityFonts
//
// Disk instances sharing the same file only rewrite the keys they own. Other
// keys in the file are preserved when saving.
//
// Preference values can be overridden from the command line with
// PushCommandLineStack(). Values on the command line stack take priority over
// those found on disk the next time Load() is called.
package prefs
