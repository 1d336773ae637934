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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are first given to the Modes type with NewArgs() and then parsed
// with Parse(). Before each call to Parse() flags and sub-modes can be
// added. For example, the palmhires program has two modes, RUN and PREFS:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "PREFS")
//
//	p, err := md.Parse()
//	...
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		width := md.AddInt("width", 320, "width of framebuffer")
//		p, err := md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default sub-mode and is selected if
// the next argument is not a recognised sub-mode. Sub-mode comparisons are
// case insensitive.
//
// Help messages are printed automatically when the -help flag is found. In
// that case Parse() returns ParseHelp.
package modalflag
