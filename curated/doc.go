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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is remembered and can
// be tested for with the Is() and Has() functions:
//
//	const NoSuchDatabase = "database: no such database (%s)"
//
//	e := curated.Errorf(NoSuchDatabase, "HighDensityFonts")
//	f := curated.Errorf("hires: %v", e)
//
//	curated.Is(e, NoSuchDatabase)   // true
//	curated.Is(f, NoSuchDatabase)   // false
//	curated.Has(f, NoSuchDatabase)  // true
//
// Pattern constants are how packages in this project export the kinds of
// error they can return.
//
// The Error() function normalises the error chain. Chains are composed of
// parts separated by the sub-string ': ' and adjacent duplicate parts are
// removed. This means that wrapping an error with a pattern beginning with
// the same prefix doesn't produce a stuttering message:
//
//	e := curated.Errorf("hires: driver not loaded")
//	f := curated.Errorf("hires: %v", e)
//
//	f.Error() == "hires: driver not loaded"
//
// Curated errors that wrap another error value support the Unwrap()
// convention and so interoperate with the errors.Is() and errors.As()
// functions of the standard library.
package curated
