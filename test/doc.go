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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failed test but allow the test to continue.
// The Demand functions stop the test immediately. Demand should be used when
// later tests depend on the value being correct, for example, checking the
// length of two slices before iterating over them in unison.
//
// Success and failure are interpreted according to the type of the value.
// A bool is successful if it is true and an error is successful if it is
// nil. The untyped nil is considered a success because of how the error type
// is usually used.
//
// The CompareWriter type implements the io.Writer interface and can be used
// to capture output for later comparison.
package test
