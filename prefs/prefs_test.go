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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/palmhires/palmhires/curated"
	"github.com/palmhires/palmhires/prefs"
	"github.com/palmhires/palmhires/test"
)

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestGeneric(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			_, err := fmt.Sscanf(s.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, dsk.Add("generic", v))

	w = 320
	h = 480
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "generic :: 320,480\n")

	w = 0
	h = 0
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 480)
}

// two Disk instances writing to the same file should not clobber each other's
// values
func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.Bool
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set(true))
	test.DemandSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.String
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set("HighDensityDisplay"))
	test.DemandSuccess(t, dskB.Save())

	cmpPrefsFile(t, fn, "a :: true\nb :: HighDensityDisplay\n")
}

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// saving on first use creates the file
	test.ExpectSuccess(t, v.Set("bar"))
	test.ExpectSuccess(t, dsk.Load(true))
	cmpPrefsFile(t, fn, "foo :: bar\n")
}

func TestAddErrors(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Add("foo", &v), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("foo::bar", &v), prefs.InvalidKey))
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("hires.fonts", &v))
	test.ExpectSuccess(t, v.Set("HighDensityFonts"))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("hires.fonts::OtherFonts")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.String(), "OtherFonts")

	// the command line value has been consumed
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
