// This file is part of cmosi2c.
//
// cmosi2c is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cmosi2c is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cmosi2c.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cmosi2c/prefs"
	"github.com/jetsetilly/cmosi2c/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestStringAndInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("model", &s))
	test.ExpectSuccess(t, dsk.Add("address", &n))
	test.ExpectFailure(t, dsk.Add("model", &s))

	test.ExpectSuccess(t, s.Set("  A7000 "))
	test.ExpectSuccess(t, n.Set("0x50"))
	test.ExpectEquality(t, n.Get().(int), 0x50)
	test.ExpectFailure(t, n.Set("fifty"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "address :: 80\nmodel :: A7000\n")

	// load into a second disk instance
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var s2 prefs.String
	test.ExpectSuccess(t, dsk2.Add("model", &s2))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, s2.String(), "A7000")

	// saving the second disk preserves the entry it doesn't know about
	test.ExpectSuccess(t, s2.Set("Phoebe"))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, fn, "address :: 80\nmodel :: Phoebe\n")
}

func TestMissingFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), false)
}

func TestHooks(t *testing.T) {
	var s prefs.String
	var seen string
	s.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "bad" {
			return fmt.Errorf("bad value")
		}
		return nil
	})
	s.SetHookPost(func(v prefs.Value) error {
		seen = v.(string)
		return nil
	})

	test.ExpectSuccess(t, s.Set("good"))
	test.ExpectEquality(t, seen, "good")
	test.ExpectFailure(t, s.Set("bad"))
	test.ExpectEquality(t, s.String(), "good")
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("override::true")
	defer prefs.PopCommandLineStack()

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("override", &b))
	test.ExpectEquality(t, b.Get().(bool), true)

	// values in the file do not replace the command line value
	test.DemandSuccess(t, os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\noverride :: false\n"), 0o600))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, b.Get().(bool), true)
}
