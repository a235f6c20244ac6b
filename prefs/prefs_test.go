// This file is part of romprops.
//
// romprops is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romprops is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romprops.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/prefs"
	"github.com/jetsetilly/romprops/test"
)

func newDisk(t *testing.T) *prefs.Disk {
	t.Helper()
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	return dsk
}

func cmpFile(t *testing.T, dsk *prefs.Disk, expected string) {
	t.Helper()
	data, err := os.ReadFile(dsk.Path())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	dsk := newDisk(t)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, dsk, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	dsk := newDisk(t)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, dsk, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	dsk := newDisk(t)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, dsk, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestLoad(t *testing.T) {
	dsk := newDisk(t)

	var b prefs.Bool
	var s prefs.String
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, dsk.Add("s", &s))
	test.ExpectSuccess(t, dsk.Add("i", &i))

	// a missing file is created
	test.DemandSuccess(t, dsk.Load(true))
	cmpFile(t, dsk, "b :: false\ni :: 0\ns :: \n")

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, s.Set("hello world"))
	test.ExpectSuccess(t, i.Set(42))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, b.Get().(bool), false)
	test.ExpectEquality(t, s.String(), "")
	test.ExpectEquality(t, i.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, b.Get().(bool), true)
	test.ExpectEquality(t, s.String(), "hello world")
	test.ExpectEquality(t, i.Get().(int), 42)
}

func TestLoadBadValue(t *testing.T) {
	dsk := newDisk(t)
	test.DemandSuccess(t, os.WriteFile(dsk.Path(), []byte("i :: ten\n"), 0o600))

	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("i", &i))
	err := dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.DiskError))
}

func TestAdd(t *testing.T) {
	dsk := newDisk(t)

	var b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectFailure(t, dsk.Add("b", &b))
	test.ExpectFailure(t, dsk.Add("", &b))
	test.ExpectFailure(t, dsk.Add("a::b", &b))

	_, err := prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

// write bool and then a string from a different prefs.Disk instance. the
// second write must not clobber the first
func TestBoolAndString(t *testing.T) {
	dsk := newDisk(t)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err := prefs.NewDisk(dsk.Path())
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	cmpFile(t, dsk, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length crops the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// removing the limit does not restore the cropped string
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestHooks(t *testing.T) {
	var i prefs.Int

	var post int
	i.SetHookPost(func(v prefs.Value) error {
		post = v.(int)
		return nil
	})
	i.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, i.Set(5))
	test.ExpectEquality(t, post, 5)

	// the pre hook prevents the value being stored
	test.ExpectFailure(t, i.Set(-1))
	test.ExpectEquality(t, i.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestCommandLineOverride(t *testing.T) {
	dsk := newDisk(t)
	test.DemandSuccess(t, os.WriteFile(dsk.Path(), []byte("s :: disk\ni :: 1\n"), 0o600))

	var s prefs.String
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("s", &s))
	test.ExpectSuccess(t, dsk.Add("i", &i))

	prefs.PushCommandLineStack("s::command line; unused::value")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, s.String(), "command line")
	test.ExpectEquality(t, i.Get().(int), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::value")
}
