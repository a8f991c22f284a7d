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

//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cmosi2c/resources"
	"github.com/jetsetilly/cmosi2c/test"
)

func TestJoinPath(t *testing.T) {
	// JoinPath() is relative to the working directory in development builds
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := resources.JoinPath("cmos.ram")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".cmosi2c", "cmos.ram"))

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".cmosi2c", "foo", "bar", "baz"))

	// directories leading up to the file are created but not the file itself
	_, err = os.Stat(filepath.Join(".cmosi2c", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(".cmosi2c", "foo", "bar", "baz"))
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	pth, err = resources.JoinPath(".cmosi2c", "cmos.ram")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".cmosi2c", "cmos.ram"))
}
