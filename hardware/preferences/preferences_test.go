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

package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/hardware/machine"
	"github.com/jetsetilly/cmosi2c/prefs"
	"github.com/jetsetilly/cmosi2c/test"
)

func TestDefaults(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.MachineModel(), machine.RPC710)
	test.ExpectEquality(t, p.BusDevices(), i2c.AllDevices)
	test.ExpectEquality(t, p.CMOSFile.String(), DefaultCMOSFile)
	test.ExpectEquality(t, p.TraceBus.Get().(bool), false)
}

func TestValidation(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Model.Set("A5000"))
	test.ExpectEquality(t, p.MachineModel(), machine.RPC710)
	test.ExpectSuccess(t, p.Model.Set("a7000+"))
	test.ExpectEquality(t, p.MachineModel(), machine.A7000plus)

	test.ExpectFailure(t, p.Devices.Set("RTC,FLOPPY"))
	test.ExpectEquality(t, p.BusDevices(), i2c.AllDevices)
	test.ExpectSuccess(t, p.Devices.Set("RTC"))
	test.ExpectEquality(t, p.BusDevices(), i2c.PCF8583)
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Model.Set("Phoebe"))
	test.DemandSuccess(t, p.CMOSFile.Set("/tmp/other.ram"))
	test.DemandSuccess(t, p.Save())

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.MachineModel(), machine.Phoebe)

	fn, err := q.CMOSPath()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fn, "/tmp/other.ram")

	q.SetDefaults()
	test.ExpectEquality(t, q.MachineModel(), machine.Default)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cmosi2c.model::A7000; cmosi2c.devices::SPD")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(filepath.Join(t.TempDir(), prefs.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.MachineModel(), machine.A7000)
	test.ExpectEquality(t, p.BusDevices(), i2c.SPDDIMM0)
}

func TestBadFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not a preferences file\n"), 0o600))

	_, err := newPreferences(pth)
	test.ExpectFailure(t, err)
}
