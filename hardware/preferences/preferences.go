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
	"path/filepath"

	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/hardware/machine"
	"github.com/jetsetilly/cmosi2c/prefs"
	"github.com/jetsetilly/cmosi2c/resources"
)

// DefaultCMOSFile is the name of the file backing the CMOS store.
const DefaultCMOSFile = "cmos.ram"

// Preferences defines and collates all the preference values used by the
// board.
type Preferences struct {
	dsk *prefs.Disk

	// the machine model. affects the regenerated CMOS settings
	Model prefs.String

	// the file backing the CMOS store. relative paths are resolved against
	// the resources directory
	CMOSFile prefs.String

	// comma separated list of the device classes populated on the bus
	Devices prefs.String

	// print the pin waveforms after a bus transaction made by the command line
	TraceBus prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resources
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Model.SetHookPre(func(v prefs.Value) error {
		_, err := machine.ParseModel(v.(string))
		return err
	})
	p.Devices.SetHookPre(func(v prefs.Value) error {
		_, err := i2c.ParseDevices(v.(string))
		return err
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cmosi2c.model", &p.Model)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cmosi2c.cmosfile", &p.CMOSFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cmosi2c.devices", &p.Devices)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cmosi2c.tracebus", &p.TraceBus)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to default values.
func (p *Preferences) SetDefaults() {
	p.Model.Set(machine.Default.String())
	p.CMOSFile.Set(DefaultCMOSFile)
	p.Devices.Set(i2c.AllDevices.String())
	p.TraceBus.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// MachineModel returns the Model preference as a machine.Model.
func (p *Preferences) MachineModel() machine.Model {
	m, err := machine.ParseModel(p.Model.String())
	if err != nil {
		return machine.Default
	}
	return m
}

// BusDevices returns the Devices preference as an i2c.Devices value.
func (p *Preferences) BusDevices() i2c.Devices {
	d, err := i2c.ParseDevices(p.Devices.String())
	if err != nil {
		return i2c.AllDevices
	}
	return d
}

// CMOSPath returns the path of the file backing the CMOS store.
func (p *Preferences) CMOSPath() (string, error) {
	fn := p.CMOSFile.String()
	if filepath.IsAbs(fn) {
		return fn, nil
	}
	return resources.JoinPath(fn)
}
