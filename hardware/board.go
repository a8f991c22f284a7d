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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/cmosi2c/curated"
	"github.com/jetsetilly/cmosi2c/environment"
	"github.com/jetsetilly/cmosi2c/hardware/cmos"
	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/hardware/peripherals/pcf8583"
	"github.com/jetsetilly/cmosi2c/hardware/peripherals/spd"
)

// Board is the two-wire bus of the mainboard with its attached devices.
type Board struct {
	env *environment.Environment

	Store    *cmos.Store
	Registry *i2c.Registry
	Bus      *i2c.Bus

	RTC *pcf8583.PCF8583
	SPD *spd.SPD
}

// NewBoard is the preferred method of initialisation for the Board type. If
// backing is nil then the CMOS store is backed by the file named in the
// environment's preferences.
//
// No device is enabled until Reset() is called.
func NewBoard(env *environment.Environment, backing cmos.Backing) (*Board, error) {
	if backing == nil {
		fn, err := env.Prefs.CMOSPath()
		if err != nil {
			return nil, curated.Errorf("board: %v", err)
		}
		backing = cmos.File{Path: fn}
	}

	b := &Board{
		env:      env,
		Registry: i2c.NewRegistry(),
	}

	var err error

	b.Store, err = cmos.NewStore(env, backing)
	if err != nil {
		return nil, err
	}

	b.RTC = pcf8583.NewPCF8583(env, b.Store)
	b.SPD = spd.NewSPD(env)

	err = b.Registry.Register(i2c.PCF8583, pcf8583.Address, b.RTC)
	if err != nil {
		return nil, err
	}
	err = b.Registry.Register(i2c.SPDDIMM0, spd.Address, b.SPD)
	if err != nil {
		return nil, err
	}

	b.Bus = i2c.NewBus(env, b.Registry)

	return b, nil
}

func (b *Board) String() string {
	return fmt.Sprintf("%s [%s]", b.Bus, b.Registry.Enabled())
}

// Reset the board for a new session with the specified devices populated on
// the bus. The CMOS store is regenerated for the machine model in the
// environment's preferences.
func (b *Board) Reset(devices i2c.Devices) {
	b.Store.Reset(b.env.Prefs.MachineModel(), b.env.Now())
	b.Registry.Reset(devices)
	b.Bus.Reset()
}

// PinChange should be called whenever the host changes the state of the clock
// or data pins. A value of true indicates the pin is released (high).
func (b *Board) PinChange(scl bool, sda bool) {
	b.Bus.PinChange(scl, sda)
}

// Clock returns the bus's drive of the clock line. The devices never stretch
// the clock so this is always true.
func (b *Board) Clock() bool {
	return b.Bus.ClockOut
}

// Data returns the bus's drive of the data line.
func (b *Board) Data() bool {
	return b.Bus.DataOut
}

// Save the CMOS store. Should be called on an orderly shutdown of the
// emulation.
func (b *Board) Save() error {
	return b.Store.Save()
}
