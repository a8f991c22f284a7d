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

package i2c_test

import (
	"testing"

	"github.com/jetsetilly/cmosi2c/curated"
	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/test"
)

func TestRegistry(t *testing.T) {
	rtc := &mockDevice{}
	spd := &mockDevice{}

	reg := i2c.NewRegistry()
	test.ExpectSuccess(t, reg.Register(i2c.PCF8583, 0x50, rtc))
	test.ExpectSuccess(t, reg.Register(i2c.SPDDIMM0, 0x54, spd))

	err := reg.Register(i2c.SPDDIMM0, 0x50, spd)
	test.ExpectSuccess(t, curated.Is(err, i2c.ErrDuplicateAddress))

	err = reg.Register(i2c.SPDDIMM0, 0x80, spd)
	test.ExpectSuccess(t, curated.Is(err, i2c.ErrInvalidAddress))

	// nothing is enabled until the registry is reset
	_, ok := reg.Lookup(0x50)
	test.ExpectFailure(t, ok)

	reg.Reset(i2c.AllDevices)
	test.ExpectEquality(t, reg.Enabled(), i2c.AllDevices)
	test.ExpectEquality(t, rtc.resets, 1)
	test.ExpectEquality(t, spd.resets, 1)

	idx, ok := reg.Lookup(0x54)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, reg.Device(idx).(*mockDevice), spd)
	test.ExpectEquality(t, reg.Describe(idx), "SPD at 0x54")

	idx, ok = reg.Lookup(0x51)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, idx, i2c.NoDevice)
	test.ExpectEquality(t, reg.Describe(idx), "no device")

	reg.Reset(i2c.PCF8583)
	_, ok = reg.Lookup(0x54)
	test.ExpectFailure(t, ok)
	_, ok = reg.Lookup(0x50)
	test.ExpectSuccess(t, ok)
}

func TestDevices(t *testing.T) {
	d, err := i2c.ParseDevices("rtc, SPD")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, i2c.AllDevices)
	test.ExpectEquality(t, d.String(), "RTC,SPD")

	d, err = i2c.ParseDevices("RTC")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, i2c.PCF8583)

	d, err = i2c.ParseDevices("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, i2c.AllDevices)

	d, err = i2c.ParseDevices("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d.String(), "NONE")

	d, err = i2c.ParseDevices("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, i2c.NoDevices)

	_, err = i2c.ParseDevices("RTC,EEPROM")
	test.ExpectSuccess(t, curated.Is(err, i2c.ErrUnknownDevice))
}

func TestTrace(t *testing.T) {
	tr := i2c.NewTrace("SDA")
	test.ExpectSuccess(t, tr.Hi())
	test.ExpectFailure(t, tr.Changed())

	tr.Tick(false)
	test.ExpectSuccess(t, tr.Falling())
	test.ExpectSuccess(t, tr.Lo())
	test.ExpectSuccess(t, tr.Changed())

	tr.Tick(false)
	test.ExpectFailure(t, tr.Falling())
	test.ExpectFailure(t, tr.Changed())

	tr.Tick(true)
	test.ExpectSuccess(t, tr.Rising())
	test.ExpectSuccess(t, tr.Hi())

	// activity is recorded oldest first
	n := len(tr.Activity)
	test.ExpectEquality(t, tr.Activity[n-3], false)
	test.ExpectEquality(t, tr.Activity[n-2], false)
	test.ExpectEquality(t, tr.Activity[n-1], true)
	test.ExpectEquality(t, tr.Activity[0], true)
}
