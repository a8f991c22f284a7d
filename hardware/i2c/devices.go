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

package i2c

import (
	"strings"

	"github.com/jetsetilly/cmosi2c/curated"
)

// Devices is a bitmask of the classes of device that are populated on the bus
// for the current session.
type Devices uint32

// List of device classes.
const (
	PCF8583 Devices = 1 << iota
	SPDDIMM0

	NoDevices  Devices = 0
	AllDevices         = PCF8583 | SPDDIMM0
)

var deviceNames = []struct {
	class Devices
	name  string
}{
	{class: PCF8583, name: "RTC"},
	{class: SPDDIMM0, name: "SPD"},
}

func (d Devices) String() string {
	var n []string
	for _, c := range deviceNames {
		if d&c.class == c.class {
			n = append(n, c.name)
		}
	}
	if len(n) == 0 {
		return "NONE"
	}
	return strings.Join(n, ",")
}

// ErrUnknownDevice is returned by ParseDevices() when a device class in the
// list is not recognised.
const ErrUnknownDevice = "i2c: unknown device class (%s)"

// ParseDevices converts a comma separated list of device class names into a
// Devices value. The names are RTC and SPD. The special values ALL and NONE
// are also accepted. The comparison is case insensitive.
func ParseDevices(s string) (Devices, error) {
	var d Devices

	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		switch strings.ToUpper(f) {
		case "ALL":
			d |= AllDevices
			continue
		case "NONE":
			continue
		}

		found := false
		for _, c := range deviceNames {
			if strings.EqualFold(c.name, f) {
				d |= c.class
				found = true
				break
			}
		}
		if !found {
			return NoDevices, curated.Errorf(ErrUnknownDevice, f)
		}
	}

	return d, nil
}
