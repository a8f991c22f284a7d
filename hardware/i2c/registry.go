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
	"fmt"

	"github.com/jetsetilly/cmosi2c/curated"
)

// NoDevice is the index returned by Lookup() when no enabled device answers to
// an address.
const NoDevice = -1

type entry struct {
	class   Devices
	address uint8
	dev     Device
}

// Registry maps 7-bit bus addresses to devices. Devices are registered once
// and are then enabled or disabled for each session by the mask given to
// Reset().
type Registry struct {
	entries []entry
	enabled Devices
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{}
}

// Sentinel errors returned by Register().
const (
	ErrInvalidAddress   = "i2c: address %#02x is not a 7-bit address"
	ErrDuplicateAddress = "i2c: address %#02x is already registered"
)

// Register a device of the specified class at the 7-bit address. At most one
// device can be registered at any address.
func (r *Registry) Register(class Devices, address uint8, dev Device) error {
	if address > 0x7f {
		return curated.Errorf(ErrInvalidAddress, address)
	}
	for _, e := range r.entries {
		if e.address == address {
			return curated.Errorf(ErrDuplicateAddress, address)
		}
	}
	r.entries = append(r.entries, entry{class: class, address: address, dev: dev})
	return nil
}

// Reset sets which device classes are populated for the new session and
// resets every device that implements the Resetter interface.
func (r *Registry) Reset(enabled Devices) {
	r.enabled = enabled
	for _, e := range r.entries {
		if rs, ok := e.dev.(Resetter); ok {
			rs.Reset()
		}
	}
}

// Enabled returns the device classes populated for the current session.
func (r *Registry) Enabled() Devices {
	return r.enabled
}

// Lookup returns the index of the device at address. The device must be
// enabled for the current session. If there is no such device the index will
// be NoDevice and the boolean false.
func (r *Registry) Lookup(address uint8) (int, bool) {
	for i, e := range r.entries {
		if e.address == address && r.enabled&e.class == e.class {
			return i, true
		}
	}
	return NoDevice, false
}

// Device returns the device at the index returned by Lookup().
func (r *Registry) Device(idx int) Device {
	return r.entries[idx].dev
}

// Describe returns a short description of the device at the index returned by
// Lookup(), suitable for logging.
func (r *Registry) Describe(idx int) string {
	if idx < 0 || idx >= len(r.entries) {
		return "no device"
	}
	e := r.entries[idx]
	return fmt.Sprintf("%s at %#02x", e.class, e.address)
}
