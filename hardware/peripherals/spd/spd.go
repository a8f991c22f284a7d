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

// Package spd implements the serial presence detect EEPROM of the memory
// module in the first DIMM slot. The contents describe a single 64MB SDRAM
// module and cannot be written.
package spd

import (
	"fmt"

	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/logger"
)

// Address of the device on the bus.
const Address = 0x54

// Size of the descriptor in bytes.
const Size = 128

// the descriptor. bytes not listed are zero
var descriptor = [Size]uint8{
	128, 8, 4, 12, 10, 1, 64, 0,
	0, 1, 1, 0, 0, 8, 0, 0,
	0x0f, 2, 0x7f, 0x7f, 0x7f, 0x00, 0x3f, 0x10,
	0x10, 0x10, 0x10, 1, 1, 1, 1, 0x20,
}

// Context is the environment the device runs in.
type Context interface {
	logger.Permission
}

// SPD implements the i2c.Device and i2c.Resetter interfaces.
type SPD struct {
	ctx Context

	// the next byte of the descriptor to be read. always seven bits
	Register uint8
}

// NewSPD is the preferred method of initialisation for the SPD type.
func NewSPD(ctx Context) *SPD {
	return &SPD{ctx: ctx}
}

func (s *SPD) String() string {
	return fmt.Sprintf("spd: register %#02x", s.Register)
}

// Reset implements the i2c.Resetter interface.
func (s *SPD) Reset() {
	s.Register = 0
}

// Start implements the i2c.Device interface.
func (s *SPD) Start(_ uint8, dir i2c.Direction) i2c.Response {
	logger.Logf(s.ctx, "spd", "start (%s)", dir)
	return i2c.Ack
}

// Stop implements the i2c.Device interface.
func (s *SPD) Stop() {
	logger.Log(s.ctx, "spd", "stop")
}

// Write implements the i2c.Device interface. Every written byte sets the
// register.
func (s *SPD) Write(v uint8) i2c.Response {
	logger.Logf(s.ctx, "spd", "write %#02x", v)
	s.Register = v & 0x7f
	return i2c.Ack
}

// Read implements the i2c.Device interface.
func (s *SPD) Read() uint8 {
	v := descriptor[s.Register]
	logger.Logf(s.ctx, "spd", "read %#02x from %#02x", v, s.Register)
	s.Register = (s.Register + 1) & 0x7f
	return v
}

// Descriptor returns a copy of the descriptor.
func Descriptor() [Size]uint8 {
	return descriptor
}
