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

// Package controller implements the controller side of the two-wire bus. It
// is the counterpart of the bus state machine in the i2c package and drives
// anything that implements the Pins interface by toggling the clock and data
// lines one transition at a time, exactly as the host machine's bus
// controller would.
//
// Byte level functions (Start(), Stop(), WriteByte() and ReadByte()) can be
// combined to make any transaction. The register level functions
// (WriteRegisters(), ReadRegisters() and ReadCurrent()) implement the common
// pattern of writing a register address and then transferring data.
//
// A read of the first two time registers of an RTC at address 0x50 would look
// something like this:
//
//	c := controller.NewController(board)
//	data := make([]uint8, 2)
//	err := c.ReadRegisters(0x50, 0x01, data)
package controller
