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

package controller

import (
	"github.com/jetsetilly/cmosi2c/curated"
)

// Pins is the connection between the controller and the bus devices.
// PinChange() presents the controller's drive of the two lines and Data()
// returns how the devices are driving the data line.
type Pins interface {
	PinChange(scl, sda bool)
	Data() bool
}

// Controller drives the bus one pin transition at a time in the way the host
// machine's bus controller would. Lines are open-drain: the effective level of
// the data line is the logical AND of the controller's drive and the devices'
// drive.
type Controller struct {
	pins Pins

	// how the controller is currently driving the lines
	scl bool
	sda bool
}

// NewController is the preferred method of initialisation for the Controller
// type. Both lines start in the released state.
func NewController(pins Pins) *Controller {
	c := &Controller{pins: pins}
	c.set(true, true)
	return c
}

func (c *Controller) set(scl, sda bool) {
	c.scl = scl
	c.sda = sda
	c.pins.PinChange(scl, sda)
}

// Drive sets the controller's drive of the two lines directly. Useful for
// producing pin sequences that the other functions would not.
func (c *Controller) Drive(scl, sda bool) {
	c.set(scl, sda)
}

// the effective state of the data line
func (c *Controller) line() bool {
	return c.sda && c.pins.Data()
}

// Start sends a start condition. If a transaction is already in progress then
// this is a repeated start.
func (c *Controller) Start() {
	if !c.scl || !c.sda {
		// the data line must not rise while the clock is high or it would be
		// seen as a stop condition
		if c.scl {
			c.set(false, c.sda)
		}
		c.set(false, true)
		c.set(true, true)
	}
	c.set(true, false)
	c.set(false, false)
}

// Stop sends a stop condition.
func (c *Controller) Stop() {
	if c.scl {
		c.set(false, c.sda)
	}
	c.set(false, false)
	c.set(true, false)
	c.set(true, true)
}

// Clock sends a single clock pulse with the data line driven as specified.
// Returns the effective state of the data line while the clock is high.
func (c *Controller) Clock(bit bool) bool {
	c.set(false, bit)
	c.set(true, bit)
	return c.line()
}

// WriteByte sends eight bits, most significant bit first, and returns true if
// the byte was acknowledged.
func (c *Controller) WriteByte(v uint8) bool {
	for i := 7; i >= 0; i-- {
		c.Clock(v&(0x01<<i) != 0)
	}

	// release the data line for the acknowledge bit
	return !c.Clock(true)
}

// ReadByte receives eight bits, most significant bit first. The ack argument
// says whether the controller should acknowledge the byte. The last byte of a
// read transaction should not be acknowledged.
func (c *Controller) ReadByte(ack bool) uint8 {
	var v uint8
	for i := 0; i < 8; i++ {
		v <<= 1
		if c.Clock(true) {
			v |= 0x01
		}
	}
	c.Clock(!ack)
	return v
}

// Sentinel errors returned by the transaction functions.
const (
	ErrNoDevice = "controller: no acknowledge from address %#02x"
	ErrDataNack = "controller: byte %d not acknowledged by address %#02x"
)

// Probe addresses the device and returns true if it acknowledges. The
// transaction is ended with a stop condition.
func (c *Controller) Probe(address uint8) bool {
	c.Start()
	ok := c.WriteByte(address << 1)
	c.Stop()
	return ok
}

// WriteRegisters writes the register address followed by data to the device
// at address, in a single transaction.
func (c *Controller) WriteRegisters(address uint8, register uint8, data []uint8) error {
	defer c.Stop()

	c.Start()
	if !c.WriteByte(address << 1) {
		return curated.Errorf(ErrNoDevice, address)
	}
	if !c.WriteByte(register) {
		return curated.Errorf(ErrDataNack, 0, address)
	}
	for i, v := range data {
		if !c.WriteByte(v) {
			return curated.Errorf(ErrDataNack, i+1, address)
		}
	}

	return nil
}

// ReadRegisters writes the register address to the device at address and
// then fills data using a repeated start and a read transaction.
func (c *Controller) ReadRegisters(address uint8, register uint8, data []uint8) error {
	defer c.Stop()

	c.Start()
	if !c.WriteByte(address << 1) {
		return curated.Errorf(ErrNoDevice, address)
	}
	if !c.WriteByte(register) {
		return curated.Errorf(ErrDataNack, 0, address)
	}

	return c.read(address, data)
}

// ReadCurrent fills data from the device at address, starting at whatever
// register the device is currently pointing to.
func (c *Controller) ReadCurrent(address uint8, data []uint8) error {
	defer c.Stop()
	return c.read(address, data)
}

func (c *Controller) read(address uint8, data []uint8) error {
	c.Start()
	if !c.WriteByte(address<<1 | 0x01) {
		return curated.Errorf(ErrNoDevice, address)
	}
	for i := range data {
		data[i] = c.ReadByte(i < len(data)-1)
	}
	return nil
}
