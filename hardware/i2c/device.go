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

import "github.com/jetsetilly/cmosi2c/logger"

// Context is the environment the bus and its devices run in.
type Context interface {
	logger.Permission
}

// Direction of the data transfer, as requested by the low bit of the address
// byte sent by the controller.
type Direction int

// List of valid Direction values.
const (
	Write Direction = iota
	Read
)

func (d Direction) String() string {
	if d == Read {
		return "read"
	}
	return "write"
}

// Response of a device to the start of a transaction or to a written byte.
type Response int

// List of valid Response values.
const (
	Ack Response = iota
	Nack
)

func (r Response) String() string {
	switch r {
	case Ack:
		return "ack"
	case Nack:
		return "nack"
	}
	return "unknown response"
}

// Device is a responder on the bus. The bus calls Start() when the device is
// addressed and Stop() when the transaction it is part of ends with a stop
// condition. A repeated start condition does not cause Stop() to be called.
type Device interface {
	Start(address uint8, dir Direction) Response
	Stop()
	Write(data uint8) Response
	Read() uint8
}

// ReadAcknowledger is an optional interface for devices that want to know
// whether the controller acknowledged the most recently read byte.
type ReadAcknowledger interface {
	ReadAck(ack Response)
}

// Resetter is an optional interface for devices that keep state that should
// be reset along with the bus.
type Resetter interface {
	Reset()
}
