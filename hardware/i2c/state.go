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

// State of the bus state machine.
type State int

// List of valid State values.
const (
	Idle State = iota
	Addressing
	AckReadAddr
	AckRead
	AckWrite
	NackWrite
	Reading
	Writing
	Waiting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Addressing:
		return "addressing"
	case AckReadAddr:
		return "ack read address"
	case AckRead:
		return "ack read"
	case AckWrite:
		return "ack write"
	case NackWrite:
		return "nack write"
	case Reading:
		return "reading"
	case Writing:
		return "writing"
	case Waiting:
		return "waiting"
	}
	return "unknown state"
}
