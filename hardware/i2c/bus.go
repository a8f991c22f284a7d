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
	"strings"
	"unicode"

	"github.com/jetsetilly/cmosi2c/logger"
)

// Bus is the two-wire protocol engine. It is driven entirely by calls to
// PinChange() and communicates with the controller through the ClockOut and
// DataOut fields, which represent how the bus devices are driving the
// open-drain lines.
//
// The bus is not safe for concurrent use. Callers that drive the pins from
// more than one goroutine must serialise calls themselves.
type Bus struct {
	ctx      Context
	registry *Registry

	// the most recent pin states presented by the controller. the previous
	// pin state is used to detect the clock edges and the start/stop
	// conditions
	SCL Trace
	SDA Trace

	State State

	// the 7-bit address of the most recent addressing byte
	Address uint8

	// index into the registry of the device taking part in the current
	// transaction. NoDevice if there is no open transaction
	active int

	// whether the active device has been read from or written to in the
	// current transaction
	Accessed bool

	// shift registers for incoming (controller to device) and outgoing (device
	// to controller) bytes. BitCount counts up for incoming bytes and down for
	// outgoing bytes
	In       uint8
	Out      uint8
	BitCount int

	// how the bus devices are driving the clock and data lines. true is the
	// released (high) state
	ClockOut bool
	DataOut  bool
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus(ctx Context, registry *Registry) *Bus {
	b := &Bus{
		ctx:      ctx,
		registry: registry,
		SCL:      NewTrace("SCL"),
		SDA:      NewTrace("SDA"),
	}
	b.Reset()
	return b
}

func (b *Bus) String() string {
	s := strings.Builder{}
	s.WriteString(b.State.String())
	if b.active != NoDevice {
		s.WriteString(fmt.Sprintf(" [%s]", b.registry.Describe(b.active)))
	}
	if !b.DataOut {
		s.WriteString(" SDA driven low")
	}
	return s.String()
}

// Reset the state machine to the idle state and release both lines. Any open
// transaction is forgotten without the device being told.
func (b *Bus) Reset() {
	b.State = Idle
	b.Address = 0
	b.active = NoDevice
	b.Accessed = false
	b.In = 0
	b.Out = 0
	b.BitCount = 0
	b.release()
}

// Active returns the device taking part in the current transaction.
func (b *Bus) Active() (Device, bool) {
	if b.active == NoDevice {
		return nil, false
	}
	return b.registry.Device(b.active), true
}

func (b *Bus) release() {
	b.ClockOut = true
	b.DataOut = true
}

// drive the data line. the clock line is never held low
func (b *Bus) drive(data bool) {
	b.ClockOut = true
	b.DataOut = data
}

// the device for the current transaction. the state machine should never
// reach a state that requires an active device without one having been
// selected
func (b *Bus) mustActive() Device {
	if b.active == NoDevice {
		panic(fmt.Sprintf("i2c: no active device in %s state", b.State))
	}
	return b.registry.Device(b.active)
}

// shift an incoming bit into the In register. returns true when a complete
// byte has been received. bits arrive most significant bit first
func (b *Bus) shiftIn(bit bool) bool {
	b.BitCount++
	b.In <<= 1
	if bit {
		b.In |= 0x01
	}
	return b.BitCount == 8
}

// PinChange should be called whenever the controller changes the state of
// either pin. The ClockOut and DataOut fields should be consulted after the
// call to determine the effective state of the bus.
func (b *Bus) PinChange(scl, sda bool) {
	b.SCL.Tick(scl)
	b.SDA.Tick(sda)

	// a start (or repeated start) condition abandons whatever the bus is doing
	if b.SCL.Hi() && b.SDA.Falling() {
		b.Reset()
		b.State = Addressing
		logger.Log(b.ctx, "i2c", "start condition")
		return
	}

	if b.SCL.Hi() && b.SDA.Rising() {
		if dev, ok := b.Active(); ok {
			dev.Stop()
		}
		b.Reset()
		logger.Log(b.ctx, "i2c", "stop condition")
		return
	}

	falling := b.SCL.Falling()
	rising := b.SCL.Rising()

	switch b.State {
	case Idle:
		b.release()

	case Addressing:
		if falling {
			b.release()
		} else if rising {
			if b.shiftIn(sda) {
				b.selectDevice()
			}
		}

	case AckReadAddr:
		if falling {
			b.drive(false)
		} else if rising {
			b.State = Reading
			b.BitCount = 8
			b.Accessed = true
		}

	case AckRead:
		if falling {
			b.release()
		} else if rising {
			b.readAck(sda)
		}

	case AckWrite, NackWrite:
		if falling {
			b.drive(b.State == NackWrite)
		} else if rising {
			b.State = Writing
			b.BitCount = 0
			b.In = 0
		}

	case Reading:
		// output changes after the falling edge of the clock. the controller
		// samples the data line on the rising edge
		if falling {
			b.sendBit()
		} else if rising && b.BitCount == 0 {
			b.State = AckRead
		}

	case Writing:
		if falling {
			b.release()
		} else if rising {
			if b.shiftIn(sda) {
				b.writeByte()
			}
		}

	case Waiting:

	default:
		panic(fmt.Sprintf("i2c: no handler for bus state %d", b.State))
	}
}

// the address byte has been received. the top seven bits are the address of
// the device and the low bit is the direction of the transfer
func (b *Bus) selectDevice() {
	b.Address = b.In >> 1

	dir := Write
	if b.In&0x01 == 0x01 {
		dir = Read
	}

	idx, ok := b.registry.Lookup(b.Address)
	if !ok {
		logger.Logf(b.ctx, "i2c", "no device at %#02x", b.Address)
		b.Reset()
		return
	}

	if dir == Read {
		b.State = AckReadAddr
	} else {
		b.State = AckWrite
	}

	resp := b.registry.Device(idx).Start(b.Address, dir)
	logger.Logf(b.ctx, "i2c", "%s %s: %s", dir, b.registry.Describe(idx), resp)

	switch resp {
	case Ack:
		b.active = idx
		b.release()
	case Nack:
		b.release()
		b.State = Waiting
	default:
		panic(fmt.Sprintf("i2c: unknown response from device (%d)", resp))
	}
}

// the controller has acknowledged (data low) or not acknowledged (data high)
// the most recently read byte
func (b *Bus) readAck(sda bool) {
	dev := b.mustActive()
	ra, hasReadAck := dev.(ReadAcknowledger)

	if sda {
		// nothing more will be read in this transaction
		b.State = Waiting
		if hasReadAck {
			ra.ReadAck(Nack)
		}
		if !b.DataOut {
			logger.Log(b.ctx, "i2c", "bug: nack seen while data line is driven low")
		}
		return
	}

	if hasReadAck {
		ra.ReadAck(Ack)
	}
	b.State = Reading
	b.BitCount = 8
	b.Accessed = true
}

// put the next outgoing bit on the data line, fetching a new byte from the
// device if necessary
func (b *Bus) sendBit() {
	dev := b.mustActive()

	if b.BitCount == 8 {
		b.Out = dev.Read()
		logByte(b.ctx, "read", b.Out)
	}

	if b.BitCount > 0 {
		b.BitCount--
		b.drive(b.Out&(0x01<<b.BitCount) != 0)
	} else {
		logger.Log(b.ctx, "i2c", "bug: no bits remaining in read")
	}
}

// a complete byte has been received from the controller
func (b *Bus) writeByte() {
	dev := b.mustActive()

	logByte(b.ctx, "written", b.In)
	resp := dev.Write(b.In)
	b.Accessed = true

	switch resp {
	case Ack:
		b.State = AckWrite
	case Nack:
		b.State = NackWrite
	default:
		panic(fmt.Sprintf("i2c: unknown response from device (%d)", resp))
	}

	b.ClockOut = true
}

func logByte(ctx Context, what string, v uint8) {
	if unicode.IsPrint(rune(v)) {
		logger.Logf(ctx, "i2c", "%s byte %#02x [%c]", what, v, v)
	} else {
		logger.Logf(ctx, "i2c", "%s byte %#02x", what, v)
	}
}
