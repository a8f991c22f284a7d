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

// Package pcf8583 implements the Philips PCF8583 real-time clock as a device
// on the two-wire bus. The clock's registers and its battery backed RAM are
// the bytes of a cmos.Store.
package pcf8583

import (
	"fmt"
	"time"

	"github.com/jetsetilly/cmosi2c/hardware/cmos"
	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/logger"
)

// Address of the device on the bus.
const Address = 0x50

// Context is the environment the clock runs in. Now() is the source of the
// time returned by the clock registers.
type Context interface {
	logger.Permission
	Now() time.Time
}

// Phase records how the next written byte will be interpreted.
type Phase int

// List of valid Phase values.
const (
	AddressPhase Phase = iota
	DataPhase
)

func (p Phase) String() string {
	if p == DataPhase {
		return "data"
	}
	return "address"
}

// PCF8583 implements the i2c.Device interface.
type PCF8583 struct {
	ctx   Context
	store *cmos.Store

	// the register the next read or write will access. the top byte is
	// always zero
	Register uint16

	Phase Phase
}

// NewPCF8583 is the preferred method of initialisation for the PCF8583 type.
func NewPCF8583(ctx Context, store *cmos.Store) *PCF8583 {
	return &PCF8583{
		ctx:   ctx,
		store: store,
	}
}

func (rtc *PCF8583) String() string {
	return fmt.Sprintf("pcf8583: register %#02x (%s phase)", rtc.Register, rtc.Phase)
}

func (rtc *PCF8583) next() {
	rtc.Register = (rtc.Register + 1) & 0xff
}

// Start implements the i2c.Device interface.
func (rtc *PCF8583) Start(_ uint8, _ i2c.Direction) i2c.Response {
	rtc.Phase = AddressPhase
	return i2c.Ack
}

// Stop implements the i2c.Device interface.
func (rtc *PCF8583) Stop() {
	rtc.Phase = AddressPhase
}

// Write implements the i2c.Device interface. The first byte of a transaction
// selects the register. Subsequent bytes are stored. A write to the checksum
// byte causes the store to be saved.
func (rtc *PCF8583) Write(v uint8) i2c.Response {
	if rtc.Phase == AddressPhase {
		rtc.Register = uint16(v)
		rtc.Phase = DataPhase
		return i2c.Ack
	}

	rtc.store.Poke(uint8(rtc.Register), v)
	if rtc.Register == cmos.ChecksumAddress {
		if err := rtc.store.Save(); err != nil {
			logger.Log(rtc.ctx, "pcf8583", err)
		}
	}
	rtc.next()

	return i2c.Ack
}

// Read implements the i2c.Device interface. Reading from the time registers
// refreshes them from the clock first.
func (rtc *PCF8583) Read() uint8 {
	if rtc.Register < cmos.VolatileSize {
		rtc.refresh()
	}
	v := rtc.store.Peek(uint8(rtc.Register))
	rtc.next()
	return v
}

// refresh the time registers. the time is always UTC
func (rtc *PCF8583) refresh() {
	t := rtc.ctx.Now().UTC()
	rtc.store.Poke(1, 0)
	rtc.store.Poke(2, BCD(t.Second()))
	rtc.store.Poke(3, BCD(t.Minute()))
	rtc.store.Poke(4, BCD(t.Hour()))
	rtc.store.Poke(5, uint8(t.Year()&0x03)<<6|BCD(t.Day()))
	rtc.store.Poke(6, uint8(t.Weekday())<<5|BCD(int(t.Month())))
}

// BCD converts a value in the range 0 to 99 to binary coded decimal.
func BCD(v int) uint8 {
	return uint8((v/10)<<4 | v%10)
}
