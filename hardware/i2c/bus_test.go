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

	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/hardware/i2c/controller"
	"github.com/jetsetilly/cmosi2c/logger"
	"github.com/jetsetilly/cmosi2c/test"
)

// mockDevice records every call made to it by the bus
type mockDevice struct {
	starts   []i2c.Direction
	stops    int
	written  []uint8
	reads    int
	readAcks []i2c.Response
	resets   int

	data      []uint8
	startResp i2c.Response
	writeResp i2c.Response
}

func (d *mockDevice) Start(_ uint8, dir i2c.Direction) i2c.Response {
	d.starts = append(d.starts, dir)
	return d.startResp
}

func (d *mockDevice) Stop() {
	d.stops++
}

func (d *mockDevice) Write(v uint8) i2c.Response {
	d.written = append(d.written, v)
	return d.writeResp
}

func (d *mockDevice) Read() uint8 {
	v := d.data[d.reads%len(d.data)]
	d.reads++
	return v
}

func (d *mockDevice) ReadAck(ack i2c.Response) {
	d.readAcks = append(d.readAcks, ack)
}

func (d *mockDevice) Reset() {
	d.resets++
}

func (d *mockDevice) calls() int {
	return len(d.starts) + d.stops + len(d.written) + d.reads + len(d.readAcks)
}

// pins connects the controller to the bus
type pins struct {
	*i2c.Bus
}

func (p pins) Data() bool {
	return p.DataOut
}

const mockAddress = 0x50

func prepare(t *testing.T) (*i2c.Bus, *mockDevice, *controller.Controller) {
	t.Helper()

	dev := &mockDevice{data: []uint8{0xa5}}
	reg := i2c.NewRegistry()
	test.DemandSuccess(t, reg.Register(i2c.PCF8583, mockAddress, dev))
	reg.Reset(i2c.AllDevices)

	bus := i2c.NewBus(logger.Allow, reg)
	return bus, dev, controller.NewController(pins{bus})
}

func TestWriteTransaction(t *testing.T) {
	bus, dev, c := prepare(t)

	c.Start()
	test.ExpectEquality(t, bus.State, i2c.Addressing)

	test.ExpectSuccess(t, c.WriteByte(mockAddress<<1))
	test.ExpectEquality(t, len(dev.starts), 1)
	test.ExpectEquality(t, dev.starts[0], i2c.Write)
	test.ExpectEquality(t, bus.State, i2c.Writing)

	test.ExpectSuccess(t, c.WriteByte(0x3f))
	test.ExpectSuccess(t, c.WriteByte(0x81))
	test.ExpectEquality(t, len(dev.written), 2)
	test.ExpectEquality(t, dev.written[0], 0x3f)
	test.ExpectEquality(t, dev.written[1], 0x81)
	test.ExpectSuccess(t, bus.Accessed)

	c.Stop()
	test.ExpectEquality(t, bus.State, i2c.Idle)
	test.ExpectEquality(t, dev.stops, 1)
}

func TestWriteNack(t *testing.T) {
	bus, dev, c := prepare(t)
	dev.writeResp = i2c.Nack

	c.Start()
	test.DemandSuccess(t, c.WriteByte(mockAddress<<1))
	test.ExpectFailure(t, c.WriteByte(0x01))
	test.ExpectEquality(t, len(dev.written), 1)
	test.ExpectSuccess(t, bus.DataOut)
}

func TestReadMSBFirst(t *testing.T) {
	bus, dev, c := prepare(t)
	dev.data = []uint8{0xa5, 0x3c}

	c.Start()
	test.DemandSuccess(t, c.WriteByte(mockAddress<<1|0x01))
	test.ExpectEquality(t, dev.starts[0], i2c.Read)
	test.ExpectEquality(t, bus.State, i2c.Reading)

	// clock the first byte through one bit at a time. 0xa5 is 10100101
	expected := []bool{true, false, true, false, false, true, false, true}
	for i, e := range expected {
		test.ExpectEquality(t, c.Clock(true), e, "bit", i)
	}
	test.ExpectEquality(t, bus.State, i2c.AckRead)

	// acknowledge and read the next byte
	c.Clock(false)
	test.ExpectEquality(t, bus.State, i2c.Reading)
	test.ExpectEquality(t, c.ReadByte(false), 0x3c)
	test.ExpectEquality(t, bus.State, i2c.Waiting)

	test.ExpectEquality(t, len(dev.readAcks), 2)
	test.ExpectEquality(t, dev.readAcks[0], i2c.Ack)
	test.ExpectEquality(t, dev.readAcks[1], i2c.Nack)
	test.ExpectEquality(t, dev.reads, 2)

	c.Stop()
	test.ExpectEquality(t, dev.stops, 1)
}

func TestStartPrecedence(t *testing.T) {
	bus, dev, c := prepare(t)

	c.Start()
	test.DemandSuccess(t, c.WriteByte(mockAddress<<1))

	// three bits of a data byte
	c.Clock(true)
	c.Clock(false)
	c.Clock(true)
	test.ExpectEquality(t, bus.BitCount, 3)

	// repeated start discards the partial byte and the device is not told
	c.Start()
	test.ExpectEquality(t, bus.State, i2c.Addressing)
	test.ExpectEquality(t, bus.BitCount, 0)
	test.ExpectEquality(t, bus.In, 0)
	_, ok := bus.Active()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dev.stops, 0)
	test.ExpectEquality(t, len(dev.written), 0)

	// start condition from every state
	for s := i2c.Idle; s <= i2c.Waiting; s++ {
		bus.PinChange(false, true)
		bus.PinChange(true, true)
		bus.State = s
		bus.PinChange(true, false)
		test.ExpectEquality(t, bus.State, i2c.Addressing, s)
	}
}

func TestStopCallback(t *testing.T) {
	bus, dev, c := prepare(t)

	// stop without an open transaction
	c.Start()
	c.Stop()
	test.ExpectEquality(t, dev.stops, 0)

	c.Start()
	test.DemandSuccess(t, c.WriteByte(mockAddress<<1))
	c.Stop()
	test.ExpectEquality(t, dev.stops, 1)
	test.ExpectEquality(t, bus.State, i2c.Idle)

	// a second stop condition does not call the device again
	c.Stop()
	test.ExpectEquality(t, dev.stops, 1)
}

func TestUnknownAddress(t *testing.T) {
	bus, dev, c := prepare(t)

	c.Start()
	test.ExpectFailure(t, c.WriteByte(0x51<<1))
	test.ExpectEquality(t, bus.State, i2c.Idle)
	test.ExpectSuccess(t, bus.ClockOut)
	test.ExpectSuccess(t, bus.DataOut)
	test.ExpectEquality(t, dev.calls(), 0)
}

func TestDisabledDevice(t *testing.T) {
	dev := &mockDevice{data: []uint8{0x00}}
	reg := i2c.NewRegistry()
	test.DemandSuccess(t, reg.Register(i2c.SPDDIMM0, 0x54, dev))
	reg.Reset(i2c.PCF8583)

	bus := i2c.NewBus(logger.Allow, reg)
	c := controller.NewController(pins{bus})

	test.ExpectFailure(t, c.Probe(0x54))
	test.ExpectEquality(t, dev.calls(), 0)

	reg.Reset(i2c.SPDDIMM0)
	test.ExpectSuccess(t, c.Probe(0x54))
	test.ExpectEquality(t, len(dev.starts), 1)
}

func TestStartNack(t *testing.T) {
	bus, dev, c := prepare(t)
	dev.startResp = i2c.Nack

	c.Start()
	test.ExpectFailure(t, c.WriteByte(mockAddress<<1))
	test.ExpectEquality(t, bus.State, i2c.Waiting)

	// the device is waiting for the end of the transaction. clock pulses are
	// ignored
	c.Clock(false)
	test.ExpectEquality(t, bus.State, i2c.Waiting)

	// the device was never active so it doesn't see the stop
	c.Stop()
	test.ExpectEquality(t, dev.stops, 0)
}

func TestUnreachableStates(t *testing.T) {
	expectPanic := func(state i2c.State) {
		t.Helper()
		bus, _, _ := prepare(t)
		defer func() {
			t.Helper()
			test.ExpectInequality(t, recover(), nil, state)
		}()
		bus.PinChange(true, true)
		bus.State = state
		bus.PinChange(false, true)
		bus.PinChange(true, true)
	}

	expectPanic(i2c.Reading)
	expectPanic(i2c.AckRead)
	expectPanic(i2c.State(100))

	// writing needs eight clock pulses before the device is required
	bus, _, _ := prepare(t)
	bus.State = i2c.Writing
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	for i := 0; i < 8; i++ {
		bus.PinChange(false, true)
		bus.PinChange(true, true)
	}
}

func TestReset(t *testing.T) {
	bus, dev, c := prepare(t)

	c.Start()
	test.DemandSuccess(t, c.WriteByte(mockAddress<<1|0x01))
	c.Clock(true)
	test.ExpectEquality(t, bus.State, i2c.Reading)

	bus.Reset()
	test.ExpectEquality(t, bus.State, i2c.Idle)
	test.ExpectSuccess(t, bus.DataOut)
	test.ExpectSuccess(t, bus.ClockOut)
	_, ok := bus.Active()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, dev.stops, 0)
}
