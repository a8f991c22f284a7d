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

package cmos

import (
	"encoding/hex"
	"time"

	"github.com/jetsetilly/cmosi2c/curated"
	"github.com/jetsetilly/cmosi2c/hardware/machine"
	"github.com/jetsetilly/cmosi2c/logger"
)

// Size of the store in bytes.
const Size = 256

// VolatileSize is the number of bytes at the start of the store that are the
// clock's time and status registers.
const VolatileSize = 16

// ChecksumAddress is where the guest operating system expects to find the
// checksum of the non-volatile bytes. Writing to this address causes the
// store to be saved.
const ChecksumAddress = 0x3f

// addresses of the bytes regenerated by ApplyDynamicSettings()
const (
	addrDST       = 0x2c
	addrMouseType = 0x5d
	addrYearLo    = 0xc0
	addrYearHi    = 0xc1

	dstBit = 0x80

	mouseQuadrature = 0
	mousePS2        = 3
)

// Context is the environment the store runs in.
type Context interface {
	logger.Permission
}

// Store is the CMOS RAM of the machine.
type Store struct {
	ctx     Context
	backing Backing

	// amend Data only through Poke() or by the bus devices
	Data [Size]uint8

	// the data as it was last loaded or saved
	disk [Size]uint8
}

// NewStore is the preferred method of initialisation for the Store type. The
// data is loaded from the backing. An error is returned only if the backing
// exists but could not be read in full.
func NewStore(ctx Context, backing Backing) (*Store, error) {
	s := &Store{
		ctx:     ctx,
		backing: backing,
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load the store from the backing. A missing backing is not an error, the
// store is zero-filled instead.
func (s *Store) Load() error {
	var data [Size]uint8

	err := s.backing.Load(data[:])
	if err != nil {
		if !curated.Is(err, ErrBackingAbsent) {
			return err
		}
		logger.Log(s.ctx, "cmos", err)
		clear(data[:])
	} else {
		logger.Logf(s.ctx, "cmos", "loaded from %s", s.backing)
	}

	s.Data = data
	s.disk = data

	return nil
}

// Save the store to the backing.
func (s *Store) Save() error {
	err := s.backing.Save(s.Data[:])
	if err != nil {
		return err
	}
	s.disk = s.Data
	logger.Logf(s.ctx, "cmos", "saved to %s", s.backing)
	return nil
}

// IsSaved returns true if the store is the same as it was when last loaded or
// saved.
func (s *Store) IsSaved() bool {
	return s.Data == s.disk
}

// Peek returns the byte at address.
func (s *Store) Peek(address uint8) uint8 {
	return s.Data[address]
}

// Poke sets the byte at address.
func (s *Store) Poke(address uint8, v uint8) {
	s.Data[address] = v
}

// DST is the daylight saving state of the host.
type DST int

// List of valid DST values.
const (
	DSTUnknown DST = iota
	DSTOn
	DSTOff
)

func (d DST) String() string {
	switch d {
	case DSTOn:
		return "on"
	case DSTOff:
		return "off"
	}
	return "unknown"
}

// DaylightSaving returns the daylight saving state for the location of t. A
// time in UTC carries no zone information and so the state is unknown.
func DaylightSaving(t time.Time) DST {
	if t.Location() == time.UTC {
		return DSTUnknown
	}
	if t.IsDST() {
		return DSTOn
	}
	return DSTOff
}

// ApplyDynamicSettings regenerates the bytes that depend on the host and the
// machine model: the year, the daylight saving flag and the mouse type.
func (s *Store) ApplyDynamicSettings(model machine.Model, now time.Time) {
	// guest refuses to read the clock if the year is not present. stored as
	// binary and not BCD
	year := now.UTC().Year()
	s.Data[addrYearLo] = uint8(year % 100)
	s.Data[addrYearHi] = uint8(year / 100)

	switch DaylightSaving(now) {
	case DSTOn:
		s.Data[addrDST] |= dstBit
	case DSTOff:
		s.Data[addrDST] &^= dstBit
	}

	if model.PS2Mouse() {
		s.Data[addrMouseType] = mousePS2
	} else {
		s.Data[addrMouseType] = mouseQuadrature
	}
}

// Checksum returns the checksum of the non-volatile bytes as expected by the
// guest. The guest addresses the store with an offset of 0x40 so the summed
// window starts at 0x40 and wraps around to 0x10, skipping the volatile bytes
// and the checksum itself.
func (s *Store) Checksum() uint8 {
	var sum int
	for i := 0; i < Size-VolatileSize-1; i++ {
		a := i + 0x40
		if a >= Size {
			a -= Size - VolatileSize
		}
		sum += int(s.Data[a])
	}
	return uint8(sum + 1)
}

// RecomputeChecksum updates the checksum byte.
func (s *Store) RecomputeChecksum() {
	s.Data[ChecksumAddress] = s.Checksum()
}

// ClearVolatile zeroes the clock's time and status registers.
func (s *Store) ClearVolatile() {
	clear(s.Data[:VolatileSize])
}

// Reset the store for a new session of the specified model. The order is
// important: the checksum covers the regenerated settings.
func (s *Store) Reset(model machine.Model, now time.Time) {
	s.ApplyDynamicSettings(model, now)
	s.RecomputeChecksum()
	s.ClearVolatile()
	logger.Logf(s.ctx, "cmos", "reset for %s (dst %s)", model, DaylightSaving(now))
}

// Backing returns the backing the store loads from and saves to.
func (s *Store) Backing() Backing {
	return s.backing
}

// String returns a hex dump of the store.
func (s *Store) String() string {
	return hex.Dump(s.Data[:])
}
