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

// Package hardware is the base package for the emulation of the two-wire bus
// of the mainboard. The Board type collates the bus with the devices attached
// to it: the PCF8583 real-time clock, which holds the CMOS store, and the SPD
// EEPROM of the first memory module.
//
// The host emulation drives the bus through the Board's PinChange() function
// once for every change of the clock or data pins. The bus's own drive of the
// two lines is returned by Clock() and Data(). The lines are open-drain so the
// effective state of a line is the logical AND of the host's drive and the
// bus's drive.
//
// The Board is not safe for concurrent use. Callers on more than one goroutine
// must serialise calls.
package hardware
