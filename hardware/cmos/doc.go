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

// Package cmos implements the 256 byte configuration store held by the
// PCF8583 real-time clock. Bytes 0 to 15 are the clock's time and status
// registers and are cleared on every reset. The remaining bytes are the
// non-volatile RAM used by the guest operating system for its configuration.
//
// The store is loaded from and saved to a Backing. The File type is the usual
// backing, the Memory type is for sessions that should not touch the disk.
package cmos
