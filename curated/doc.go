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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern identifies the error. Packages that raise errors the caller may
// want to react to export the pattern as a string constant:
//
//	const ErrTruncated = "cmos: file truncated (%s)"
//
//	err := curated.Errorf(ErrTruncated, fn)
//
//	if curated.Is(err, ErrTruncated) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the chain:
//
//	f := curated.Errorf("board: %v", err)
//	curated.Has(f, cmos.ErrTruncated) // true
//	curated.Is(f, cmos.ErrTruncated)  // false
//
// Chains are thought of as parts separated by the sub-string ": ". The
// Error() function removes duplicate adjacent parts so that code does not need
// to worry about whether the error it is wrapping already carries the same
// prefix. For example, wrapping "cmos: file truncated" with the pattern
// "cmos: %v" produces the message:
//
//	cmos: file truncated
//
// and not:
//
//	cmos: cmos: file truncated
//
// Actual panics should only be used when something is so wrong that nothing
// sensible can be done, such as a bus state machine finding itself in a state
// it should never be able to reach.
package curated
