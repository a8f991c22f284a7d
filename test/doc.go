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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions record a test failure but allow the test to continue.
// The Demand functions are fatal to the test. ExpectSuccess() and
// ExpectFailure() interpret their argument according to its type: a bool is a
// success if it is true and an error is a success if it is nil.
//
// It is worth describing how nil is handled because it is not obvious. The
// nil type is considered a success and consequently will cause ExpectFailure()
// to fail and ExpectSuccess() to succeed. This is because of how errors
// usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The Compare() function can then be used to test for
// equality.
package test
