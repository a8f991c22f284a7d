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

// Package statsview offers a local HTTP server showing runtime statistics of
// the program. The server is only built when the statsview build tag is
// present. Without the tag the Available() function returns false and
// Launch() does nothing.
//
// Statistics are provided by github.com/go-echarts/statsview. After launch
// the graphs are viewable at:
//
//	localhost:12683/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12683/debug/pprof/
package statsview
