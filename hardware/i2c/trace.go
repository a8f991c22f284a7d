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

import "strings"

// Trace records the state of an electrical line, whether it is high or low,
// and also whether the immediately previous state was high or low.
//
// Moving from one state to the other is done with Tick(bool) where a boolean
// value of true indicates a high voltage state.
//
// Deriving conditions from two traces is convenient. For example, the start
// condition of the bus is derived from the clock (SCL) and data (SDA) traces:
//
//	if SCL.Hi() && SDA.Falling() {
//		start()
//	}
type Trace struct {
	Label string

	// new values are added to the end of the array
	Activity []bool

	from bool
	to   bool
}

const activityLength = 64

// NewTrace is the preferred method of initialisation for the Trace type. The
// line starts in the released (high) state.
func NewTrace(label string) Trace {
	tr := Trace{
		Label:    label,
		Activity: make([]bool, activityLength),
		from:     true,
		to:       true,
	}
	for i := range tr.Activity {
		tr.Activity[i] = true
	}
	return tr
}

// Changed returns true if the line changed state with the most recent Tick().
func (tr *Trace) Changed() bool {
	return tr.from != tr.to
}

// Falling returns true if the line has moved from the high to the low state.
func (tr *Trace) Falling() bool {
	return tr.from && !tr.to
}

// Rising returns true if the line has moved from the low to the high state.
func (tr *Trace) Rising() bool {
	return !tr.from && tr.to
}

// Hi returns true if the line is currently high.
func (tr *Trace) Hi() bool {
	return tr.to
}

// Lo returns true if the line is currently low.
func (tr *Trace) Lo() bool {
	return !tr.to
}

// Tick moves the line to the new state.
func (tr *Trace) Tick(v bool) {
	tr.from = tr.to
	tr.to = v
	if len(tr.Activity) > 0 {
		tr.Activity = append(tr.Activity[1:], v)
	}
}

// String renders the recent activity of the line as a waveform.
func (tr *Trace) String() string {
	s := strings.Builder{}
	s.WriteString(tr.Label)
	s.WriteString(" ")
	for _, v := range tr.Activity {
		if v {
			s.WriteRune('‾')
		} else {
			s.WriteRune('_')
		}
	}
	return s.String()
}
