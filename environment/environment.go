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

package environment

import (
	"time"

	"github.com/jetsetilly/cmosi2c/hardware/preferences"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. It implements the
// logger.Permission interface and is the Context of the bus, the CMOS store
// and the devices.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// the source of the time for the real-time clock. the location of the
	// returned time decides the daylight saving flag of the CMOS store
	Clock func() time.Time
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
		Clock: time.Now,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// Normalise ensures the environment is in a known default state. The clock
// is stopped at the specified time.
func (env *Environment) Normalise(t time.Time) {
	env.Prefs.SetDefaults()
	env.Clock = func() time.Time {
		return t
	}
}

// Now returns the current time according to the environment's clock.
func (env *Environment) Now() time.Time {
	return env.Clock()
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}
