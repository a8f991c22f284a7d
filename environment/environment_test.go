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

package environment_test

import (
	"os"
	"testing"
	"time"

	"github.com/jetsetilly/cmosi2c/environment"
	"github.com/jetsetilly/cmosi2c/hardware/machine"
	"github.com/jetsetilly/cmosi2c/test"
)

func TestEnvironment(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, env.AllowLogging())
	test.ExpectSuccess(t, env.IsMainEmulation())

	test.DemandSuccess(t, env.Prefs.Model.Set("A7000"))
	stopped := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)
	env.Normalise(stopped)
	test.ExpectEquality(t, env.Prefs.MachineModel(), machine.Default)
	test.ExpectEquality(t, env.Now(), stopped)

	other, err := environment.NewEnvironment("other", env.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.AllowLogging())
	test.ExpectSuccess(t, other.IsEmulation("other"))
	test.ExpectEquality(t, other.Prefs, env.Prefs)
}
