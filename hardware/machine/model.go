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

package machine

import (
	"strings"

	"github.com/jetsetilly/cmosi2c/curated"
)

// Model identifies the emulated machine. The only part of the emulation that
// is interested in the model is the CMOS settings regeneration, which chooses
// the mouse type depending on the model.
type Model int

// List of valid Model values.
const (
	RPC610 Model = iota
	RPC710
	RPCSA
	A7000
	A7000plus
	RPC810
	Phoebe
)

// Default is the model used when none has been specified.
const Default = RPC710

var modelNames = []string{
	RPC610:    "RPC610",
	RPC710:    "RPC710",
	RPCSA:     "RPCSA",
	A7000:     "A7000",
	A7000plus: "A7000+",
	RPC810:    "RPC810",
	Phoebe:    "Phoebe",
}

func (m Model) String() string {
	if m < 0 || int(m) >= len(modelNames) {
		return "unknown"
	}
	return modelNames[m]
}

// ErrUnknownModel is returned by ParseModel() when the string does not name a
// model.
const ErrUnknownModel = "machine: unknown model (%s)"

// ParseModel returns the Model with the name s. The comparison is case
// insensitive.
func ParseModel(s string) (Model, error) {
	s = strings.TrimSpace(s)
	for i, n := range modelNames {
		if strings.EqualFold(n, s) {
			return Model(i), nil
		}
	}
	return Default, curated.Errorf(ErrUnknownModel, s)
}

// Models returns the names of all models in order.
func Models() []string {
	n := make([]string, len(modelNames))
	copy(n, modelNames)
	return n
}

// PS2Mouse returns true if the model has a PS/2 mouse port rather than a
// quadrature mouse port.
func (m Model) PS2Mouse() bool {
	return m == A7000 || m == A7000plus || m == Phoebe
}
