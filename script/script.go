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

// Package script runs Lua scripts that drive the two-wire bus of a Board. The
// script acts as the bus controller. The following functions are available:
//
//	start()                        start (or repeated start) condition
//	stop()                         stop condition
//	write(v)                       write byte v, returns true if acknowledged
//	read(ack)                      read a byte, acknowledging it if ack is true
//	pins(scl, sda)                 drive the two lines directly
//	data()                         the devices' drive of the data line
//	probe(addr)                    returns true if a device answers at addr
//	readregs(addr, reg, n)         returns a table of n bytes read from reg
//	writeregs(addr, reg, v, ...)   writes bytes starting at reg
//	peek(addr)                     returns a byte of the CMOS store
//	poke(addr, v)                  sets a byte of the CMOS store
//	trace()                        returns the recent pin waveforms
//
// The print() function writes to the output given to NewScript().
package script

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/cmosi2c/curated"
	"github.com/jetsetilly/cmosi2c/hardware"
	"github.com/jetsetilly/cmosi2c/hardware/i2c/controller"
)

// ErrScript is returned when a script fails to compile or raises an error.
const ErrScript = "script: %v"

// Script is a Lua interpreter attached to a Board.
type Script struct {
	L     *lua.LState
	board *hardware.Board
	ctrl  *controller.Controller
	out   io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// The Close() function should be called when the Script is no longer needed.
func NewScript(board *hardware.Board, out io.Writer) *Script {
	s := &Script{
		L:     lua.NewState(),
		board: board,
		ctrl:  controller.NewController(board),
		out:   out,
	}

	for name, fn := range map[string]lua.LGFunction{
		"start":     s.start,
		"stop":      s.stop,
		"write":     s.write,
		"read":      s.read,
		"pins":      s.pins,
		"data":      s.data,
		"probe":     s.probe,
		"readregs":  s.readregs,
		"writeregs": s.writeregs,
		"peek":      s.peek,
		"poke":      s.poke,
		"trace":     s.trace,
		"print":     s.print,
	} {
		s.L.SetGlobal(name, s.L.NewFunction(fn))
	}

	return s
}

// Close the interpreter.
func (s *Script) Close() {
	s.L.Close()
}

// Run the Lua source.
func (s *Script) Run(source string) error {
	if err := s.L.DoString(source); err != nil {
		return curated.Errorf(ErrScript, err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (s *Script) RunFile(filename string) error {
	if err := s.L.DoFile(filename); err != nil {
		return curated.Errorf(ErrScript, err)
	}
	return nil
}

// checkByte returns argument n as a byte, raising an error if it is out of
// range.
func checkByte(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, fmt.Sprintf("%d is not a byte", v))
	}
	return uint8(v)
}

func (s *Script) start(L *lua.LState) int {
	s.ctrl.Start()
	return 0
}

func (s *Script) stop(L *lua.LState) int {
	s.ctrl.Stop()
	return 0
}

func (s *Script) write(L *lua.LState) int {
	L.Push(lua.LBool(s.ctrl.WriteByte(checkByte(L, 1))))
	return 1
}

func (s *Script) read(L *lua.LState) int {
	L.Push(lua.LNumber(s.ctrl.ReadByte(L.OptBool(1, false))))
	return 1
}

func (s *Script) pins(L *lua.LState) int {
	s.ctrl.Drive(L.CheckBool(1), L.CheckBool(2))
	return 0
}

func (s *Script) data(L *lua.LState) int {
	L.Push(lua.LBool(s.board.Data()))
	return 1
}

func (s *Script) probe(L *lua.LState) int {
	L.Push(lua.LBool(s.ctrl.Probe(checkByte(L, 1))))
	return 1
}

func (s *Script) readregs(L *lua.LState) int {
	address := checkByte(L, 1)
	register := checkByte(L, 2)
	n := L.OptInt(3, 1)
	if n < 1 || n > 256 {
		L.ArgError(3, "count must be between 1 and 256")
	}

	data := make([]uint8, n)
	if err := s.ctrl.ReadRegisters(address, register, data); err != nil {
		L.RaiseError("%v", err)
	}

	t := L.NewTable()
	for _, v := range data {
		t.Append(lua.LNumber(v))
	}
	L.Push(t)
	return 1
}

func (s *Script) writeregs(L *lua.LState) int {
	address := checkByte(L, 1)
	register := checkByte(L, 2)

	var data []uint8
	for i := 3; i <= L.GetTop(); i++ {
		data = append(data, checkByte(L, i))
	}

	if err := s.ctrl.WriteRegisters(address, register, data); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (s *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(s.board.Store.Peek(checkByte(L, 1))))
	return 1
}

func (s *Script) poke(L *lua.LState) int {
	s.board.Store.Poke(checkByte(L, 1), checkByte(L, 2))
	return 0
}

func (s *Script) trace(L *lua.LState) int {
	L.Push(lua.LString(fmt.Sprintf("%s\n%s", s.board.Bus.SCL.String(), s.board.Bus.SDA.String())))
	return 1
}

func (s *Script) print(L *lua.LState) int {
	var args []string
	for i := 1; i <= L.GetTop(); i++ {
		args = append(args, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(s.out, strings.Join(args, "\t"))
	return 0
}
