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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/cmosi2c/environment"
	"github.com/jetsetilly/cmosi2c/hardware"
	"github.com/jetsetilly/cmosi2c/hardware/cmos"
	"github.com/jetsetilly/cmosi2c/hardware/i2c"
	"github.com/jetsetilly/cmosi2c/hardware/i2c/controller"
	"github.com/jetsetilly/cmosi2c/logger"
	"github.com/jetsetilly/cmosi2c/modalflag"
	"github.com/jetsetilly/cmosi2c/prefs"
	"github.com/jetsetilly/cmosi2c/script"
	"github.com/jetsetilly/cmosi2c/statsview"
	"github.com/jetsetilly/cmosi2c/version"
)

// exit codes
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// session is the state shared by every mode
type session struct {
	env      *environment.Environment
	board    *hardware.Board
	volatile bool
	out      io.Writer
}

func launch(args []string, out io.Writer) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)

	echo := md.AddBool("log", false, "echo log to stderr")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this run only, eg. cmosi2c.model::A7000")
	volatile := md.AddBool("volatile", false, "do not load or save the CMOS file")
	devices := md.AddString("devices", "", "devices on the bus (RTC, SPD, ALL, NONE). default from preferences")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	md.AddSubModes("DUMP", "READ", "WRITE", "SCRIPT", "SAVE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return exitParseError
	}

	if *echo {
		setEcho(os.Stderr)
	}

	if stats != nil && *stats {
		statsview.Launch(out)
	}

	if md.Mode() == "VERSION" {
		fmt.Fprintln(out, version.String())
		return exitOK
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(out, "* unused preferences: %s\n", unused)
			}
		}()
	}

	s, err := newSession(*volatile, *devices, out)
	if err != nil {
		fmt.Fprintf(out, "* error: %v\n", err)
		return exitModeError
	}

	switch md.Mode() {
	case "DUMP":
		err = s.dump(md)
	case "READ":
		err = s.read(md)
	case "WRITE":
		err = s.write(md)
	case "SCRIPT":
		err = s.script(md)
	case "SAVE":
		err = s.save(md)
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

// setEcho directs the log to w, coloured if w is a terminal
func setEcho(w *os.File) {
	if term.IsTerminal(int(w.Fd())) {
		logger.SetEcho(logger.NewColorizer(w))
	} else {
		logger.SetEcho(w)
	}
}

func newSession(volatile bool, devices string, out io.Writer) (*session, error) {
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	var backing cmos.Backing
	if volatile {
		backing = &cmos.Memory{}
	}

	board, err := hardware.NewBoard(env, backing)
	if err != nil {
		return nil, err
	}

	d := env.Prefs.BusDevices()
	if devices != "" {
		d, err = i2c.ParseDevices(devices)
		if err != nil {
			return nil, err
		}
	}
	board.Reset(d)

	return &session{
		env:      env,
		board:    board,
		volatile: volatile,
		out:      out,
	}, nil
}

// shutdown saves the CMOS store if it has changed
func (s *session) shutdown() error {
	if s.volatile || s.board.Store.IsSaved() {
		return nil
	}
	return s.board.Save()
}

func (s *session) traceBus(force bool) {
	if force || s.env.Prefs.TraceBus.Get().(bool) {
		fmt.Fprintln(s.out, s.board.Bus.SCL.String())
		fmt.Fprintln(s.out, s.board.Bus.SDA.String())
	}
}

func parseByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("%s is not a byte value", s)
	}
	return uint8(v), nil
}

func (s *session) dump(md *modalflag.Modes) error {
	md.NewMode()
	graph := md.AddString("graph", "", "write a graphviz file of the board to the named file")
	trace := md.AddBool("trace", false, "show the recent pin activity")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(s.out, "%s (%s)\n", s.board.Store.Backing(), s.env.Prefs.MachineModel())
	fmt.Fprint(s.out, s.board.Store.String())
	fmt.Fprintln(s.out, s.board.String())
	s.traceBus(*trace)

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return err
		}
		memviz.Map(f, s.board)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func (s *session) read(md *modalflag.Modes) error {
	md.NewMode()
	count := md.AddInt("n", 1, "number of bytes to read")
	trace := md.AddBool("trace", false, "show the pin activity")
	md.AdditionalHelp("arguments: address register")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("address and register required")
	}
	address, err := parseByte(md.GetArg(0))
	if err != nil {
		return err
	}
	register, err := parseByte(md.GetArg(1))
	if err != nil {
		return err
	}
	if *count < 1 || *count > cmos.Size {
		return fmt.Errorf("number of bytes must be between 1 and %d", cmos.Size)
	}

	data := make([]uint8, *count)
	err = controller.NewController(s.board).ReadRegisters(address, register, data)
	if err != nil {
		return err
	}

	v := make([]string, len(data))
	for i, d := range data {
		v[i] = fmt.Sprintf("%02x", d)
	}
	fmt.Fprintln(s.out, strings.Join(v, " "))
	s.traceBus(*trace)

	return nil
}

func (s *session) write(md *modalflag.Modes) error {
	md.NewMode()
	trace := md.AddBool("trace", false, "show the pin activity")
	md.AdditionalHelp("arguments: address register value [value...]")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) < 3 {
		return fmt.Errorf("address, register and at least one value required")
	}
	address, err := parseByte(md.GetArg(0))
	if err != nil {
		return err
	}
	register, err := parseByte(md.GetArg(1))
	if err != nil {
		return err
	}

	var data []uint8
	for _, a := range md.RemainingArgs()[2:] {
		v, err := parseByte(a)
		if err != nil {
			return err
		}
		data = append(data, v)
	}

	err = controller.NewController(s.board).WriteRegisters(address, register, data)
	if err != nil {
		return err
	}
	s.traceBus(*trace)

	return s.shutdown()
}

func (s *session) script(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("arguments: lua script file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("script file required")
	}

	scr := script.NewScript(s.board, s.out)
	defer scr.Close()

	err = scr.RunFile(md.GetArg(0))
	if err != nil {
		return err
	}
	s.traceBus(false)

	return s.shutdown()
}

func (s *session) save(md *modalflag.Modes) error {
	md.NewMode()
	savePrefs := md.AddBool("preferences", false, "also save the current preferences")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if s.volatile {
		return fmt.Errorf("nothing to save for a volatile session")
	}

	err = s.board.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved %s\n", s.board.Store.Backing())

	if *savePrefs {
		return s.env.Prefs.Save()
	}

	return nil
}
