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

// Package modalflag wraps the flag package of the standard library, adding
// program modes. Each mode can have its own set of flags.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. Flags are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	echo := md.AddBool("log", false, "echo log to stderr")
//	md.AddSubModes("DUMP", "READ", "WRITE")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode in
// the list is the default. Mode names are case insensitive.
//
// To parse the flags of the selected mode, call NewMode(), add the flags of
// that mode and call Parse() again. The Path() function returns every mode
// selected so far, separated by a forward slash.
//
// The -help flag is handled automatically. Parse() prints the available flags
// and sub-modes to the Output writer and returns ParseHelp.
package modalflag
