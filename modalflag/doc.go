// This file is part of Gopher81.
//
// Gopher81 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher81 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher81.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package from the standard library and adds
// the idea of program modes. Each mode has its own set of flags and the
// arguments that follow a mode's flags may select a sub-mode.
//
// A typical use, selecting between the RUN and TAPE modes of the emulator:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TAPE")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		rom := md.AddString("rom", "", "ROM file")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default and is selected
// when the next argument is not a listed mode. Mode names are compared case
// insensitively and are stored in upper case.
//
// Help is printed to the Output writer when the -help or -h flag is seen.
// Parse() then returns ParseHelp and the caller should end without printing
// anything further.
package modalflag
