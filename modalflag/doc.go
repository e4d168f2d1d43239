// This file is part of Regsim.
//
// Regsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regsim.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes to command line processing.
//
// A mode is a word on the command line that selects a different set of flags
// and a different behaviour for the program. For example:
//
//	regsim MONITOR -term COLOR
//
// Here MONITOR is a mode and -term is a flag belonging to that mode. Modes
// can be nested. The series of modes encountered during parsing is the
// mode's path and is returned by the Path() function.
//
// Typical use:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR")
//	prefsFile := md.AddString("prefs", "", "preferences file")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default. It is selected
// when the next argument on the command line is not one of the listed
// sub-modes.
//
// Help is printed automatically to the Output writer when the -help or -h
// flags are found.
package modalflag
