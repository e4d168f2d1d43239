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

// Package prefs facilitates the storage of preferential values in the
// program. Preference values are typed and are stored to disk with the Disk
// type. Multiple Disk instances can share the same file on disk; entries
// not belonging to a Disk are preserved when it is saved.
//
// The format of the preferences file is a series of lines of the form:
//
//	key :: value
//
// The first line of the file is the WarningBoilerPlate string, which is
// ignored when loading.
//
// Preference values can be overridden on the command line with a prefs
// string. The string is pushed onto the command line stack with
// PushCommandLineStack() before the preferences are loaded:
//
//	prefs.PushCommandLineStack("hardware.latency::8; hardware.sentinel::false")
//
// The values in the top group of the stack are applied by Disk.Load() and are
// then forgotten.
package prefs
