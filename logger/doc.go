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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string and are kept in a bounded list; the oldest
// entries are forgotten once the list is full. Repeated entries are folded
// into one entry with a repeat count.
//
// Whether an entry is made is decided by a Permission. The environment
// package implements Permission so that only the main peripheral adds to the
// log. The Allow and Deny values can be used when an entry should always or
// never be made.
//
// The package level functions use the central logger. A separate instance of
// Logger can be created with NewLogger(), which is mostly useful for testing.
package logger
