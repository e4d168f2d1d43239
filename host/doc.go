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

// Package host is the host side of the add-one test. The AddOne() function
// performs the same sequence of register accesses a host program would
// perform over PCIe: load the input bank, check it, start a run, poll for
// completion, clear the start bit and check the output bank.
//
// Progress is written to an io.Writer as the test proceeds, ending with a
// table comparing every output with the expected value.
package host
