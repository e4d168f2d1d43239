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

// Package script runs Lua scripts against a peripheral. Scripts access the
// peripheral through a bus front-end and so see exactly what a host program
// would see.
//
// The following functions are available to scripts:
//
//	peek(offset)		read a register. returns the value
//	poke(offset, value)	write a register
//	tick([n])		tick the peripheral n times (default 1)
//	ticks()			number of ticks consumed by the front-end
//	reset()			reset the peripheral
//	addone([base])		run the host add-one test. returns true if passed
//	expect(cond, [msg])	record an expectation. failures do not stop the script
//	log(msg)		write a message to the output and the central log
//
// Every register is also available as a global with its canonical name, for
// example INPUT0, OUTPUT7, CONTROL and STATUS. SENTINEL is the value
// returned by a read of an unmapped offset.
//
// A script that completes with failed expectations returns the
// ExpectationsFailed error.
package script
