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

// Package hardware is the base package for the peripheral. The Peripheral
// type ties together the register file, the two bus channels and the compute
// engine and advances them on a single clock.
//
// Every call to Step() is one tick of the clock. All components evaluate
// their next state from the same view of the peripheral and then commit in a
// fixed order: write channel, read channel, compute engine. The order matters
// only for the compute engine, which captures the input bank after the write
// channel has committed. Field ownership in the register file means no two
// components ever write the same register.
//
// There are no goroutines inside the peripheral. Callers drive it by setting
// the requester signals in the Pins field and calling Step(), either directly
// or through the Run() and RunForTicks() functions. The frontend package
// does this on behalf of code that wants to think in terms of register reads
// and writes.
package hardware
