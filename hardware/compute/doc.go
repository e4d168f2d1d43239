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

// Package compute implements the add-one engine of the peripheral.
//
// The engine waits in the Idle state until it sees the start bit of the
// control register. It then captures the input bank and runs for the number
// of ticks given by the hardware.latency preference. On the final tick of a
// run every output register is set to the captured input plus one and the
// done flag is set. The engine stays in the Done state until the start bit is
// seen to be clear, at which point the done flag is cleared.
//
// Holding the start bit high while in the Done state prevents a new run from
// beginning. This is not an error.
//
// Like the other components of the peripheral, the engine is advanced in two
// phases. Evaluate() decides the next state from a snapshot of the register
// file taken at the start of the tick. Commit() applies the decision. The
// input bank is captured in the commit phase, which happens after the bus
// channels have committed, so a write to the input bank in the same tick as
// a run begins is seen by that run.
package compute
