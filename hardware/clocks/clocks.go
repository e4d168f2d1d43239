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

// Package clocks defines the nominal speed of the clock driving the
// peripheral. The simulation itself is untimed; the values here are used to
// report the simulated time represented by a number of ticks.
package clocks

import "time"

// AFI is the frequency of the application clock in MHz.
const AFI = 250.0

// Duration returns the simulated time represented by the number of ticks.
func Duration(ticks uint64) time.Duration {
	return time.Duration(float64(ticks) * 1000.0 / AFI)
}

// Ratio returns the achieved tick rate, in ticks per second, as a fraction of
// the nominal clock.
func Ratio(ticksPerSecond float64) float64 {
	return ticksPerSecond / (AFI * 1000000)
}
