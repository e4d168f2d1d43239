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

// Package soak runs many independent peripherals in parallel, each driven
// through a bus front-end with randomised inputs, acknowledgement delays and
// latencies. Every run checks the add-one results, the unmapped read value and
// that the done flag clears after the start flag is cleared.
//
// Workers use a non-main environment so they do not add entries to the
// central log.
package soak
