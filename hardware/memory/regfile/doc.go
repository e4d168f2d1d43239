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

// Package regfile implements the register file of the peripheral. It is the
// only state shared between the bus channels and the compute engine.
//
// Write access is partitioned by ownership. The input bank and the control
// register are owned by the bus. The output bank and the status register are
// owned by the compute engine. Access is only possible through one of two
// ports, each of which can be claimed only once:
//
//	rf := regfile.NewRegisterFile()
//	busPort, _ := rf.ClaimBusPort()
//	enginePort, _ := rf.ClaimEnginePort()
//
// The BusPort has no method for writing to the output bank or status
// register and the EnginePort has no method for writing to the input bank or
// control register. A second claim of either port is an error.
//
// The Peek() and Poke() functions are for the monitor and bypass the
// ports. Poke() will not write to engine owned registers.
package regfile
