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

// Package memory contains the register file of the peripheral and the
// packages that describe it. There are no types in this package itself.
//
// The register file is accessed over three buses, each defined in the bus
// package:
//
//	                     AXI-Lite channels
//
//	                         |
//	                    channel bus
//	                         |
//	                         \/
//
//	DEBUGGER ---- debugger bus ---- REGFILE ---- engine bus ---- ENGINE
//
// The channel bus is claimed once, by the peripheral, and shared by the read
// and write channels. The engine bus is claimed once, by the compute engine.
// A bus port only allows access to the registers its owner may write: the
// channels can write the input and control registers; the engine can write
// the output registers and the done flag.
//
// The debugger bus is implemented by the register file directly. It allows
// inspection of any mapped register without the passing of time.
//
// The memorymap package defines the areas of the register map and the
// addresses package gives each register its canonical name.
package memory
