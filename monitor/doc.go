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

// Package monitor implements an interactive command line for inspecting and
// driving a peripheral. Commands are read from a terminal.Terminal
// implementation, of which there are two: plainterm and colorterm.
//
// Registers can be specified by offset or by canonical name (eg. INPUT3,
// CONTROL). PEEK and POKE normally access the register file directly, without
// the passing of time. Adding the BUS keyword performs the access as a bus
// transaction through the front-end, ticking the peripheral as it does so.
package monitor
