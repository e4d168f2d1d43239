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

// Package axi implements the subordinate side of an AXI4-Lite style register
// bus. There are two independent channels. The write channel accepts an
// address, then a single data beat, then presents a response until it is
// acknowledged. The read channel accepts an address and then presents the
// read data until it is acknowledged.
//
// Each channel admits only one transaction at a time. A requester that never
// acknowledges a response stalls that channel only.
//
// The signals between requester and peripheral are collected in the Pins
// type. The requester sets the valid and ready signals it drives before a
// tick. A transfer happens in a tick where both the valid and ready signals
// of a pair are high. After the tick the peripheral's signals are updated by
// the Drive() functions of the two channels.
//
// Writes to unmapped offsets are accepted and dropped and the response is
// still OKAY. Reads of unmapped offsets return the sentinel value 0xdeadbeef,
// unless the hardware.sentinel preference is false, in which case they
// return zero.
package axi
