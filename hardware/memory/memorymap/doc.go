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

// Package memorymap decodes the 8-bit transfer offset into one of the areas
// of the register map.
//
//	0x00 - 0x1f	input[0..7]
//	0x20 - 0x3f	output[0..7]
//	0x40		control
//	0x44		status
//
// Inside the input and output areas the register index is the offset shifted
// right by two, so the two least significant bits are ignored. The control
// and status registers are decoded by exact match. Every other offset is
// unmapped.
package memorymap
