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

package addresses

// StartBit is the bit in the control register that starts a compute run.
const StartBit = uint32(0x00000001)

// DoneBit is the bit in the status register that indicates a completed run.
// No other bits in the status register are used and always read as zero.
const DoneBit = uint32(0x00000001)

// Sentinel is the value returned by a read of an unmapped offset.
const Sentinel = uint32(0xdeadbeef)
